package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/financeforward/internal/service"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	contactThanks     = "Thank you for your message! We will get back to you soon."
	contactUnreadable = "We could not read your message. Please fill in the form and try again."
)

// ShowContact renders the contact form together with any pending flash message.
func (a *API) ShowContact(c *gin.Context) {
	session := sessions.Default(c)
	flashes := session.Flashes()
	if len(flashes) > 0 {
		_ = session.Save()
	}

	a.renderContact(c, http.StatusOK, gin.H{
		"flashes":   flashes,
		"reference": strings.TrimSpace(c.Query("sent")),
		"values":    service.ContactInput{},
		"errors":    map[string]string{},
	})
}

// SubmitContact stores an inquiry and redirects back to the form. Invalid input
// re-renders the form with the entered values and field errors.
func (a *API) SubmitContact(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBind(&input); err != nil {
		a.renderContact(c, http.StatusBadRequest, gin.H{
			"values":    input,
			"errors":    map[string]string{},
			"formError": contactUnreadable,
		})
		return
	}

	contact, err := a.contacts.Submit(c.Request.Context(), input)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			a.renderContact(c, http.StatusUnprocessableEntity, gin.H{
				"values": input,
				"errors": validationErr.Fields,
			})
			return
		}
		a.renderPageError(c, err)
		return
	}

	session := sessions.Default(c)
	session.AddFlash(contactThanks)
	if err := session.Save(); err != nil {
		c.Error(err)
	}

	c.Redirect(http.StatusSeeOther, "/contact?sent="+url.QueryEscape(contact.Reference))
}

func (a *API) renderContact(c *gin.Context, status int, data gin.H) {
	page, err := a.pages.Contact(c.Request.Context())
	if err != nil {
		a.renderPageError(c, err)
		return
	}
	data["title"] = "Contact"
	data["page"] = page
	a.renderHTML(c, status, "contact.html", data)
}

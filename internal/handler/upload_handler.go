package handler

import (
	"errors"
	"net/http"

	"github.com/financeforward/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadImage stores an image sent as the "image" form file and returns its URL and size.
func (a *API) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}
	if file.Size > service.MaxUploadBytes {
		respondError(c, http.StatusRequestEntityTooLarge, service.ErrUploadTooLarge.Error())
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "could not read upload")
		return
	}
	defer src.Close()

	stored, err := a.media.Save(src)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, service.ErrUnsupportedImage):
			respondError(c, http.StatusUnsupportedMediaType, err.Error())
		default:
			a.logger.Error("store upload failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "could not store upload")
		}
		return
	}

	a.logger.Info("image uploaded", zap.String("url", stored.URL), zap.Int("width", stored.Width), zap.Int("height", stored.Height))
	c.JSON(http.StatusCreated, gin.H{"media": stored})
}

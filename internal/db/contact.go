package db

// Inquiry types accepted by the contact form.
const (
	InquiryGeneral      = "general"
	InquiryConsultation = "consultation"
	InquiryWorkshop     = "workshop"
	InquirySpeaking     = "speaking"
	InquiryOther        = "other"
)

// Contact is a visitor inquiry. Visitor fields are written once; IsRead, IsResponded
// and Notes are triage state maintained by staff.
type Contact struct {
	Model
	Reference   string `gorm:"size:27;uniqueIndex" json:"reference"`
	FirstName   string `gorm:"size:50;not null" json:"firstName"`
	LastName    string `gorm:"size:50;not null" json:"lastName"`
	Email       string `gorm:"size:254;not null" json:"email"`
	Phone       string `gorm:"size:20" json:"phone"`
	Company     string `gorm:"size:100" json:"company"`
	InquiryType string `gorm:"size:20;not null;index" json:"inquiryType"`
	Subject     string `gorm:"size:200;not null" json:"subject"`
	Message     string `gorm:"type:text;not null" json:"message"`
	IsRead      bool   `gorm:"index" json:"isRead"`
	IsResponded bool   `gorm:"index" json:"isResponded"`
	Notes       string `gorm:"type:text" json:"notes"`
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

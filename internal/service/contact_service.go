package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/financeforward/internal/db"
	"github.com/financeforward/internal/logging"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InquiryType pairs an inquiry value with its form label.
type InquiryType struct {
	Value string
	Label string
}

// InquiryTypes lists the accepted inquiry categories in form order.
var InquiryTypes = []InquiryType{
	{Value: db.InquiryGeneral, Label: "General Inquiry"},
	{Value: db.InquiryConsultation, Label: "Consultation Request"},
	{Value: db.InquiryWorkshop, Label: "Workshop Inquiry"},
	{Value: db.InquirySpeaking, Label: "Speaking Engagement"},
	{Value: db.InquiryOther, Label: "Other"},
}

// ContactInput is the visitor-submitted part of an inquiry.
type ContactInput struct {
	FirstName   string `form:"first_name" json:"first_name" validate:"required,max=50"`
	LastName    string `form:"last_name" json:"last_name" validate:"required,max=50"`
	Email       string `form:"email" json:"email" validate:"required,email,max=254"`
	Phone       string `form:"phone" json:"phone" validate:"max=20"`
	Company     string `form:"company" json:"company" validate:"max=100"`
	InquiryType string `form:"inquiry_type" json:"inquiry_type" validate:"oneof=general consultation workshop speaking other"`
	Subject     string `form:"subject" json:"subject" validate:"required,max=200"`
	Message     string `form:"message" json:"message" validate:"required"`
}

func (in *ContactInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.InquiryType = strings.ToLower(strings.TrimSpace(in.InquiryType))
	if in.InquiryType == "" {
		in.InquiryType = db.InquiryGeneral
	}
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)
}

// ContactFilter narrows the triage listing; nil flags are not applied.
type ContactFilter struct {
	Search      string
	InquiryType string
	IsRead      *bool
	IsResponded *bool
}

// ContactService stores visitor inquiries and their triage state.
type ContactService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewContactService creates a ContactService. A nil logger disables logging.
func NewContactService(gdb *gorm.DB, logger *zap.Logger) *ContactService {
	return &ContactService{db: gdb, logger: logging.OrNop(logger)}
}

// Submit validates input and stores a new inquiry with both triage flags unset.
// Invalid input returns a *ValidationError and stores nothing.
func (s *ContactService) Submit(ctx context.Context, input ContactInput) (*db.Contact, error) {
	input.normalize()
	if err := validateStruct(&input); err != nil {
		return nil, err
	}

	contact := db.Contact{
		Reference:   ksuid.New().String(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		InquiryType: input.InquiryType,
		Subject:     input.Subject,
		Message:     input.Message,
	}
	if err := s.db.WithContext(ctx).Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.logger.Info("contact inquiry received",
		zap.String("reference", contact.Reference),
		zap.String("inquiry_type", contact.InquiryType))
	return &contact, nil
}

// List returns inquiries matching filter, newest first.
func (s *ContactService) List(ctx context.Context, filter ContactFilter) ([]db.Contact, error) {
	query := s.db.WithContext(ctx).Model(&db.Contact{})
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(subject) LIKE ?)",
			pattern, pattern, pattern, pattern)
	}
	if inquiryType := strings.TrimSpace(filter.InquiryType); inquiryType != "" {
		query = query.Where("inquiry_type = ?", inquiryType)
	}
	if filter.IsRead != nil {
		query = query.Where("is_read = ?", *filter.IsRead)
	}
	if filter.IsResponded != nil {
		query = query.Where("is_responded = ?", *filter.IsResponded)
	}

	var contacts []db.Contact
	if err := query.Order("created_at desc, id desc").Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, id uint) (*db.Contact, error) {
	var contact db.Contact
	if err := s.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return &contact, nil
}

// MarkRead sets the read flag on every inquiry in ids and returns how many changed.
func (s *ContactService) MarkRead(ctx context.Context, ids []uint, read bool) (int64, error) {
	return s.setFlag(ctx, ids, "is_read", read)
}

// MarkResponded 同 MarkRead，作用于已回复标记。
func (s *ContactService) MarkResponded(ctx context.Context, ids []uint, responded bool) (int64, error) {
	return s.setFlag(ctx, ids, "is_responded", responded)
}

func (s *ContactService) setFlag(ctx context.Context, ids []uint, column string, value bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := s.db.WithContext(ctx).Model(&db.Contact{}).Where("id IN ?", ids).Update(column, value)
	if result.Error != nil {
		return 0, fmt.Errorf("update %s: %w", column, result.Error)
	}
	return result.RowsAffected, nil
}

// UpdateNotes replaces the internal notes of an inquiry.
func (s *ContactService) UpdateNotes(ctx context.Context, id uint, notes string) (*db.Contact, error) {
	contact, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	contact.Notes = strings.TrimSpace(notes)
	if err := s.db.WithContext(ctx).Model(contact).Update("notes", contact.Notes).Error; err != nil {
		return nil, fmt.Errorf("update notes: %w", err)
	}
	return contact, nil
}

// Delete soft-deletes the inquiry with id.
func (s *ContactService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&db.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UnreadCount 返回未读咨询数量，用于后台角标。
func (s *ContactService) UnreadCount(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&db.Contact{}).Where("is_read = ?", false).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count unread contacts: %w", err)
	}
	return count, nil
}

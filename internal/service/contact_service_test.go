package service

import (
	"context"
	"strings"
	"testing"

	"github.com/financeforward/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactInput() ContactInput {
	return ContactInput{
		FirstName:   "Ana",
		LastName:    "Lee",
		Email:       "ana@example.com",
		InquiryType: "consultation",
		Subject:     "Retirement",
		Message:     "Need help planning.",
	}
}

func TestContactServiceSubmitStoresUntriagedInquiry(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(setupServiceTestDB(t), nil)

	contact, err := svc.Submit(ctx, validContactInput())
	require.NoError(t, err)
	assert.NotZero(t, contact.ID)
	assert.NotEmpty(t, contact.Reference)
	assert.Equal(t, "Ana Lee", contact.FullName())
	assert.Equal(t, db.InquiryConsultation, contact.InquiryType)
	assert.False(t, contact.IsRead)
	assert.False(t, contact.IsResponded)
	assert.Empty(t, contact.Notes)

	stored, err := svc.Get(ctx, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.Reference, stored.Reference)
	assert.Equal(t, "Need help planning.", stored.Message)
}

func TestContactServiceSubmitDefaultsInquiryType(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(setupServiceTestDB(t), nil)

	input := validContactInput()
	input.InquiryType = ""
	input.FirstName = "  Ana  "

	contact, err := svc.Submit(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, db.InquiryGeneral, contact.InquiryType)
	assert.Equal(t, "Ana", contact.FirstName)
}

func TestContactServiceSubmitRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ContactInput)
		field  string
	}{
		{name: "missing email", mutate: func(in *ContactInput) { in.Email = "" }, field: "email"},
		{name: "malformed email", mutate: func(in *ContactInput) { in.Email = "ana-at-example" }, field: "email"},
		{name: "blank subject", mutate: func(in *ContactInput) { in.Subject = "   " }, field: "subject"},
		{name: "missing message", mutate: func(in *ContactInput) { in.Message = "" }, field: "message"},
		{name: "long first name", mutate: func(in *ContactInput) { in.FirstName = strings.Repeat("a", 51) }, field: "first_name"},
		{name: "long phone", mutate: func(in *ContactInput) { in.Phone = strings.Repeat("9", 21) }, field: "phone"},
		{name: "unknown inquiry type", mutate: func(in *ContactInput) { in.InquiryType = "sales" }, field: "inquiry_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb := setupServiceTestDB(t)
			svc := NewContactService(gdb, nil)

			input := validContactInput()
			tt.mutate(&input)

			_, err := svc.Submit(context.Background(), input)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.True(t, validationErr.Has(tt.field), "fields: %v", validationErr.Fields)
			assert.Zero(t, countRows(t, gdb, &db.Contact{}))
		})
	}
}

func TestContactServiceTriage(t *testing.T) {
	ctx := context.Background()
	svc := NewContactService(setupServiceTestDB(t), nil)

	first, err := svc.Submit(ctx, validContactInput())
	require.NoError(t, err)

	second := validContactInput()
	second.FirstName = "Ravi"
	second.Email = "ravi@example.com"
	second.InquiryType = "workshop"
	second.Subject = "Team session"
	other, err := svc.Submit(ctx, second)
	require.NoError(t, err)

	unread, err := svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	updated, err := svc.MarkRead(ctx, []uint{first.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	updated, err = svc.MarkResponded(ctx, []uint{first.ID, other.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	updated, err = svc.MarkRead(ctx, nil, true)
	require.NoError(t, err)
	assert.Zero(t, updated)

	unread, err = svc.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	isRead := true
	read, err := svc.List(ctx, ContactFilter{IsRead: &isRead})
	require.NoError(t, err)
	require.Len(t, read, 1)
	assert.Equal(t, first.ID, read[0].ID)

	workshops, err := svc.List(ctx, ContactFilter{InquiryType: "workshop"})
	require.NoError(t, err)
	require.Len(t, workshops, 1)
	assert.Equal(t, other.ID, workshops[0].ID)

	found, err := svc.List(ctx, ContactFilter{Search: "RAVI"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ravi@example.com", found[0].Email)

	all, err := svc.List(ctx, ContactFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, other.ID, all[0].ID, "newest inquiry first")

	noted, err := svc.UpdateNotes(ctx, first.ID, "  Called back on Monday.  ")
	require.NoError(t, err)
	assert.Equal(t, "Called back on Monday.", noted.Notes)

	stored, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Called back on Monday.", stored.Notes)
	assert.True(t, stored.IsRead)
	assert.True(t, stored.IsResponded)
	assert.Equal(t, first.Subject, stored.Subject)

	require.NoError(t, svc.Delete(ctx, other.ID))
	assert.ErrorIs(t, svc.Delete(ctx, other.ID), ErrNotFound)
	_, err = svc.Get(ctx, other.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

package db

import (
	"fmt"
	"strings"
)

// Service is an area of expertise listed on the home and services pages.
type Service struct {
	Model
	Title       string `gorm:"size:100;not null" json:"title" validate:"required,max=100"`
	Description string `gorm:"type:text;not null" json:"description" validate:"required"`
	Icon        string `gorm:"size:50" json:"icon" validate:"max=50"`
	Order       int    `gorm:"column:sort_order;default:0;index" json:"order" validate:"gte=0"`
	IsActive    bool   `json:"isActive"`
}

// Program is a paid coaching program.
type Program struct {
	Model
	Name        string   `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Description string   `gorm:"type:text;not null" json:"description" validate:"required"`
	Duration    string   `gorm:"size:50" json:"duration" validate:"max=50"`
	Price       *float64 `gorm:"type:decimal(10,2)" json:"price" validate:"omitnil,gte=0"`
	IsFeatured  bool     `json:"isFeatured"`
	Order       int      `gorm:"column:sort_order;default:0;index" json:"order" validate:"gte=0"`
	IsActive    bool     `json:"isActive"`
}

// PriceLabel formats the price for display; programs without a price read "On request".
func (p Program) PriceLabel() string {
	if p.Price == nil {
		return "On request"
	}
	return formatPrice(*p.Price)
}

// Workshop is a group session offered on the services page.
type Workshop struct {
	Model
	Title           string  `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Description     string  `gorm:"type:text;not null" json:"description" validate:"required"`
	KeyPoints       string  `gorm:"type:text" json:"keyPoints"`
	Duration        string  `gorm:"size:50;not null" json:"duration" validate:"required,max=50"`
	MaxParticipants *int    `json:"maxParticipants" validate:"omitnil,gt=0"`
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price" validate:"gte=0"`
	Order           int     `gorm:"column:sort_order;default:0;index" json:"order" validate:"gte=0"`
	IsActive        bool    `json:"isActive"`
}

// KeyPointList splits KeyPoints into one entry per non-blank line.
func (w Workshop) KeyPointList() []string {
	lines := strings.Split(w.KeyPoints, "\n")
	points := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			points = append(points, trimmed)
		}
	}
	return points
}

// PriceLabel formats the workshop price for display.
func (w Workshop) PriceLabel() string {
	return formatPrice(w.Price)
}

// DefaultTestimonialRating is the rating given to testimonials created without one.
const DefaultTestimonialRating = 5

// Testimonial is a client quote with a 1-5 star rating.
type Testimonial struct {
	Model
	Name       string `gorm:"size:100;not null" json:"name" validate:"required,max=100"`
	Position   string `gorm:"size:100" json:"position" validate:"max=100"`
	Company    string `gorm:"size:100" json:"company" validate:"max=100"`
	Content    string `gorm:"type:text;not null" json:"content" validate:"required"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Photo      string `gorm:"size:255" json:"photo"`
	IsFeatured bool   `json:"isFeatured"`
	IsActive   bool   `json:"isActive"`
}

// Stars returns a slice with one element per rating point, for templates.
func (t Testimonial) Stars() []struct{} {
	rating := t.Rating
	if rating < 0 {
		rating = 0
	}
	return make([]struct{}, rating)
}

func formatPrice(value float64) string {
	return fmt.Sprintf("%.2f", value)
}

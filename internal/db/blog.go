package db

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// BlogPost is an article in the knowledge hub.
type BlogPost struct {
	Model
	Title           string     `gorm:"size:200;not null" json:"title" validate:"required,max=200"`
	Slug            string     `gorm:"size:50;uniqueIndex;not null" json:"slug" validate:"required,max=50"`
	Content         string     `gorm:"type:text;not null" json:"content" validate:"required"`
	Excerpt         string     `gorm:"size:300" json:"excerpt" validate:"max=300"`
	FeaturedImage   string     `gorm:"size:255" json:"featuredImage"`
	AuthorID        uint       `gorm:"not null;index" json:"authorId"`
	Author          User       `json:"author"`
	IsPublished     bool       `gorm:"index" json:"isPublished"`
	IsFeatured      bool       `json:"isFeatured"`
	Tags            string     `gorm:"size:200" json:"tags" validate:"max=200"`
	MetaDescription string     `gorm:"size:160" json:"metaDescription" validate:"max=160"`
	PublishedAt     *time.Time `gorm:"index" json:"publishedAt"`
}

// BeforeSave stamps PublishedAt the first time the post is saved as published.
// Later saves keep the original timestamp, including after unpublishing.
func (p *BlogPost) BeforeSave(*gorm.DB) error {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

// TagList splits the comma separated tags.
func (p BlogPost) TagList() []string {
	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}

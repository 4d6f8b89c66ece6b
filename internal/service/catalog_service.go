package service

import (
	"context"
	"fmt"

	"github.com/financeforward/internal/db"
	"gorm.io/gorm"
)

// Display caps for testimonials.
const (
	HomeTestimonialLimit  = 3
	AboutTestimonialLimit = 6
)

// CatalogService lists services, programs, workshops and testimonials for the public
// pages and exposes admin collections for editing them.
type CatalogService struct {
	db *gorm.DB

	Services     *Collection[db.Service, *db.Service]
	Programs     *Collection[db.Program, *db.Program]
	Workshops    *Collection[db.Workshop, *db.Workshop]
	Testimonials *Collection[db.Testimonial, *db.Testimonial]
}

// NewCatalogService creates a CatalogService instance. New records start active,
// testimonials with a five star rating.
func NewCatalogService(gdb *gorm.DB) *CatalogService {
	s := &CatalogService{
		db: gdb,
		Services: NewCollection[db.Service](gdb, "sort_order, title",
			[]string{"title", "description"},
			map[string]string{"active": "is_active"}),
		Programs: NewCollection[db.Program](gdb, "sort_order, name",
			[]string{"name", "description"},
			map[string]string{"active": "is_active", "featured": "is_featured"}),
		Workshops: NewCollection[db.Workshop](gdb, "sort_order, title",
			[]string{"title", "description"},
			map[string]string{"active": "is_active"}),
		Testimonials: NewCollection[db.Testimonial](gdb, "created_at desc",
			[]string{"name", "company", "content"},
			map[string]string{"active": "is_active", "featured": "is_featured"}),
	}
	s.Services.newRecord = func() db.Service { return db.Service{IsActive: true} }
	s.Programs.newRecord = func() db.Program { return db.Program{IsActive: true} }
	s.Workshops.newRecord = func() db.Workshop { return db.Workshop{IsActive: true} }
	s.Testimonials.newRecord = func() db.Testimonial {
		return db.Testimonial{Rating: db.DefaultTestimonialRating, IsActive: true}
	}
	return s
}

// ActiveServices returns active services ordered by display order, then title.
func (s *CatalogService) ActiveServices(ctx context.Context) ([]db.Service, error) {
	var services []db.Service
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("sort_order, title").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}

// ActivePrograms returns active programs ordered by display order, then name.
func (s *CatalogService) ActivePrograms(ctx context.Context) ([]db.Program, error) {
	var programs []db.Program
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("sort_order, name").Find(&programs).Error; err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// ActiveWorkshops returns active workshops ordered by display order, then title.
func (s *CatalogService) ActiveWorkshops(ctx context.Context) ([]db.Workshop, error) {
	var workshops []db.Workshop
	if err := s.db.WithContext(ctx).Where("is_active = ?", true).Order("sort_order, title").Find(&workshops).Error; err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}
	return workshops, nil
}

// FeaturedTestimonials returns up to limit active, featured testimonials, newest first.
func (s *CatalogService) FeaturedTestimonials(ctx context.Context, limit int) ([]db.Testimonial, error) {
	return s.testimonials(ctx, limit, true)
}

// ActiveTestimonials returns up to limit active testimonials, newest first.
func (s *CatalogService) ActiveTestimonials(ctx context.Context, limit int) ([]db.Testimonial, error) {
	return s.testimonials(ctx, limit, false)
}

func (s *CatalogService) testimonials(ctx context.Context, limit int, featuredOnly bool) ([]db.Testimonial, error) {
	query := s.db.WithContext(ctx).Where("is_active = ?", true)
	if featuredOnly {
		query = query.Where("is_featured = ?", true)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var testimonials []db.Testimonial
	if err := query.Order("created_at desc, id desc").Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return testimonials, nil
}

package service

import (
	"context"

	"github.com/financeforward/internal/db"
)

// HomeContext is everything the landing page renders.
type HomeContext struct {
	Home         *db.HomePage
	Services     []db.Service
	Programs     []db.Program
	Testimonials []db.Testimonial
	LatestPosts  []db.BlogPost
}

// AboutContext is everything the My Story page renders.
type AboutContext struct {
	Story        *db.MyStory
	Testimonials []db.Testimonial
}

// ServicesContext is everything the services page renders.
type ServicesContext struct {
	Services  []db.Service
	Programs  []db.Program
	Workshops []db.Workshop
}

// InsightsContext is everything the insights page renders.
type InsightsContext struct {
	Insights    *db.InsightsPage
	LatestPosts []db.BlogPost
}

// BlogContext is one page of the blog listing plus the featured strip.
type BlogContext struct {
	Page     *PostPage
	Featured []db.BlogPost
}

// BlogDetailContext is a single post with its related posts.
type BlogDetailContext struct {
	Post    *db.BlogPost
	Related []db.BlogPost
}

// ContactContext is what the contact form needs besides the submitted values.
type ContactContext struct {
	InquiryTypes []InquiryType
}

// PageService assembles the data of each public page. Site settings are resolved
// separately by the rendering layer because every page needs them.
type PageService struct {
	content *ContentService
	catalog *CatalogService
	blog    *BlogService
}

// NewPageService creates a PageService instance.
func NewPageService(content *ContentService, catalog *CatalogService, blog *BlogService) *PageService {
	return &PageService{content: content, catalog: catalog, blog: blog}
}

// Home builds the landing page context.
func (s *PageService) Home(ctx context.Context) (*HomeContext, error) {
	home, err := s.content.HomePage(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.catalog.ActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	programs, err := s.catalog.ActivePrograms(ctx)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.catalog.FeaturedTestimonials(ctx, HomeTestimonialLimit)
	if err != nil {
		return nil, err
	}
	posts, err := s.blog.Latest(ctx, HomePostLimit)
	if err != nil {
		return nil, err
	}

	return &HomeContext{
		Home:         home,
		Services:     services,
		Programs:     programs,
		Testimonials: testimonials,
		LatestPosts:  posts,
	}, nil
}

func (s *PageService) About(ctx context.Context) (*AboutContext, error) {
	story, err := s.content.MyStory(ctx)
	if err != nil {
		return nil, err
	}
	testimonials, err := s.catalog.ActiveTestimonials(ctx, AboutTestimonialLimit)
	if err != nil {
		return nil, err
	}
	return &AboutContext{Story: story, Testimonials: testimonials}, nil
}

func (s *PageService) Services(ctx context.Context) (*ServicesContext, error) {
	services, err := s.catalog.ActiveServices(ctx)
	if err != nil {
		return nil, err
	}
	programs, err := s.catalog.ActivePrograms(ctx)
	if err != nil {
		return nil, err
	}
	workshops, err := s.catalog.ActiveWorkshops(ctx)
	if err != nil {
		return nil, err
	}
	return &ServicesContext{Services: services, Programs: programs, Workshops: workshops}, nil
}

func (s *PageService) Insights(ctx context.Context) (*InsightsContext, error) {
	insights, err := s.content.InsightsPage(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := s.blog.Latest(ctx, InsightsPostLimit)
	if err != nil {
		return nil, err
	}
	return &InsightsContext{Insights: insights, LatestPosts: posts}, nil
}

// Blog builds the blog listing for the raw page query parameter.
func (s *PageService) Blog(ctx context.Context, rawPage string) (*BlogContext, error) {
	page, err := s.blog.Page(ctx, rawPage)
	if err != nil {
		return nil, err
	}
	featured, err := s.blog.Featured(ctx, FeaturedPostLimit)
	if err != nil {
		return nil, err
	}
	return &BlogContext{Page: page, Featured: featured}, nil
}

// BlogDetail builds the context of a published post. Unknown or unpublished slugs yield ErrNotFound.
func (s *PageService) BlogDetail(ctx context.Context, slug string) (*BlogDetailContext, error) {
	post, err := s.blog.GetPublished(ctx, slug)
	if err != nil {
		return nil, err
	}
	related, err := s.blog.Related(ctx, post, RelatedPostLimit)
	if err != nil {
		return nil, err
	}
	return &BlogDetailContext{Post: post, Related: related}, nil
}

func (s *PageService) Contact(context.Context) (*ContactContext, error) {
	return &ContactContext{InquiryTypes: InquiryTypes}, nil
}

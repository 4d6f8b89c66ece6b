package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/financeforward/internal/db"
	"gorm.io/gorm"
)

// Display caps and page size of the knowledge hub.
const (
	HomePostLimit     = 3
	InsightsPostLimit = 4
	FeaturedPostLimit = 3
	RelatedPostLimit  = 3
	BlogPageSize      = 6
)

// PostPage is one page of the public blog listing.
type PostPage struct {
	Posts    []db.BlogPost
	Number   int
	NumPages int
	Total    int64
}

// HasPrevious reports whether a page precedes this one.
func (p PostPage) HasPrevious() bool { return p.Number > 1 }

// HasNext reports whether a page follows this one.
func (p PostPage) HasNext() bool { return p.Number < p.NumPages }

// PreviousNumber returns the number of the preceding page.
func (p PostPage) PreviousNumber() int { return p.Number - 1 }

// NextNumber returns the number of the following page.
func (p PostPage) NextNumber() int { return p.Number + 1 }

// BlogService serves published posts to the public pages and edits posts for the admin API.
type BlogService struct {
	db    *gorm.DB
	Posts *Collection[db.BlogPost, *db.BlogPost]
}

// NewBlogService creates a BlogService instance.
func NewBlogService(gdb *gorm.DB) *BlogService {
	posts := NewCollection[db.BlogPost](gdb, "created_at desc, id desc",
		[]string{"title", "content", "tags"},
		map[string]string{"published": "is_published", "featured": "is_featured"})
	posts.conflict = ErrSlugTaken
	posts.prepare = preparePost
	return &BlogService{db: gdb, Posts: posts}
}

// Create saves a new post. When the post has no author, authorID is recorded.
func (s *BlogService) Create(ctx context.Context, post *db.BlogPost, authorID uint) error {
	if post.AuthorID == 0 {
		post.AuthorID = authorID
	}
	return s.Posts.Create(ctx, post)
}

// Latest returns up to limit published posts, most recently created first.
func (s *BlogService) Latest(ctx context.Context, limit int) ([]db.BlogPost, error) {
	var posts []db.BlogPost
	query := s.published(ctx).Order("created_at desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list latest posts: %w", err)
	}
	return posts, nil
}

// Featured returns up to limit published, featured posts, most recently created first.
func (s *BlogService) Featured(ctx context.Context, limit int) ([]db.BlogPost, error) {
	var posts []db.BlogPost
	query := s.published(ctx).Where("is_featured = ?", true).Order("created_at desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list featured posts: %w", err)
	}
	return posts, nil
}

// Page returns one page of published posts ordered by publish time. rawNumber is the
// page query parameter: values that are not numbers or below 1 select the first page,
// values past the end select the last page.
func (s *BlogService) Page(ctx context.Context, rawNumber string) (*PostPage, error) {
	result := &PostPage{}
	if err := s.db.WithContext(ctx).Model(&db.BlogPost{}).Where("is_published = ?", true).Count(&result.Total).Error; err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	result.NumPages = 1
	if result.Total > 0 {
		result.NumPages = int((result.Total + BlogPageSize - 1) / BlogPageSize)
	}
	result.Number = normalizePageNumber(rawNumber, result.NumPages)

	offset := (result.Number - 1) * BlogPageSize
	if err := s.published(ctx).
		Order("published_at desc, id desc").
		Limit(BlogPageSize).
		Offset(offset).
		Find(&result.Posts).Error; err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return result, nil
}

func normalizePageNumber(raw string, numPages int) int {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || number < 1 {
		return 1
	}
	if number > numPages {
		return numPages
	}
	return number
}

// GetPublished returns the published post with slug. Unknown and unpublished slugs
// both yield ErrNotFound.
func (s *BlogService) GetPublished(ctx context.Context, slug string) (*db.BlogPost, error) {
	var post db.BlogPost
	if err := s.published(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post: %w", err)
	}
	return &post, nil
}

// Related returns up to limit other published posts, newest first.
func (s *BlogService) Related(ctx context.Context, post *db.BlogPost, limit int) ([]db.BlogPost, error) {
	var posts []db.BlogPost
	query := s.published(ctx).Where("id <> ?", post.ID).Order("created_at desc, id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list related posts: %w", err)
	}
	return posts, nil
}

func (s *BlogService) published(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Author").Where("is_published = ?", true)
}

// preparePost derives a slug from the title when none is given and rejects slugs
// already used by another post, including soft-deleted ones.
func preparePost(ctx context.Context, tx *gorm.DB, post *db.BlogPost) error {
	post.Title = strings.TrimSpace(post.Title)
	post.Slug = strings.TrimSpace(post.Slug)
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.Slug == "" {
		return nil
	}

	var count int64
	if err := tx.Session(&gorm.Session{NewDB: true}).Unscoped().Model(&db.BlogPost{}).
		Where("slug = ? AND id <> ?", post.Slug, post.ID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if count > 0 {
		return ErrSlugTaken
	}
	return nil
}

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/financeforward/internal/db"
	"github.com/financeforward/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Names of the singleton content variants as used by the admin API and sitectl.
const (
	VariantSiteSettings = "site-settings"
	VariantHomePage     = "home"
	VariantMyStory      = "my-story"
	VariantInsightsPage = "insights"
)

// Decoder fills a record from an external payload, e.g. gin's ShouldBindJSON.
type Decoder func(target interface{}) error

// ContentService reads and edits the singleton page content. Every read goes to the
// database; nothing is cached between calls.
type ContentService struct {
	db       *gorm.DB
	logger   *zap.Logger
	variants map[string]contentVariant
}

// contentVariant binds a variant name to the typed singleton helpers of its model.
type contentVariant struct {
	get    func(ctx context.Context, gdb *gorm.DB) (interface{}, bool, error)
	create func(ctx context.Context, gdb *gorm.DB, decode Decoder) (interface{}, error)
	update func(ctx context.Context, gdb *gorm.DB, decode Decoder) (interface{}, error)
	count  func(ctx context.Context, gdb *gorm.DB) (int64, error)
	remove func(ctx context.Context, gdb *gorm.DB) (int64, error)
}

func newVariant[T any, PT singletonRecord[T]](seed func() T) contentVariant {
	return contentVariant{
		get: func(ctx context.Context, gdb *gorm.DB) (interface{}, bool, error) {
			return getOrCreateSingleton[T, PT](ctx, gdb, seed)
		},
		create: func(ctx context.Context, gdb *gorm.DB, decode Decoder) (interface{}, error) {
			record := seed()
			if decode != nil {
				if err := decode(&record); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
				}
			}
			if err := createSingleton[T, PT](ctx, gdb, &record); err != nil {
				return nil, err
			}
			return &record, nil
		},
		update: func(ctx context.Context, gdb *gorm.DB, decode Decoder) (interface{}, error) {
			record, _, err := getOrCreateSingleton[T, PT](ctx, gdb, seed)
			if err != nil {
				return nil, err
			}
			if decode != nil {
				if err := decode(record); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
				}
			}
			if err := saveSingleton[T, PT](ctx, gdb, record); err != nil {
				return nil, err
			}
			return record, nil
		},
		count: countSingleton[T],
		remove: deleteExtraSingletons[T],
	}
}

// NewContentService returns a ContentService backed by gdb. A nil logger disables logging.
func NewContentService(gdb *gorm.DB, logger *zap.Logger) *ContentService {
	return &ContentService{
		db:     gdb,
		logger: logging.OrNop(logger),
		variants: map[string]contentVariant{
			VariantSiteSettings: newVariant[db.SiteSettings](db.DefaultSiteSettings),
			VariantHomePage:     newVariant[db.HomePage](db.DefaultHomePage),
			VariantMyStory:      newVariant[db.MyStory](db.DefaultMyStory),
			VariantInsightsPage: newVariant[db.InsightsPage](db.DefaultInsightsPage),
		},
	}
}

// Variants returns the registered variant names in sorted order.
func (s *ContentService) Variants() []string {
	names := make([]string, 0, len(s.variants))
	for name := range s.variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SiteSettings returns the site-wide settings, creating them with defaults on first use.
func (s *ContentService) SiteSettings(ctx context.Context) (*db.SiteSettings, error) {
	return loadVariant[db.SiteSettings](ctx, s, VariantSiteSettings)
}

func (s *ContentService) HomePage(ctx context.Context) (*db.HomePage, error) {
	return loadVariant[db.HomePage](ctx, s, VariantHomePage)
}

func (s *ContentService) MyStory(ctx context.Context) (*db.MyStory, error) {
	return loadVariant[db.MyStory](ctx, s, VariantMyStory)
}

func (s *ContentService) InsightsPage(ctx context.Context) (*db.InsightsPage, error) {
	return loadVariant[db.InsightsPage](ctx, s, VariantInsightsPage)
}

func loadVariant[T any](ctx context.Context, s *ContentService, name string) (*T, error) {
	record, _, err := s.getOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}
	typed, ok := record.(*T)
	if !ok {
		return nil, fmt.Errorf("content variant %s has unexpected type %T", name, record)
	}
	return typed, nil
}

// Get returns the record of the named variant, creating it with defaults when absent.
func (s *ContentService) Get(ctx context.Context, name string) (interface{}, error) {
	record, _, err := s.getOrCreate(ctx, name)
	return record, err
}

// Ensure materialises the named variant and reports whether this call created it.
func (s *ContentService) Ensure(ctx context.Context, name string) (bool, error) {
	_, created, err := s.getOrCreate(ctx, name)
	return created, err
}

func (s *ContentService) getOrCreate(ctx context.Context, name string) (interface{}, bool, error) {
	variant, ok := s.variants[name]
	if !ok {
		return nil, false, ErrUnknownVariant
	}
	record, created, err := variant.get(ctx, s.db)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", name, err)
	}
	if created {
		s.logger.Info("content created with defaults", zap.String("variant", name))
	}
	return record, created, nil
}

// Create inserts the named variant explicitly. Fields not set by decode keep their
// default values. It fails with ErrUniquenessViolation when the record already exists.
func (s *ContentService) Create(ctx context.Context, name string, decode Decoder) (interface{}, error) {
	variant, ok := s.variants[name]
	if !ok {
		return nil, ErrUnknownVariant
	}
	record, err := variant.create(ctx, s.db, decode)
	if err != nil {
		return nil, err
	}
	s.logger.Info("content created", zap.String("variant", name))
	return record, nil
}

// Update applies decode to the current record of the named variant and saves it.
func (s *ContentService) Update(ctx context.Context, name string, decode Decoder) (interface{}, error) {
	variant, ok := s.variants[name]
	if !ok {
		return nil, ErrUnknownVariant
	}
	record, err := variant.update(ctx, s.db, decode)
	if err != nil {
		return nil, err
	}
	s.logger.Info("content updated", zap.String("variant", name))
	return record, nil
}

// Count 返回该内容类型当前的行数。
func (s *ContentService) Count(ctx context.Context, name string) (int64, error) {
	variant, ok := s.variants[name]
	if !ok {
		return 0, ErrUnknownVariant
	}
	return variant.count(ctx, s.db)
}

// Delete removes surplus rows of the named variant. It returns ErrSingletonDeleteRefused
// unless at least two rows exist, and never removes the canonical row.
func (s *ContentService) Delete(ctx context.Context, name string) (int64, error) {
	variant, ok := s.variants[name]
	if !ok {
		return 0, ErrUnknownVariant
	}
	removed, err := variant.remove(ctx, s.db)
	if err != nil {
		return 0, err
	}
	s.logger.Warn("surplus content rows removed", zap.String("variant", name), zap.Int64("rows", removed))
	return removed, nil
}

package service

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/financeforward/internal/db"
	"github.com/financeforward/internal/logging"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed expertise.yaml
var defaultExpertise []byte

// ExpertiseFile is the YAML document read by PopulateExpertise.
type ExpertiseFile struct {
	Services []ExpertiseService `yaml:"services"`
	Programs []ExpertiseProgram `yaml:"programs"`
}

// ExpertiseService is one service entry, matched by title.
type ExpertiseService struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Order       int    `yaml:"order"`
}

// ExpertiseProgram is one program entry, matched by name.
type ExpertiseProgram struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Duration    string   `yaml:"duration"`
	Price       *float64 `yaml:"price"`
	Featured    bool     `yaml:"featured"`
	Order       int      `yaml:"order"`
}

// SeedResult records what a seeding step did to one record.
type SeedResult struct {
	Kind    string
	Name    string
	Created bool
}

// SeedService fills an empty site with starter content.
type SeedService struct {
	db      *gorm.DB
	content *ContentService
	logger  *zap.Logger
}

// NewSeedService creates a SeedService. A nil logger disables logging.
func NewSeedService(gdb *gorm.DB, content *ContentService, logger *zap.Logger) *SeedService {
	return &SeedService{db: gdb, content: content, logger: logging.OrNop(logger)}
}

// InitContent materialises every singleton variant with its defaults. Existing records
// are left untouched and reported with Created false.
func (s *SeedService) InitContent(ctx context.Context) ([]SeedResult, error) {
	names := []string{VariantSiteSettings, VariantHomePage, VariantMyStory, VariantInsightsPage}
	results := make([]SeedResult, 0, len(names))
	for _, name := range names {
		created, err := s.content.Ensure(ctx, name)
		if err != nil {
			return results, err
		}
		results = append(results, SeedResult{Kind: "content", Name: name, Created: created})
	}
	return results, nil
}

// LoadExpertise parses the expertise file at path, or the built-in one when path is empty.
func LoadExpertise(path string) (*ExpertiseFile, error) {
	raw := defaultExpertise
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read expertise file: %w", err)
		}
		raw = data
	}

	var file ExpertiseFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse expertise file: %w", err)
	}
	return &file, nil
}

// PopulateExpertise creates or updates services by title and programs by name.
// New records are active; updates leave the active flag alone.
func (s *SeedService) PopulateExpertise(ctx context.Context, file *ExpertiseFile) ([]SeedResult, error) {
	if file == nil {
		return nil, errors.New("expertise file is required")
	}

	var results []SeedResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range file.Services {
			created, err := upsertService(tx, entry)
			if err != nil {
				return err
			}
			results = append(results, SeedResult{Kind: "service", Name: entry.Title, Created: created})
		}
		for _, entry := range file.Programs {
			created, err := upsertProgram(tx, entry)
			if err != nil {
				return err
			}
			results = append(results, SeedResult{Kind: "program", Name: entry.Name, Created: created})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("expertise populated", zap.Int("records", len(results)))
	return results, nil
}

func upsertService(tx *gorm.DB, entry ExpertiseService) (bool, error) {
	var service db.Service
	err := tx.Where("title = ?", entry.Title).First(&service).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return false, fmt.Errorf("find service %q: %w", entry.Title, err)
	}
	if created {
		service = db.Service{Title: entry.Title, IsActive: true}
	}
	service.Description = entry.Description
	service.Icon = entry.Icon
	service.Order = entry.Order

	if err := validateStruct(&service); err != nil {
		return false, fmt.Errorf("service %q: %w", entry.Title, err)
	}
	if err := tx.Save(&service).Error; err != nil {
		return false, fmt.Errorf("save service %q: %w", entry.Title, err)
	}
	return created, nil
}

func upsertProgram(tx *gorm.DB, entry ExpertiseProgram) (bool, error) {
	var program db.Program
	err := tx.Where("name = ?", entry.Name).First(&program).Error
	created := errors.Is(err, gorm.ErrRecordNotFound)
	if err != nil && !created {
		return false, fmt.Errorf("find program %q: %w", entry.Name, err)
	}
	if created {
		program = db.Program{Name: entry.Name, IsActive: true}
	}
	program.Description = entry.Description
	program.Duration = entry.Duration
	program.Price = entry.Price
	program.IsFeatured = entry.Featured
	program.Order = entry.Order

	if err := validateStruct(&program); err != nil {
		return false, fmt.Errorf("program %q: %w", entry.Name, err)
	}
	if err := tx.Save(&program).Error; err != nil {
		return false, fmt.Errorf("save program %q: %w", entry.Name, err)
	}
	return created, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/financeforward/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// singletonRecord is satisfied by pointers to models embedding db.SingletonModel.
type singletonRecord[T any] interface {
	*T
	PinSingleton()
}

// getOrCreateSingleton returns the canonical row, inserting seed when none exists.
// The insert is an INSERT .. ON CONFLICT DO NOTHING on the pinned key, so racing
// first readers all end up reading the same row. created reports whether this call inserted it.
func getOrCreateSingleton[T any, PT singletonRecord[T]](ctx context.Context, gdb *gorm.DB, seed func() T) (record *T, created bool, err error) {
	var existing T
	err = gdb.WithContext(ctx).First(PT(&existing), db.SingletonID).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("load content: %w", err)
	}

	fresh := seed()
	PT(&fresh).PinSingleton()
	result := gdb.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
		Create(PT(&fresh))
	if result.Error != nil {
		return nil, false, fmt.Errorf("seed content: %w", result.Error)
	}

	var stored T
	if err := gdb.WithContext(ctx).First(PT(&stored), db.SingletonID).Error; err != nil {
		return nil, false, fmt.Errorf("reload content: %w", err)
	}
	return &stored, result.RowsAffected > 0, nil
}

// createSingleton inserts record as the canonical row. It fails with
// ErrUniquenessViolation when the row already exists.
func createSingleton[T any, PT singletonRecord[T]](ctx context.Context, gdb *gorm.DB, record *T) error {
	PT(record).PinSingleton()
	if err := gdb.WithContext(ctx).Create(PT(record)).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return ErrUniquenessViolation
		}
		return fmt.Errorf("create content: %w", err)
	}
	return nil
}

// saveSingleton 将记录的全部列写回主键为 1 的那一行。
func saveSingleton[T any, PT singletonRecord[T]](ctx context.Context, gdb *gorm.DB, record *T) error {
	PT(record).PinSingleton()
	if err := gdb.WithContext(ctx).Save(PT(record)).Error; err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// countSingleton returns how many rows the variant table holds. Anything other than
// 0 or 1 means the table was written to outside this package.
func countSingleton[T any](ctx context.Context, gdb *gorm.DB) (int64, error) {
	var count int64
	if err := gdb.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count content: %w", err)
	}
	return count, nil
}

// deleteExtraSingletons removes every row except the canonical one. It refuses unless
// more than one row exists, so the canonical record is never deleted.
func deleteExtraSingletons[T any](ctx context.Context, gdb *gorm.DB) (int64, error) {
	count, err := countSingleton[T](ctx, gdb)
	if err != nil {
		return 0, err
	}
	if count < 2 {
		return 0, ErrSingletonDeleteRefused
	}

	result := gdb.WithContext(ctx).Where("id <> ?", db.SingletonID).Delete(new(T))
	if result.Error != nil {
		return 0, fmt.Errorf("delete content: %w", result.Error)
	}
	return result.RowsAffected, nil
}

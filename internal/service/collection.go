package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/financeforward/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListRecord is satisfied by pointers to models embedding db.Model.
type ListRecord[T any] interface {
	*T
	Base() *db.Model
}

// ListFilter narrows an admin listing. Flags are keyed by the names a collection
// declares (for example "active" or "featured").
type ListFilter struct {
	Search string
	Flags  map[string]bool
}

// Collection implements admin CRUD for one listable model.
type Collection[T any, PT ListRecord[T]] struct {
	db            *gorm.DB
	order         string
	searchColumns []string
	flagColumns   map[string]string
	conflict      error
	prepare       func(ctx context.Context, tx *gorm.DB, record *T) error
	newRecord     func() T
}

// NewCollection returns a collection ordered by order, searchable over searchColumns.
// flagColumns maps filter names to boolean columns.
func NewCollection[T any, PT ListRecord[T]](gdb *gorm.DB, order string, searchColumns []string, flagColumns map[string]string) *Collection[T, PT] {
	return &Collection[T, PT]{
		db:            gdb,
		order:         order,
		searchColumns: searchColumns,
		flagColumns:   flagColumns,
		conflict:      ErrUniquenessViolation,
	}
}

// Flags 返回 List 支持的过滤名。
func (c *Collection[T, PT]) Flags() []string {
	names := make([]string, 0, len(c.flagColumns))
	for name := range c.flagColumns {
		names = append(names, name)
	}
	return names
}

// New returns a record carrying the collection's field defaults, ready to decode a
// create payload into.
func (c *Collection[T, PT]) New() *T {
	var record T
	if c.newRecord != nil {
		record = c.newRecord()
	}
	return &record
}

// List returns the records matching filter in display order.
func (c *Collection[T, PT]) List(ctx context.Context, filter ListFilter) ([]T, error) {
	query := c.db.WithContext(ctx).Model(new(T))

	if search := strings.TrimSpace(filter.Search); search != "" && len(c.searchColumns) > 0 {
		pattern := "%" + strings.ToLower(search) + "%"
		clauses := make([]string, len(c.searchColumns))
		args := make([]interface{}, len(c.searchColumns))
		for i, column := range c.searchColumns {
			clauses[i] = fmt.Sprintf("LOWER(%s) LIKE ?", column)
			args[i] = pattern
		}
		query = query.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	for name, value := range filter.Flags {
		column, ok := c.flagColumns[name]
		if !ok {
			return nil, &ValidationError{Fields: map[string]string{name: "Unknown filter."}}
		}
		query = query.Where(column+" = ?", value)
	}

	var records []T
	if err := query.Order(c.order).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// Get returns the record with id or ErrNotFound.
func (c *Collection[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := c.db.WithContext(ctx).First(PT(&record), id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &record, nil
}

// Create validates and inserts record. Keys and timestamps supplied by the caller are discarded.
func (c *Collection[T, PT]) Create(ctx context.Context, record *T) error {
	*PT(record).Base() = db.Model{}
	return c.write(ctx, record, func(tx *gorm.DB) error {
		return tx.Create(PT(record)).Error
	})
}

// Update loads the record with id, applies decode and saves every column.
func (c *Collection[T, PT]) Update(ctx context.Context, id uint, decode Decoder) (*T, error) {
	record, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	base := *PT(record).Base()
	if decode != nil {
		if err := decode(record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	*PT(record).Base() = base

	if err := c.write(ctx, record, func(tx *gorm.DB) error {
		return tx.Save(PT(record)).Error
	}); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete soft-deletes the record with id.
func (c *Collection[T, PT]) Delete(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(new(T), id)
	if result.Error != nil {
		return fmt.Errorf("delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Collection[T, PT]) write(ctx context.Context, record *T, persist func(tx *gorm.DB) error) error {
	tx := c.db.WithContext(ctx)
	if c.prepare != nil {
		if err := c.prepare(ctx, tx, record); err != nil {
			return err
		}
	}
	if err := validateStruct(record); err != nil {
		return err
	}
	if err := persist(tx.Omit(clause.Associations)); err != nil {
		if db.IsUniqueViolation(err) {
			return c.conflict
		}
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

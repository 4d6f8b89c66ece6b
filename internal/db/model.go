package db

import (
	"time"

	"gorm.io/gorm"
)

// Model mirrors gorm.Model with JSON names used by the admin API.
type Model struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Base exposes the embedded model so generic code can protect keys and timestamps.
func (m *Model) Base() *Model {
	return m
}

// SingletonID is the only primary key a singleton content row may carry.
const SingletonID uint = 1

// SingletonModel is embedded by page-content records of which at most one may exist.
// The primary key is pinned to SingletonID on every insert, so the primary key
// constraint rejects a second row regardless of the caller.
type SingletonModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PinSingleton forces the record onto the canonical key.
func (m *SingletonModel) PinSingleton() {
	m.ID = SingletonID
}

// BeforeCreate 为未经过 PinSingleton 的插入固定主键。
func (m *SingletonModel) BeforeCreate(*gorm.DB) error {
	m.ID = SingletonID
	return nil
}

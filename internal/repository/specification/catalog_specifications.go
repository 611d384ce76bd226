package specification

import (
	"time"

	"gorm.io/gorm"
)

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

// NameContains does a case-insensitive substring match on the name column.
// LIKE is case-insensitive for ASCII in sqlite; LOWER keeps postgres in line.
type NameContains struct {
	Query string
}

func (s NameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(name) LIKE ?", "%"+s.Query+"%")
}

type InStock struct{}

func (s InStock) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("stock > 0")
}

type ByEventType struct {
	EventType string
}

func (s ByEventType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("event_type = ?", s.EventType)
}

type Since struct {
	After time.Time
}

func (s Since) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("created_at > ?", s.After)
}

package models

import (
	"time"
)

// CatalogOption is a row of the catalog_options table. Bases and toppings
// share the table and are told apart by Kind.
type CatalogOption struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Kind      string    `gorm:"not null;uniqueIndex:idx_catalog_kind_option" json:"kind"`
	OptionID  string    `gorm:"not null;uniqueIndex:idx_catalog_kind_option" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Style     string    `json:"style"`
	Position  int       `gorm:"not null" json:"position"`
	IsDefault bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (CatalogOption) TableName() string {
	return "catalog_options"
}

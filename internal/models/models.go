// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"time"
)

const (
	// LowStockThreshold is the inclusive stock level at or below which a flower counts as low stock.
	LowStockThreshold = 10

	// DefaultTypeColor is the badge color given to flower types created without one.
	DefaultTypeColor = "#f5f5f5"

	// AllTypes is the type filter value the frontend sends to mean "no type filter".
	AllTypes = "Tất cả"

	// DefaultPageLimit is the page size used when a list request does not set one.
	DefaultPageLimit = 100
)

// Info represents general information about the service.
type Info struct {
	Message        string    `json:"message"`
	Version        string    `json:"version"`
	StoreConnected bool      `json:"store_connected"`
	UptimeSince    time.Time `json:"uptime_since"`
}

// Flower is a single catalog record.
type Flower struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Type      string    `json:"type"`
	Unit      string    `json:"unit"`
	Stock     int64     `json:"stock"`
	Tags      string    `json:"tags"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// FlowerPatch is a partial update. A nil field is left unchanged, a non-nil field replaces the stored value.
type FlowerPatch struct {
	Name     *string `json:"name,omitempty"`
	Price    *int64  `json:"price,omitempty"`
	Type     *string `json:"type,omitempty"`
	Unit     *string `json:"unit,omitempty"`
	Stock    *int64  `json:"stock,omitempty"`
	Tags     *string `json:"tags,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p FlowerPatch) IsEmpty() bool {
	return p.Name == nil && p.Price == nil && p.Type == nil && p.Unit == nil &&
		p.Stock == nil && p.Tags == nil && p.ImageURL == nil
}

// FlowerFilter selects a page of the catalog.
type FlowerFilter struct {
	Search   string // case-insensitive substring of name
	Type     string // exact type; empty means any
	Tags     string // case-insensitive substring of tags
	LowStock bool
	Skip     int
	Limit    int
}

// FlowerType is a reference entry for the type dropdown.
type FlowerType struct {
	Name  string `json:"name" toml:"name"`
	Color string `json:"color" toml:"color"`
}

// UnitType is a reference entry for the unit dropdown.
type UnitType struct {
	Name string `json:"name" toml:"name"`
}

// Stats holds catalog aggregates.
type Stats struct {
	TotalFlowers  int   `json:"total_flowers"`
	TotalTypes    int   `json:"total_types"`
	TotalValue    int64 `json:"total_value"`
	LowStockCount int   `json:"low_stock_count"`
}

// FlowerList is the response body of the list endpoint. Count is the page length.
type FlowerList struct {
	Flowers []Flower `json:"flowers"`
	Count   int      `json:"count"`
}

// FlowerResponse wraps a single flower with a status message.
type FlowerResponse struct {
	Message string  `json:"message"`
	Flower  *Flower `json:"flower"`
}

// FlowerTypeList is the response body of the flower type endpoint.
type FlowerTypeList struct {
	Types []FlowerType `json:"types"`
}

// UnitTypeList is the response body of the unit type endpoint.
type UnitTypeList struct {
	Units []UnitType `json:"units"`
}

// OrphanReport summarizes an orphaned image sweep.
type OrphanReport struct {
	Scanned  int      `json:"scanned"`
	Orphaned []string `json:"orphaned"`
	Removed  int      `json:"removed"`
	DryRun   bool     `json:"dry_run"`
}

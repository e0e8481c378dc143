// Package model defines the value types shared across the receipt pipeline.
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// StorageSection is the destination a product is expected to be stored in
// after purchase.
type StorageSection string

const (
	// SectionFridge covers chilled goods.
	SectionFridge StorageSection = "fridge"
	// SectionFreezer covers frozen goods.
	SectionFreezer StorageSection = "freezer"
	// SectionPantry covers shelf-stable goods.
	SectionPantry StorageSection = "pantry"
	// SectionUnclassified covers non-food entries like deposits and bags.
	SectionUnclassified StorageSection = "unclassified"
)

// ValidSections lists every storage section in display order.
var ValidSections = []StorageSection{SectionFridge, SectionFreezer, SectionPantry, SectionUnclassified}

// IsValid reports whether s is a known storage section.
func (s StorageSection) IsValid() bool {
	switch s {
	case SectionFridge, SectionFreezer, SectionPantry, SectionUnclassified:
		return true
	}
	return false
}

// LineItem is one purchased product extracted from a receipt.
type LineItem struct {
	ID      string
	RawLine string // The OCR line(s) the item was extracted from
	Name    string // Cleaned display name
	Price   float64
	Section StorageSection
}

// NewLineItem creates a line item with a fresh identity.
func NewLineItem(rawLine, name string, price float64) LineItem {
	return LineItem{
		ID:      uuid.NewString(),
		RawLine: rawLine,
		Name:    name,
		Price:   RoundCents(price),
	}
}

// Receipt is the structured result of interpreting one scanned purchase
// document.
type Receipt struct {
	Date      time.Time
	ID        string
	StoreName string // Empty when no store was identified
	Items     []LineItem
	Total     float64
}

// NewReceipt creates a receipt with a fresh identity. When total is zero and
// items exist, the total falls back to the item sum so it is never left
// undefined.
func NewReceipt(storeName string, date time.Time, items []LineItem, total float64) *Receipt {
	r := &Receipt{
		ID:        uuid.NewString(),
		StoreName: storeName,
		Date:      date,
		Items:     items,
		Total:     RoundCents(total),
	}
	if r.Total == 0 && len(items) > 0 {
		r.Total = r.ItemSum()
	}
	return r
}

// ItemSum returns the sum of all line item prices, rounded to cents.
func (r *Receipt) ItemSum() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.Price
	}
	return RoundCents(sum)
}

// RoundCents rounds a currency amount to two-decimal semantics.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

package domain

import (
	"encoding/json"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// ItemStatus is the availability of a catalog item
type ItemStatus string

const (
	StatusAvailable ItemStatus = "available"
	StatusReserved  ItemStatus = "reserved"
	StatusSold      ItemStatus = "sold"
)

// Item is a single jewellery piece as returned by the inventory API.
// The storefront never mutates items; they are replaced wholesale on each fetch.
type Item struct {
	ID          string     `json:"id"`
	ItemCode    string     `json:"item_code"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Price       int64      `json:"price"`  // cents
	Weight      float64    `json:"weight"` // grams
	Material    string     `json:"material"`
	Images      []string   `json:"images"`
	Status      ItemStatus `json:"status"`
	CreatedAt   Timestamp  `json:"created_at"`
	UpdatedAt   Timestamp  `json:"updated_at"`
}

// PrimaryImage returns the first image URL, or "" if the item has none
func (i Item) PrimaryImage() string {
	if len(i.Images) == 0 {
		return ""
	}
	return i.Images[0]
}

// DisplayPrice formats the price in minor units as dollars
func (i Item) DisplayPrice() string {
	return FormatPrice(i.Price)
}

// FormatPrice renders cents as "$123.45"
func FormatPrice(cents int64) string {
	d := decimal.New(cents, -2)
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// ItemsPage is the envelope returned by the item listing endpoint
type ItemsPage struct {
	Items   []Item `json:"items"`
	Page    int    `json:"page"`
	Total   int    `json:"total"`
	HasMore bool   `json:"has_more"`
}

// FilterField names one filter dimension
type FilterField string

const (
	FilterCategory FilterField = "category"
	FilterMaterial FilterField = "material"
	FilterSearch   FilterField = "search"
)

// FilterFields lists the dimensions in query order
var FilterFields = []FilterField{FilterCategory, FilterMaterial, FilterSearch}

// FilterState is an immutable snapshot of the storefront filters.
// An empty dimension places no constraint on the listing.
type FilterState struct {
	Category string
	Material string
	Search   string
}

// SetFilter returns a copy of f with one field replaced. Values are not
// validated; unknown fields leave the snapshot unchanged.
func (f FilterState) SetFilter(field FilterField, value string) FilterState {
	switch field {
	case FilterCategory:
		f.Category = value
	case FilterMaterial:
		f.Material = value
	case FilterSearch:
		f.Search = value
	}
	return f
}

// Get returns the value of one dimension
func (f FilterState) Get(field FilterField) string {
	switch field {
	case FilterCategory:
		return f.Category
	case FilterMaterial:
		return f.Material
	case FilterSearch:
		return f.Search
	}
	return ""
}

// Active reports whether any dimension constrains the listing
func (f FilterState) Active() bool {
	return f.Category != "" || f.Material != "" || f.Search != ""
}

// ClearFilters returns the initial, unconstrained snapshot
func ClearFilters() FilterState {
	return FilterState{}
}

// DefaultCategories are offered in the category picker
var DefaultCategories = []string{"ring", "necklace", "bracelet", "earring", "pendant"}

// DefaultMaterials are offered in the material picker
var DefaultMaterials = []string{"gold", "silver", "diamond", "platinum", "ruby", "emerald"}

// Timestamp accepts RFC 3339 and zone-less ISO 8601 times. The backend
// emits the latter for records it stored without a zone; those are read as UTC.
// Anything unrecognised decodes to the zero time so one odd record never
// fails a whole listing.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Ignoring non-string timestamp %s", data)
		return nil
	}
	if raw == nil || *raw == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, *raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	log.Printf("Ignoring unrecognised timestamp %q", *raw)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

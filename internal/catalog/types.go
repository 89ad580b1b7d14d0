package catalog

import (
	"bytes"
	"encoding/json"
)

// NullableString is a partial-update field that distinguishes a field
// omitted from the payload from one explicitly provided, including
// explicitly provided as null.
type NullableString struct {
	Set   bool
	Value *string // nil when provided as null
}

func (s *NullableString) UnmarshalJSON(b []byte) error {
	s.Set = true
	if bytes.Equal(b, []byte("null")) {
		s.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	s.Value = &v
	return nil
}

func (s NullableString) MarshalJSON() ([]byte, error) {
	if !s.Set || s.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*s.Value)
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CreateProductInput carries the fields for a new product. CategoryIDs
// may be empty or absent; every id present must reference an existing
// category or the whole creation fails.
type CreateProductInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	CategoryIDs []int   `json:"category_ids"`
}

// CreateVariationInput carries the fields for a new product variation.
// Prices arrive as two-decimal numbers.
type CreateVariationInput struct {
	ProductID      int     `json:"product_id"`
	VariationName  string  `json:"variation_name"`
	Color          *string `json:"color"`
	Size           *string `json:"size"`
	Material       *string `json:"material"`
	UnitPrice      float64 `json:"unit_price"`
	WholesalePrice float64 `json:"wholesale_price"`
	StockQuantity  int     `json:"stock_quantity"`
}

// CategoryPatch is a partial update: only fields present in the payload
// are applied.
type CategoryPatch struct {
	Name        *string        `json:"name"`
	Description NullableString `json:"description"`
}

// ProductPatch is a partial update for a product. A non-nil CategoryIDs
// replaces the whole category set (an empty slice clears it); nil
// leaves existing associations untouched.
type ProductPatch struct {
	Name        *string        `json:"name"`
	Description NullableString `json:"description"`
	ImageURL    NullableString `json:"image_url"`
	CategoryIDs []int          `json:"category_ids"`
}

// VariationPatch is a partial update for a product variation.
type VariationPatch struct {
	VariationName  *string        `json:"variation_name"`
	Color          NullableString `json:"color"`
	Size           NullableString `json:"size"`
	Material       NullableString `json:"material"`
	UnitPrice      *float64       `json:"unit_price"`
	WholesalePrice *float64       `json:"wholesale_price"`
	StockQuantity  *int           `json:"stock_quantity"`
}

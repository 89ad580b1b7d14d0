package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariation represents a sellable variation of a product
// (color/size/material) with its own prices and stock level.
type ProductVariation struct {
	ID             int             `json:"id"`
	ProductID      int             `json:"product_id"`
	VariationName  string          `json:"variation_name"`
	Color          *string         `json:"color"`
	Size           *string         `json:"size"`
	Material       *string         `json:"material"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	StockQuantity  int             `json:"stock_quantity"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

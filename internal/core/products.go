package core

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"
)

type Product struct {
	ID       string  `json:"_id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// ProductInput is the create payload. Price stays raw so that a present but
// non-numeric value can be told apart from an absent one.
type ProductInput struct {
	Title    *string         `json:"title"`
	Price    json.RawMessage `json:"price"`
	Category *string         `json:"category"`
}

// ProductPatch is the update payload: _id locates the document, the
// remaining fields overwrite when present and are left untouched when nil.
type ProductPatch struct {
	ID       string   `json:"_id"`
	Title    *string  `json:"title"`
	Price    *float64 `json:"price"`
	Category *string  `json:"category"`
}

type ProductRepo interface {
	List(ctx context.Context) ([]Product, error)
	Insert(ctx context.Context, p Product) (string, error)
	Count(ctx context.Context) (int64, error)
	SumPrices(ctx context.Context) (float64, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	ListPriceBelow(ctx context.Context, amount float64) ([]Product, error)
	ListPriceAtLeast(ctx context.Context, amount float64) ([]Product, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, id string, patch ProductPatch) error
	Delete(ctx context.Context, id string) (int64, error)
	GetByID(ctx context.Context, id string) (Product, error)
}

type CatalogService interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, in ProductInput) (Product, error)
	Count(ctx context.Context) (int64, error)
	TotalPrice(ctx context.Context) (float64, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	ListPriceBelow(ctx context.Context, amount float64) ([]Product, error)
	ListPriceAtLeast(ctx context.Context, amount float64) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, patch ProductPatch) error
	Delete(ctx context.Context, id string) (int64, error)
	Get(ctx context.Context, id string) (Product, error)
}

// Validate runs the create checks in order, first failure wins, and returns
// the normalized product (category lowercased).
func (in ProductInput) Validate() (Product, error) {
	// Length is in characters, not bytes.
	if in.Title == nil || utf8.RuneCountInString(*in.Title) < 5 {
		return Product{}, invalid("Product title not found or too short!")
	}
	if in.Price == nil {
		return Product{}, invalid("Product price not found!")
	}
	price, ok := numberValue(in.Price)
	if !ok {
		return Product{}, invalid("Price value must be a number")
	}
	if price <= 0 {
		return Product{}, invalid("Price value must be greater than 0")
	}
	if in.Category == nil {
		return Product{}, invalid("Product category not found!")
	}
	return Product{
		Title:    *in.Title,
		Price:    price,
		Category: strings.ToLower(*in.Category),
	}, nil
}

func (p ProductPatch) Validate() error {
	if p.ID == "" {
		return invalid("Missing product id!")
	}
	return nil
}

// numberValue reports whether raw holds a JSON number and returns its value.
// A JSON null counts as not-a-number: the field was present but useless.
func numberValue(raw json.RawMessage) (float64, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(trimmed, &f); err != nil {
		return 0, false
	}
	return f, true
}

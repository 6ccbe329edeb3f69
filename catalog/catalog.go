// Package catalog defines the typed product catalog model consumed by the
// JSON and SQL generators. Values are constructed once, validated at
// construction time, and never mutated afterwards.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Product is a single catalog item. CategoryID references the owning
// Category in the generated SQL schema.
type Product struct {
	ID          int     `json:"id" yaml:"id" validate:"required"`
	Name        string  `json:"name" yaml:"name" validate:"required"`
	Description *string `json:"description" yaml:"description"`
	Price       float64 `json:"price" yaml:"price" validate:"required,gt=0"`
	CategoryID  int     `json:"category_id" yaml:"category_id" validate:"required"`
}

// Category groups products. Products are held by value for JSON and display
// purposes only; the SQL relation lives on Product.CategoryID.
type Category struct {
	ID          int       `json:"id" yaml:"id" validate:"required"`
	Name        string    `json:"name" yaml:"name" validate:"required"`
	Description *string   `json:"description" yaml:"description"`
	Products    []Product `json:"products" yaml:"products" validate:"dive"`
}

// Schema is the complete generation unit: an ordered list of categories.
type Schema struct {
	Categories []Category `json:"categories" yaml:"categories" validate:"required,dive"`
}

// NewProduct builds a validated Product. It fails if a required field is
// absent or if price is not greater than zero.
func NewProduct(id int, name string, description *string, price float64, categoryID int) (Product, error) {
	p := Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		CategoryID:  categoryID,
	}
	if err := validate.Struct(p); err != nil {
		return Product{}, fmt.Errorf("invalid product %q: %w", name, err)
	}
	return p, nil
}

// NewCategory builds a validated Category owning the given products.
func NewCategory(id int, name string, description *string, products []Product) (Category, error) {
	c := Category{
		ID:          id,
		Name:        name,
		Description: description,
		Products:    products,
	}
	if err := validate.Struct(c); err != nil {
		return Category{}, fmt.Errorf("invalid category %q: %w", name, err)
	}
	return c, nil
}

// NewSchema builds a validated Schema from an ordered category list.
func NewSchema(categories []Category) (Schema, error) {
	s := Schema{Categories: categories}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// Validate checks every category and nested product against the field
// constraints. It returns the first violation found.
func (s Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	return nil
}

// JSON returns the schema as a pretty-printed JSON document with a
// two-space indent.
func (s Schema) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding schema: %w", err)
	}
	return data, nil
}

// Products returns all products across all categories, in category order
// and then each category's own product order.
func (s Schema) Products() []Product {
	var all []Product
	for _, c := range s.Categories {
		all = append(all, c.Products...)
	}
	return all
}

// String returns a pointer to s. It is a convenience for filling optional
// description fields.
func String(s string) *string {
	return &s
}

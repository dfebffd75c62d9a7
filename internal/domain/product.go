package domain

import (
	"fmt"
	"strings"
)

// Color of a product.
type Color string

const (
	Red   Color = "RED"
	Green Color = "GREEN"
	Blue  Color = "BLUE"
)

// Size of a product.
type Size string

const (
	Small  Size = "SMALL"
	Medium Size = "MEDIUM"
	Large  Size = "LARGE"
)

// Product is a value type; copies never alias.
type Product struct {
	Name  string
	Color Color
	Size  Size
}

func NewProduct(name string, color Color, size Size) Product {
	return Product{Name: name, Color: color, Size: size}
}

// ParseColor accepts any casing and surrounding whitespace.
func ParseColor(s string) (Color, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	switch Color(up) {
	case Red, Green, Blue:
		return Color(up), nil
	default:
		return "", &OpError{
			Op:   "product.parse_color",
			Kind: KindInvalidArgument,
			Err:  fmt.Errorf("unsupported color %q: %w", s, ErrInvalidArgument),
		}
	}
}

// ParseSize accepts any casing and surrounding whitespace.
func ParseSize(s string) (Size, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	switch Size(up) {
	case Small, Medium, Large:
		return Size(up), nil
	default:
		return "", &OpError{
			Op:   "product.parse_size",
			Kind: KindInvalidArgument,
			Err:  fmt.Errorf("unsupported size %q: %w", s, ErrInvalidArgument),
		}
	}
}

// ProductFilter is the closed-for-extension antecedent: every new criterion
// needs a new method here.
type ProductFilter struct{}

func (ProductFilter) FilterByColor(products []Product, color Color) []Product {
	var out []Product
	for _, p := range products {
		if p.Color == color {
			out = append(out, p)
		}
	}
	return out
}

func (ProductFilter) FilterBySize(products []Product, size Size) []Product {
	var out []Product
	for _, p := range products {
		if p.Size == size {
			out = append(out, p)
		}
	}
	return out
}

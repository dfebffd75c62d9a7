package ports

import "github.com/aalvaropc/solid/internal/domain"

// CatalogLoader loads a product catalog from a source (e.g., filesystem).
type CatalogLoader interface {
	LoadCatalog(path string) ([]domain.Product, error)
}

// FamilyLoader loads relation facts from a source (e.g., filesystem).
type FamilyLoader interface {
	LoadFamily(path string) (*domain.Relationships, error)
}

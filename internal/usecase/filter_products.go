package usecase

import (
	"context"
	"slices"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/ports"
)

// FilterProducts loads a catalog and keeps the products matching a
// specification. It never learns which criteria the specification encodes.
type FilterProducts struct {
	catalog ports.CatalogLoader
	filter  domain.Filter[domain.Product]
}

func NewFilterProducts(cl ports.CatalogLoader) *FilterProducts {
	return &FilterProducts{
		catalog: cl,
		filter:  domain.BetterFilter[domain.Product]{},
	}
}

func (uc *FilterProducts) Execute(ctx context.Context, catalogPath string, spec domain.Specification[domain.Product]) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products, err := uc.catalog.LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	return slices.Collect(uc.filter.Filter(products, spec)), nil
}

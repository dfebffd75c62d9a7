// Package yamlcatalog loads product catalogs and family trees from YAML files.
package yamlcatalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var (
	_ ports.CatalogLoader = (*Loader)(nil)
	_ ports.FamilyLoader  = (*Loader)(nil)
)

func (l *Loader) LoadCatalog(path string) ([]domain.Product, error) {
	var yc yamlCatalog
	if err := readYAML("yamlcatalog.load_catalog", path, &yc); err != nil {
		return nil, err
	}
	return mapCatalog(path, yc)
}

func (l *Loader) LoadFamily(path string) (*domain.Relationships, error) {
	var yf yamlFamily
	if err := readYAML("yamlcatalog.load_family", path, &yf); err != nil {
		return nil, err
	}
	return mapFamily(path, yf)
}

func readYAML(op, path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	if err := yaml.Unmarshal(b, out); err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

type yamlCatalog struct {
	Products []yamlProduct `yaml:"products"`
}

type yamlProduct struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Size  string `yaml:"size"`
}

type yamlFamily struct {
	Parents  []yamlParent `yaml:"parents"`
	Siblings [][]string   `yaml:"siblings"`
}

type yamlParent struct {
	Name     string   `yaml:"name"`
	Children []string `yaml:"children"`
}

func mapCatalog(path string, yc yamlCatalog) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(yc.Products))

	for i, p := range yc.Products {
		fieldPrefix := fmt.Sprintf("products[%d]", i)

		if strings.TrimSpace(p.Name) == "" {
			return nil, invalidField(path, fieldPrefix+".name", "product name is required")
		}
		color, err := domain.ParseColor(p.Color)
		if err != nil {
			return nil, invalidField(path, fieldPrefix+".color", fmt.Sprintf("unsupported color %q", p.Color))
		}
		size, err := domain.ParseSize(p.Size)
		if err != nil {
			return nil, invalidField(path, fieldPrefix+".size", fmt.Sprintf("unsupported size %q", p.Size))
		}

		out = append(out, domain.NewProduct(strings.TrimSpace(p.Name), color, size))
	}

	return out, nil
}

func mapFamily(path string, yf yamlFamily) (*domain.Relationships, error) {
	rel := domain.NewRelationships()

	for i, p := range yf.Parents {
		fieldPrefix := fmt.Sprintf("parents[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			return nil, invalidField(path, fieldPrefix+".name", "parent name is required")
		}
		for j, c := range p.Children {
			if strings.TrimSpace(c) == "" {
				return nil, invalidField(path, fmt.Sprintf("%s.children[%d]", fieldPrefix, j), "child name is required")
			}
			rel.AddParentAndChild(domain.Person{Name: strings.TrimSpace(p.Name)}, domain.Person{Name: strings.TrimSpace(c)})
		}
	}

	for i, pair := range yf.Siblings {
		if len(pair) != 2 {
			return nil, invalidField(path, fmt.Sprintf("siblings[%d]", i), "expected exactly two names")
		}
		rel.AddSiblings(domain.Person{Name: strings.TrimSpace(pair[0])}, domain.Person{Name: strings.TrimSpace(pair[1])})
	}

	return rel, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlcatalog.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

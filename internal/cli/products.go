package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/usecase"
	"github.com/aalvaropc/solid/internal/usecase/match"
)

func productsCmd(o *rootOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "products",
		Short: "Query a product catalog with composable specifications",
	}

	c.AddCommand(productsFilterCmd(o))
	return c
}

type productFilterFlags struct {
	catalog string
	color   string
	size    string
	name    string
	where   []string
	anyOf   bool
	negate  bool
	format  string
}

func productsFilterCmd(o *rootOpts) *cobra.Command {
	var f productFilterFlags

	c := &cobra.Command{
		Use:   "filter",
		Short: "Print the catalog products matching every given criterion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(o.workspace)
			if err != nil {
				return err
			}

			spec, err := buildProductSpec(f)
			if err != nil {
				return err
			}

			catalog := f.catalog
			if strings.TrimSpace(catalog) == "" {
				catalog = ws.cfg.Data.CatalogFile
			}

			products, err := usecase.NewFilterProducts(ws.data).Execute(cmd.Context(), ws.resolve(catalog), spec)
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), products, f.format)
		},
	}

	c.Flags().StringVarP(&f.catalog, "catalog", "c", "", "Catalog YAML (defaults to solid.yaml data.catalog)")
	c.Flags().StringVar(&f.color, "color", "", "Color: red|green|blue")
	c.Flags().StringVar(&f.size, "size", "", "Size: small|medium|large")
	c.Flags().StringVar(&f.name, "name", "", "Exact product name")
	c.Flags().StringArrayVar(&f.where, "where", nil, "JSONPath clause, e.g. '$.name~ou' (repeatable)")
	c.Flags().BoolVar(&f.anyOf, "any", false, "Match when any criterion holds instead of all")
	c.Flags().BoolVar(&f.negate, "not", false, "Invert the combined criteria")
	c.Flags().StringVar(&f.format, "format", "pretty", "Output format: pretty|json")
	return c
}

func buildProductSpec(f productFilterFlags) (domain.Specification[domain.Product], error) {
	var specs []domain.Specification[domain.Product]

	if f.color != "" {
		color, err := domain.ParseColor(f.color)
		if err != nil {
			return nil, err
		}
		specs = append(specs, domain.ColorSpecification{Color: color})
	}
	if f.size != "" {
		size, err := domain.ParseSize(f.size)
		if err != nil {
			return nil, err
		}
		specs = append(specs, domain.SizeSpecification{Size: size})
	}
	if f.name != "" {
		specs = append(specs, domain.NameSpecification{Name: f.name})
	}
	switch {
	case len(f.where) == 0:
	case f.anyOf:
		for _, clause := range f.where {
			s, err := match.Parse(clause)
			if err != nil {
				return nil, err
			}
			specs = append(specs, s)
		}
	default:
		where, err := match.ParseAll(f.where)
		if err != nil {
			return nil, err
		}
		specs = append(specs, where)
	}

	var spec domain.Specification[domain.Product]
	if f.anyOf && len(specs) > 0 {
		spec = domain.Any(specs...)
	} else {
		spec = domain.All(specs...)
	}
	if f.negate {
		spec = domain.Not(spec)
	}
	return spec, nil
}

type productJSON struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Size  string `json:"size"`
}

func printProducts(w io.Writer, products []domain.Product, format string) error {
	switch format {
	case "json":
		out := make([]productJSON, 0, len(products))
		for _, p := range products {
			out = append(out, productJSON{Name: p.Name, Color: string(p.Color), Size: string(p.Size)})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "pretty", "":
		if len(products) == 0 {
			fmt.Fprintln(w, "(no matching products)")
			return nil
		}
		for _, p := range products {
			fmt.Fprintf(w, " - %s (%s, %s)\n", p.Name, strings.ToLower(string(p.Color)), strings.ToLower(string(p.Size)))
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

package match

import (
	"reflect"
	"slices"
	"testing"

	"github.com/aalvaropc/solid/internal/domain"
)

var products = []domain.Product{
	domain.NewProduct("Apple", domain.Green, domain.Small),
	domain.NewProduct("Tree", domain.Green, domain.Large),
	domain.NewProduct("House", domain.Blue, domain.Large),
}

func names(ps []domain.Product) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestParse_Operators(t *testing.T) {
	cases := []struct {
		clause string
		want   []string
	}{
		{"$.color=GREEN", []string{"Apple", "Tree"}},
		{"$.size!=LARGE", []string{"Apple"}},
		{"$.name~ous", []string{"House"}},
		{"$.name=~^(A|T)", []string{"Apple", "Tree"}},
		{"$.missing=x", nil},
	}

	var f domain.BetterFilter[domain.Product]
	for _, c := range cases {
		spec, err := Parse(c.clause)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.clause, err)
		}
		got := names(slices.Collect(f.Filter(products, spec)))
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("%q: expected %v, got %v", c.clause, c.want, got)
		}
	}
}

func TestParse_SplitsOnFirstOperator(t *testing.T) {
	spec, err := Parse("$.name=~^A")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if spec.Op != OpMatches || spec.Expr != "$.name" || spec.Want != "^A" {
		t.Fatalf("unexpected parse %+v", spec)
	}
	if spec.String() != "$.name=~^A" {
		t.Fatalf("unexpected String %q", spec.String())
	}
}

func TestParse_ValueMayContainOperators(t *testing.T) {
	cases := []struct {
		clause string
		op     Op
		expr   string
		want   string
	}{
		{"$.name~a=b", OpContains, "$.name", "a=b"},
		{"$.name=a~b", OpEq, "$.name", "a~b"},
		{"$.name!=x=~y", OpNeq, "$.name", "x=~y"},
		{"$.name=~a=b", OpMatches, "$.name", "a=b"},
	}
	for _, c := range cases {
		spec, err := Parse(c.clause)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", c.clause, err)
		}
		if spec.Op != c.op || spec.Expr != c.expr || spec.Want != c.want {
			t.Errorf("Parse(%q): expected %s %s %q, got %+v", c.clause, c.expr, c.op, c.want, spec)
		}
	}

	spec, err := Parse("$.name~a=b")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if spec.IsSatisfied(domain.NewProduct("Apple", domain.Green, domain.Small)) {
		t.Fatal("expected Apple not to contain a=b")
	}
	if !spec.IsSatisfied(domain.NewProduct("xa=by", domain.Red, domain.Small)) {
		t.Fatal("expected xa=by to contain a=b")
	}
}

func TestParse_Errors(t *testing.T) {
	for _, clause := range []string{"no operator here", "=GREEN", "$.name=~(["} {
		if _, err := Parse(clause); !domain.IsKind(err, domain.KindInvalidArgument) {
			t.Errorf("Parse(%q): expected KindInvalidArgument, got %v", clause, err)
		}
	}
}

func TestPath_UnsupportedOperator(t *testing.T) {
	if _, err := Path("$.name", Op(">"), "x"); !domain.IsKind(err, domain.KindInvalidArgument) {
		t.Fatalf("expected KindInvalidArgument, got %v", err)
	}
}

func TestParseAll_ComposesWithAnd(t *testing.T) {
	spec, err := ParseAll([]string{"$.color=GREEN", "$.size=LARGE"})
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}

	var f domain.BetterFilter[domain.Product]
	if got := names(slices.Collect(f.Filter(products, spec))); !reflect.DeepEqual(got, []string{"Tree"}) {
		t.Fatalf("expected [Tree], got %v", got)
	}

	all, err := ParseAll(nil)
	if err != nil {
		t.Fatalf("ParseAll(nil) error: %v", err)
	}
	if got := slices.Collect(f.Filter(products, all)); len(got) != len(products) {
		t.Fatalf("expected every product, got %d", len(got))
	}
}

func TestPathMixesWithDomainSpecs(t *testing.T) {
	byName, err := Path("$.name", OpContains, "e")
	if err != nil {
		t.Fatal(err)
	}
	spec := domain.And[domain.Product](domain.ColorSpecification{Color: domain.Green}, byName)

	var f domain.BetterFilter[domain.Product]
	if got := names(slices.Collect(f.Filter(products, spec))); !reflect.DeepEqual(got, []string{"Apple", "Tree"}) {
		t.Fatalf("expected [Apple Tree], got %v", got)
	}
}

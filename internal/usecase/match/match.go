// Package match builds product specifications from JSONPath expressions, so a
// new filter criterion can be added from the command line without touching
// the filter or the existing specifications.
package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/solid/internal/domain"
)

// Op is the comparison applied to the value selected by a JSONPath expression.
type Op string

const (
	OpEq       Op = "="
	OpNeq      Op = "!="
	OpContains Op = "~"
	OpMatches  Op = "=~"
)

// PathSpecification is satisfied when the value selected by Expr compares
// true against Want. A value that cannot be selected never matches.
type PathSpecification struct {
	Expr string
	Op   Op
	Want string

	re *regexp.Regexp
}

// Path validates expr (and the pattern for OpMatches) up front.
func Path(expr string, op Op, want string) (*PathSpecification, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, invalid("empty jsonpath expression")
	}
	if _, err := jsonpath.New(expr); err != nil {
		return nil, invalid(fmt.Sprintf("invalid jsonpath %q: %v", expr, err))
	}

	s := &PathSpecification{Expr: expr, Op: op, Want: want}
	switch op {
	case OpEq, OpNeq, OpContains:
	case OpMatches:
		re, err := regexp.Compile(want)
		if err != nil {
			return nil, invalid(fmt.Sprintf("invalid regex %q: %v", want, err))
		}
		s.re = re
	default:
		return nil, invalid(fmt.Sprintf("unsupported operator %q", op))
	}
	return s, nil
}

// Parse reads a clause such as `$.color=GREEN`, `$.name~ous` or `$.name=~^A`.
// The clause splits at the leftmost operator; the value may contain operator
// characters.
func Parse(clause string) (*PathSpecification, error) {
	for i := 1; i < len(clause); i++ {
		rest := clause[i:]
		// Two-character operators win at the same position.
		for _, op := range []Op{OpNeq, OpMatches, OpEq, OpContains} {
			if strings.HasPrefix(rest, string(op)) {
				return Path(clause[:i], op, strings.TrimSpace(rest[len(op):]))
			}
		}
	}
	return nil, invalid(fmt.Sprintf("clause %q has no operator (=, !=, ~, =~)", clause))
}

// ParseAll combines clauses with All; no clauses matches every product.
func ParseAll(clauses []string) (domain.Specification[domain.Product], error) {
	specs := make([]domain.Specification[domain.Product], 0, len(clauses))
	for _, c := range clauses {
		s, err := Parse(c)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return domain.All(specs...), nil
}

func (s *PathSpecification) IsSatisfied(p domain.Product) bool {
	val, err := jsonpath.Get(s.Expr, Document(p))
	if err != nil {
		return false
	}
	got, ok := toString(val)
	if !ok {
		return false
	}

	switch s.Op {
	case OpEq:
		return got == s.Want
	case OpNeq:
		return got != s.Want
	case OpContains:
		return strings.Contains(got, s.Want)
	case OpMatches:
		return s.re.MatchString(got)
	default:
		return false
	}
}

func (s *PathSpecification) String() string {
	return s.Expr + string(s.Op) + s.Want
}

// Document is the JSON-like view of a product that expressions run against.
func Document(p domain.Product) map[string]any {
	return map[string]any{
		"name":  p.Name,
		"color": string(p.Color),
		"size":  string(p.Size),
	}
}

func toString(val any) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case nil:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}

func invalid(msg string) error {
	return &domain.OpError{
		Op:   "match.parse",
		Kind: domain.KindInvalidArgument,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidArgument),
	}
}

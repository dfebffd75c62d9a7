package usecase

import (
	"fmt"
	"io"

	"github.com/aalvaropc/solid/internal/domain"
	"github.com/aalvaropc/solid/internal/ports"
)

// Research is the antecedent high-level module: it reaches into the concrete
// store and scans raw relation facts itself.
type Research struct {
	relationships *domain.Relationships
}

func NewResearch(r *domain.Relationships) *Research {
	return &Research{relationships: r}
}

// Execute prints one line per child of name and returns how many were found.
func (uc *Research) Execute(w io.Writer, name string) int {
	n := 0
	for _, rel := range uc.relationships.Relations() {
		if rel.From.Name == name && rel.Kind == domain.Parent {
			printChild(w, name, rel.To)
			n++
		}
	}
	return n
}

// BetterResearch depends only on the RelationshipBrowser abstraction.
type BetterResearch struct {
	browser ports.RelationshipBrowser
}

func NewBetterResearch(b ports.RelationshipBrowser) *BetterResearch {
	return &BetterResearch{browser: b}
}

func (uc *BetterResearch) Execute(w io.Writer, name string) []domain.Person {
	children := uc.browser.FindAllChildrenOf(name)
	for _, c := range children {
		printChild(w, name, c)
	}
	return children
}

func printChild(w io.Writer, parent string, child domain.Person) {
	fmt.Fprintf(w, "%s has a child name %s\n", parent, child.Name)
}

package ports

import "github.com/aalvaropc/solid/internal/domain"

// RelationshipBrowser is the high-level query the research code depends on,
// instead of the raw relation list.
type RelationshipBrowser interface {
	FindAllChildrenOf(name string) []domain.Person
}

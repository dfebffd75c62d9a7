package domain

// Person is identified by name only.
type Person struct {
	Name string
}

// Relationship is the kind of a directed relation fact.
type Relationship string

const (
	Parent  Relationship = "PARENT"
	Child   Relationship = "CHILD"
	Sibling Relationship = "SIBLING"
)

// Relation is one directed edge: From is <Kind> of To.
type Relation struct {
	From Person
	Kind Relationship
	To   Person
}

// Relationships is the low-level store of relation facts.
// Every PARENT fact has a mirrored CHILD fact with subject and object swapped.
type Relationships struct {
	relations []Relation
}

func NewRelationships() *Relationships {
	return &Relationships{}
}

// AddParentAndChild stores (parent PARENT child) then (child CHILD parent).
func (r *Relationships) AddParentAndChild(parent, child Person) {
	r.relations = append(r.relations,
		Relation{From: parent, Kind: Parent, To: child},
		Relation{From: child, Kind: Child, To: parent},
	)
}

// AddSiblings stores SIBLING in both directions.
func (r *Relationships) AddSiblings(a, b Person) {
	r.relations = append(r.relations,
		Relation{From: a, Kind: Sibling, To: b},
		Relation{From: b, Kind: Sibling, To: a},
	)
}

// Relations exposes the raw facts in insertion order.
func (r *Relationships) Relations() []Relation {
	out := make([]Relation, len(r.relations))
	copy(out, r.relations)
	return out
}

// FindAllChildrenOf returns the objects of every PARENT fact whose subject is
// named name, in insertion order. Unknown names yield an empty slice.
func (r *Relationships) FindAllChildrenOf(name string) []Person {
	return r.objectsOf(name, Parent)
}

// FindAllParentsOf is the inverse query, answered from CHILD facts.
func (r *Relationships) FindAllParentsOf(name string) []Person {
	return r.objectsOf(name, Child)
}

// FindAllSiblingsOf returns the SIBLING objects of name.
func (r *Relationships) FindAllSiblingsOf(name string) []Person {
	return r.objectsOf(name, Sibling)
}

func (r *Relationships) objectsOf(name string, kind Relationship) []Person {
	out := []Person{}
	for _, rel := range r.relations {
		if rel.From.Name == name && rel.Kind == kind {
			out = append(out, rel.To)
		}
	}
	return out
}

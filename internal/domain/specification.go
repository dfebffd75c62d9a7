package domain

import "iter"

// Specification is a pure predicate over T.
type Specification[T any] interface {
	IsSatisfied(item T) bool
}

// SpecFunc adapts a plain function to Specification.
type SpecFunc[T any] func(item T) bool

func (f SpecFunc[T]) IsSatisfied(item T) bool { return f(item) }

// ColorSpecification matches products of one color.
type ColorSpecification struct {
	Color Color
}

func (s ColorSpecification) IsSatisfied(p Product) bool { return p.Color == s.Color }

// SizeSpecification matches products of one size.
type SizeSpecification struct {
	Size Size
}

func (s SizeSpecification) IsSatisfied(p Product) bool { return p.Size == s.Size }

// NameSpecification matches products by exact name.
type NameSpecification struct {
	Name string
}

func (s NameSpecification) IsSatisfied(p Product) bool { return p.Name == s.Name }

// AndSpecification is satisfied when both sides are, evaluated left to right.
type AndSpecification[T any] struct {
	First  Specification[T]
	Second Specification[T]
}

func (s AndSpecification[T]) IsSatisfied(item T) bool {
	return s.First.IsSatisfied(item) && s.Second.IsSatisfied(item)
}

func And[T any](first, second Specification[T]) Specification[T] {
	return AndSpecification[T]{First: first, Second: second}
}

// All is satisfied when every spec is; an empty list matches everything.
func All[T any](specs ...Specification[T]) Specification[T] {
	return SpecFunc[T](func(item T) bool {
		for _, s := range specs {
			if !s.IsSatisfied(item) {
				return false
			}
		}
		return true
	})
}

// Any is satisfied when at least one spec is; an empty list matches nothing.
func Any[T any](specs ...Specification[T]) Specification[T] {
	return SpecFunc[T](func(item T) bool {
		for _, s := range specs {
			if s.IsSatisfied(item) {
				return true
			}
		}
		return false
	})
}

func Not[T any](spec Specification[T]) Specification[T] {
	return SpecFunc[T](func(item T) bool { return !spec.IsSatisfied(item) })
}

// Filter selects the items of a list that satisfy a specification.
type Filter[T any] interface {
	Filter(items []T, spec Specification[T]) iter.Seq[T]
}

// BetterFilter is open for new criteria without modification: callers bring
// their own Specification.
type BetterFilter[T any] struct{}

// Filter returns a lazy, order-preserving sequence. Each range over the result
// re-scans items, so the sequence can be consumed more than once.
func (BetterFilter[T]) Filter(items []T, spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if spec.IsSatisfied(item) && !yield(item) {
				return
			}
		}
	}
}

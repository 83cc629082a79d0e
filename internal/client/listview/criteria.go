// Package listview holds the list-resource logic shared by every entity in
// the CLI: load a base list, derive filtered views from it, and delete with
// confirmation followed by a full reload.
package listview

import "strings"

// Criterion is one filter. Inactive criteria keep everything.
type Criterion[T any] struct {
	Active bool
	Keep   func(T) bool
}

// Func wraps an arbitrary predicate.
func Func[T any](active bool, keep func(T) bool) Criterion[T] {
	return Criterion[T]{Active: active && keep != nil, Keep: keep}
}

// Text matches a case-insensitive substring against any of fields. A blank
// query is inactive.
func Text[T any](query string, fields ...func(T) string) Criterion[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(fields) == 0 {
		return Criterion[T]{}
	}
	return Criterion[T]{Active: true, Keep: func(item T) bool {
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(item)), q) {
				return true
			}
		}
		return false
	}}
}

// Equal keeps items whose field equals selected. The zero value of V means
// "no selection" and is inactive.
func Equal[T any, V comparable](selected V, field func(T) V) Criterion[T] {
	var zero V
	if selected == zero {
		return Criterion[T]{}
	}
	return Criterion[T]{Active: true, Keep: func(item T) bool {
		return field(item) == selected
	}}
}

// Apply returns the items of base that satisfy every active criterion, in
// base order. base is never modified.
func Apply[T any](base []T, criteria ...Criterion[T]) []T {
	active := make([]Criterion[T], 0, len(criteria))
	for _, c := range criteria {
		if c.Active {
			active = append(active, c)
		}
	}

	out := make([]T, 0, len(base))
	for _, item := range base {
		if keepAll(item, active) {
			out = append(out, item)
		}
	}
	return out
}

func keepAll[T any](item T, criteria []Criterion[T]) bool {
	for _, c := range criteria {
		if !c.Keep(item) {
			return false
		}
	}
	return true
}

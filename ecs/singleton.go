package ecs

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Count returns how many entities carry the component
func Count[T any](w *World, component *donburi.ComponentType[T]) int {
	return donburi.NewQuery(filter.Contains(component)).Count(w.World)
}

// Single returns the only entity carrying the component. Zero or several
// matches are an ErrInvariantViolation.
func Single[T any](w *World, component *donburi.ComponentType[T]) (*donburi.Entry, error) {
	var (
		found *donburi.Entry
		count int
	)
	donburi.NewQuery(filter.Contains(component)).Each(w.World, func(entry *donburi.Entry) {
		if count == 0 {
			found = entry
		}
		count++
	})
	if count != 1 {
		var zero T
		return nil, eris.Wrapf(ErrInvariantViolation, "expected exactly one %s, found %d", typeName(zero), count)
	}
	return found, nil
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}

package logic

import (
	"strings"
)

// All is the category sentinel meaning "no restriction"
const All = "all"

// Unset is the group key used for entities whose discrete field is missing
const Unset = "-"

// Criteria holds the filter state of a list page
type Criteria struct {
	Text     string // case-insensitive substring, matched literally (no trimming)
	Category string // All or an exact discrete value
}

// DefaultCriteria returns the unrestricted criteria a page starts with
func DefaultCriteria() Criteria {
	return Criteria{Category: All}
}

// IsZero reports whether the criteria place no restriction
func (c Criteria) IsZero() bool {
	return c.Text == "" && (c.Category == All || c.Category == "")
}

// TextField reads one searchable field of an entity
type TextField[T any] func(T) string

// DiscreteField reads a categorical field. ok is false when the value is missing.
type DiscreteField[T any] func(T) (value string, ok bool)

// FieldSet is the fixed per-entity-type accessor table the engine filters with
type FieldSet[T any] struct {
	Search   []TextField[T]
	Category DiscreteField[T]
}

// Discrete adapts a plain string accessor, treating "" as missing
func Discrete[T any](get func(T) string) DiscreteField[T] {
	return func(e T) (string, bool) {
		v := get(e)
		return v, v != ""
	}
}

// Matches checks if a single entity satisfies the criteria
func Matches[T any](e T, c Criteria, fs FieldSet[T]) bool {
	return matchesText(e, strings.ToLower(c.Text), fs) && matchesCategory(e, c.Category, fs)
}

// Filter returns the entities matching c, in their original order
func Filter[T any](entities []T, c Criteria, fs FieldSet[T]) []T {
	query := strings.ToLower(c.Text)
	result := make([]T, 0, len(entities))
	for _, e := range entities {
		if matchesText(e, query, fs) && matchesCategory(e, c.Category, fs) {
			result = append(result, e)
		}
	}
	return result
}

func matchesText[T any](e T, lowerQuery string, fs FieldSet[T]) bool {
	if lowerQuery == "" {
		return true
	}
	for _, field := range fs.Search {
		if strings.Contains(strings.ToLower(field(e)), lowerQuery) {
			return true
		}
	}
	return false
}

func matchesCategory[T any](e T, category string, fs FieldSet[T]) bool {
	// "" is treated like All so a zero Criteria is unrestricted
	if category == All || category == "" {
		return true
	}
	if fs.Category == nil {
		return false
	}
	v, ok := fs.Category(e)
	return ok && v == category
}

// GroupCount is the number of entities sharing one discrete value
type GroupCount struct {
	Value string
	Count int
}

// CountBy groups entities by a discrete field, in first-seen order.
// Missing values are counted under Unset.
func CountBy[T any](entities []T, field DiscreteField[T]) []GroupCount {
	if field == nil {
		return nil
	}
	index := make(map[string]int)
	var groups []GroupCount
	for _, e := range entities {
		v, ok := field(e)
		if !ok {
			v = Unset
		}
		i, seen := index[v]
		if !seen {
			i = len(groups)
			index[v] = i
			groups = append(groups, GroupCount{Value: v})
		}
		groups[i].Count++
	}
	return groups
}

// Summary holds the derived counts a list page shows above its table
type Summary struct {
	Total   int
	Matched int
	Groups  []GroupCount // over the unfiltered collection
}

// Summarize computes the counts for a page. Groups are taken over the source
// collection, not the filtered result.
func Summarize[T any](entities []T, c Criteria, fs FieldSet[T], tiles DiscreteField[T]) Summary {
	matched := 0
	query := strings.ToLower(c.Text)
	for _, e := range entities {
		if matchesText(e, query, fs) && matchesCategory(e, c.Category, fs) {
			matched++
		}
	}
	return Summary{
		Total:   len(entities),
		Matched: matched,
		Groups:  CountBy(entities, tiles),
	}
}

// CategoryOptions lists All followed by each distinct category value in first-seen order
func CategoryOptions[T any](entities []T, fs FieldSet[T]) []string {
	options := []string{All}
	if fs.Category == nil {
		return options
	}
	seen := make(map[string]bool)
	for _, e := range entities {
		v, ok := fs.Category(e)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}
	return options
}

// NextOption returns the option after current, wrapping around.
// An unknown current value restarts at the first option.
func NextOption(options []string, current string) string {
	if len(options) == 0 {
		return All
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

package search

import "procura/internal/ui/logic"

// State holds the filter criteria of the mounted page
type State struct {
	Path     string
	Criteria logic.Criteria
	Options  []string // category values offered by the page, All first
}

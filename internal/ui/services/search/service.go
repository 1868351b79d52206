package search

import (
	"log"
	"strings"

	"procura/internal/eventbus"
	"procura/internal/ui/logic"
)

// Service owns the filter criteria of the current page
type Service struct {
	state *State
	bus   eventbus.EventBus
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state: &State{
			Criteria: logic.DefaultCriteria(),
			Options:  []string{logic.All},
		},
		bus: bus,
	}
}

// Mount resets the criteria for a newly shown page. Mounting the page that is
// already mounted keeps its criteria.
func (s *Service) Mount(path string) {
	if path == s.state.Path {
		return
	}
	s.state.Path = path
	s.state.Criteria = logic.DefaultCriteria()
	s.state.Options = []string{logic.All}
}

// SetOptions sets the category values the page offers. A selected category
// that is no longer offered falls back to All.
func (s *Service) SetOptions(options []string) {
	if len(options) == 0 {
		options = []string{logic.All}
	}
	s.state.Options = options
	for _, o := range options {
		if o == s.state.Criteria.Category {
			return
		}
	}
	s.SetCategory(logic.All)
}

// Criteria returns the current criteria
func (s *Service) Criteria() logic.Criteria {
	return s.state.Criteria
}

// Options returns the category values of the page
func (s *Service) Options() []string {
	return s.state.Options
}

// SetText updates the free-text term
func (s *Service) SetText(text string) {
	if text == s.state.Criteria.Text {
		return
	}
	s.state.Criteria.Text = text
	s.publish()
}

// SetCategory updates the category selection
func (s *Service) SetCategory(category string) {
	if category == "" {
		category = logic.All
	}
	if category == s.state.Criteria.Category {
		return
	}
	s.state.Criteria.Category = category
	s.publish()
}

// CycleCategory moves to the next category option
func (s *Service) CycleCategory() {
	s.SetCategory(logic.NextOption(s.state.Options, s.state.Criteria.Category))
}

// Reset clears text and category
func (s *Service) Reset() {
	if s.state.Criteria.IsZero() {
		return
	}
	s.state.Criteria = logic.DefaultCriteria()
	s.publish()
}

func (s *Service) publish() {
	log.Printf("Filter on %s: text=%q category=%q", s.state.Path, s.state.Criteria.Text, s.state.Criteria.Category)
	s.bus.Publish(eventbus.FilterChangedEvent{
		Path:     s.state.Path,
		Text:     s.state.Criteria.Text,
		Category: s.state.Criteria.Category,
	})
}

// Highlight helpers for UI

// ShouldHighlight reports whether text contains the current search term
func (s *Service) ShouldHighlight(text string) bool {
	_, _, ok := HighlightSpan(text, s.state.Criteria.Text)
	return ok
}

// HighlightSpan returns the byte range of the first case-insensitive match of
// query in text.
func HighlightSpan(text, query string) (start, end int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)
	// Lowercasing can change byte lengths for some runes; only trust
	// the index when the lengths agree.
	if len(lowerText) != len(text) {
		return 0, 0, false
	}
	i := strings.Index(lowerText, lowerQuery)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(lowerQuery), true
}

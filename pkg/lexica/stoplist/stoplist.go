// Package stoplist holds the curated exclusion set consulted by the lexical
// filter: a general English stop-word list plus domain categories.
package stoplist

import (
	"sort"
	"strings"
)

// Category groups stop words by why they carry little signal.
type Category string

const (
	General          Category = "general"
	Temporal         Category = "temporal"
	Quantity         Category = "quantity"
	Directional      Category = "directional"
	GenericVerb      Category = "generic_verb"
	GenericAdjective Category = "generic_adjective"
	User             Category = "user"
)

// Categories lists the built-in categories in a stable order.
var Categories = []Category{General, Temporal, Quantity, Directional, GenericVerb, GenericAdjective}

// Reason explains why a token is a stopword
type Reason struct {
	Category Category
}

// Manager is a case-folded stop-word set.
type Manager struct {
	stops map[string]Reason
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	m := &Manager{stops: make(map[string]Reason, len(initialStops))}
	m.AddAll(General, initialStops)
	return m
}

// Default returns a manager seeded with every built-in category.
func Default() *Manager {
	m := &Manager{stops: make(map[string]Reason, 512)}
	for _, cat := range Categories {
		m.AddAll(cat, builtin[cat])
	}
	return m
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[strings.ToLower(token)]
	return ok
}

// Lookup returns the reason a token is excluded.
func (m *Manager) Lookup(token string) (Reason, bool) {
	r, ok := m.stops[strings.ToLower(token)]
	return r, ok
}

// Add adds a token to the stoplist with a reason
func (m *Manager) Add(token string, reason Reason) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return
	}
	if _, exists := m.stops[token]; exists && reason.Category != User {
		return
	}
	m.stops[token] = reason
}

// AddAll adds every token under one category. Tokens already present keep
// their original category unless the new one is User.
func (m *Manager) AddAll(cat Category, tokens []string) {
	for _, t := range tokens {
		m.Add(t, Reason{Category: cat})
	}
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, strings.ToLower(token))
}

// All returns all stopwords in sorted order.
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Len returns the number of stopwords.
func (m *Manager) Len() int {
	return len(m.stops)
}

// CountByCategory reports how many tokens each category contributes.
func (m *Manager) CountByCategory() map[Category]int {
	out := make(map[Category]int)
	for _, r := range m.stops {
		out[r.Category]++
	}
	return out
}

// Package visualize renders the ranked vocabulary and its collocation graph
// as a single self-contained interactive HTML network.
package visualize

import (
	"fmt"
	"strings"
	"time"

	"github.com/cognicore/lexica/pkg/lexica/analytics"
	"github.com/cognicore/lexica/pkg/lexica/filter"
)

const (
	minNodeSize = 8
	maxNodeSize = 25
	tooltipTop  = 3
)

// tierColors is the fixed ramp, hottest first.
var tierColors = [5]string{"#d7301f", "#fc8d59", "#fdcc8a", "#74a9cf", "#2b8cbe"}

// Physics controls the force layout run in the browser. Repulsion decays
// linearly from InitialGravity to FinalGravity over Steps iterations.
type Physics struct {
	InitialGravity float64 `json:"initialGravity"`
	FinalGravity   float64 `json:"finalGravity"`
	Steps          int     `json:"steps"`
	SpringLength   float64 `json:"springLength"`
	SpringConstant float64 `json:"springConstant"`
	Damping        float64 `json:"damping"`
	CentralGravity float64 `json:"centralGravity"`
}

// DefaultPhysics returns the layout parameters tuned for 50 nodes.
func DefaultPhysics() Physics {
	return Physics{
		InitialGravity: -8000,
		FinalGravity:   -2000,
		Steps:          300,
		SpringLength:   120,
		SpringConstant: 0.04,
		Damping:        0.09,
		CentralGravity: 0.3,
	}
}

// Options configures the exported view.
type Options struct {
	TopN                int
	MinCollocationCount int64
	MaxEdges            int
	Title               string
	Physics             Physics
}

// DefaultOptions returns the default view limits.
func DefaultOptions() Options {
	return Options{
		TopN:                50,
		MinCollocationCount: 2,
		MaxEdges:            200,
		Title:               "Vocabulary network",
		Physics:             DefaultPhysics(),
	}
}

// Node is one displayed word.
type Node struct {
	ID           string   `json:"id"`
	Count        int      `json:"count"`
	Size         int      `json:"size"`
	Tier         int      `json:"tier"`
	Color        string   `json:"color"`
	POS          string   `json:"pos"`
	Lemma        string   `json:"lemma"`
	Stem         string   `json:"stem"`
	Collocations []string `json:"collocations"`
	Tooltip      string   `json:"tooltip"`
}

// Edge links two displayed words.
type Edge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Count int64   `json:"count"`
	NPMI  float64 `json:"npmi"`
	Width float64 `json:"width"`
}

// Document is everything the template needs.
type Document struct {
	Title      string
	Generated  time.Time
	Candidates int
	Sentences  int64
	Nodes      []Node
	Edges      []Edge
	Physics    Physics
	Legend     []string
}

// Build turns an analysis into a renderable document.
func Build(a analytics.Analysis, opts Options, now time.Time) Document {
	top := a.TopWords(opts.TopN)
	doc := Document{
		Title:      opts.Title,
		Generated:  now,
		Candidates: len(a.Ranked),
		Sentences:  a.Sentences,
		Physics:    opts.Physics,
		Legend:     tierColors[:],
		Nodes:      make([]Node, 0, len(top)),
	}
	if len(top) == 0 {
		return doc
	}

	maxCount := top[0].Count
	shown := make(map[string]bool, len(top))
	for _, cand := range top {
		shown[cand.Word] = true
		tier := Tier(cand.Count, maxCount)
		node := Node{
			ID:    cand.Word,
			Count: cand.Count,
			Size:  NodeSize(cand.Count),
			Tier:  tier,
			Color: tierColors[tier],
			POS:   cand.POS.String(),
			Lemma: cand.Lemma,
			Stem:  cand.Stem,
		}
		for _, col := range a.Graph.Neighbors(cand.Word, tooltipTop) {
			node.Collocations = append(node.Collocations, fmt.Sprintf("%s + %s (%d)", col.A, col.B, col.Count))
		}
		node.Tooltip = tooltip(cand, node.Collocations)
		doc.Nodes = append(doc.Nodes, node)
	}

	var maxEdge int64 = 1
	cols := a.Graph.Among(shown, opts.MinCollocationCount, opts.MaxEdges)
	for _, col := range cols {
		if col.Count > maxEdge {
			maxEdge = col.Count
		}
	}
	for _, col := range cols {
		doc.Edges = append(doc.Edges, Edge{
			From:  col.A,
			To:    col.B,
			Count: col.Count,
			NPMI:  col.NPMI,
			Width: 1 + 7*float64(col.Count)/float64(maxEdge),
		})
	}
	return doc
}

// Tier maps count/maxCount onto the five color bands: >0.8, >0.6, >0.4,
// >0.2, else. Tier 0 is the most frequent.
func Tier(count, maxCount int) int {
	if maxCount <= 0 {
		return len(tierColors) - 1
	}
	ratio := float64(count) / float64(maxCount)
	switch {
	case ratio > 0.8:
		return 0
	case ratio > 0.6:
		return 1
	case ratio > 0.4:
		return 2
	case ratio > 0.2:
		return 3
	}
	return 4
}

// NodeSize is 2×count clamped to [8, 25].
func NodeSize(count int) int {
	return max(minNodeSize, min(maxNodeSize, 2*count))
}

func tooltip(cand filter.Candidate, cols []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\ncount: %d\npos: %s\nlemma: %s\nstem: %s", cand.Word, cand.Count, cand.POS, cand.Lemma, cand.Stem)
	if len(cols) > 0 {
		b.WriteString("\ncollocations: ")
		b.WriteString(strings.Join(cols, ", "))
	}
	return b.String()
}

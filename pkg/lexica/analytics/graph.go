package analytics

import (
	"sort"

	"github.com/cognicore/lexica/pkg/lexica/pmi"
)

// Graph is the sparse weighted collocation graph.
type Graph struct {
	counter *pmi.Counter
	edges   []Collocation
	adj     map[string][]Collocation
}

func newGraph(counter *pmi.Counter) *Graph {
	calc := pmi.NewCalculator(pmi.DefaultEpsilon)
	g := &Graph{
		counter: counter,
		adj:     make(map[string][]Collocation),
	}
	for _, p := range counter.Pairs() {
		col := Collocation{
			A:     p.A,
			B:     p.B,
			Count: counter.Nxy[p],
			NPMI:  calc.PairNPMI(counter, p),
		}
		g.edges = append(g.edges, col)
		g.adj[p.A] = append(g.adj[p.A], col)
		g.adj[p.B] = append(g.adj[p.B], col)
	}
	sortCollocations(g.edges)
	for w := range g.adj {
		sortCollocations(g.adj[w])
	}
	return g
}

// sortCollocations orders by count desc, then NPMI desc, then A, B.
func sortCollocations(cols []Collocation) {
	sort.Slice(cols, func(i, j int) bool {
		if cols[i].Count != cols[j].Count {
			return cols[i].Count > cols[j].Count
		}
		if cols[i].NPMI != cols[j].NPMI {
			return cols[i].NPMI > cols[j].NPMI
		}
		if cols[i].A != cols[j].A {
			return cols[i].A < cols[j].A
		}
		return cols[i].B < cols[j].B
	})
}

// Count returns the co-occurrence count of a and b in either order.
func (g *Graph) Count(a, b string) int64 {
	return g.counter.PairCount(a, b)
}

// Len returns the number of distinct pairs.
func (g *Graph) Len() int {
	return len(g.edges)
}

// Collocations returns every pair, strongest first.
func (g *Graph) Collocations() []Collocation {
	out := make([]Collocation, len(g.edges))
	copy(out, g.edges)
	return out
}

// Neighbors returns up to k collocations involving word, strongest first.
// k <= 0 returns all.
func (g *Graph) Neighbors(word string, k int) []Collocation {
	cols := g.adj[word]
	if k > 0 && len(cols) > k {
		cols = cols[:k]
	}
	out := make([]Collocation, len(cols))
	copy(out, cols)
	return out
}

// Among returns pairs whose members are both in words and whose count is at
// least minCount, strongest first, capped at limit when limit > 0.
func (g *Graph) Among(words map[string]bool, minCount int64, limit int) []Collocation {
	var out []Collocation
	for _, col := range g.edges {
		if col.Count < minCount || !words[col.A] || !words[col.B] {
			continue
		}
		out = append(out, col)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

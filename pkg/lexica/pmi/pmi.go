// Package pmi counts sentence-level co-occurrence and scores word pairs with
// pointwise mutual information.
package pmi

import "math"

// DefaultEpsilon is the additive smoothing applied to every count.
const DefaultEpsilon = 1.0

// Calculator scores pairs from sentence counts with additive smoothing.
type Calculator struct {
	epsilon float64
}

// NewCalculator returns a Calculator. A non-positive epsilon selects
// DefaultEpsilon.
func NewCalculator(epsilon float64) *Calculator {
	if epsilon <= 0 {
		epsilon = DefaultEpsilon
	}
	return &Calculator{epsilon: epsilon}
}

// PMI is log(N·(n_ab+ε) / ((n_a+ε)(n_b+ε))) over n sentences.
func (c *Calculator) PMI(nAB, nA, nB, n int64) float64 {
	if n == 0 {
		return 0
	}
	joint := float64(nAB) + c.epsilon
	marginals := (float64(nA) + c.epsilon) * (float64(nB) + c.epsilon)
	return math.Log(joint * float64(n) / marginals)
}

// NPMI divides PMI by -log p(a,b) and clamps the result to [-1, 1].
// Pairs that never co-occur score 0.
func (c *Calculator) NPMI(nAB, nA, nB, n int64) float64 {
	if n == 0 || nAB == 0 {
		return 0
	}
	h := -math.Log((float64(nAB) + c.epsilon) / (float64(n) + c.epsilon))
	if h == 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, c.PMI(nAB, nA, nB, n)/h))
}

// PairNPMI scores a counted pair.
func (c *Calculator) PairNPMI(counts *Counter, p WordPair) float64 {
	return c.NPMI(counts.Nxy[p], counts.WordCount(p.A), counts.WordCount(p.B), counts.TotalSentences())
}

package pmi

import (
	"math"
	"testing"
)

func TestPMIPositiveAssociation(t *testing.T) {
	calc := NewCalculator(1.0)

	// co-occur in 8 of 20 sentences, each word in 10
	pmi := calc.PMI(8, 10, 10, 20)
	if pmi <= 0 {
		t.Errorf("PMI for strong association should be positive, got %f", pmi)
	}
}

func TestPMINegativeAssociation(t *testing.T) {
	calc := NewCalculator(1.0)

	pmi := calc.PMI(5, 50, 50, 100)
	if pmi >= 0 {
		t.Errorf("PMI for anti-correlated words should be negative, got %f", pmi)
	}
}

func TestPMIZeroSentences(t *testing.T) {
	calc := NewCalculator(1.0)
	if calc.PMI(0, 0, 0, 0) != 0 {
		t.Error("PMI with zero sentences should return 0")
	}
}

func TestPMIEpsilonDefault(t *testing.T) {
	calc := NewCalculator(-1.0)
	if pmi := calc.PMI(0, 10, 10, 100); math.IsInf(pmi, 0) || math.IsNaN(pmi) {
		t.Errorf("non-positive epsilon should default to 1.0, got %f", pmi)
	}
}

func TestPMISymmetry(t *testing.T) {
	calc := NewCalculator(1.0)
	pmi1 := calc.PMI(10, 20, 15, 100)
	pmi2 := calc.PMI(10, 15, 20, 100)
	if math.Abs(pmi1-pmi2) > 1e-9 {
		t.Errorf("PMI should be symmetric, got %f and %f", pmi1, pmi2)
	}
}

func TestNPMIRange(t *testing.T) {
	calc := NewCalculator(1.0)

	testCases := []struct {
		nAB, nA, nB, N int64
	}{
		{50, 50, 50, 100},
		{0, 50, 50, 100},
		{10, 20, 20, 100},
		{1, 1, 1, 1},
		{3, 3, 3, 3},
	}

	for _, tc := range testCases {
		npmi := calc.NPMI(tc.nAB, tc.nA, tc.nB, tc.N)
		if npmi < -1.0 || npmi > 1.0 || math.IsNaN(npmi) {
			t.Errorf("NPMI out of range [-1, 1]: %f for case %+v", npmi, tc)
		}
	}
}

func TestCounterAddSentence(t *testing.T) {
	c := NewCounter()
	c.AddSentence([]string{"garden", "river", "garden", ""})
	c.AddSentence([]string{"river", "stone"})

	if c.TotalSentences() != 2 {
		t.Errorf("expected 2 sentences, got %d", c.TotalSentences())
	}
	if c.WordCount("garden") != 1 {
		t.Errorf("repeated word should count once per sentence, got %d", c.WordCount("garden"))
	}
	if c.WordCount("river") != 2 {
		t.Errorf("river should appear in 2 sentences, got %d", c.WordCount("river"))
	}
	if c.UniquePairs() != 2 {
		t.Errorf("expected 2 pairs, got %d", c.UniquePairs())
	}
}

func TestCounterSymmetricNoSelfPairs(t *testing.T) {
	c := NewCounter()
	c.AddSentence([]string{"zebra", "apple", "zebra"})
	c.AddSentence([]string{"apple", "zebra"})

	if c.PairCount("zebra", "apple") != c.PairCount("apple", "zebra") {
		t.Error("pair count should be symmetric")
	}
	if c.PairCount("apple", "zebra") != 2 {
		t.Errorf("expected 2, got %d", c.PairCount("apple", "zebra"))
	}
	if c.PairCount("zebra", "zebra") != 0 {
		t.Error("self pairs must not be counted")
	}
	for _, p := range c.Pairs() {
		if p.A >= p.B {
			t.Errorf("pair not canonical: %+v", p)
		}
	}
}

func TestCounterPairsSorted(t *testing.T) {
	c := NewCounter()
	c.AddSentence([]string{"c", "a", "b"})

	got := c.Pairs()
	want := []WordPair{{"a", "b"}, {"a", "c"}, {"b", "c"}}
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestPairNPMIUsesCounts(t *testing.T) {
	c := NewCounter()
	c.AddSentence([]string{"harbor", "pilot"})
	c.AddSentence([]string{"harbor", "pilot", "ledger"})
	c.AddSentence([]string{"ledger"})

	calc := NewCalculator(0)
	p := NewPair("pilot", "harbor")
	want := calc.NPMI(2, 2, 2, 3)
	if got := calc.PairNPMI(c, p); math.Abs(got-want) > 1e-12 {
		t.Errorf("PairNPMI = %f, want %f", got, want)
	}
	if got := calc.PairNPMI(c, NewPair("harbor", "absent")); got != 0 {
		t.Errorf("unseen pair should score 0, got %f", got)
	}
}

package enrich

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
	"gonum.org/v1/gonum/stat/distuv"
)

// ContingencyTable is a 2x2 count table laid out as
//
//	A B
//	C D
type ContingencyTable struct {
	A, B, C, D int
}

// TestResult holds the outcome of the one-sided exact test on a table.
type TestResult struct {
	P         float64 // P(X >= A) under the hypergeometric null
	OddsRatio float64 // sample odds ratio AD/BC
	CILow     float64 // 95% Wald interval on the odds ratio
	CIHigh    float64
}

// FisherExact runs Fisher's exact test on t with the one-sided "greater"
// alternative: the returned p-value is the probability of observing a
// top-left cell at least as large as A with all margins fixed.
//
// The odds ratio is undefined (NaN) when B*C is zero and the p-value is NaN
// when either margin of the first row or column is degenerate with A; callers
// must treat NaN as "test undefined", not as a sentinel count.
func FisherExact(t ContingencyTable) TestResult {
	var res TestResult
	res.OddsRatio = oddsRatio(t)
	res.CILow, res.CIHigh = waldInterval(t, res.OddsRatio)

	n := t.A + t.B + t.C + t.D
	if n == 0 {
		res.P = math.NaN()
		return res
	}

	r1 := t.A + t.B // first row total
	c1 := t.A + t.C // first column total
	r2 := t.C + t.D

	// upper end of the hypergeometric support for these margins
	kMax := minInt(r1, c1)

	logDenom := combin.LogGeneralizedBinomial(float64(n), float64(c1))
	var p float64
	for k := t.A; k <= kMax; k++ {
		logP := combin.LogGeneralizedBinomial(float64(r1), float64(k)) +
			combin.LogGeneralizedBinomial(float64(r2), float64(c1-k)) -
			logDenom
		p += math.Exp(logP)
	}
	if p > 1 {
		p = 1
	}
	res.P = p
	return res
}

func oddsRatio(t ContingencyTable) float64 {
	num := float64(t.A) * float64(t.D)
	denom := float64(t.B) * float64(t.C)
	if denom == 0 {
		return math.NaN()
	}
	return num / denom
}

// waldInterval computes a 95% normal-approximation interval on the odds
// ratio. NaN when any cell is zero, where the approximation has no support.
func waldInterval(t ContingencyTable, or float64) (low, high float64) {
	if t.A == 0 || t.B == 0 || t.C == 0 || t.D == 0 || math.IsNaN(or) {
		return math.NaN(), math.NaN()
	}
	se := math.Sqrt(1/float64(t.A) + 1/float64(t.B) + 1/float64(t.C) + 1/float64(t.D))
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.975)
	logOR := math.Log(or)
	return math.Exp(logOR - z*se), math.Exp(logOR + z*se)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

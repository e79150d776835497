// Package enrich scores per-sample APOBEC mutagenesis enrichment: the rate of
// tCw/wGa-motif mutations relative to the motif's availability in the local
// sequence background, with a one-sided Fisher exact test per sample.
package enrich

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/dasnellings/mutsig/aggregate"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// EnrichedThreshold is the fixed enrichment-ratio cutoff for flagging a
// sample as APOBEC enriched.
const EnrichedThreshold = 2.0

// Result is the per-sample enrichment outcome. Ratio, PValue, OddsRatio and
// the interval bounds are NaN when the computation is undefined (zero
// APOBEC-type mutations or zero background C); Enriched is false for such
// samples.
type Result struct {
	Sample    string
	Ratio     float64
	PValue    float64
	OddsRatio float64
	CILow     float64
	CIHigh    float64
	Enriched  bool
}

// Score computes the enrichment result for one sample aggregate.
//
// The ratio is (combined tCw/wGa mutations / APOBEC-type mutations) divided
// by (background tcw motifs / background C bases). The contingency table puts
// the combined count against the background tcw count on the first row and
// the respective remainders on the second.
func Score(s *aggregate.Sample) Result {
	res := Result{Sample: s.Name}

	combined := s.Combined()
	apobec := s.APOBECType
	bgTCW := s.BgTCW()
	bgC := s.BgC

	if apobec == 0 || bgC == 0 {
		res.Ratio = math.NaN()
		res.PValue = math.NaN()
		res.OddsRatio = math.NaN()
		res.CILow = math.NaN()
		res.CIHigh = math.NaN()
		return res
	}

	res.Ratio = (float64(combined) / float64(apobec)) / (float64(bgTCW) / float64(bgC))

	test := FisherExact(ContingencyTable{
		A: combined,
		B: bgTCW,
		C: apobec - combined,
		D: bgC - bgTCW,
	})
	res.PValue = test.P
	res.OddsRatio = test.OddsRatio
	res.CILow = test.CILow
	res.CIHigh = test.CIHigh

	res.Enriched = res.Ratio > EnrichedThreshold
	return res
}

// ScoreAll scores every sample in the table and returns results sorted by
// ascending p-value, undefined (NaN) p-values last.
func ScoreAll(t *aggregate.Table) []Result {
	var results []Result
	for _, name := range t.Samples() {
		results = append(results, Score(t.Get(name)))
	}
	sort.SliceStable(results, func(i, j int) bool {
		pi, pj := results[i].PValue, results[j].PValue
		switch {
		case math.IsNaN(pi):
			return false
		case math.IsNaN(pj):
			return true
		default:
			return pi < pj
		}
	})
	return results
}

// header for the per-sample table. Background-derived counts carry a bg_
// prefix to distinguish them from mutation counts.
var tableHeader = []string{
	"sample",
	"n_A", "n_C", "n_G", "n_T", "n_mutations", "n_apobec_type",
	"tCw_to_A", "tCw_to_G", "tCw_to_T", "wGa_to_A", "wGa_to_C", "wGa_to_T",
	"tCw", "wGa", "tCw_wGa_combined",
	"bg_A", "bg_C", "bg_G", "bg_T",
	"bg_TCA", "bg_TCT", "bg_AGA", "bg_TGA", "bg_tcw", "bg_wga",
	"apobec_enrichment_ratio", "fisher_pvalue", "odds_ratio", "ci_low", "ci_high",
	"enriched",
}

// WriteTable writes the per-sample enrichment table in result order as
// tab-separated text.
func WriteTable(filename string, t *aggregate.Table, results []Result) {
	out := fileio.EasyCreate(filename)
	fmt.Fprintln(out, strings.Join(tableHeader, "\t"))
	for _, r := range results {
		s := t.Get(r.Sample)
		row := []string{
			s.Name,
			itoa(s.NA), itoa(s.NC), itoa(s.NG), itoa(s.NT), itoa(s.NMutations), itoa(s.APOBECType),
			itoa(s.TCWtoA()), itoa(s.TCWtoG()), itoa(s.TCWtoT()), itoa(s.WGAtoA()), itoa(s.WGAtoC()), itoa(s.WGAtoT()),
			itoa(s.TCW()), itoa(s.WGA()), itoa(s.Combined()),
			itoa(s.BgA), itoa(s.BgC), itoa(s.BgG), itoa(s.BgT),
			itoa(s.BgTCA), itoa(s.BgTCT), itoa(s.BgAGA), itoa(s.BgTGA), itoa(s.BgTCW()), itoa(s.BgWGA()),
			ftoa(r.Ratio), ftoa(r.PValue), ftoa(r.OddsRatio), ftoa(r.CILow), ftoa(r.CIHigh),
			fmt.Sprintf("%t", r.Enriched),
		}
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

func itoa(i int) string {
	return fmt.Sprintf("%d", i)
}

func ftoa(f float64) string {
	return fmt.Sprintf("%g", f)
}

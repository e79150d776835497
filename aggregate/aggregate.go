// Package aggregate accumulates per-sample mutation and background counts
// from classified variants.
package aggregate

import (
	"github.com/dasnellings/mutsig/context"
	"github.com/dasnellings/mutsig/motif"
	"github.com/dasnellings/mutsig/variant"
	"golang.org/x/exp/slices"
)

// Sample holds all counts accumulated for one sample. Map lookups during
// accumulation rely on Go's zero value for absent keys, so every count reads
// as zero until observed.
type Sample struct {
	Name string

	// background window composition summed over this sample's variants
	BgA, BgC, BgG, BgT int
	BgTCA, BgTCT       int
	BgAGA, BgTGA       int

	// raw substitution totals keyed by reference base
	NA, NC, NG, NT int
	NMutations     int

	// C>T + G>A + C>G + G>C substitutions
	APOBECType int

	// raw-orientation motif counts, e.g. "T[C>A]A"
	rawMotifs map[string]int

	// pyrimidine-normalized 96-class counts keyed by type motif
	classes map[string]int
}

func newSample(name string) *Sample {
	return &Sample{
		Name:      name,
		rawMotifs: make(map[string]int),
		classes:   make(map[string]int),
	}
}

// BgTCW returns the background TCA+TCT motif count.
func (s *Sample) BgTCW() int { return s.BgTCA + s.BgTCT }

// BgWGA returns the background TGA+AGA motif count.
func (s *Sample) BgWGA() int { return s.BgTGA + s.BgAGA }

// TCWtoA returns mutations at a tCw motif changing C to A.
func (s *Sample) TCWtoA() int { return s.rawMotifs["T[C>A]A"] + s.rawMotifs["T[C>A]T"] }

// TCWtoG returns mutations at a tCw motif changing C to G.
func (s *Sample) TCWtoG() int { return s.rawMotifs["T[C>G]A"] + s.rawMotifs["T[C>G]T"] }

// TCWtoT returns mutations at a tCw motif changing C to T.
func (s *Sample) TCWtoT() int { return s.rawMotifs["T[C>T]A"] + s.rawMotifs["T[C>T]T"] }

// WGAtoA returns mutations at a wGa motif changing G to A.
func (s *Sample) WGAtoA() int { return s.rawMotifs["T[G>A]A"] + s.rawMotifs["A[G>A]A"] }

// WGAtoC returns mutations at a wGa motif changing G to C.
func (s *Sample) WGAtoC() int { return s.rawMotifs["T[G>C]A"] + s.rawMotifs["A[G>C]A"] }

// WGAtoT returns mutations at a wGa motif changing G to T.
func (s *Sample) WGAtoT() int { return s.rawMotifs["T[G>T]A"] + s.rawMotifs["A[G>T]A"] }

// TCW returns all tCw-motif mutations for this sample.
func (s *Sample) TCW() int { return s.TCWtoA() + s.TCWtoG() + s.TCWtoT() }

// WGA returns all wGa-motif mutations for this sample.
func (s *Sample) WGA() int { return s.WGAtoA() + s.WGAtoC() + s.WGAtoT() }

// Combined is the enrichment-ratio numerator: the tCw/wGa mutations whose
// normalized type is C>G or C>T. The exact motif union is inherited from the
// published formula and reproduced as observed.
func (s *Sample) Combined() int {
	return s.rawMotifs["T[C>G]T"] + s.rawMotifs["T[C>G]A"] +
		s.rawMotifs["T[C>T]T"] + s.rawMotifs["T[C>T]A"] +
		s.rawMotifs["T[G>C]A"] + s.rawMotifs["A[G>C]A"] +
		s.rawMotifs["T[G>A]A"] + s.rawMotifs["A[G>A]A"]
}

// Class returns the count for one of the 96 canonical classes.
func (s *Sample) Class(typeMotif string) int { return s.classes[typeMotif] }

// RawMotif returns the count for a raw-orientation motif string.
func (s *Sample) RawMotif(m string) int { return s.rawMotifs[m] }

// Table accumulates Sample aggregates keyed by sample name.
type Table struct {
	samples map[string]*Sample
}

// NewTable returns an empty aggregation table.
func NewTable() *Table {
	return &Table{samples: make(map[string]*Sample)}
}

// Add folds one classified variant into its sample's aggregate.
func (t *Table) Add(v variant.Variant, w context.Window, rec motif.Record) {
	s, ok := t.samples[v.Sample]
	if !ok {
		s = newSample(v.Sample)
		t.samples[v.Sample] = s
	}

	s.BgA += w.A
	s.BgC += w.C
	s.BgG += w.G
	s.BgT += w.T
	s.BgTCA += w.TCA
	s.BgTCT += w.TCT
	s.BgAGA += w.AGA
	s.BgTGA += w.TGA

	switch v.Ref {
	case "A":
		s.NA++
	case "C":
		s.NC++
	case "G":
		s.NG++
	case "T":
		s.NT++
	}
	s.NMutations++

	switch rec.Substitution {
	case "C>T", "G>A", "C>G", "G>C":
		s.APOBECType++
	}

	s.rawMotifs[rec.Motif]++
	s.classes[rec.TypeMotif]++
}

// Get returns the aggregate for a sample, or nil if unseen.
func (t *Table) Get(sample string) *Sample {
	return t.samples[sample]
}

// Samples returns all sample names in sorted order.
func (t *Table) Samples() []string {
	var names []string
	for name := range t.samples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

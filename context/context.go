// Package context extracts the flanking reference sequence around each
// variant: the 3-base trinucleotide and a wider background window whose
// composition feeds enrichment scoring.
package context

import (
	"github.com/dasnellings/mutsig/reference"
	"github.com/dasnellings/mutsig/variant"
	"golang.org/x/exp/slices"
)

// DefaultPad is the number of background bases taken on each side of the
// variant, giving a 41-base window.
const DefaultPad = 20

// Window holds the extracted sequence context for one variant together with
// the composition of its background window.
type Window struct {
	Trinucleotide string // 3 bases centered on the variant position
	Background    string // pad bases each side, trimmed at contig ends

	// background nucleotide composition
	A, C, G, T int

	// overlapping occurrences of the four APOBEC-relevant trinucleotides
	TCA, TCT, AGA, TGA int
}

// TCW returns the count of TCA+TCT motifs in the background window.
func (w Window) TCW() int { return w.TCA + w.TCT }

// WGA returns the count of TGA+AGA motifs in the background window.
func (w Window) WGA() int { return w.TGA + w.AGA }

// Extracted pairs a retained variant with its sequence context.
type Extracted struct {
	Variant variant.Variant
	Window  Window
}

// Diagnostics reports variants excluded during extraction. Callers can
// inspect these programmatically rather than scraping log output.
type Diagnostics struct {
	// UnknownContigs are contigs present in the variants but absent from the
	// sequence provider; all their variants are dropped.
	UnknownContigs []string
	// DroppedVariants counts variants dropped for unknown contigs.
	DroppedVariants int
	// RefMismatches identifies variants whose retrieved middle base did not
	// match the stated reference allele, or whose trinucleotide window runs
	// off the contig end. These are excluded from all downstream counts.
	RefMismatches []string
}

// Extract computes the sequence context of each variant. Variants are grouped
// by contig and each contig's spanning region is fetched from the provider in
// a single call. Variants on contigs unknown to the provider are dropped and
// reported; middle-base mismatches are reported per variant and excluded.
func Extract(vars []variant.Variant, ref reference.Provider, pad int) ([]Extracted, Diagnostics, error) {
	var diag Diagnostics

	byContig := make(map[string][]variant.Variant)
	for _, v := range vars {
		byContig[v.Contig] = append(byContig[v.Contig], v)
	}

	known := make(map[string]bool)
	for _, name := range ref.Contigs() {
		known[name] = true
	}

	var contigs []string
	for name := range byContig {
		if !known[name] {
			diag.UnknownContigs = append(diag.UnknownContigs, name)
			diag.DroppedVariants += len(byContig[name])
			continue
		}
		contigs = append(contigs, name)
	}
	slices.Sort(diag.UnknownContigs)
	slices.Sort(contigs)

	var out []Extracted
	for _, name := range contigs {
		group := byContig[name]
		size, _ := ref.Size(name)

		// one fetch per contig spanning all of its variant windows
		lo := group[0].Pos - pad
		hi := group[0].Pos + pad
		for _, v := range group {
			if v.Pos-pad < lo {
				lo = v.Pos - pad
			}
			if v.Pos+pad > hi {
				hi = v.Pos + pad
			}
		}
		lo = max(lo, 1)
		hi = min(hi, size)
		seq, err := ref.Sequence(name, lo, hi)
		if err != nil {
			return nil, diag, err
		}

		for _, v := range group {
			if v.Pos < 2 || v.Pos > size-1 {
				// trinucleotide would run off the contig
				diag.RefMismatches = append(diag.RefMismatches, v.ID())
				continue
			}
			var w Window
			w.Trinucleotide = seq[v.Pos-1-lo : v.Pos+2-lo]
			if string(w.Trinucleotide[1]) != v.Ref {
				diag.RefMismatches = append(diag.RefMismatches, v.ID())
				continue
			}
			bgStart := max(v.Pos-pad, 1)
			bgEnd := min(v.Pos+pad, size)
			w.Background = seq[bgStart-lo : bgEnd-lo+1]
			tally(&w)
			out = append(out, Extracted{Variant: v, Window: w})
		}
	}

	return out, diag, nil
}

// tally fills the composition counts from the background window. Motifs are
// counted at every offset, so overlapping occurrences all count.
func tally(w *Window) {
	for i := 0; i < len(w.Background); i++ {
		switch w.Background[i] {
		case 'A':
			w.A++
		case 'C':
			w.C++
		case 'G':
			w.G++
		case 'T':
			w.T++
		}
		if i+3 > len(w.Background) {
			continue
		}
		switch w.Background[i : i+3] {
		case "TCA":
			w.TCA++
		case "TCT":
			w.TCT++
		case "AGA":
			w.AGA++
		case "TGA":
			w.TGA++
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

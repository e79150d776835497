// Package sig runs the full signature pipeline: variant preparation, context
// extraction, substitution classification, per-sample aggregation, APOBEC
// enrichment scoring and matrix assembly.
package sig

import (
	"fmt"
	"log"

	"github.com/dasnellings/mutsig/aggregate"
	"github.com/dasnellings/mutsig/context"
	"github.com/dasnellings/mutsig/enrich"
	"github.com/dasnellings/mutsig/matrix"
	"github.com/dasnellings/mutsig/motif"
	"github.com/dasnellings/mutsig/reference"
	"github.com/dasnellings/mutsig/variant"
)

// Config carries the pipeline options of a single run.
type Config struct {
	// Reference serves flanking sequence for context extraction.
	Reference reference.Provider
	// ContigPrefix and PrefixMode rewrite variant contig names to match the
	// reference naming scheme.
	ContigPrefix string
	PrefixMode   variant.PrefixMode
	// IgnoreContigs drops variants on these contigs before extraction.
	IgnoreContigs []string
	// IncludeSynonymous adds SilentPool variants back into the working set.
	IncludeSynonymous bool
	// Pad is the background flank size; context.DefaultPad when zero.
	Pad int
	// Verbose > 0 logs progress and dropped-variant warnings.
	Verbose int
}

// Diagnostics collects the structured warnings of a run.
type Diagnostics struct {
	// UnknownContigs and DroppedVariants describe variants removed because
	// their contig is absent from the reference.
	UnknownContigs  []string
	DroppedVariants int
	// RefMismatches identifies variants whose retrieved context contradicted
	// the stated reference allele.
	RefMismatches []string
	// Unclassified counts variants skipped because the substitution or a
	// flanking base fell outside the 96-class space (ambiguous bases).
	Unclassified int
}

// Bundle is the pipeline output.
type Bundle struct {
	Matrix      matrix.Matrix
	Enrichment  []enrich.Result
	Aggregates  *aggregate.Table
	Diagnostics Diagnostics
}

// Run executes the pipeline over the input variants. silentPool carries
// pre-segregated silent-class variants for synonymous inclusion; it may be
// nil. Returns variant.ErrNoVariants when filtering or contig matching
// leaves nothing to process.
func Run(vars []variant.Variant, silentPool []variant.Variant, cfg Config) (Bundle, error) {
	var bundle Bundle

	pad := cfg.Pad
	if pad == 0 {
		pad = context.DefaultPad
	}

	snvs, err := variant.Prepare(vars, variant.Options{
		IncludeSynonymous: cfg.IncludeSynonymous,
		SilentPool:        silentPool,
		IgnoreContigs:     cfg.IgnoreContigs,
		ContigPrefix:      cfg.ContigPrefix,
		PrefixMode:        cfg.PrefixMode,
	})
	if err != nil {
		return bundle, err
	}
	if cfg.Verbose > 0 {
		log.Printf("retained %d SNP variants after filtering\n", len(snvs))
	}

	extracted, cdiag, err := context.Extract(snvs, cfg.Reference, pad)
	if err != nil {
		return bundle, err
	}
	bundle.Diagnostics.UnknownContigs = cdiag.UnknownContigs
	bundle.Diagnostics.DroppedVariants = cdiag.DroppedVariants
	bundle.Diagnostics.RefMismatches = cdiag.RefMismatches
	if cfg.Verbose > 0 && len(cdiag.UnknownContigs) > 0 {
		log.Printf("WARNING: dropped %d variants on %d contigs absent from reference: %v\n",
			cdiag.DroppedVariants, len(cdiag.UnknownContigs), cdiag.UnknownContigs)
	}
	if cfg.Verbose > 0 && len(cdiag.RefMismatches) > 0 {
		log.Printf("WARNING: excluded %d variants with reference mismatch\n", len(cdiag.RefMismatches))
	}
	if len(extracted) == 0 {
		return bundle, fmt.Errorf("all variants dropped during context extraction: %w", variant.ErrNoVariants)
	}

	table := aggregate.NewTable()
	for _, e := range extracted {
		rec, ok := motif.Classify(e.Variant.Ref, e.Variant.Alt, e.Window.Trinucleotide)
		if !ok {
			bundle.Diagnostics.Unclassified++
			continue
		}
		table.Add(e.Variant, e.Window, rec)
	}
	if cfg.Verbose > 0 && bundle.Diagnostics.Unclassified > 0 {
		log.Printf("WARNING: %d variants with ambiguous context left unclassified\n", bundle.Diagnostics.Unclassified)
	}

	bundle.Aggregates = table
	bundle.Enrichment = enrich.ScoreAll(table)
	bundle.Matrix = matrix.Build(table)
	return bundle, nil
}

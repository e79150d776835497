// Package variant defines the somatic variant record consumed by the
// signature pipeline and the filtering applied before context extraction.
package variant

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vertgenlab/gonomics/vcf"
	"golang.org/x/exp/slices"
)

// ErrNoVariants is returned when filtering leaves zero SNP-type variants;
// the pipeline cannot produce any output in that case.
var ErrNoVariants = errors.New("no SNP-type variants remain after filtering")

// Variant is one somatic variant call. Pos is 1-based.
type Variant struct {
	Sample         string
	Contig         string
	Pos            int
	Ref            string
	Alt            string
	Type           string // e.g. "SNP", "INS", "DEL"
	Classification string // e.g. "Missense_Mutation"; empty when unknown
}

// IsSNP reports whether the variant is a single-base substitution.
func (v Variant) IsSNP() bool {
	return v.Type == "SNP" && len(v.Ref) == 1 && len(v.Alt) == 1
}

// ID returns a human-readable identifier used in diagnostics.
func (v Variant) ID() string {
	return v.Sample + " " + v.Contig + ":" + strconv.Itoa(v.Pos) + " " + v.Ref + ">" + v.Alt
}

// silentClassifications are variant classes excluded from signature analysis
// unless the caller opts in to synonymous variants.
var silentClassifications = []string{
	"3'UTR", "5'UTR", "3'Flank", "Targeted_Region", "Silent", "Intron",
	"RNA", "IGR", "Splice_Region", "5'Flank", "lincRNA",
}

// IsSilent reports whether the classification is in the silent category set.
func IsSilent(classification string) bool {
	return slices.Contains(silentClassifications, classification)
}

// SplitSilent partitions variants into non-silent and silent pools. The
// silent pool can be handed back to Prepare for synonymous inclusion.
func SplitSilent(vars []Variant) (rest, silent []Variant) {
	for _, v := range vars {
		if IsSilent(v.Classification) {
			silent = append(silent, v)
		} else {
			rest = append(rest, v)
		}
	}
	return rest, silent
}

// PrefixMode selects how a contig prefix option is applied.
type PrefixMode int

const (
	PrefixNone   PrefixMode = iota
	PrefixAdd               // concatenate prefix onto each contig name
	PrefixRemove            // strip the first literal occurrence of prefix
)

// Options configures Prepare.
type Options struct {
	// IncludeSynonymous concatenates SilentPool back into the working set.
	IncludeSynonymous bool
	// SilentPool holds pre-segregated silent-class variants supplied by the
	// caller; ignored unless IncludeSynonymous is set.
	SilentPool []Variant
	// IgnoreContigs drops variants on these contigs by exact name match.
	IgnoreContigs []string
	// ContigPrefix is applied to contig names according to PrefixMode.
	ContigPrefix string
	PrefixMode   PrefixMode
}

// Prepare filters and normalizes the input variant list: silent classes are
// removed (or the silent pool re-included), ignored contigs excluded, contig
// names rewritten, and only single-base SNP records retained. Returns
// ErrNoVariants if nothing survives.
func Prepare(vars []Variant, opt Options) ([]Variant, error) {
	var keep []Variant
	for _, v := range vars {
		if IsSilent(v.Classification) {
			continue
		}
		keep = append(keep, v)
	}
	if opt.IncludeSynonymous {
		keep = append(keep, opt.SilentPool...)
	}

	var out []Variant
	for _, v := range keep {
		if slices.Contains(opt.IgnoreContigs, v.Contig) {
			continue
		}
		switch opt.PrefixMode {
		case PrefixAdd:
			v.Contig = opt.ContigPrefix + v.Contig
		case PrefixRemove:
			v.Contig = strings.Replace(v.Contig, opt.ContigPrefix, "", 1)
		}
		if !v.IsSNP() {
			continue
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, ErrNoVariants
	}
	return out, nil
}

// FromVcf converts a vcf record into a Variant attributed to the given
// sample. Returns false for multiallelic sites and indels.
func FromVcf(v vcf.Vcf, sample string) (Variant, bool) {
	if !vcf.IsBiallelic(v) || !vcf.IsSubstitution(v) {
		return Variant{}, false
	}
	return Variant{
		Sample: sample,
		Contig: v.Chr,
		Pos:    v.Pos,
		Ref:    v.Ref,
		Alt:    v.Alt[0],
		Type:   "SNP",
	}, true
}

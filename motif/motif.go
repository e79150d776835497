// Package motif classifies single-base substitutions into the 96 canonical
// trinucleotide-change classes used for mutational signature analysis.
package motif

// Classes is the fixed column order of the 96-class space: substitution types
// grouped in the order C>A, C>G, C>T, T>A, T>C, T>G, flanking bases
// alphabetical within each type.
var Classes = []string{
	"A[C>A]A", "A[C>A]C", "A[C>A]G", "A[C>A]T", "C[C>A]A", "C[C>A]C", "C[C>A]G", "C[C>A]T",
	"G[C>A]A", "G[C>A]C", "G[C>A]G", "G[C>A]T", "T[C>A]A", "T[C>A]C", "T[C>A]G", "T[C>A]T",
	"A[C>G]A", "A[C>G]C", "A[C>G]G", "A[C>G]T", "C[C>G]A", "C[C>G]C", "C[C>G]G", "C[C>G]T",
	"G[C>G]A", "G[C>G]C", "G[C>G]G", "G[C>G]T", "T[C>G]A", "T[C>G]C", "T[C>G]G", "T[C>G]T",
	"A[C>T]A", "A[C>T]C", "A[C>T]G", "A[C>T]T", "C[C>T]A", "C[C>T]C", "C[C>T]G", "C[C>T]T",
	"G[C>T]A", "G[C>T]C", "G[C>T]G", "G[C>T]T", "T[C>T]A", "T[C>T]C", "T[C>T]G", "T[C>T]T",
	"A[T>A]A", "A[T>A]C", "A[T>A]G", "A[T>A]T", "C[T>A]A", "C[T>A]C", "C[T>A]G", "C[T>A]T",
	"G[T>A]A", "G[T>A]C", "G[T>A]G", "G[T>A]T", "T[T>A]A", "T[T>A]C", "T[T>A]G", "T[T>A]T",
	"A[T>C]A", "A[T>C]C", "A[T>C]G", "A[T>C]T", "C[T>C]A", "C[T>C]C", "C[T>C]G", "C[T>C]T",
	"G[T>C]A", "G[T>C]C", "G[T>C]G", "G[T>C]T", "T[T>C]A", "T[T>C]C", "T[T>C]G", "T[T>C]T",
	"A[T>G]A", "A[T>G]C", "A[T>G]G", "A[T>G]T", "C[T>G]A", "C[T>G]C", "C[T>G]G", "C[T>G]T",
	"G[T>G]A", "G[T>G]C", "G[T>G]G", "G[T>G]T", "T[T>G]A", "T[T>G]C", "T[T>G]G", "T[T>G]T",
}

// pyrimidine maps each of the 12 raw substitutions to its pyrimidine-referenced
// class. Purine-referenced substitutions map to the change at the complementary
// base; the six pyrimidine-referenced labels map to themselves, so applying the
// table twice is a no-op.
var pyrimidine = map[string]string{
	"A>G": "T>C", "T>C": "T>C",
	"C>T": "C>T", "G>A": "C>T",
	"A>T": "T>A", "T>A": "T>A",
	"A>C": "T>G", "T>G": "T>G",
	"C>A": "C>A", "G>T": "C>A",
	"C>G": "C>G", "G>C": "C>G",
}

var classIndex = initClassIndex()

func initClassIndex() map[string]int {
	m := make(map[string]int, len(Classes))
	for i := range Classes {
		m[Classes[i]] = i
	}
	return m
}

// Record holds the classification of a single substitution.
type Record struct {
	Substitution string // as observed, e.g. "G>A"
	Type         string // pyrimidine-normalized, e.g. "C>T"
	Motif        string // raw orientation with flanks, e.g. "T[G>A]A"
	TypeMotif    string // normalized substitution with the same flanks, e.g. "T[C>T]A"
}

// Substitution joins a reference and alternate allele into a "REF>ALT" label.
func Substitution(ref, alt string) string {
	return ref + ">" + alt
}

// Normalize maps a raw substitution label to its pyrimidine-referenced class.
// The second return is false for labels outside the 12-substitution space.
func Normalize(substitution string) (string, bool) {
	norm, ok := pyrimidine[substitution]
	return norm, ok
}

// ClassIndex returns the column position of a normalized motif in Classes, or
// false if the motif is not one of the 96 canonical classes.
func ClassIndex(typeMotif string) (int, bool) {
	i, ok := classIndex[typeMotif]
	return i, ok
}

// Classify derives the full substitution record for a variant given its
// 3-base reference context. Returns false if the substitution is not one of
// the 12 valid single-base changes or if a flanking base is ambiguous, in
// which case the variant cannot be placed in the 96-class space.
func Classify(ref, alt, trinucleotide string) (Record, bool) {
	var r Record
	if len(ref) != 1 || len(alt) != 1 || len(trinucleotide) != 3 {
		return r, false
	}
	r.Substitution = Substitution(ref, alt)
	var ok bool
	r.Type, ok = pyrimidine[r.Substitution]
	if !ok {
		return r, false
	}
	flank5 := string(trinucleotide[0])
	flank3 := string(trinucleotide[2])
	r.Motif = flank5 + "[" + r.Substitution + "]" + flank3
	r.TypeMotif = flank5 + "[" + r.Type + "]" + flank3
	if _, ok = classIndex[r.TypeMotif]; !ok {
		return r, false
	}
	return r, true
}

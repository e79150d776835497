// Package reference provides random access to reference genome sequence by
// contig name and 1-based inclusive coordinate range.
package reference

import (
	"fmt"
	"github.com/vertgenlab/gonomics/dna"
	"github.com/vertgenlab/gonomics/fasta"
	"golang.org/x/exp/slices"
)

// Provider serves uppercase reference subsequences. Coordinates are 1-based
// and inclusive on both ends. Implementations must be deterministic and safe
// to query repeatedly for the same range.
type Provider interface {
	// Sequence returns the bases spanning start..end on the named contig.
	Sequence(contig string, start, end int) (string, error)
	// Size returns the length of the named contig, or false if unknown.
	Size(contig string) (int, bool)
	// Contigs returns the names of all known contigs.
	Contigs() []string
}

// Genome is an indexed fasta-backed Provider. It seeks subsequences through
// the fai index rather than holding the genome in memory.
type Genome struct {
	seeker *fasta.Seeker
	idx    Index
}

// OpenGenome opens a fasta file for random access. The fai index is expected
// at fastafile + ".fai".
func OpenGenome(fastafile string) *Genome {
	return &Genome{
		seeker: fasta.NewSeeker(fastafile, ""),
		idx:    ReadIndex(fastafile + ".fai"),
	}
}

func (g *Genome) Sequence(contig string, start, end int) (string, error) {
	size, ok := g.idx.Size(contig)
	if !ok {
		return "", fmt.Errorf("contig not found: %s", contig)
	}
	if start < 1 || end > size || start > end {
		return "", fmt.Errorf("range %d-%d out of bounds for contig %s (len %d)", start, end, contig, size)
	}
	seq, err := fasta.SeekByName(g.seeker, contig, start-1, end)
	if err != nil {
		return "", err
	}
	dna.AllToUpper(seq)
	return dna.BasesToString(seq), nil
}

func (g *Genome) Size(contig string) (int, bool) {
	return g.idx.Size(contig)
}

func (g *Genome) Contigs() []string {
	return g.idx.Names()
}

// Close releases the underlying fasta file handle.
func (g *Genome) Close() error {
	return g.seeker.Close()
}

// MemGenome is an in-memory Provider keyed by contig name. Sequences are
// stored uppercase at construction.
type MemGenome map[string]string

// NewMemGenome uppercases the input sequences and wraps them as a Provider.
func NewMemGenome(contigs map[string]string) MemGenome {
	m := make(MemGenome, len(contigs))
	for name, seq := range contigs {
		b := dna.StringToBases(seq)
		dna.AllToUpper(b)
		m[name] = dna.BasesToString(b)
	}
	return m
}

func (m MemGenome) Sequence(contig string, start, end int) (string, error) {
	seq, ok := m[contig]
	if !ok {
		return "", fmt.Errorf("contig not found: %s", contig)
	}
	if start < 1 || end > len(seq) || start > end {
		return "", fmt.Errorf("range %d-%d out of bounds for contig %s (len %d)", start, end, contig, len(seq))
	}
	return seq[start-1 : end], nil
}

func (m MemGenome) Size(contig string) (int, bool) {
	seq, ok := m[contig]
	return len(seq), ok
}

func (m MemGenome) Contigs() []string {
	var names []string
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

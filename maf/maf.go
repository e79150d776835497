// Package maf reads variant records from MAF-style tab-separated tables.
package maf

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dasnellings/mutsig/variant"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// column names recognized in the header line
const (
	colSample         = "Tumor_Sample_Barcode"
	colContig         = "Chromosome"
	colPos            = "Start_Position"
	colRef            = "Reference_Allele"
	colAlt            = "Tumor_Seq_Allele2"
	colType           = "Variant_Type"
	colClassification = "Variant_Classification"
)

var requiredColumns = []string{
	colSample, colContig, colPos, colRef, colAlt, colType, colClassification,
}

// Read parses a MAF file into variant records. Comment lines starting with #
// are skipped; the first remaining line must be the column header. Only the
// seven columns above are consumed, all others pass through unread.
func Read(filename string) ([]variant.Variant, error) {
	file := fileio.EasyOpen(filename)

	line, done := fileio.EasyNextRealLine(file)
	if done {
		return nil, fmt.Errorf("maf: %s: no header line", filename)
	}
	idx, err := headerIndex(line)
	if err != nil {
		return nil, fmt.Errorf("maf: %s: %w", filename, err)
	}

	var vars []variant.Variant
	var col []string
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		col = strings.Split(line, "\t")
		if len(col) <= idx.max {
			return nil, fmt.Errorf("maf: %s: truncated record:\n%s", filename, line)
		}
		pos, err := strconv.Atoi(col[idx.pos])
		if err != nil {
			return nil, fmt.Errorf("maf: %s: bad position %q: %w", filename, col[idx.pos], err)
		}
		vars = append(vars, variant.Variant{
			Sample:         col[idx.sample],
			Contig:         col[idx.contig],
			Pos:            pos,
			Ref:            col[idx.ref],
			Alt:            col[idx.alt],
			Type:           col[idx.typ],
			Classification: col[idx.class],
		})
	}

	err = file.Close()
	exception.PanicOnErr(err)
	return vars, nil
}

type columnIndex struct {
	sample, contig, pos, ref, alt, typ, class int
	max                                       int
}

func headerIndex(header string) (columnIndex, error) {
	pos := make(map[string]int)
	for i, name := range strings.Split(header, "\t") {
		pos[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := pos[name]; !ok {
			return columnIndex{}, fmt.Errorf("missing column %s", name)
		}
	}
	idx := columnIndex{
		sample: pos[colSample],
		contig: pos[colContig],
		pos:    pos[colPos],
		ref:    pos[colRef],
		alt:    pos[colAlt],
		typ:    pos[colType],
		class:  pos[colClassification],
	}
	for _, i := range []int{idx.sample, idx.contig, idx.pos, idx.ref, idx.alt, idx.typ, idx.class} {
		if i > idx.max {
			idx.max = i
		}
	}
	return idx, nil
}

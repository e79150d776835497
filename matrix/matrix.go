// Package matrix assembles the final sample x 96-class count matrix.
package matrix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dasnellings/mutsig/aggregate"
	"github.com/dasnellings/mutsig/motif"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
)

// Matrix is a dense sample x 96-class count matrix. Columns follow
// motif.Classes exactly; classes unobserved in the input are zero columns, so
// the matrix never has missing values.
type Matrix struct {
	Samples []string // row keys, sorted
	Classes []string // always motif.Classes
	Counts  [][]int  // Counts[i][j] is Samples[i] x Classes[j]
}

// Build pivots the aggregation table into a matrix with the canonical column
// order.
func Build(t *aggregate.Table) Matrix {
	m := Matrix{
		Samples: t.Samples(),
		Classes: motif.Classes,
	}
	m.Counts = make([][]int, len(m.Samples))
	for i, name := range m.Samples {
		s := t.Get(name)
		row := make([]int, len(m.Classes))
		for j, class := range m.Classes {
			row[j] = s.Class(class)
		}
		m.Counts[i] = row
	}
	return m
}

// Row returns the count row for a sample, or nil if the sample is absent.
func (m Matrix) Row(sample string) []int {
	for i := range m.Samples {
		if m.Samples[i] == sample {
			return m.Counts[i]
		}
	}
	return nil
}

// RowSum returns the total count for a sample's row.
func (m Matrix) RowSum(sample string) int {
	var sum int
	for _, c := range m.Row(sample) {
		sum += c
	}
	return sum
}

// ClassTotals sums each column across all samples.
func (m Matrix) ClassTotals() []int {
	totals := make([]int, len(m.Classes))
	for i := range m.Counts {
		for j, c := range m.Counts[i] {
			totals[j] += c
		}
	}
	return totals
}

// Write writes the matrix as tab-separated text with a class header line and
// one row per sample.
func (m Matrix) Write(filename string) {
	out := fileio.EasyCreate(filename)
	fmt.Fprintln(out, "sample\t"+strings.Join(m.Classes, "\t"))
	fields := make([]string, len(m.Classes)+1)
	for i, name := range m.Samples {
		fields[0] = name
		for j, c := range m.Counts[i] {
			fields[j+1] = strconv.Itoa(c)
		}
		fmt.Fprintln(out, strings.Join(fields, "\t"))
	}
	err := out.Close()
	exception.PanicOnErr(err)
}

// Command mutsig computes a sample x 96-class trinucleotide mutation matrix
// and per-sample APOBEC enrichment scores from a somatic variant table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dasnellings/mutsig/enrich"
	"github.com/dasnellings/mutsig/maf"
	"github.com/dasnellings/mutsig/matrix"
	"github.com/dasnellings/mutsig/reference"
	"github.com/dasnellings/mutsig/sig"
	"github.com/dasnellings/mutsig/variant"
	"github.com/guptarohit/asciigraph"
)

func usage() {
	fmt.Print(
		"mutsig - Compute per-sample 96-class trinucleotide mutation matrices and APOBEC enrichment scores.\n" +
			"Usage:\n" +
			"mutsig [options] -i input.maf -r reference.fasta\n\n")
	flag.PrintDefaults()
}

func main() {
	input := flag.String("i", "", "Input MAF file with somatic variant calls. Samples are keyed on Tumor_Sample_Barcode.")
	ref := flag.String("r", "", "Reference FASTA file. Must be indexed (.fai).")
	matrixOut := flag.String("o", "stdout", "Output file for the sample x 96-class count matrix.")
	enrichOut := flag.String("e", "enrichment.tsv", "Output file for the per-sample APOBEC enrichment table.")
	useSyn := flag.Bool("useSyn", false, "Include synonymous (silent-class) variants in the analysis.")
	prefix := flag.String("prefix", "", "Contig name prefix to add or remove from variant records (e.g. \"chr\").")
	prefixMode := flag.String("prefixMode", "add", "How to apply -prefix. Options: add, remove.")
	ignore := flag.String("ignoreContigs", "", "Comma-separated contig names to exclude (exact match).")
	pad := flag.Int("pad", 20, "Number of background bases on either side of each variant.")
	plot := flag.Bool("plot", false, "Print an ascii plot of the summed 96-class spectrum to stderr.")
	verbose := flag.Int("v", 0, "Verbose output by setting to >0.")
	flag.Parse()

	if *input == "" || *ref == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for -i and -r")
	}

	mode := variant.PrefixNone
	if *prefix != "" {
		switch *prefixMode {
		case "add":
			mode = variant.PrefixAdd
		case "remove":
			mode = variant.PrefixRemove
		default:
			log.Fatalf("ERROR: unrecognized -prefixMode: %s\n", *prefixMode)
		}
	}

	var ignoreContigs []string
	if *ignore != "" {
		ignoreContigs = strings.Split(*ignore, ",")
	}

	mutsig(*input, *ref, *matrixOut, *enrichOut, *prefix, mode, ignoreContigs, *useSyn, *pad, *plot, *verbose)
}

func mutsig(input, fastafile, matrixOut, enrichOut, prefix string, mode variant.PrefixMode, ignoreContigs []string, useSyn bool, pad int, plot bool, verbose int) {
	genome := reference.OpenGenome(fastafile)
	defer genome.Close()

	vars, err := maf.Read(input)
	if err != nil {
		log.Fatalln("ERROR:", err)
	}
	if verbose > 0 {
		log.Printf("read %d variants from %s\n", len(vars), input)
	}

	// silent-class records feed back in only with -useSyn
	rest, silent := variant.SplitSilent(vars)

	bundle, err := sig.Run(rest, silent, sig.Config{
		Reference:         genome,
		ContigPrefix:      prefix,
		PrefixMode:        mode,
		IgnoreContigs:     ignoreContigs,
		IncludeSynonymous: useSyn,
		Pad:               pad,
		Verbose:           verbose,
	})
	if err != nil {
		log.Fatalln("ERROR:", err)
	}

	bundle.Matrix.Write(matrixOut)
	enrich.WriteTable(enrichOut, bundle.Aggregates, bundle.Enrichment)

	if plot {
		printSpectrum(bundle.Matrix)
	}
	if verbose > 0 {
		for _, r := range bundle.Enrichment {
			log.Printf("%s\tratio=%.3f\tp=%.4g\tenriched=%t\n", r.Sample, r.Ratio, r.PValue, r.Enriched)
		}
	}
}

// printSpectrum renders the summed 96-class counts as an ascii histogram.
func printSpectrum(m matrix.Matrix) {
	totals := m.ClassTotals()
	data := make([]float64, len(totals))
	for i := range totals {
		data[i] = float64(totals[i])
	}
	fmt.Fprintln(os.Stderr, asciigraph.Plot(data, asciigraph.Height(10), asciigraph.Precision(0)))
}

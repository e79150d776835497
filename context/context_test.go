package context

import (
	"strings"
	"testing"

	"github.com/dasnellings/mutsig/reference"
	"github.com/dasnellings/mutsig/variant"
)

func TestExtractWindow(t *testing.T) {
	// 41-base contig: variant dead center so the background is the whole contig
	seq := strings.Repeat("G", 19) + "TCA" + strings.Repeat("G", 19)
	ref := reference.NewMemGenome(map[string]string{"chr1": seq})

	vars := []variant.Variant{
		{Sample: "s1", Contig: "chr1", Pos: 21, Ref: "C", Alt: "T", Type: "SNP"},
	}

	out, diag, err := Extract(vars, ref, DefaultPad)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || diag.DroppedVariants != 0 || len(diag.RefMismatches) != 0 {
		t.Fatal("expected one clean extraction:", len(out), diag)
	}

	w := out[0].Window
	if w.Trinucleotide != "TCA" {
		t.Error("wrong trinucleotide:", w.Trinucleotide)
	}
	if len(w.Background) != 41 || w.Background != seq {
		t.Error("background should span the 41-base window:", w.Background)
	}
	if w.A != 1 || w.C != 1 || w.T != 1 || w.G != 38 {
		t.Error("wrong composition:", w.A, w.C, w.G, w.T)
	}
	if w.TCA != 1 || w.TCT != 0 || w.TCW() != 1 {
		t.Error("wrong tcw counts:", w.TCA, w.TCT)
	}
	if w.AGA != 0 || w.TGA != 0 || w.WGA() != 0 {
		t.Error("wrong wga counts:", w.AGA, w.TGA)
	}
}

func TestExtractOverlappingMotifs(t *testing.T) {
	// TCTCA contains TCT at offset 0 and TCA at offset 2
	seq := "GGGGGGGGGGGGGGGGGGTCTCAGGGGGGGGGGGGGGGGGG"
	ref := reference.NewMemGenome(map[string]string{"chr1": seq})

	vars := []variant.Variant{
		{Sample: "s1", Contig: "chr1", Pos: 22, Ref: "C", Alt: "A", Type: "SNP"},
	}
	out, _, err := Extract(vars, ref, DefaultPad)
	if err != nil {
		t.Fatal(err)
	}
	w := out[0].Window
	if w.TCT != 1 || w.TCA != 1 || w.TCW() != 2 {
		t.Error("overlapping motifs not counted:", w.TCT, w.TCA)
	}
}

func TestExtractTrimsAtContigEnds(t *testing.T) {
	seq := "ATCAGGGGGG" // 10 bases
	ref := reference.NewMemGenome(map[string]string{"chr1": seq})

	vars := []variant.Variant{
		{Sample: "s1", Contig: "chr1", Pos: 3, Ref: "C", Alt: "T", Type: "SNP"},
	}
	out, _, err := Extract(vars, ref, DefaultPad)
	if err != nil {
		t.Fatal(err)
	}
	w := out[0].Window
	if w.Trinucleotide != "TCA" {
		t.Error("wrong trinucleotide at contig edge:", w.Trinucleotide)
	}
	if w.Background != seq {
		t.Error("background should trim to the contig:", w.Background)
	}
}

func TestExtractUnknownContig(t *testing.T) {
	ref := reference.NewMemGenome(map[string]string{"chr1": strings.Repeat("GTCA", 20)})

	vars := []variant.Variant{
		{Sample: "s1", Contig: "chr1", Pos: 11, Ref: "C", Alt: "T", Type: "SNP"},
		{Sample: "s1", Contig: "chrUn_KI270442v1", Pos: 50, Ref: "C", Alt: "T", Type: "SNP"},
		{Sample: "s2", Contig: "chrUn_KI270442v1", Pos: 70, Ref: "G", Alt: "A", Type: "SNP"},
	}

	out, diag, err := Extract(vars, ref, DefaultPad)
	if err != nil {
		t.Fatal("unknown contig must not fail the run:", err)
	}
	if len(out) != 1 {
		t.Error("expected single retained variant, got", len(out))
	}
	if diag.DroppedVariants != 2 || len(diag.UnknownContigs) != 1 || diag.UnknownContigs[0] != "chrUn_KI270442v1" {
		t.Error("wrong drop diagnostics:", diag)
	}
}

func TestExtractRefMismatch(t *testing.T) {
	ref := reference.NewMemGenome(map[string]string{"chr1": strings.Repeat("GTCA", 20)})

	vars := []variant.Variant{
		// position 11 is C in the repeat, so claiming T is a caller error
		{Sample: "s1", Contig: "chr1", Pos: 11, Ref: "T", Alt: "A", Type: "SNP"},
		{Sample: "s1", Contig: "chr1", Pos: 15, Ref: "C", Alt: "T", Type: "SNP"},
	}

	out, diag, err := Extract(vars, ref, DefaultPad)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Error("mismatched variant should be excluded, got", len(out))
	}
	if len(diag.RefMismatches) != 1 || !strings.Contains(diag.RefMismatches[0], "chr1:11") {
		t.Error("mismatch not reported:", diag.RefMismatches)
	}
}

func TestExtractLowercaseReference(t *testing.T) {
	// providers uppercase their sequence, soft-masked input included
	ref := reference.NewMemGenome(map[string]string{"chr1": strings.Repeat("gtca", 20)})

	vars := []variant.Variant{
		{Sample: "s1", Contig: "chr1", Pos: 11, Ref: "C", Alt: "T", Type: "SNP"},
	}
	out, _, err := Extract(vars, ref, DefaultPad)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Window.Trinucleotide != "TCA" {
		t.Error("soft-masked sequence should still match:", out)
	}
}

package variant

import (
	"errors"
	"testing"

	"github.com/vertgenlab/gonomics/vcf"
)

func snp(sample, contig string, pos int, ref, alt, class string) Variant {
	return Variant{Sample: sample, Contig: contig, Pos: pos, Ref: ref, Alt: alt, Type: "SNP", Classification: class}
}

func TestPrepareSilentFilter(t *testing.T) {
	vars := []Variant{
		snp("s1", "chr1", 100, "C", "T", "Missense_Mutation"),
		snp("s1", "chr1", 200, "G", "A", "Silent"),
		snp("s1", "chr1", 300, "A", "G", "Intron"),
		snp("s1", "chr1", 400, "T", "C", "Nonsense_Mutation"),
	}

	out, err := Prepare(vars, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Error("silent classes should be removed, got", len(out), "variants")
	}
	for _, v := range out {
		if IsSilent(v.Classification) {
			t.Error("silent variant survived:", v.Classification)
		}
	}
}

func TestPrepareSynonymousPool(t *testing.T) {
	rest, silent := SplitSilent([]Variant{
		snp("s1", "chr1", 100, "C", "T", "Missense_Mutation"),
		snp("s1", "chr1", 200, "G", "A", "Silent"),
	})
	if len(rest) != 1 || len(silent) != 1 {
		t.Fatal("bad split:", len(rest), len(silent))
	}

	out, err := Prepare(rest, Options{IncludeSynonymous: true, SilentPool: silent})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Error("synonymous pool should be concatenated back, got", len(out))
	}

	out, err = Prepare(rest, Options{SilentPool: silent})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Error("pool must be ignored without IncludeSynonymous, got", len(out))
	}
}

func TestPrepareContigHandling(t *testing.T) {
	vars := []Variant{
		snp("s1", "1", 100, "C", "T", ""),
		snp("s1", "MT", 200, "G", "A", ""),
	}

	out, err := Prepare(vars, Options{IgnoreContigs: []string{"MT"}, ContigPrefix: "chr", PrefixMode: PrefixAdd})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Contig != "chr1" {
		t.Error("expected single variant on chr1, got", out)
	}

	vars = []Variant{snp("s1", "chr1", 100, "C", "T", "")}
	out, err = Prepare(vars, Options{ContigPrefix: "chr", PrefixMode: PrefixRemove})
	if err != nil {
		t.Fatal(err)
	}
	if out[0].Contig != "1" {
		t.Error("prefix removal failed:", out[0].Contig)
	}
}

func TestPrepareSNPOnly(t *testing.T) {
	vars := []Variant{
		snp("s1", "chr1", 100, "C", "T", ""),
		{Sample: "s1", Contig: "chr1", Pos: 200, Ref: "AT", Alt: "A", Type: "DEL"},
		{Sample: "s1", Contig: "chr1", Pos: 300, Ref: "CA", Alt: "TG", Type: "DNP"},
	}
	out, err := Prepare(vars, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || !out[0].IsSNP() {
		t.Error("only single-base SNPs should remain, got", out)
	}
}

func TestPrepareNoVariantsFatal(t *testing.T) {
	vars := []Variant{
		snp("s1", "chr1", 100, "C", "T", "Silent"),
		{Sample: "s1", Contig: "chr1", Pos: 200, Ref: "AT", Alt: "A", Type: "DEL"},
	}
	_, err := Prepare(vars, Options{})
	if !errors.Is(err, ErrNoVariants) {
		t.Error("expected ErrNoVariants, got", err)
	}
}

func TestFromVcf(t *testing.T) {
	v, ok := FromVcf(vcf.Vcf{Chr: "chr1", Pos: 100, Ref: "C", Alt: []string{"T"}}, "s1")
	if !ok {
		t.Fatal("biallelic substitution should convert")
	}
	if v.Sample != "s1" || v.Contig != "chr1" || v.Pos != 100 || v.Ref != "C" || v.Alt != "T" || !v.IsSNP() {
		t.Error("bad conversion:", v)
	}

	if _, ok = FromVcf(vcf.Vcf{Chr: "chr1", Pos: 100, Ref: "CA", Alt: []string{"C"}}, "s1"); ok {
		t.Error("indel should not convert")
	}
	if _, ok = FromVcf(vcf.Vcf{Chr: "chr1", Pos: 100, Ref: "C", Alt: []string{"T", "G"}}, "s1"); ok {
		t.Error("multiallelic site should not convert")
	}
}

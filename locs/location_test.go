package locs

import (
	"strings"
	"testing"
)

// fakeGenome satisfies Extender with a single contig "c1" under the
// bacterial start/stop sets.
type fakeGenome struct {
	seq []byte
}

func (f fakeGenome) ContigSeq(id string) []byte {
	if id == "c1" {
		return f.seq
	}
	return nil
}

func (f fakeGenome) IsStart(codon []byte) bool {
	switch strings.ToLower(string(codon)) {
	case "atg", "ttg", "ctg":
		return true
	}
	return false
}

func (f fakeGenome) IsStop(codon []byte) bool {
	switch strings.ToLower(string(codon)) {
	case "taa", "tag", "tga":
		return true
	}
	return false
}

func TestCreate(t *testing.T) {
	tests := []struct {
		contig string
		strand byte
		left   int
		right  int
		ok     bool
	}{
		{"c1", '+', 1, 10, true},
		{"c1", '-', 5, 5, true},
		{"c1", '+', 0, 10, false},
		{"c1", '+', 10, 9, false},
		{"c1", 'x', 1, 10, false},
	}
	for _, tt := range tests {
		_, err := Create(tt.contig, tt.strand, tt.left, tt.right)
		if (err == nil) != tt.ok {
			t.Errorf("Create(%q, %c, %d, %d): err = %v, want ok = %v",
				tt.contig, tt.strand, tt.left, tt.right, err, tt.ok)
		}
	}
}

func TestBeginEnd(t *testing.T) {
	plus := Must("c1", '+', 10, 30)
	if plus.Begin() != 10 || plus.End() != 30 {
		t.Errorf("plus strand: begin %d end %d, want 10 and 30", plus.Begin(), plus.End())
	}
	minus := Must("c1", '-', 10, 30)
	if minus.Begin() != 30 || minus.End() != 10 {
		t.Errorf("minus strand: begin %d end %d, want 30 and 10", minus.Begin(), minus.End())
	}
	if plus.Length() != 21 || minus.Length() != 21 {
		t.Errorf("lengths %d and %d, want 21", plus.Length(), minus.Length())
	}

	minus.SetBegin(36)
	if minus.Right != 36 || minus.Left != 10 {
		t.Errorf("after SetBegin(36): %v", minus)
	}
	plus.SetBegin(4)
	if plus.Left != 4 || plus.Right != 30 {
		t.Errorf("after SetBegin(4): %v", plus)
	}
}

func TestFrame(t *testing.T) {
	tests := []struct {
		strand byte
		left   int
		right  int
		frame  Frame
	}{
		{'+', 3, 11, P0},
		{'+', 1, 9, P1},
		{'+', 2, 10, P2},
		{'-', 1, 6, M0},
		{'-', 2, 7, M1},
		{'-', 3, 8, M2},
	}
	for _, tt := range tests {
		loc := Must("c1", tt.strand, tt.left, tt.right)
		if loc.Frame() != tt.frame {
			t.Errorf("%v frame = %v, want %v", loc, loc.Frame(), tt.frame)
		}
	}
	var zero Location
	if zero.Frame() != FrameNone {
		t.Errorf("zero location frame = %v, want %v", zero.Frame(), FrameNone)
	}
}

func TestDistance(t *testing.T) {
	base := Must("c1", '+', 10, 20)
	tests := []struct {
		other Location
		want  int
	}{
		{Must("c1", '+', 15, 30), -6}, // overlap of 6 bases
		{Must("c1", '-', 10, 20), -11},
		{Must("c1", '+', 21, 30), 0}, // abutting
		{Must("c1", '+', 25, 30), 4},
	}
	for _, tt := range tests {
		if d := base.Distance(tt.other); d != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", base, tt.other, d, tt.want)
		}
		if d := tt.other.Distance(base); d != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.other, base, d, tt.want)
		}
	}
	if d := base.Distance(Must("c2", '+', 10, 20)); d <= 0 {
		t.Errorf("cross-contig distance = %d, want positive", d)
	}
}

func TestContains(t *testing.T) {
	outer := Must("c1", '+', 10, 30)
	if !outer.Contains(Must("c1", '-', 12, 28)) {
		t.Error("inner location not contained")
	}
	if outer.Contains(Must("c1", '+', 12, 31)) {
		t.Error("overhanging location reported contained")
	}
	if outer.Contains(Must("c2", '+', 12, 28)) {
		t.Error("other-contig location reported contained")
	}
}

// extendTestSeq builds a 1500 bp contig of 'a' filler with a start codon
// at 1000 and a stop codon at 1450, both in the same frame.
func extendTestSeq() []byte {
	seq := []byte(strings.Repeat("a", 1500))
	copy(seq[999:], "atg")
	copy(seq[1449:], "taa")
	return seq
}

func TestExtendPlus(t *testing.T) {
	g := fakeGenome{seq: extendTestSeq()}
	loc := Must("c1", '+', 1249, 1302)
	got, err := loc.Extend(g)
	if err != nil {
		t.Fatalf("Extend(%v): %v", loc, err)
	}
	want := Must("c1", '+', 1000, 1452)
	if got != want {
		t.Fatalf("Extend(%v) = %v, want %v", loc, got, want)
	}
	// Extending a full ORF must be a no-op.
	again, err := got.Extend(g)
	if err != nil {
		t.Fatalf("second Extend(%v): %v", got, err)
	}
	if again != got {
		t.Errorf("Extend not idempotent: %v then %v", got, again)
	}
}

func TestExtendMinus(t *testing.T) {
	seq := []byte(strings.Repeat("a", 60))
	copy(seq[5:], "tta")  // stop taa, reading leftward
	copy(seq[47:], "cat") // start atg, reading leftward
	g := fakeGenome{seq: seq}

	loc := Must("c1", '-', 20, 38)
	got, err := loc.Extend(g)
	if err != nil {
		t.Fatalf("Extend(%v): %v", loc, err)
	}
	want := Must("c1", '-', 6, 50)
	if got != want {
		t.Fatalf("Extend(%v) = %v, want %v", loc, got, want)
	}
	if got.Length()%3 != 0 {
		t.Errorf("extended length %d not a codon multiple", got.Length())
	}
}

func TestExtendFailures(t *testing.T) {
	seq := []byte(strings.Repeat("a", 30))
	copy(seq[6:], "taa")
	copy(seq[12:], "atg")
	g := fakeGenome{seq: seq}

	// Upstream scan hits a stop before any start.
	if _, err := (Must("c1", '+', 10, 15)).Extend(g); err != ErrNoExtension {
		t.Errorf("stop before start: err = %v, want ErrNoExtension", err)
	}
	// Upstream scan runs off the left edge of the contig.
	if _, err := (Must("c1", '+', 2, 7)).Extend(g); err != ErrNoExtension {
		t.Errorf("off left edge: err = %v, want ErrNoExtension", err)
	}
	// Downstream scan runs off the right edge without a stop.
	if _, err := (Must("c1", '+', 19, 24)).Extend(g); err != ErrNoExtension {
		t.Errorf("no stop downstream: err = %v, want ErrNoExtension", err)
	}
	// Unknown contig.
	if _, err := (Must("c9", '+', 10, 15)).Extend(g); err != ErrNoExtension {
		t.Errorf("unknown contig: err = %v, want ErrNoExtension", err)
	}
}

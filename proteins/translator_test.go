package proteins

import "testing"

func TestNew(t *testing.T) {
	xl, err := New("11")
	if err != nil {
		t.Fatalf("New(11): %v", err)
	}
	if xl.Code() != "11" {
		t.Errorf("Code() = %q, want %q", xl.Code(), "11")
	}
	if _, err := New("no-such-code"); err == nil {
		t.Error("New with unknown code succeeded")
	}
}

func TestAa(t *testing.T) {
	xl, err := New("11")
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		codon string
		want  byte
	}{
		{"atg", 'M'},
		{"ATG", 'M'},
		{"gaa", 'E'},
		{"taa", '*'},
		{"tag", '*'},
		{"tga", '*'},
		{"nnn", 'X'},
	}
	for _, tt := range tests {
		if aa := xl.Aa([]byte(tt.codon)); aa != tt.want {
			t.Errorf("Aa(%q) = %c, want %c", tt.codon, aa, tt.want)
		}
	}
}

func TestStartsAndStops(t *testing.T) {
	bact, err := New("11")
	if err != nil {
		t.Fatal(err)
	}
	for _, codon := range []string{"atg", "ttg", "ctg", "ATG"} {
		if !bact.IsStart([]byte(codon)) {
			t.Errorf("code 11: IsStart(%q) = false", codon)
		}
	}
	if bact.IsStart([]byte("gtg")) {
		t.Error("code 11: gtg reported as a start")
	}
	for _, codon := range []string{"taa", "tag", "tga"} {
		if !bact.IsStop([]byte(codon)) {
			t.Errorf("code 11: IsStop(%q) = false", codon)
		}
	}
	if bact.IsStop([]byte("atg")) {
		t.Error("code 11: atg reported as a stop")
	}

	std, err := New("1")
	if err != nil {
		t.Fatal(err)
	}
	if !std.IsStart([]byte("atg")) || std.IsStart([]byte("ttg")) {
		t.Error("code 1 start set is atg only")
	}
}

func TestTranslate(t *testing.T) {
	xl, err := New("11")
	if err != nil {
		t.Fatal(err)
	}
	seq := []byte("atggaataa")
	tests := []struct {
		frame int
		want  string
	}{
		{1, "ME*"},
		{2, "WN"},
		{3, "GI"},
		{0, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := string(xl.Translate(seq, tt.frame)); got != tt.want {
			t.Errorf("Translate(%q, %d) = %q, want %q", seq, tt.frame, got, tt.want)
		}
	}
}

func TestPegTranslate(t *testing.T) {
	xl, err := New("11")
	if err != nil {
		t.Fatal(err)
	}
	// An alternative start translates to M.
	if got := string(xl.PegTranslate([]byte("ttggaagat"))); got != "MED" {
		t.Errorf("PegTranslate(ttggaagat) = %q, want %q", got, "MED")
	}
	// A non-start first codon is left alone.
	if got := string(xl.PegTranslate([]byte("gaagat"))); got != "ED" {
		t.Errorf("PegTranslate(gaagat) = %q, want %q", got, "ED")
	}
}

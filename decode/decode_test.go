package decode

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/baoilleach/deepsmiles/encode"
	"github.com/baoilleach/deepsmiles/token"
)

type decTest struct {
	smi, dsmi string
}

func TestBranchDecoding(t *testing.T) {
	dts := []decTest{
		{smi: "COC", dsmi: "COC"},
		{smi: "C(O)C", dsmi: "CO)C"},
		{smi: "C(=O)C", dsmi: "C=O)C"},
		{smi: "C[O]C", dsmi: "C[O]C"},
		{smi: "C(OC(=O)Cl)I", dsmi: "COC=O)Cl)))I"},
		{smi: "C(F)(F)C", dsmi: "CF)F)C"},
		{smi: "Cn1ccnc1", dsmi: "Cn1ccnc1"},
		{smi: "c1ccn(cc1)O", dsmi: "c1ccncc1))O"},
		{smi: "Cn1cccc-2nccc12", dsmi: "Cn1cccc-2nccc12"},
		{smi: "C%(12)CC%(12)", dsmi: "C%(12)CC%(12)"},
	}
	for _, dt := range dts {
		got, err := Decode(dt.dsmi, Branches(true))
		if err != nil {
			t.Errorf("%q: %v", dt.dsmi, err)
			continue
		}
		if got != dt.smi {
			t.Errorf("%q: got %q want %q", dt.dsmi, got, dt.smi)
		}
	}
}

// ringTest holds the input for the rings-only decoder and, when it differs,
// the input for the rings and branches decoder; "-" skips the latter.
type ringTest struct {
	smi, dsmi, both string
}

func TestRingDecoding(t *testing.T) {
	rts := []ringTest{
		{smi: "C1CCC1", dsmi: "CCCC4"},
		{smi: "C2CC1CCC1C2", dsmi: "CCCCCC4C7"},
		{smi: "c1c[nH]cc1", dsmi: "cc[nH]cc5"},
		{smi: "C1CCCCCCCCC1", dsmi: "CCCCCCCCCC%10"},
		{smi: "C1CCCCCCCCC1", dsmi: "CCCCCCCCCC%(10)"},
		{smi: "CCCCCCC1CCC1", dsmi: "CCCCCCCCCC%(4)"},
		{smi: "C1=C/CCCCCC/1", dsmi: "C=C/CCCCCC/8"},
		{smi: "C1C1C2C2C3C3C4C4C5C5C6C6C7C7C8C8C9C9C%10C%10", dsmi: "CC2CC2CC2CC2CC2CC2CC2CC2CC2CC2"},
		{smi: "C(CS)N", dsmi: "C(CS)N", both: "-"},
		{smi: "C[C@@H]1CCCO[C@]12CCCCO2", dsmi: "C[C@@H]CCCO[C@]6CCCCO6"},
		{smi: "C2C1=C/CCCCCC/12", dsmi: "CC=C/CCCCCC/89"},
		{smi: "C1C2=C/CCCCCC1/2", dsmi: "CC=C/CCCCCC9/8"},
		{smi: "C1CC(OC)CC1", dsmi: "CCC(OC)CC5", both: "CCCOC))CC5"},
	}
	for _, rt := range rts {
		got, err := Decode(rt.dsmi, Rings(true))
		if err != nil {
			t.Errorf("rings %q: %v", rt.dsmi, err)
		} else if got != rt.smi {
			t.Errorf("rings %q: got %q want %q", rt.dsmi, got, rt.smi)
		}
		in := rt.both
		if in == "-" {
			continue
		}
		if in == "" {
			in = rt.dsmi
		}
		got, err = Decode(in, Rings(true), Branches(true))
		if err != nil {
			t.Errorf("rings+branches %q: %v", in, err)
		} else if got != rt.smi {
			t.Errorf("rings+branches %q: got %q want %q", in, got, rt.smi)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	both := []string{"C8", "C))I", "%10C", "9C", "CCCCCC%(3CC", "C%(100)",
		"C[C@@CCl", "C%CC", "-5cc[nH]9", "C0", "C)C"}
	for _, in := range both {
		checkDecodeErr(t, in, Rings(true), Branches(true))
	}
	rings := []string{"C8", "%10C", "9C", "C%(100)",
		"C[C@@CCl", "C%CC", "-5cc[nH]9", "C)"}
	for _, in := range rings {
		checkDecodeErr(t, in, Rings(true))
	}
	branches := []string{"C))I", ")C", "C[O"}
	for _, in := range branches {
		checkDecodeErr(t, in, Branches(true))
	}
}

func checkDecodeErr(t *testing.T, in string, opts ...DecodeOption) {
	t.Helper()
	_, err := Decode(in, opts...)
	if err == nil {
		t.Errorf("%q: expected a decode error", in)
		return
	}
	var de *token.DecodeErr
	if !errors.As(err, &de) {
		t.Errorf("%q: %T is not a *token.DecodeErr", in, err)
		return
	}
	if de.Pos < 0 || de.Pos >= len(in) {
		t.Errorf("%q: offset %d out of range", in, de.Pos)
	}
	if de.Input != in {
		t.Errorf("%q: error carries input %q", in, de.Input)
	}
}

func TestDecodeErrorKinds(t *testing.T) {
	_, err := Decode("C))I", Rings(true), Branches(true))
	if !errors.Is(err, token.ErrTooManyPops) {
		t.Errorf("got %v, want %v", err, token.ErrTooManyPops)
	}
	_, err = Decode("C8", Rings(true), Branches(true))
	if !errors.Is(err, token.ErrRingSize) {
		t.Errorf("got %v, want %v", err, token.ErrRingSize)
	}
	_, err = Decode("C8", Rings(true))
	if !errors.Is(err, token.ErrRingSize) {
		t.Errorf("got %v, want %v", err, token.ErrRingSize)
	}
	_, err = Decode("CC))C", Rings(true), Branches(true))
	if !errors.Is(err, token.ErrDetached) {
		t.Errorf("got %v, want %v", err, token.ErrDetached)
	}
	_, err = Decode("C)C", Rings(true))
	if !errors.Is(err, token.ErrUnbalanced) {
		t.Errorf("got %v, want %v", err, token.ErrUnbalanced)
	}
}

func TestPassThrough(t *testing.T) {
	for _, s := range []string{"", "C))I", "%10C", "C1CC1"} {
		got, err := Decode(s)
		if err != nil || got != s {
			t.Errorf("%q: got %q, %v", s, got, err)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, opts := range [][]DecodeOption{
		{Rings(true)},
		{Branches(true)},
		{Rings(true), Branches(true)},
	} {
		got, err := Decode("", opts...)
		if err != nil || got != "" {
			t.Errorf("got %q, %v", got, err)
		}
	}
}

func TestRoundTripManyClosures(t *testing.T) {
	buf := &strings.Builder{}
	for i := 1; i <= 100; i++ {
		buf.WriteString("C%(" + strconv.Itoa(i) + ")")
	}
	for i := 100; i >= 1; i-- {
		buf.WriteString("C%(" + strconv.Itoa(i) + ")")
	}
	smi := buf.String()
	for _, branches := range []bool{true, false} {
		enc := encode.Encode(smi, encode.Rings(true), encode.Branches(branches))
		dec, err := Decode(enc, Rings(true), Branches(branches))
		if err != nil {
			t.Fatalf("branches=%t: %v", branches, err)
		}
		if !strings.Contains(dec, "%(100)") {
			t.Errorf("branches=%t: no %%(100) closure in %q", branches, dec)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	smis := []string{
		"c1cccc(C(=O)Cl)c1",
		"C1CC(OC)CC1",
		"CC(C)(C)c1ccc(O)cc1",
		"C1CC2CCC1CC2",
		"O=C(O)[C@@H](N)Cc1c[nH]c2ccccc12",
		`F/C=C/F`,
		"C(Br)(OC)I",
	}
	opts := []struct {
		rings, branches bool
	}{{true, false}, {false, true}, {true, true}}
	for _, smi := range smis {
		for _, o := range opts {
			enc := encode.Encode(smi, encode.Rings(o.rings), encode.Branches(o.branches))
			dec, err := Decode(enc, Rings(o.rings), Branches(o.branches))
			if err != nil {
				t.Errorf("%q via %q: %v", smi, enc, err)
				continue
			}
			reenc := encode.Encode(dec, encode.Rings(o.rings), encode.Branches(o.branches))
			if reenc != enc {
				t.Errorf("%q (rings=%t branches=%t): encoded %q, decoded %q, re-encoded %q",
					smi, o.rings, o.branches, enc, dec, reenc)
			}
		}
	}
}

func TestRoundTripStereo(t *testing.T) {
	tests := []struct {
		smi    string
		marker string
	}{
		{"[C@@]12(NC1)CO2", ""},
		{"CC1CCCO[C@]21CCCCO2", "[C@@]12"},
		{"NC[C@]12CCCC2C3CC1CC3", "[C@@]12"},
	}
	for _, tt := range tests {
		for _, branches := range []bool{false, true} {
			enc := encode.Encode(tt.smi, encode.Rings(true), encode.Branches(branches))
			dec, err := Decode(enc, Rings(true), Branches(branches))
			if err != nil {
				t.Errorf("%q via %q: %v", tt.smi, enc, err)
				continue
			}
			if tt.marker != "" && !strings.Contains(dec, tt.marker) {
				t.Errorf("%q (branches=%t): decoded %q lacks %s", tt.smi, branches, dec, tt.marker)
			}
			reenc := encode.Encode(dec, encode.Rings(true), encode.Branches(branches))
			if reenc != enc {
				t.Errorf("%q (branches=%t): encoded %q, decoded %q, re-encoded %q",
					tt.smi, branches, enc, dec, reenc)
			}
		}
	}
}

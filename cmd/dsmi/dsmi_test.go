package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/baoilleach/deepsmiles"
	"github.com/baoilleach/deepsmiles/token"
	"github.com/google/go-cmp/cmp"
)

func TestInputs(t *testing.T) {
	got, err := inputs(strings.NewReader("# header\nC1CC1\n\n  CCO  \n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"C1CC1", "CCO"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got, err = inputs(strings.NewReader("ignored\n"), []string{"C"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"C"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRoundTripOne(t *testing.T) {
	conv := deepsmiles.New(deepsmiles.Rings(true), deepsmiles.Branches(true))
	tests := []struct {
		smi  string
		want string
	}{
		{"c1ccccc1", "c1ccccc1 -> cccccc6: ok\n"},
		{"C%10CC%10", "C%10CC%10 -> CCC3 -> C1CC1: "},
	}
	for _, tc := range tests {
		buf := &strings.Builder{}
		ok, err := roundTripOne(buf, nil, conv, tc.smi, false)
		if err != nil || !ok {
			t.Errorf("%s: %t %v", tc.smi, ok, err)
		}
		if got := buf.String(); !strings.HasPrefix(got, tc.want) {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
	buf := &strings.Builder{}
	if _, err := roundTripOne(buf, nil, conv, "C%10CC%10", true); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("quiet wrote %q", buf.String())
	}
}

func TestReportDecodeErr(t *testing.T) {
	conv := deepsmiles.New(deepsmiles.Rings(true), deepsmiles.Branches(true))
	_, err := conv.Decode("C))C")
	if !errors.Is(err, token.ErrTooManyPops) {
		t.Fatalf("expected ErrTooManyPops, got %v", err)
	}
	buf := &strings.Builder{}
	if err := reportDecodeErr(buf, nil, err); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "too many close parentheses") {
		t.Errorf("message missing from %q", got)
	}
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if n := len(lines); n < 3 || lines[n-2] != "  C))C" || lines[n-1] != "    ^" {
		t.Errorf("got %q", got)
	}
	if err := reportDecodeErr(buf, nil, errors.New("other")); err == nil || err.Error() != "other" {
		t.Errorf("non-decode error not returned: %v", err)
	}
}

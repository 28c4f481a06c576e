package spreadsheet

import "testing"

func TestPositionStringRoundTrip(t *testing.T) {
	cases := []Position{
		{Row: 0, Col: 0},
		{Row: 11, Col: 27},
		{Row: 9999, Col: 700},
	}
	for _, want := range cases {
		s := want.String()
		got, err := ParsePosition(s)
		if err != nil {
			t.Fatalf("ParsePosition(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("round trip of %+v through %q gave %+v", want, s, got)
		}
	}
}

func TestColumnLetterEncoding(t *testing.T) {
	cases := []struct {
		col   int
		label string
	}{
		{0, "A"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tc := range cases {
		if got := columnToLetters(tc.col); got != tc.label {
			t.Errorf("columnToLetters(%d) = %q, want %q", tc.col, got, tc.label)
		}
		col, ok := lettersToColumn(tc.label)
		if !ok || col != tc.col {
			t.Errorf("lettersToColumn(%q) = (%d, %v), want (%d, true)", tc.label, col, ok, tc.col)
		}
	}
}

func TestParsePositionRejectsMalformed(t *testing.T) {
	bad := []string{"", "1A", "A", "a1", "A01", "A-1", "AAAA1"}
	for _, s := range bad {
		if _, err := ParsePosition(s); err == nil {
			t.Errorf("ParsePosition(%q) unexpectedly succeeded", s)
		}
	}
}

func TestParsePositionOutOfBoundsIsInvalidNotError(t *testing.T) {
	pos, err := ParsePosition("A99999999999")
	if err != nil {
		t.Fatalf("expected an out-of-range address to parse, got error: %v", err)
	}
	if pos.IsValid() {
		t.Errorf("expected %+v to be invalid", pos)
	}
}

func TestIsValidBounds(t *testing.T) {
	if !(Position{Row: 0, Col: 0}).IsValid() {
		t.Errorf("origin should be valid")
	}
	if (Position{Row: -1, Col: 0}).IsValid() {
		t.Errorf("negative row should be invalid")
	}
	if (Position{Row: MaxRows, Col: 0}).IsValid() {
		t.Errorf("row == MaxRows should be invalid")
	}
	if (Position{Row: 0, Col: MaxCols}).IsValid() {
		t.Errorf("col == MaxCols should be invalid")
	}
}

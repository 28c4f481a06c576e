package spreadsheet

import "testing"

func TestCellGetTextRoundTripsStoredForm(t *testing.T) {
	sheet := NewSheet()
	pos, _ := ParsePosition("A1")

	if err := sheet.SetCell(pos, "'=not a formula"); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	cell, _ := sheet.GetCell(pos)
	if cell.GetText() != "'=not a formula" {
		t.Errorf("GetText = %q, want the escaped form preserved verbatim", cell.GetText())
	}
	if cell.GetValue() != "=not a formula" {
		t.Errorf("GetValue = %v, want the unescaped string", cell.GetValue())
	}
}

func TestCellEmptyBodyValueIsZero(t *testing.T) {
	sheet := NewSheet()
	pos, _ := ParsePosition("A1")
	sheet.SetCell(pos, "x")
	sheet.ClearCell(pos)
	cell, _ := sheet.GetCell(pos)
	if cell != nil && cell.GetValue() != float64(0) {
		t.Errorf("expected a cleared cell to read as 0.0, got %v", cell.GetValue())
	}
}

func TestCellReferencedCellsIsDefensiveCopy(t *testing.T) {
	withFormulaParser(t)
	sheet := NewSheet()
	sheet.SetCell(mustPos(t, "A1"), "1")
	sheet.SetCell(mustPos(t, "B1"), "=A1+1")
	cell, _ := sheet.GetCell(mustPos(t, "B1"))

	refs := cell.GetReferencedCells()
	if len(refs) != 1 {
		t.Fatalf("GetReferencedCells = %v, want 1 entry", refs)
	}
	refs[0] = Position{Row: 999, Col: 999}

	refsAgain := cell.GetReferencedCells()
	if refsAgain[0] != mustPos(t, "A1") {
		t.Errorf("mutating a returned slice affected the cell's internal state")
	}
}

func TestCellDependentCellsSortedSnapshot(t *testing.T) {
	withFormulaParser(t)
	sheet := NewSheet()
	sheet.SetCell(mustPos(t, "A1"), "1")
	sheet.SetCell(mustPos(t, "C3"), "=A1+1")
	sheet.SetCell(mustPos(t, "B2"), "=A1+2")

	a1, _ := sheet.GetCell(mustPos(t, "A1"))
	deps := a1.GetDependentCells()
	if len(deps) != 2 {
		t.Fatalf("GetDependentCells = %v, want 2 entries", deps)
	}
	if !(deps[0].Row < deps[1].Row || (deps[0].Row == deps[1].Row && deps[0].Col < deps[1].Col)) {
		t.Errorf("GetDependentCells not sorted by (row, col): %v", deps)
	}
}

func mustPos(t *testing.T, addr string) Position {
	t.Helper()
	p, err := ParsePosition(addr)
	if err != nil {
		t.Fatalf("ParsePosition(%q): %v", addr, err)
	}
	return p
}

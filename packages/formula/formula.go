package formula

import (
	"sort"

	"github.com/halvorsen/spreadsheet/packages/spreadsheet"
)

// Formula is a parsed arithmetic expression over numeric literals and cell
// references. It implements spreadsheet.Formula.
type Formula struct {
	root node
	refs []spreadsheet.Position
}

// Parse parses expr (the formula text without its leading '=') into a
// Formula. It is the function a program installs via
// spreadsheet.SetFormulaParser.
func Parse(expr string) (spreadsheet.Formula, error) {
	root, err := parse(expr)
	if err != nil {
		return nil, err
	}

	refSet := make(map[spreadsheet.Position]struct{})
	root.collectRefs(refSet)
	refs := make([]spreadsheet.Position, 0, len(refSet))
	for p := range refSet {
		refs = append(refs, p)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Row != refs[j].Row {
			return refs[i].Row < refs[j].Row
		}
		return refs[i].Col < refs[j].Col
	})

	return &Formula{root: root, refs: refs}, nil
}

// Evaluate computes the formula's numeric value, reading referenced cells
// through lookup.
func (f *Formula) Evaluate(lookup func(spreadsheet.Position) (float64, error)) (float64, error) {
	return f.root.eval(lookup)
}

// Expression renders the canonical, minimally-parenthesized form of the
// parsed expression.
func (f *Formula) Expression() string {
	return f.root.toString(0)
}

// ReferencedCells returns the sorted, deduplicated positions the
// expression mentions.
func (f *Formula) ReferencedCells() []spreadsheet.Position {
	out := make([]spreadsheet.Position, len(f.refs))
	copy(out, f.refs)
	return out
}

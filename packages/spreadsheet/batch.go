package spreadsheet

import (
	"fmt"

	"go.uber.org/multierr"
)

// SetCells applies a batch of edits, address to new text, continuing past
// individual rejections so one bad formula in a pasted block doesn't block
// the rest. Each edit still honors SetCell's atomicity: a rejected address
// is left exactly as it was. The returned error, if any, is a multierr
// aggregate with one wrapped error per rejected address; use
// multierr.Errors to inspect them individually.
func (s *Sheet) SetCells(edits map[string]string) error {
	var errs error
	for addr, text := range edits {
		pos, err := ParsePosition(addr)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("spreadsheet: %s: %w", addr, err))
			continue
		}
		if err := s.SetCell(pos, text); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("spreadsheet: %s: %w", addr, err))
		}
	}
	return errs
}

package pdf2md

import "fmt"

// Warning records a non-fatal degradation during conversion: a table or text
// pass that failed on one page, or a single image that could not be
// exported. Warnings are accumulated on the DocumentResult and echoed to the
// configured log writer; they never abort the page or the run.
type Warning struct {
	Page int
	Op   string
	Err  error
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s: %v", w.Page, w.Op, w.Err)
	}
	return fmt.Sprintf("%s: %v", w.Op, w.Err)
}

// Package block converts a restricted markdown dialect into markup in one
// left-to-right pass. Each input line is classified into the nested command
// context it belongs to, then reconciled against the currently open block
// stack: the shared prefix is kept, the stale suffix is closed deepest-first,
// the new suffix is opened, and the residual text goes to the innermost open
// command. Headings and rules never survive a line boundary; list items and
// checkboxes survive only when their identity-bearing state is unchanged;
// tables and code fences swallow raw lines until they close.
package block

import "strings"

// Render runs one full pass over source and returns the generated markup.
// It is a total function: malformed constructs degrade (a bad table demotes
// to a paragraph, irregular indents floor-divide) and no input errors.
// Every call builds a fresh State, so concurrent renders are independent.
func Render(source string, cfg Config) string {
	st := newState(cfg)
	for _, line := range strings.Split(source, "\n") {
		insts, rest := st.classify(line)
		st.reconcile(insts)
		st.dispatch(rest)
	}
	// End of input drains the stack unconditionally, innermost first.
	for len(st.stack) > 0 {
		st.pop()
	}
	return st.buf.String()
}

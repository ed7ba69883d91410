package block

import (
	"strings"

	"github.com/fwojciec/markright/inline"
)

// Config carries the collaborators a render pass needs: the inline text
// transformer and an optional fenced-code highlighter. A nil Highlight
// leaves code blocks plainly escaped; a highlighter that returns ok=false
// falls back the same way.
type Config struct {
	Inline    *inline.Transformer
	Highlight func(source, lang string) (string, bool)
}

// State owns everything mutable in one render pass: the open-command
// stack, the accumulating output buffer, and the monotonic id generator.
// A State must never be shared across passes; construct a fresh one per
// input.
type State struct {
	cfg    Config
	stack  []*Instance
	buf    strings.Builder
	lastID int
}

func newState(cfg Config) *State {
	if cfg.Inline == nil {
		cfg.Inline = inline.New(nil)
	}
	return &State{cfg: cfg}
}

// nextID returns a fresh id, unique and strictly increasing for the
// lifetime of the pass.
func (st *State) nextID() int {
	st.lastID++
	return st.lastID
}

func (st *State) top() *Instance {
	if len(st.stack) == 0 {
		return nil
	}
	return st.stack[len(st.stack)-1]
}

func (st *State) push(in *Instance) {
	st.stack = append(st.stack, in)
	if h := commands[in.kind].start; h != nil {
		h(st, in)
	}
}

func (st *State) pop() {
	in := st.top()
	st.stack = st.stack[:len(st.stack)-1]
	if h := commands[in.kind].end; h != nil {
		h(st, in)
	}
}

// line writes one unit of output followed by a newline separator.
func (st *State) line(s string) {
	st.buf.WriteString(s)
	st.buf.WriteByte('\n')
}

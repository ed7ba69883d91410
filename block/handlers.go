package block

import (
	"fmt"
	"html"
	"strings"

	"github.com/fwojciec/markright/table"
)

// appendLine accumulates residual text in the instance; used by the kinds
// that only emit on close.
func appendLine(_ *State, in *Instance, line string) {
	in.lines = append(in.lines, line)
}

func endHeading(st *State, in *Instance) {
	attr := ""
	if in.anchor != "" {
		attr = ` id="` + in.anchor + `"`
	}
	st.line(fmt.Sprintf("<h%d%s>%s</h%d>", in.level, attr, st.cfg.Inline.Apply(in.text), in.level))
}

func endCheckbox(st *State, in *Instance) {
	id := fmt.Sprintf("cb-%d", in.id)
	checked := ""
	if in.checked {
		checked = " checked"
	}
	st.line(`<input type="checkbox" id="` + id + `"` + checked + `/>`)
	text := st.cfg.Inline.Apply(strings.TrimSpace(strings.Join(in.lines, " ")))
	st.line(`<label for="` + id + `">` + text + `</label>`)
	st.line("<br/>")
}

func startList(st *State, in *Instance) {
	if in.ordered {
		st.line("<ol>")
	} else {
		st.line("<ul>")
	}
}

func endList(st *State, in *Instance) {
	if in.ordered {
		st.line("</ol>")
	} else {
		st.line("</ul>")
	}
}

// textListItem streams item text straight into the output; list items have
// no inner paragraph wrapper.
func textListItem(st *State, _ *Instance, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	st.line(st.cfg.Inline.Apply(line))
}

// endTable parses the buffered rows; on failure the rows demote to a
// single paragraph joined with forced breaks.
func endTable(st *State, in *Instance) {
	t, err := table.Parse(in.lines)
	if err != nil {
		st.line("<p>" + st.cfg.Inline.Apply(strings.Join(in.lines, "  \n")) + "</p>")
		return
	}
	st.buf.WriteString(t.HTML(st.cfg.Inline.Apply))
}

func textCode(_ *State, in *Instance, line string) {
	if in.closed {
		return
	}
	if fenceCloseRe.MatchString(line) {
		in.closed = true
		return
	}
	in.lines = append(in.lines, line)
}

func endCode(st *State, in *Instance) {
	source := strings.Join(in.lines, "\n")
	if st.cfg.Highlight != nil && in.lang != "" {
		if out, ok := st.cfg.Highlight(source, in.lang); ok {
			st.line(strings.TrimRight(out, "\n"))
			return
		}
	}
	attr := ""
	if in.lang != "" {
		attr = ` class="language-` + in.lang + `"`
	}
	st.line("<pre><code" + attr + ">" + html.EscapeString(source) + "</code></pre>")
}

func endParagraph(st *State, in *Instance) {
	text := st.cfg.Inline.Apply(strings.Join(in.lines, "\n"))
	if strings.TrimSpace(text) == "" {
		return
	}
	attr := ""
	if in.align != "" {
		attr = ` style="text-align:` + in.align + `"`
	}
	st.line("<p" + attr + ">" + text + "</p>")
}

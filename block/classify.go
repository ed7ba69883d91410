package block

import "strings"

// alignMarkers are the optional leading paragraph markers. Checked in
// order; :-: must precede :-- since both share a prefix byte.
var alignMarkers = []struct {
	token string
	align string
}{
	{":-:", "center"},
	{":::", "justify"},
	{":--", "left"},
	{"--:", "right"},
}

// classify matches one raw line against the registry and returns the full
// nested command context the line belongs to (outermost first) plus the
// residual inline text left after all block markers are stripped.
//
// The registry is scanned top to bottom; after a stackable match the scan
// restarts from the top against the stripped remainder, so a single line
// can push several frames at once. An open, still-collecting code fence
// short-circuits classification entirely: the line is raw content for the
// fence. When nothing matches, the line either lazily continues an open
// list item or falls back to a fresh paragraph.
func (st *State) classify(line string) ([]*Instance, string) {
	if top := st.top(); top != nil && top.kind == KindCode && !top.closed {
		return append([]*Instance(nil), st.stack...), line
	}

	var insts []*Instance
	rest := line
scan:
	for {
		for _, d := range registry {
			out, r, ok := d.match(st, rest)
			if !ok {
				continue
			}
			insts = append(insts, out...)
			rest = r
			if !d.stackable {
				break scan
			}
			continue scan
		}
		break
	}

	if len(insts) == 0 {
		if top := st.top(); top != nil && top.kind == KindListItem {
			// List items carry indented child content with no marker:
			// the line continues the exact open stack.
			return append([]*Instance(nil), st.stack...), line
		}
		in, r := newParagraph(rest)
		return []*Instance{in}, r
	}

	// Quoted prose is always paragraph-wrapped: a blockquote left
	// innermost opens a paragraph on the spot.
	if insts[len(insts)-1].kind == KindBlockquote {
		in, r := newParagraph(rest)
		insts = append(insts, in)
		rest = r
	}
	return insts, rest
}

func newParagraph(line string) (*Instance, string) {
	in := &Instance{kind: KindParagraph}
	for _, m := range alignMarkers {
		if strings.HasPrefix(line, m.token) {
			in.align = m.align
			in.marked = true
			line = strings.TrimPrefix(line[len(m.token):], " ")
			break
		}
	}
	return in, line
}

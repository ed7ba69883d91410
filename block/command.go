package block

import (
	"regexp"
	"strings"
)

// Kind identifies one block-level command.
type Kind int

const (
	KindHeading Kind = iota
	KindCheckbox
	KindBlockquote
	KindList
	KindListItem
	KindTable
	KindCode
	KindRule
	KindPageBreak
	KindMath
	KindParagraph
)

var kindNames = map[Kind]string{
	KindHeading:    "heading",
	KindCheckbox:   "checkbox",
	KindBlockquote: "blockquote",
	KindList:       "list",
	KindListItem:   "list-item",
	KindTable:      "table",
	KindCode:       "code",
	KindRule:       "rule",
	KindPageBreak:  "page-break",
	KindMath:       "math",
	KindParagraph:  "paragraph",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Instance is one concrete occurrence of a block kind with its state. The
// state is a flattened union: each kind reads only its own fields.
type Instance struct {
	kind Kind

	level   int    // heading level 1-6
	anchor  string // heading {id}
	text    string // heading text, math formula
	ordered bool   // list ordering flag
	id      int    // list item / checkbox id
	checked bool   // checkbox
	align   string // paragraph alignment, empty for none
	marked  bool   // paragraph opened with an explicit alignment marker
	lang    string // code fence language
	closed  bool   // code fence saw its closing marker

	lines []string // paragraph/checkbox text, table raw rows, code source
}

// descriptor is the static catalog entry for one block kind: how it
// triggers, whether further commands may begin on the same line after it,
// whether an open instance may persist across lines, and its lifecycle
// hooks. A nil continues hook means the kind never continues; a nil text
// hook silently absorbs dispatched lines.
type descriptor struct {
	kind      Kind
	stackable bool
	match     func(st *State, line string) (insts []*Instance, rest string, ok bool)
	continues func(old, neu *Instance, olds, neus []*Instance) bool
	start     func(st *State, in *Instance)
	end       func(st *State, in *Instance)
	text      func(st *State, in *Instance, line string)
}

var (
	quoteRe      = regexp.MustCompile(`^> ?`)
	fenceOneRe   = regexp.MustCompile("^```(.*?)```\\s*$")
	fenceOpenRe  = regexp.MustCompile("^```([A-Za-z0-9_+-]*)\\s*$")
	fenceCloseRe = regexp.MustCompile("^```\\s*$")
	mathBlockRe  = regexp.MustCompile(`^\$\$\$(.*)\$\$\$\s*$`)
	headingRe    = regexp.MustCompile(`^(#{1,6})([^#].*|)$`)
	anchorRe     = regexp.MustCompile(`\s*\{([^{}]+)\}\s*$`)
	ruleRe       = regexp.MustCompile(`^-{3,}\s*$`)
	pageBreakRe  = regexp.MustCompile(`^={3,}\s*$`)
	checkboxRe   = regexp.MustCompile(`^- \[([ xX])\] ?(.*)$`)
	listItemRe   = regexp.MustCompile(`^( *)(\d+\.|-)[ \t]+(.*)$`)
)

// registry lists trigger-bearing descriptors in match priority order. The
// classifier restarts from the top after every stackable match, so order
// decides ties: checkbox before list item, rule before list item.
var registry = []*descriptor{
	commands[KindBlockquote],
	commands[KindCode],
	commands[KindMath],
	commands[KindHeading],
	commands[KindRule],
	commands[KindPageBreak],
	commands[KindCheckbox],
	commands[KindListItem],
	commands[KindTable],
}

// commands maps every kind, including the trigger-less list and the
// fallback paragraph, to its descriptor.
var commands = map[Kind]*descriptor{
	KindHeading: {
		kind: KindHeading,
		match: func(_ *State, line string) ([]*Instance, string, bool) {
			m := headingRe.FindStringSubmatch(line)
			if m == nil {
				return nil, "", false
			}
			in := &Instance{kind: KindHeading, level: len(m[1]), text: m[2]}
			if a := anchorRe.FindStringSubmatch(in.text); a != nil {
				in.anchor = a[1]
				in.text = anchorRe.ReplaceAllString(in.text, "")
			}
			in.text = strings.TrimSpace(in.text)
			return []*Instance{in}, "", true
		},
		end: endHeading,
	},
	KindCheckbox: {
		kind: KindCheckbox,
		match: func(st *State, line string) ([]*Instance, string, bool) {
			m := checkboxRe.FindStringSubmatch(line)
			if m == nil {
				return nil, "", false
			}
			in := &Instance{kind: KindCheckbox, id: st.nextID(), checked: m[1] != " "}
			return []*Instance{in}, m[2], true
		},
		end:  endCheckbox,
		text: appendLine,
	},
	KindBlockquote: {
		kind:      KindBlockquote,
		stackable: true,
		match: func(_ *State, line string) ([]*Instance, string, bool) {
			loc := quoteRe.FindStringIndex(line)
			if loc == nil {
				return nil, "", false
			}
			return []*Instance{{kind: KindBlockquote}}, line[loc[1]:], true
		},
		continues: func(_, _ *Instance, _, _ []*Instance) bool { return true },
		start:     func(st *State, _ *Instance) { st.line("<blockquote>") },
		end:       func(st *State, _ *Instance) { st.line("</blockquote>") },
	},
	KindList: {
		// Never triggered directly; synthesized alongside a list item.
		kind:      KindList,
		stackable: true,
		continues: listContinues,
		start:     startList,
		end:       endList,
	},
	KindListItem: {
		kind: KindListItem,
		match: func(st *State, line string) ([]*Instance, string, bool) {
			m := listItemRe.FindStringSubmatch(line)
			if m == nil {
				return nil, "", false
			}
			ordered := strings.HasSuffix(m[2], ".")
			level := len(m[1]) / 4
			var insts []*Instance
			for l := 0; l <= level; l++ {
				insts = append(insts,
					&Instance{kind: KindList, ordered: ordered},
					&Instance{kind: KindListItem, id: st.nextID()})
			}
			return insts, m[3], true
		},
		continues: itemContinues,
		start:     func(st *State, _ *Instance) { st.line("<li>") },
		end:       func(st *State, _ *Instance) { st.line("</li>") },
		text:      textListItem,
	},
	KindTable: {
		kind: KindTable,
		match: func(_ *State, line string) ([]*Instance, string, bool) {
			if !strings.HasPrefix(line, "|") {
				return nil, "", false
			}
			// The trigger consumes nothing: rows are buffered verbatim,
			// still pipe-prefixed, via the text hook.
			return []*Instance{{kind: KindTable}}, line, true
		},
		continues: func(_, _ *Instance, _, _ []*Instance) bool { return true },
		end:       endTable,
		text:      appendLine,
	},
	KindCode: {
		kind: KindCode,
		match: func(_ *State, line string) ([]*Instance, string, bool) {
			if m := fenceOneRe.FindStringSubmatch(line); m != nil {
				in := &Instance{kind: KindCode, closed: true, lines: []string{m[1]}}
				return []*Instance{in}, "", true
			}
			if m := fenceOpenRe.FindStringSubmatch(line); m != nil {
				return []*Instance{{kind: KindCode, lang: m[1]}}, "", true
			}
			return nil, "", false
		},
		end:  endCode,
		text: textCode,
	},
	KindRule: {
		kind: KindRule,
		match: func(_ *State, line string) ([]*Instance, string, bool) {
			if !ruleRe.MatchString(line) {
				return nil, "", false
			}
			return []*Instance{{kind: KindRule}}, "", true
		},
		end: func(st *State, _ *Instance) { st.line("<hr/>") },
	},
	KindPageBreak: {
		kind: KindPageBreak,
		match: func(_ *State, line string) ([]*Instance, string, bool) {
			if !pageBreakRe.MatchString(line) {
				return nil, "", false
			}
			return []*Instance{{kind: KindPageBreak}}, "", true
		},
		end: func(st *State, _ *Instance) { st.line(`<div class="page-break"></div>`) },
	},
	KindMath: {
		kind: KindMath,
		match: func(_ *State, line string) ([]*Instance, string, bool) {
			m := mathBlockRe.FindStringSubmatch(line)
			if m == nil {
				return nil, "", false
			}
			return []*Instance{{kind: KindMath, text: strings.TrimSpace(m[1])}}, "", true
		},
		end: func(st *State, in *Instance) { st.line(st.cfg.Inline.Math(in.text, true)) },
	},
	KindParagraph: {
		kind:      KindParagraph,
		continues: paragraphContinues,
		end:       endParagraph,
		text:      appendLine,
	},
}

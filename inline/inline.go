// Package inline transforms the residual text of a block into formatted
// markup by applying an ordered chain of pattern substitutions. The order is
// fixed: image/figure expansion, inline math, bold, inserted, highlight,
// strikethrough, italic, subscript, superscript, code span, link, forced
// line break, and finally escape restoration. Later patterns must not
// re-match text produced by earlier ones, so fragments whose content is
// opaque (images, math, code spans) are swapped out for placeholders and
// restored after the chain has run.
package inline

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Math renders a raw formula into an inline-embeddable markup fragment.
// Display mode is used for block-level formulas, non-display for inline
// spans. Implementations must be pure: string in, fragment out, no shared
// mutable state across calls.
type Math interface {
	Render(formula string, display bool) string
}

// MathFunc adapts a plain function to the Math interface.
type MathFunc func(formula string, display bool) string

// Render calls f(formula, display).
func (f MathFunc) Render(formula string, display bool) string {
	return f(formula, display)
}

// Transformer applies the inline substitution chain. The zero value is not
// usable; construct with New. A nil math collaborator falls back to a plain
// escaped wrapper so rendering remains a total function.
type Transformer struct {
	math Math
}

// New returns a Transformer delegating formulas to math. math may be nil.
func New(math Math) *Transformer {
	return &Transformer{math: math}
}

// Punctuation that a backslash escapes. An escaped character never
// participates in pattern matching and is restored bare at the end of the
// chain.
const escapable = "\\*_~^=`[]()#+-.!{}|$>"

var (
	imageRe      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]*)\)(?:\{([^{}]*)\})?`)
	inlineMathRe = regexp.MustCompile(`\$\$(.+?)\$\$`)
	boldRe       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	insRe        = regexp.MustCompile(`__(.+?)__`)
	markRe       = regexp.MustCompile(`==(.+?)==`)
	delRe        = regexp.MustCompile(`~~(.+?)~~`)
	italicRe     = regexp.MustCompile(`\*(.+?)\*`)
	subRe        = regexp.MustCompile(`~(.+?)~`)
	supRe        = regexp.MustCompile(`\^(.+?)\^`)
	codeRe       = regexp.MustCompile("`(.+?)`")
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	breakRe      = regexp.MustCompile(` {2,}\n`)
	savedRe      = regexp.MustCompile("\x00(\\d+)\x00")
)

// Apply runs the full substitution chain over text and returns the
// formatted fragment. Unmatched markers are left as-is; an unbalanced
// marker can therefore span further than intended, which is accepted
// behavior of the dialect rather than an error.
func (t *Transformer) Apply(text string) string {
	text = protectEscapes(text)
	var frags fragments
	text = imageRe.ReplaceAllStringFunc(text, func(m string) string {
		g := imageRe.FindStringSubmatch(m)
		return frags.save(expandImage(g[1], g[2], g[3]))
	})
	text = inlineMathRe.ReplaceAllStringFunc(text, func(m string) string {
		g := inlineMathRe.FindStringSubmatch(m)
		return frags.save(t.Math(g[1], false))
	})
	text = boldRe.ReplaceAllString(text, "<b>$1</b>")
	text = insRe.ReplaceAllString(text, "<ins>$1</ins>")
	text = markRe.ReplaceAllString(text, "<mark>$1</mark>")
	text = delRe.ReplaceAllString(text, "<del>$1</del>")
	text = italicRe.ReplaceAllString(text, "<i>$1</i>")
	text = subRe.ReplaceAllString(text, "<sub>$1</sub>")
	text = supRe.ReplaceAllString(text, "<sup>$1</sup>")
	text = codeRe.ReplaceAllStringFunc(text, func(m string) string {
		g := codeRe.FindStringSubmatch(m)
		return frags.save("<code>" + g[1] + "</code>")
	})
	text = linkRe.ReplaceAllString(text, `<a href="$2">$1</a>`)
	text = breakRe.ReplaceAllString(text, "<br/>\n")
	text = frags.restore(text)
	return restoreEscapes(text)
}

// Math delegates a formula to the collaborator, or wraps it in a plain
// escaped container when none is configured.
func (t *Transformer) Math(formula string, display bool) string {
	if t.math != nil {
		return t.math.Render(formula, display)
	}
	if display {
		return `<div class="math math-display">` + html.EscapeString(formula) + `</div>`
	}
	return `<span class="math">` + html.EscapeString(formula) + `</span>`
}

func expandImage(caption, src, id string) string {
	attr := ""
	if id != "" {
		attr = ` id="` + id + `"`
	}
	if caption == "" {
		return `<img` + attr + ` src="` + src + `"/>`
	}
	return `<figure` + attr + `><img src="` + src + `" alt="` + caption +
		`"/><figcaption>` + caption + `</figcaption></figure>`
}

// fragments holds substitution results that later patterns in the chain
// must not see.
type fragments struct {
	saved []string
}

func (f *fragments) save(s string) string {
	f.saved = append(f.saved, s)
	return "\x00" + strconv.Itoa(len(f.saved)-1) + "\x00"
}

func (f *fragments) restore(text string) string {
	if len(f.saved) == 0 {
		return text
	}
	return savedRe.ReplaceAllStringFunc(text, func(m string) string {
		i, err := strconv.Atoi(m[1 : len(m)-1])
		if err != nil || i >= len(f.saved) {
			return m
		}
		return f.saved[i]
	})
}

// protectEscapes swaps each backslash-escaped punctuation character for a
// private-use rune so no pattern in the chain can match it.
func protectEscapes(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			if j := strings.IndexByte(escapable, text[i+1]); j >= 0 {
				b.WriteRune(rune(0xE000 + j))
				i++
				continue
			}
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

// restoreEscapes maps protected runes back to the bare punctuation, which
// is what "escape removal" leaves behind.
func restoreEscapes(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0xE000 && r < 0xE000+rune(len(escapable)) {
			return rune(escapable[r-0xE000])
		}
		return r
	}, text)
}

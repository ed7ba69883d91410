// Package markright renders a restricted markdown dialect to HTML-flavored
// markup. It is a pure transformation library: one input string in, one
// markup string out, no I/O beyond the pluggable math collaborator. The
// engine lives in the block subpackage; this package wires the
// collaborators and exposes the renderer as a constructible Document.
package markright

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/fwojciec/markright/block"
	"github.com/fwojciec/markright/inline"
)

// Math renders a TeX-like formula into an inline-embeddable markup
// fragment. See inline.Math.
type Math = inline.Math

// MathFunc adapts a plain function to the Math interface.
type MathFunc = inline.MathFunc

// Option configures a render pass.
type Option func(*config)

type config struct {
	math      Math
	highlight func(source, lang string) (string, bool)
}

// WithMath delegates block and inline math spans to m instead of the
// default escaped placeholder wrapper.
func WithMath(m Math) Option {
	return func(c *config) { c.math = m }
}

// WithHighlight syntax-highlights fenced code blocks that declare a
// language, using the named chroma style. Blocks without a language, and
// any highlighter failure, fall back to the plain escaped form.
func WithHighlight(style string) Option {
	return func(c *config) {
		c.highlight = func(source, lang string) (string, bool) {
			var b strings.Builder
			if err := quick.Highlight(&b, source, lang, "html", style); err != nil {
				return "", false
			}
			return b.String(), true
		}
	}
}

// Document is one rendered input. Construct with New; the render happens
// eagerly with a fresh state, so a Document is immutable and safe to share
// afterwards.
type Document struct {
	html string
}

// New renders source and returns the Document holding the result.
func New(source string, opts ...Option) *Document {
	return &Document{html: Render(source, opts...)}
}

// HTML returns the generated markup.
func (d *Document) HTML() string {
	return d.html
}

// Render renders source to markup in a single pass.
func Render(source string, opts ...Option) string {
	if source == "" {
		return ""
	}
	var c config
	for _, o := range opts {
		o(&c)
	}
	return block.Render(source, block.Config{
		Inline:    inline.New(c.math),
		Highlight: c.highlight,
	})
}

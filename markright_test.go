package markright_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/markright"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("empty input returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", markright.Render(""))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "<p>hello world</p>\n", markright.Render("hello world"))
	})

	t.Run("mixed document", func(t *testing.T) {
		t.Parallel()
		src := "# Notes {top}\n- first\n- second\n> **quoted**"
		got := markright.Render(src)
		assert.Contains(t, got, `<h1 id="top">Notes</h1>`)
		assert.Contains(t, got, "<ul>")
		assert.Contains(t, got, "<blockquote>")
		assert.Contains(t, got, "<b>quoted</b>")
	})

	t.Run("renders are independent", func(t *testing.T) {
		t.Parallel()
		first := markright.Render("- [ ] a")
		second := markright.Render("- [ ] a")
		assert.Equal(t, first, second)
		assert.Contains(t, second, `id="cb-1"`)
	})

	t.Run("custom math collaborator", func(t *testing.T) {
		t.Parallel()
		math := markright.MathFunc(func(f string, display bool) string {
			if display {
				return "<math-block>" + f + "</math-block>"
			}
			return "<math-inline>" + f + "</math-inline>"
		})
		got := markright.Render("$$$a+b$$$\ntext $$c$$ here", markright.WithMath(math))
		assert.Contains(t, got, "<math-block>a+b</math-block>")
		assert.Contains(t, got, "<math-inline>c</math-inline>")
	})

	t.Run("highlighted code block", func(t *testing.T) {
		t.Parallel()
		src := "```go\nfmt.Println(1)\n```"
		got := markright.Render(src, markright.WithHighlight("monokai"))
		assert.Contains(t, got, "<pre")
		assert.Contains(t, got, "<span")
		assert.Contains(t, got, "fmt")
		assert.NotContains(t, got, "language-go")
	})

	t.Run("fence without language stays plainly escaped", func(t *testing.T) {
		t.Parallel()
		src := "```\na < b\n```"
		got := markright.Render(src, markright.WithHighlight("monokai"))
		assert.Contains(t, got, "<pre><code>a &lt; b</code></pre>")
	})
}

func TestDocument(t *testing.T) {
	t.Parallel()

	t.Run("HTML accessor returns the rendered markup", func(t *testing.T) {
		t.Parallel()
		doc := markright.New("# Hi")
		assert.Equal(t, "<h1>Hi</h1>\n", doc.HTML())
	})

	t.Run("Tree parses the markup under a body root", func(t *testing.T) {
		t.Parallel()
		doc := markright.New("# Hi\n- a")
		root, err := doc.Tree()
		require.NoError(t, err)
		require.NotNil(t, root.FirstChild)
		assert.Equal(t, "h1", root.FirstChild.Data)
		assert.Equal(t, "ul", root.FirstChild.NextSibling.Data)
	})

	t.Run("Tree drops separator whitespace", func(t *testing.T) {
		t.Parallel()
		doc := markright.New("- a")
		root, err := doc.Tree()
		require.NoError(t, err)
		assert.Equal(t, "ul>li>a", flatten(root.FirstChild))
	})

	t.Run("equal structure from differing trailing whitespace", func(t *testing.T) {
		t.Parallel()
		a, err := markright.New("hello").Tree()
		require.NoError(t, err)
		b, err := markright.New("hello ").Tree()
		require.NoError(t, err)
		assert.Equal(t, flatten(a), flatten(b))
	})
}

// flatten collapses a node tree into a compact structural signature.
func flatten(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	parts := []string{n.Data}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		parts = append(parts, flatten(c))
	}
	return strings.Join(parts, ">")
}

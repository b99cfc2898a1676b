package markdown

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Ellipsis marks a truncated preview
const Ellipsis = "…"

var previewParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
).Parser()

// Preview flattens a markdown entry into a single line of plain text,
// at most limit runes long (limit <= 0 disables truncation).
func Preview(src string, limit int) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}

	source := []byte(src)
	doc := previewParser.Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				b.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		}
		return ast.WalkContinue, nil
	})

	out := strings.Join(strings.Fields(b.String()), " ")
	if out == "" {
		// Entries made only of code blocks still need a row label
		out = strings.Join(strings.Fields(src), " ")
	}
	return truncate(out, limit)
}

func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	cut := strings.TrimRight(string(runes[:limit]), " ")
	return cut + Ellipsis
}

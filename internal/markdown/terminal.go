package markdown

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// MinWrapWidth is the narrowest wrap width handed to the renderer
const MinWrapWidth = 10

var (
	rendererMu sync.Mutex
	// Renderers are cached per style and width. A fixed style is used instead of
	// WithAutoStyle, which queries the terminal and can block.
	renderers = map[string]*glamour.TermRenderer{}
)

// RenderTerminal renders markdown for a terminal of the given width.
// On error the trimmed source is returned unchanged.
func RenderTerminal(src string, width int) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	if width < MinWrapWidth {
		width = MinWrapWidth
	}

	r, err := renderer(styles.DarkStyle, width)
	if err != nil {
		return src
	}

	out, err := r.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n")
}

func renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := rendererKey(style, width)

	rendererMu.Lock()
	defer rendererMu.Unlock()

	if r := renderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

func rendererKey(style string, width int) string {
	return style + ":" + strconv.Itoa(width)
}

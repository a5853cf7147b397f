package markdown

import (
	"bytes"
	"context"
	"html"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return Blocks(Render(content))
}

// Blocks returns a templ.Component that renders already parsed blocks as HTML.
func Blocks(blocks []Block) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		RenderHTML(&buf, blocks)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// RenderHTML writes the HTML representation of blocks to buf. All span and heading
// text is escaped; consecutive list items share one <ul>.
func RenderHTML(buf *bytes.Buffer, blocks []Block) {
	inList := false
	flushList := func() {
		if inList {
			buf.WriteString("</ul>")
			inList = false
		}
	}

	for _, b := range blocks {
		if b.Kind != ListItem {
			flushList()
		}
		switch b.Kind {
		case Heading:
			tag := "h" + strconv.Itoa(b.Level)
			buf.WriteString("<" + tag + ">")
			buf.WriteString(html.EscapeString(b.Text))
			buf.WriteString("</" + tag + ">")
		case Paragraph:
			buf.WriteString("<p>")
			writeSpans(buf, b.Spans)
			buf.WriteString("</p>")
		case ListItem:
			if !inList {
				buf.WriteString("<ul>")
				inList = true
			}
			buf.WriteString("<li>")
			writeSpans(buf, b.Spans)
			buf.WriteString("</li>")
		default:
			buf.WriteString(`<div class="spacer"></div>`)
		}
	}
	flushList()
}

func writeSpans(buf *bytes.Buffer, spans []Span) {
	for _, sp := range spans {
		text := html.EscapeString(sp.Text)
		switch sp.Kind {
		case Bold:
			buf.WriteString("<strong>" + text + "</strong>")
		case Code:
			buf.WriteString("<code>" + text + "</code>")
		case BoldCode:
			buf.WriteString("<strong><code>" + text + "</code></strong>")
		default:
			buf.WriteString(text)
		}
	}
}

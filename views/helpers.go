package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components can emit markup
// without checking every call.
type writer struct {
	out io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

// text writes s HTML-escaped.
func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

// rawf formats into the output. Callers escape user data with esc.
func (w *writer) rawf(format string, args ...any) {
	w.raw(fmt.Sprintf(format, args...))
}

func (w *writer) component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.out)
}

// component adapts a markup-writing func into a templ.Component.
func component(fn func(ctx context.Context, w *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{out: out}
		fn(ctx, w)
		return w.err
	})
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// TagClass returns the CSS classes of a tag pill.
func TagClass(active bool) string {
	if active {
		return "tag active"
	}
	return "tag"
}

func navClass(current, path string) string {
	if current == path {
		return "active"
	}
	return ""
}

func csrfField(w *writer, token string) {
	w.rawf(`<input type="hidden" name="_csrf" value="%s">`, esc(token))
}

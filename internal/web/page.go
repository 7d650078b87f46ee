package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/index.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"price": func(p float64) string { return strconv.FormatFloat(p, 'f', -1, 64) },
	// str dereferences an optional field; nil and "" both come out empty.
	"str": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
}).ParseFS(templatesFS, "templates/index.html"))

type pageData struct {
	View
	EmptyMessage string
}

// Render writes the listings page for v. The page is rendered into a buffer
// first so a template error never leaves a half-written response.
func Render(w io.Writer, v View) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, pageData{View: v, EmptyMessage: EmptyMessage}); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

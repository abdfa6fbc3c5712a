package site

import (
	"bytes"
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"year": func() int { return time.Now().Year() },
}).ParseFS(templateFS, "templates/index.html"))

// Render executes the page template for c.
func Render(c Content) ([]byte, error) {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

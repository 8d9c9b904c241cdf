package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("email").Funcs(template.FuncMap{
	"paragraphs": paragraphs,
}).ParseFS(templateFS, "templates/*.html"))

// RenderTemplate executes the named template (file name without extension).
func RenderTemplate(name string, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, name+".html", data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return body.String(), nil
}

// paragraphs escapes text and turns newlines into <br> tags.
func paragraphs(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	out := bytes.ReplaceAll([]byte(escaped), []byte("\r\n"), []byte("\n"))
	out = bytes.ReplaceAll(out, []byte("\n"), []byte("<br>"))
	return template.HTML(out)
}

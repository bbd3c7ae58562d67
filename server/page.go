package server

import (
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; background: #282a36; color: #f8f8f2; }
section { margin: 1.5rem 0; padding-top: .75rem; border-top: 1px solid #44475a; }
.label { font-size: .8rem; color: #6272a4; margin-bottom: .5rem; }
.badge { font-family: ui-monospace, monospace; background: #44475a; color: #8be9fd; padding: .1rem .4rem; border-radius: .25rem; }
pre { overflow-x: auto; }
img { max-width: 100%; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- range .Sections}}
<section>
<div class="label"><span class="badge">{{.MimeType}}</span> {{.Label}}</div>
{{.Element.HTML}}
</section>
{{- else}}
<p>No outputs.</p>
{{- end}}
</body>
</html>
`))

// WritePage writes sections as a standalone HTML page.
func WritePage(w io.Writer, title string, sections []Section) error {
	return pageTmpl.Execute(w, struct {
		Title    string
		Sections []Section
	}{title, sections})
}

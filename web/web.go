// Package web embeds the single page template and the recorder script.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/index.html
var templateFS embed.FS

//go:embed static/script.js
var script []byte

// IndexTemplate is the template name rendered for the home page
const IndexTemplate = "index.html"

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Script returns the embedded recorder script
func Script() []byte {
	return script
}

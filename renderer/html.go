package renderer

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 56em; margin: 2em auto; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// HTML converts a markdown document into a standalone HTML page, the printable
// form of a report.
func HTML(title, markdown string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, htmlHeader, html.EscapeString(title))
	conv := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := conv.Convert([]byte(markdown), &buf); err != nil {
		return nil, fmt.Errorf("cannot convert report to HTML: %w", err)
	}
	buf.WriteString(htmlFooter)
	return buf.Bytes(), nil
}

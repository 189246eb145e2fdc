package nbscribe

import "fmt"

// documentShell wraps the converted HTML fragment in a complete HTML5
// document with fixed styling: sans-serif body, violet headings, grey code
// background, indented lists.
const documentShell = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Notebook Documentation</title>
<style>
body {
    font-family: 'Segoe UI', sans-serif;
    padding: 30px;
    line-height: 1.6;
    color: #333;
    background-color: #fff;
}
h1, h2, h3, h4 {
    color: #5a00cc;
    margin-top: 20px;
    margin-bottom: 10px;
}
h1 { font-size: 28px; }
h2 { font-size: 24px; }
h3 { font-size: 20px; }
p { margin: 8px 0; }
code {
    background: #f5f5f5;
    padding: 2px 5px;
    border-radius: 4px;
}
pre, .highlight {
    background: #f5f5f5;
    padding: 10px;
    overflow-x: auto;
    border-radius: 4px;
}
pre code { background: none; padding: 0; }
ul, ol { margin-left: 20px; }
table {
    border-collapse: collapse;
    margin: 12px 0;
}
th, td {
    border: 1px solid #ddd;
    padding: 6px 10px;
}
th { background: #f0eaff; }
blockquote {
    border-left: 4px solid #5a00cc;
    margin: 8px 0;
    padding-left: 12px;
    color: #555;
}
</style>
</head>
<body>
%s
</body>
</html>`

// wrapDocumentHTML embeds the HTML fragment into the document shell.
func wrapDocumentHTML(fragment string) string {
	return fmt.Sprintf(documentShell, fragment)
}

// Package tex formats component labels and assembles circuitikz documents.
//
// Labels arriving from a netlist are plain text ("5nF", "v_in", "R_load").
// Before they can appear in drawing commands they need TeX-safe escaping,
// and anything using math notation (subscripts, superscripts, macros) must
// be wrapped in math mode. [FormatLabel] performs both steps; [Subscript]
// builds the conventional component identifier labels such as "R_{1}".
package tex

import "strings"

// escaper handles characters that are special to TeX outside math mode.
// Backslash, underscore, and caret are deliberately absent: their presence
// switches the label into math mode instead (see FormatLabel).
var escaper = strings.NewReplacer(
	"%", `\%`,
	"&", `\&`,
	"#", `\#`,
)

// FormatLabel prepares a raw label value for use inside a drawing command.
//
// Rules, in order:
//   - empty input stays empty
//   - a label already containing '$' is passed through untouched, the
//     author has taken control of math mode themselves
//   - %, &, # are escaped
//   - labels using math notation (_, ^, or a TeX macro) are wrapped in $...$
func FormatLabel(s string) string {
	if s == "" {
		return ""
	}
	if strings.Contains(s, "$") {
		return s
	}
	out := escaper.Replace(s)
	if strings.ContainsAny(out, "_^\\") {
		return "$" + out + "$"
	}
	return out
}

// Subscript renders base with sub as a TeX subscript, e.g. ("R", "1") → "R_{1}".
func Subscript(base, sub string) string {
	return base + "_{" + sub + "}"
}

// Standalone wraps a tikzpicture body in a minimal standalone document so the
// output compiles directly with pdflatex. The body is expected to already
// contain the \begin{tikzpicture}...\end{tikzpicture} environment.
func Standalone(body string) string {
	var b strings.Builder
	b.WriteString("\\documentclass[border=4pt]{standalone}\n")
	b.WriteString("\\usepackage{circuitikz}\n")
	b.WriteString("\\begin{document}\n")
	b.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\\end{document}\n")
	return b.String()
}

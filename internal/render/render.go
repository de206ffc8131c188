// Package render fills the LaTeX template with resolved CV data.
package render

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/quillcv/quill/internal/cv"
	"github.com/quillcv/quill/internal/latex"
	"github.com/quillcv/quill/internal/output"
)

// Template delimiters. LaTeX owns braces, so the default {{ }} pair would
// collide with ordinary markup; << >> never appears in LaTeX source.
const (
	delimLeft  = "<<"
	delimRight = ">>"
)

// Section is one rendered CV section in display order.
type Section struct {
	Name    string
	Long    bool // compact-items body, rendered inside the section's own list
	Entries []*cv.Entry
}

// Data is the root object a template executes against.
type Data struct {
	Sections []Section
}

// BuildData arranges sorted groups into display order: long-form sections
// first, then short-form, then any leftover categories alphabetically.
// Empty categories are dropped.
func BuildData(groups cv.Groups, cats cv.Categories) Data {
	var data Data
	for _, name := range cats.Ordered(groups) {
		entries := groups[name]
		if len(entries) == 0 {
			continue
		}
		data.Sections = append(data.Sections, Section{
			Name:    name,
			Long:    cats.IsLong(name),
			Entries: entries,
		})
	}
	return data
}

// File renders the template at path against data. The escape function is
// exposed to the template for any raw text it handles directly.
func File(path string, data Data) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", output.NewUserError("template file not found: " + path)
		}
		return "", output.NewSystemErrorWithCause("failed to read template: "+path, err)
	}

	tmpl, err := template.New(filepath.Base(path)).
		Delims(delimLeft, delimRight).
		Funcs(template.FuncMap{
			"escape": latex.Escape,
			"deref":  derefString,
		}).
		Parse(string(raw))
	if err != nil {
		return "", output.NewUserError("invalid template " + path + ": " + err.Error())
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", output.NewSystemErrorWithCause("failed to render template", err)
	}
	return buf.String(), nil
}

// WriteFile renders the template and writes the result to outPath.
func WriteFile(templatePath, outPath string, data Data) error {
	tex, err := File(templatePath, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(tex), 0o644); err != nil {
		return output.NewSystemErrorWithCause("failed to write output file: "+outPath, err)
	}
	return nil
}

// derefString lets templates print optional dates without nil checks.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

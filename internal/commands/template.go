package commands

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

// Broadcast line templates. Kept in one place so world text can be tuned
// without touching handler logic.
const (
	msgTravel      = "You head {{ .Direction }}."
	msgDeparture   = "{{ .Name }} leaves {{ .Direction }}."
	msgArrival     = "{{ .Name }} arrives."
	msgConsumeSelf = "You {{ .Verb }} the {{ .Item }}"
	msgConsumeRoom = "{{ .Name }} {{ .Past }} a {{ .Item }}"
	msgHailSelf    = "You hail {{ .Target }}."
	msgHailTarget  = "{{ .Name }} hails you."
	msgHailRoom    = "{{ .Name }} hails {{ .Target }}."
)

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// expand is ExpandTemplate for the built-in catalog, where a parse or
// execute failure is a programming error.
func expand(tmplStr string, data any) string {
	s, err := ExpandTemplate(tmplStr, data)
	if err != nil {
		return ""
	}
	return s
}

// Package report provides report generation functionality.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/sivchari/calc/internal/config"
	"github.com/sivchari/calc/internal/eval"
)

const textTemplate = `{{.Operation}}({{join .Args ", "}})` +
	`{{if .Error}} failed: {{.Error}}{{else}} = {{value .Value}}{{end}}
`

// Generator handles report generation.
type Generator struct {
	config *config.YAMLConfig
	out    io.Writer
	tmpl   *template.Template
}

// New creates a new report generator writing to out.
func New(cfg *config.YAMLConfig, out io.Writer) (*Generator, error) {
	g := &Generator{
		config: cfg,
		out:    out,
	}

	funcMap := template.FuncMap{
		"join":  strings.Join,
		"value": g.formatValue,
	}

	tmpl, err := template.New("text_report").Funcs(funcMap).Parse(textTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse text template: %w", err)
	}

	g.tmpl = tmpl

	return g, nil
}

// Generate writes the evaluation result in the configured format.
func (g *Generator) Generate(result eval.Result) error {
	switch g.config.Output.Format {
	case config.FormatJSON:
		return g.generateJSON(result)
	default:
		return g.generateText(result)
	}
}

func (g *Generator) generateJSON(result eval.Result) error {
	// JSON has no encoding for Inf or NaN, so those travel as strings.
	if f, ok := result.Value.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		result.Value = strconv.FormatFloat(f, 'g', -1, 64)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if _, err := fmt.Fprintln(g.out, string(data)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (g *Generator) generateText(result eval.Result) error {
	if err := g.tmpl.Execute(g.out, result); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func (g *Generator) formatValue(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', g.config.Output.Precision, 64)
	}

	return fmt.Sprint(v)
}

package main

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sardinas/udcode"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// report pairs a code with its verdict for output.
type report struct {
	Code    []string       `yaml:"code"`
	Verdict udcode.Verdict `yaml:"verdict"`
}

// writeReports renders reports in the requested format.
func writeReports(w io.Writer, format string, reports []report) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		return enc.Close()
	default:
		for _, r := range reports {
			if _, err := fmt.Fprintln(w, textLine(r)); err != nil {
				return err
			}
		}

		return nil
	}
}

// textLine renders one report as a single line.
func textLine(r report) string {
	code := "{" + strings.Join(r.Code, ", ") + "}"
	if r.Verdict.Decodable {
		return code + ": uniquely decodable"
	}

	return fmt.Sprintf("%s: not uniquely decodable (witnesses: %s)", code, strings.Join(r.Verdict.Witnesses, ", "))
}

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tradequality/src/model"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formatter renders a report onto a writer.
type Formatter interface {
	Format(w io.Writer, report *model.Report) error
	ContentType() string
}

func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return TextFormatter{}, nil
	case FormatJSON:
		return JSONFormatter{}, nil
	case FormatYAML, "yml":
		return YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// TextFormatter prints one block per rule that found something, in rule order.
type TextFormatter struct{}

func (TextFormatter) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (TextFormatter) Format(w io.Writer, report *model.Report) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Data quality run %s: %d trades checked\n", report.RunID, report.Trades)

	for _, result := range report.Results {
		if len(result.Violations) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n%s (%s): %d\n", result.Description, result.Rule, len(result.Violations))
		for _, v := range result.Violations {
			fmt.Fprintf(b, "  ticket_hash=%s", v.TicketHash)
			for _, f := range v.Fields {
				fmt.Fprintf(b, " %s=%s", f.Name, f.Value)
			}
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(b, "\nData quality checks completed. %d violations found.\n", report.Total)
	_, err := io.WriteString(w, b.String())
	return err
}

type JSONFormatter struct{}

func (JSONFormatter) ContentType() string {
	return "application/json"
}

func (JSONFormatter) Format(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type YAMLFormatter struct{}

func (YAMLFormatter) ContentType() string {
	return "application/yaml"
}

func (YAMLFormatter) Format(w io.Writer, report *model.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

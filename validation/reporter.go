package validation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Format represents the output format for reporting errors.
type Format int

const (
	// FormatText outputs errors grouped by type in a human-readable format.
	FormatText Format = iota
	// FormatJSON outputs errors in JSON format.
	FormatJSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unsupported format: %s", s)
	}
}

// Reporter handles formatting and outputting validation errors.
type Reporter struct {
	writer     io.Writer
	format     Format
	baseBranch string
}

// NewReporter creates a new Reporter. baseBranch names the branch the base
// architecture was read from and is quoted next to deleted component errors.
func NewReporter(writer io.Writer, format Format, baseBranch string) *Reporter {
	return &Reporter{
		writer:     writer,
		format:     format,
		baseBranch: baseBranch,
	}
}

// Report writes errs to the output writer in the configured format.
func (r *Reporter) Report(errs []Error) error {
	switch r.format {
	case FormatText:
		return r.reportText(errs)
	case FormatJSON:
		return r.reportJSON(errs)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportText groups errors by type, in order of first appearance:
//
//	TYPE:
//	    description
//	    description
func (r *Reporter) reportText(errs []Error) error {
	if len(errs) == 0 {
		return nil
	}

	var order []ErrorType
	byType := make(map[ErrorType][]Error)
	for _, e := range errs {
		if _, ok := byType[e.Type]; !ok {
			order = append(order, e.Type)
		}
		byType[e.Type] = append(byType[e.Type], e)
	}

	var b strings.Builder
	for _, t := range order {
		b.WriteString(string(t))
		b.WriteString(":")
		for _, e := range byType[t] {
			b.WriteString("\n    ")
			b.WriteString(r.describe(e))
		}
		b.WriteString("\n")
	}

	if _, err := fmt.Fprintln(r.writer, strings.TrimSpace(b.String())); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	return nil
}

func (r *Reporter) describe(e Error) string {
	if e.Type == ErrInvalidDeletedComponentReference && r.baseBranch != "" {
		return fmt.Sprintf("%s (Checked architecture in %q branch.)", e.Description, r.baseBranch)
	}
	return e.Description
}

// reportJSON outputs errors in JSON format.
func (r *Reporter) reportJSON(errs []Error) error {
	if errs == nil {
		errs = []Error{}
	}
	output := struct {
		BaseBranch string  `json:"baseBranch,omitempty"`
		Errors     []Error `json:"errors"`
	}{
		BaseBranch: r.baseBranch,
		Errors:     errs,
	}

	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

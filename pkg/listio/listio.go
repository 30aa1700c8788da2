// Package listio reads item labels for a list and writes out what was
// selected once the picker exits.
package listio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/td0m/picklist/pkg/selection"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatNone Format = "none"
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNoLabels      = errors.New("no labels found")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatNone, FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatNone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Report is the serializable result of a session
type Report struct {
	Items    []selection.Item `json:"items" yaml:"items"`
	Selected []string         `json:"selected" yaml:"selected"`
}

func NewReport(l *selection.List) Report {
	r := Report{Items: l.Items(), Selected: []string{}}
	for _, it := range l.Selected() {
		r.Selected = append(r.Selected, it.Label)
	}
	return r
}

// Write encodes the list in the given format. Text prints one selected label
// per line, json and yaml carry every item.
func Write(w io.Writer, f Format, l *selection.List) error {
	r := NewReport(l)
	switch f {
	case FormatNone:
		return nil
	case FormatText:
		for _, label := range r.Selected {
			if _, err := fmt.Fprintln(w, label); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Save writes the list to a file, replacing its contents
func Save(file string, f Format, l *selection.List) error {
	if f == FormatNone {
		return nil
	}
	var b strings.Builder
	if err := Write(&b, f, l); err != nil {
		return err
	}
	if err := os.WriteFile(file, []byte(b.String()), 0660); err != nil {
		return err
	}
	return nil
}

// LoadLabels reads a yaml (or json) sequence of labels from a file
func LoadLabels(file string) ([]string, error) {
	bs, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var labels []string
	if err := yaml.Unmarshal(bs, &labels); err != nil {
		return nil, fmt.Errorf("parse %s: %w", file, err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("%s: %w", file, ErrNoLabels)
	}
	return labels, nil
}

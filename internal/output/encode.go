package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Format selects a machine-readable encoding
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// Encode writes v to w as indented JSON or YAML. FormatText is rejected.
func Encode(w io.Writer, format Format, v interface{}) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %d", format)
}

// PrettyJSON re-indents a raw API response. Bodies that are not JSON are
// written unchanged and the parse error is returned.
func PrettyJSON(w io.Writer, data []byte) error {
	var pretty interface{}
	if err := json.Unmarshal(data, &pretty); err != nil {
		_, _ = fmt.Fprintln(w, string(data))
		return err
	}
	return Encode(w, FormatJSON, pretty)
}

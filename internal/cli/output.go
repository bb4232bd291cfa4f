package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes data to the command's stdout in the format selected
// by the persistent --output flag.
func render(cmd *cobra.Command, data any) error {
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	return renderTo(cmd.OutOrStdout(), format, data)
}

// renderTo writes data to w as indented JSON (the default) or YAML.
func renderTo(w io.Writer, format string, data any) error {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

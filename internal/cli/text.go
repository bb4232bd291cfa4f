package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// resolveText returns text from inline or by reading path. A file
// path overrides inline text, and the path "-" reads standard input,
// so long bodies never have to pass through the shell:
//
//	--body-file content.html   # read from file
//	--body-file -              # read from stdin (pipe)
func resolveText(cmd *cobra.Command, inline, path string) (string, error) {
	if path == "" {
		return inline, nil
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Package output renders the generated matrix for its two consumers: a
// pretty-printed JSON document on stdout and the appended hand-off line in
// the GitHub Actions step output file.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/haproxy-tools/matrixgen/internal/matrix"
)

// Print writes the matrix as a 4-space-indented JSON array followed by a
// newline. Key order within entries is fixed by their field layout.
func Print(w io.Writer, entries []matrix.Entry) error {
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode matrix: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write matrix: %w", err)
	}

	return nil
}

// AppendGitHubOutput appends the workflow hand-off line
//
//	matrix={"include":[...]}
//
// to the step output file at path, creating the file if needed. Existing
// content is preserved: GitHub Actions treats the file as append-only.
func AppendGitHubOutput(path string, entries []matrix.Entry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode matrix: %w", err)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open step output file: %w", err)
	}

	if _, err := fmt.Fprintf(f, "matrix={\"include\":%s}\n", data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write step output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close step output file: %w", err)
	}

	return nil
}

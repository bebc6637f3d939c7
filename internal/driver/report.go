package driver

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// corpusFileHeader is the first line of every file in a Go fuzz corpus.
const corpusFileHeader = "go test fuzz v1\n"

// writeCorpusFile saves input under dir/target, in the format that `go
// test` reads from testdata/fuzz, and returns the path.  Identical inputs
// map to the same file.
func writeCorpusFile(dir, target string, input []byte) (string, error) {
	targetDir := filepath.Join(dir, target)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create crash directory: %w", err)
	}
	sum := sha256.Sum256(input)
	path := filepath.Join(targetDir, fmt.Sprintf("%x", sum[:8]))
	content := fmt.Sprintf("%s[]byte(%q)\n", corpusFileHeader, input)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write crash file: %w", err)
	}
	return path, nil
}

// readCorpus returns the contents of every regular file in dir, in the
// order that os.ReadDir lists them (by file name).
func readCorpus(dir string) ([][]byte, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var inputs [][]byte
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		input, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read corpus: %w", err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

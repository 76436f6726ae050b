// Package source reads input lines for the pipeline from files and stdin.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// Stdin is the path alias for reading from standard input.
const Stdin = "-"

// ReadLines reads every line from the given paths, in path order then line
// order. The stdin alias "-" reads standard input. The whole input is held
// in memory: the pipeline is a batch transform, not a stream.
func ReadLines(ctx context.Context, paths []string) ([]string, error) {
	var lines []string

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fileLines, err := readFile(path)
		if err != nil {
			return nil, err
		}
		lines = append(lines, fileLines...)
	}

	return lines, nil
}

func readFile(path string) ([]string, error) {
	if path == Stdin {
		return collectLines(os.Stdin, "stdin")
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}
	defer f.Close()

	return collectLines(f, path)
}

func collectLines(r io.Reader, name string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return lines, nil
}

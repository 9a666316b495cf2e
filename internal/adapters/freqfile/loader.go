// Package freqfile reads frequency list files.
//
// A frequency file holds one frequency per line. Only the first whitespace
// separated token of a line is read, so further columns are ignored. Blank
// lines and lines starting with '#' are skipped.
package freqfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.FrequencyLoader for the local filesystem.
type Loader struct{}

// New creates a new Loader.
func New() *Loader {
	return &Loader{}
}

// LoadFrequencies reads the frequency file at path. A file without any
// frequency is rejected with domain.ErrInvalidInputFile.
func (l *Loader) LoadFrequencies(path string) ([]domain.Frequency, error) {
	//nolint:gosec // Path is supplied by the user on purpose.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidInputFile, err), "path", path)
	}

	freqs, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if len(freqs) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidInputFile, "no frequencies"), "path", path)
	}
	return freqs, nil
}

// Parse reads frequencies from r. A malformed line fails the whole file with
// domain.ErrInvalidInputFile annotated with the line number.
func Parse(r io.Reader) ([]domain.Frequency, error) {
	var freqs []domain.Frequency

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		omega, err := domain.ParseFrequency(fields[0])
		if err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidInputFile, err), "line", lineNo)
		}
		freqs = append(freqs, omega)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInputFile, err)
	}

	return freqs, nil
}

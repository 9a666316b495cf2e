package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.trai.ch/heatsweep/internal/core/domain"
	"go.trai.ch/zerr"
)

// Series is the spectrum of one transformation.
type Series struct {
	Tag    string
	Omega  []float64
	Values []float64
}

// ReadByOmega parses a frequency-resolved output file. Series are returned in
// order of first appearance. Complex frequencies are represented by their real part.
func ReadByOmega(r io.Reader) ([]Series, error) {
	var series []Series
	index := make(map[string]int)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, zerr.With(
				zerr.Wrap(domain.ErrInvalidInputFile, "expected three columns"),
				"line", lineNo,
			)
		}
		omega, err := domain.ParseFrequency(fields[0])
		if err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidInputFile, err), "line", lineNo)
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidInputFile, err), "line", lineNo)
		}

		i, ok := index[fields[1]]
		if !ok {
			i = len(series)
			index[fields[1]] = i
			series = append(series, Series{Tag: fields[1]})
		}
		series[i].Omega = append(series[i].Omega, omega.Real())
		series[i].Values = append(series[i].Values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInputFile, err)
	}
	return series, nil
}

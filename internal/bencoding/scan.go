package bencoding

import (
	"bytes"
	"fmt"
)

// FindInfoSpan returns the span of the value stored under the first "4:info"
// marker in data. The marker is taken as-is: nothing checks that it is a key
// of the top-level dictionary, so the same bytes inside an earlier string
// payload will be picked up instead.
func FindInfoSpan(data []byte, mode ScanMode) (Span, error) {
	if len(data) == 0 {
		return Span{}, ErrEmptyData
	}

	markerIndex := bytes.Index(data, []byte(InfoKeyMarker))
	if markerIndex == -1 {
		return Span{}, ErrInfoKeyNotFound
	}
	start := markerIndex + len(InfoKeyMarker)

	var (
		end int
		err error
	)
	switch mode {
	case ScanNaive:
		end, err = scanNaive(data, start)
	case ScanStructural, "":
		end, err = scanStructural(data, start)
	default:
		return Span{}, fmt.Errorf("unknown scan mode %q", mode)
	}
	if err != nil {
		return Span{}, err
	}

	return Span{Start: start, End: end}, nil
}

// ExtractInfo returns the raw bytes of the info value, see FindInfoSpan
func ExtractInfo(data []byte, mode ScanMode) ([]byte, error) {
	span, err := FindInfoSpan(data, mode)
	if err != nil {
		return nil, err
	}
	return span.Bytes(data), nil
}

// scanNaive counts container markers byte by byte and returns the offset just
// past the 'e' that brings depth back to zero. String payloads are not
// skipped, so a payload containing 'd', 'l' or 'e' shifts the result.
func scanNaive(data []byte, start int) (int, error) {
	depth := 0
	for i := start; i < len(data); i++ {
		switch data[i] {
		case 'd', 'l':
			depth++
		case 'e':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: depth %d at end of input (scanned from offset %d)",
		ErrUnterminatedStructure, depth, start)
}

// scanStructural counts container depth the same way as scanNaive but steps
// over strings and integers as whole values.
func scanStructural(data []byte, start int) (int, error) {
	depth := 0
	i := start
	for i < len(data) {
		c := data[i]
		switch {
		case c == 'd' || c == 'l':
			depth++
			i++
			continue

		case c == 'e':
			if depth == 0 {
				return 0, fmt.Errorf("%w: unexpected 'e' at offset %d", ErrMalformedValue, i)
			}
			depth--
			i++

		case c == 'i':
			next, err := skipInteger(data, i)
			if err != nil {
				return 0, err
			}
			i = next

		case c >= '0' && c <= '9':
			next, err := skipString(data, i)
			if err != nil {
				return 0, err
			}
			i = next

		default:
			return 0, fmt.Errorf("%w: unexpected byte %q at offset %d", ErrMalformedValue, c, i)
		}

		if depth == 0 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: depth %d at end of input (scanned from offset %d)",
		ErrUnterminatedStructure, depth, start)
}

// skipString returns the offset just past the string starting at i
func skipString(data []byte, i int) (int, error) {
	colonIndex := bytes.IndexByte(data[i:], ':')
	if colonIndex == -1 {
		return 0, fmt.Errorf("%w: no colon after string length at offset %d", ErrUnterminatedStructure, i)
	}

	// Validate all characters before colon are ASCII digits
	size := 0
	for _, c := range data[i : i+colonIndex] {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: expected ASCII digit in string length at offset %d", ErrMalformedValue, i)
		}
		size = size*10 + int(c-'0')
		if size > len(data) {
			break
		}
	}

	end := i + colonIndex + 1 + size
	if size > len(data) || end > len(data) {
		return 0, fmt.Errorf("%w: string at offset %d exceeds data bounds", ErrUnterminatedStructure, i)
	}
	return end, nil
}

// skipInteger returns the offset just past the integer starting at i
func skipInteger(data []byte, i int) (int, error) {
	eIndex := bytes.IndexByte(data[i:], 'e')
	if eIndex == -1 {
		return 0, fmt.Errorf("%w: no 'e' terminator for integer at offset %d", ErrUnterminatedStructure, i)
	}

	numStr := data[i+1 : i+eIndex]
	if len(numStr) > 0 && numStr[0] == '-' {
		numStr = numStr[1:]
	}
	if len(numStr) == 0 {
		return 0, fmt.Errorf("%w: empty integer at offset %d", ErrMalformedValue, i)
	}
	for _, c := range numStr {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: expected ASCII digit in integer at offset %d", ErrMalformedValue, i)
		}
	}
	return i + eIndex + 1, nil
}

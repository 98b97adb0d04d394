package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	gojson "github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// ReadInstance decodes an instance from a JSON array of arrays of
// integers, e.g. [[4,5],[4],[5]]. Outer order becomes subset order; an
// empty outer array is a legal instance of length 0, and empty inner
// arrays are legal empty subsets.
//
// Gzip-compressed streams are detected by their magic bytes and
// decompressed transparently.
//
// Any malformed payload (not an array of arrays, non-integer or
// out-of-range elements, trailing data) fails with an error wrapping
// ErrBadInput; no partial Instance is ever returned.
func ReadInstance(r io.Reader) (*Instance, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil reader", ErrBadInput)
	}

	br := bufio.NewReader(r)
	if head, err := br.Peek(2); err == nil && head[0] == 0x1f && head[1] == 0x8b {
		zr, zerr := gzip.NewReader(br)
		if zerr != nil {
			return nil, fmt.Errorf("%w: gzip header: %v", ErrBadInput, zerr)
		}
		defer zr.Close()

		return decodeInstance(zr)
	}

	return decodeInstance(br)
}

// LoadInstance opens path and delegates to ReadInstance.
func LoadInstance(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open instance: %w", err)
	}
	defer f.Close()

	return ReadInstance(f)
}

// decodeInstance parses the JSON payload from r into an Instance.
func decodeInstance(r io.Reader) (*Instance, error) {
	dec := gojson.NewDecoder(r)

	var rows [][]gojson.Number
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	// A bare JSON null decodes without error; reject it explicitly.
	if rows == nil {
		return nil, fmt.Errorf("%w: expected an array of arrays", ErrBadInput)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after subset collection", ErrBadInput)
	}

	subsets := make([]Subset, len(rows))
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("%w: subset %d: expected an array", ErrBadInput, i)
		}
		elems := make([]uint32, 0, len(row))
		for _, num := range row {
			e, err := strconv.ParseUint(num.String(), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("%w: subset %d: element %q is not a 32-bit unsigned integer", ErrBadInput, i, num.String())
			}
			elems = append(elems, uint32(e))
		}
		subsets[i] = NewSubset(elems...)
	}

	return NewInstance(subsets...), nil
}

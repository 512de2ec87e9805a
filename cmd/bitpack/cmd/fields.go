package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadField = errors.New("field should look like value:length")

// parseField parses value:length, value accepts 0b, 0o and 0x prefixes.
func parseField(s string) (uint64, uint, error) {
	val, ln, ok := strings.Cut(s, ":")
	if !ok || val == "" || ln == "" {
		return 0, 0, fmt.Errorf("%w, got %q", errBadField, s)
	}

	value, err := strconv.ParseUint(val, 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad value %q: %w", val, err)
	}

	sz, err := parseLength(ln)
	if err != nil {
		return 0, 0, err
	}

	return value, sz, nil
}

func parseLength(s string) (uint, error) {
	sz, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad length %q: %w", s, err)
	}
	return uint(sz), nil
}

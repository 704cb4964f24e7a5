package render

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FormatHex renders bytes as uppercase pairs separated by single spaces,
// e.g. "0F 19 03"
func FormatHex(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(data)*3 - 1)
	for i, b := range data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", b)
	}
	return sb.String()
}

// ParseHex is the inverse of FormatHex. It also accepts any whitespace,
// lowercase digits, 0x prefixes on each token and unseparated digit runs.
func ParseHex(s string) ([]byte, error) {
	var digits strings.Builder
	for _, token := range strings.Fields(s) {
		if len(token) > 2 && (token[:2] == "0x" || token[:2] == "0X") {
			token = token[2:]
		}
		if len(token)%2 != 0 {
			return nil, fmt.Errorf("hex token %q has an odd number of digits", token)
		}
		digits.WriteString(token)
	}

	data, err := hex.DecodeString(digits.String())
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return data, nil
}

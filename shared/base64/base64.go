package base64

import (
	"encoding/base64"
	"fmt"
	"strings"
)

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode strips the data URI prefix and decodes the base64 payload.
func Decode(file string) ([]byte, error) {
	idx := strings.Index(file, ";base64,")
	if idx == -1 {
		return nil, fmt.Errorf("not a base64 data URI")
	}

	raw, err := base64.StdEncoding.DecodeString(file[idx+len(";base64,"):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return raw, nil
}

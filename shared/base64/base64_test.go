package base64_test

import (
	b64 "encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	"wander/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "png data uri",
			input:    "data:image/png;base64,iVBORw0KGgo=",
			expected: "image/png",
		},
		{
			name:     "jpeg data uri",
			input:    "data:image/jpeg;base64,/9j/4AAQ",
			expected: "image/jpeg",
		},
		{
			name:     "plain url",
			input:    "https://example.com/image.png",
			expected: "",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	payload := []byte("fake image bytes")
	encoded := "data:image/png;base64," + b64.StdEncoding.EncodeToString(payload)

	decoded, err := base64.Decode(encoded)
	assert.NoError(t, err)
	assert.Equal(t, payload, decoded)

	_, err = base64.Decode("https://example.com/image.png")
	assert.Error(t, err)

	_, err = base64.Decode("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}

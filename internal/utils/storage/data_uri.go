package storage

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid base64 image")

// DecodeDataURI decodes "data:image/<ext>;base64,<payload>" and returns the
// raw bytes and the declared MIME type.
func DecodeDataURI(value string) ([]byte, string, error) {
	meta, payload, found := strings.Cut(value, ";base64,")
	if !found || !strings.HasPrefix(meta, "data:image/") {
		return nil, "", ErrInvalidDataURI
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", ErrInvalidDataURI
	}
	if len(data) == 0 {
		return nil, "", ErrInvalidDataURI
	}

	return data, strings.TrimPrefix(meta, "data:"), nil
}

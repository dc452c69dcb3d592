package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeDataURL splits a data URL into its media type and decoded payload.
// Malformed input is an error up front, before anything downstream starts
// emitting bytes.
func DecodeDataURL(dataURL string) (mediaType string, data []byte, err error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, fmt.Errorf("invalid data URL")
	}
	meta, encoded, ok := strings.Cut(dataURL[len("data:"):], ",")
	if !ok || encoded == "" {
		return "", nil, fmt.Errorf("invalid data URL")
	}
	mediaType = meta
	if i := strings.Index(meta, ";"); i >= 0 {
		mediaType = meta[:i]
	}
	if strings.HasSuffix(meta, ";base64") {
		raw, decErr := base64.StdEncoding.DecodeString(encoded)
		if decErr != nil {
			return "", nil, fmt.Errorf("invalid data URL payload: %w", decErr)
		}
		return mediaType, raw, nil
	}
	return mediaType, []byte(encoded), nil
}

// EncodeDataURL is the inverse, used for preview thumbnails.
func EncodeDataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

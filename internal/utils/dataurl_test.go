package utils

import (
	"bytes"
	"testing"
)

func TestDecodeDataURLRoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0xff}
	url := EncodeDataURL("image/png", payload)
	mediaType, data, err := DecodeDataURL(url)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mediaType != "image/png" {
		t.Errorf("media type %q", mediaType)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("payload mismatch: %v", data)
	}
}

func TestDecodeDataURLPlainText(t *testing.T) {
	mediaType, data, err := DecodeDataURL("data:text/plain,hello")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mediaType != "text/plain" || string(data) != "hello" {
		t.Errorf("got %q %q", mediaType, data)
	}
}

func TestDecodeDataURLMalformed(t *testing.T) {
	for _, bad := range []string{
		"",
		"http://example.com/a.png",
		"data:image/png;base64",
		"data:image/png;base64,",
		"data:image/png;base64,@@@@",
	} {
		if _, _, err := DecodeDataURL(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

package handlers

import (
	"strings"
	"testing"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "single object", body: `{"url":"https://example.com","title":"t"}`},
		{name: "trailing newline", body: "{\"url\":\"https://example.com\",\"title\":\"t\"}\n"},
		{name: "trailing garbage", body: `{"url":"https://example.com","title":"t"} garbage`, wantErr: true},
		{name: "two values", body: `{"url":"https://example.com","title":"t"}{"x":1}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
		{name: "truncated", body: `{"url":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req createRequest
			err := decodeBody(strings.NewReader(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeBody() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && (req.URL == nil || *req.URL != "https://example.com") {
				t.Errorf("decodeBody() url = %v, want https://example.com", req.URL)
			}
		})
	}
}

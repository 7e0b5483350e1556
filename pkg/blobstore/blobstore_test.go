package blobstore

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	tests := []struct {
		name        string
		uri         string
		wantType    string
		wantErr     bool
	}{
		{name: "png", uri: "data:image/png;base64," + payload, wantType: "image/png"},
		{name: "jpeg", uri: "data:image/jpeg;base64," + payload, wantType: "image/jpeg"},
		{name: "gif rejected", uri: "data:image/gif;base64," + payload, wantErr: true},
		{name: "not a data uri", uri: "https://example.com/x.png", wantErr: true},
		{name: "missing payload", uri: "data:image/png;base64", wantErr: true},
		{name: "bad base64", uri: "data:image/png;base64,!!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			contentType, data, err := DecodeDataURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got type %q", contentType)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if contentType != tt.wantType {
				t.Errorf("content type = %q, want %q", contentType, tt.wantType)
			}
			if string(data) != "fake image bytes" {
				t.Errorf("payload mismatch: %q", data)
			}
		})
	}
}

func TestObjectNameFor(t *testing.T) {
	name := objectNameFor("avatars/profile.png")
	if !strings.HasPrefix(name, "avatars/") {
		t.Errorf("folder not preserved: %q", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("extension not preserved: %q", name)
	}

	bare := objectNameFor("chat")
	if strings.Contains(bare, "/") || strings.Contains(bare, ".") {
		t.Errorf("unexpected separators in %q", bare)
	}
}

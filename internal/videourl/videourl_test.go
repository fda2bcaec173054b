package videourl_test

import (
	"testing"

	"tunegrab/internal/videourl"
)

func TestSupported(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"https://youtu.be/abc123", true},
		{"https://www.youtube.com/watch?v=abc123", true},
		{"http://m.youtube.com/watch?v=abc123", true},
		{"https://music.youtube.com/watch?v=abc123", true},
		{"https://example.com/x", false},
		{"not a url", false},
		{"", false},
		{"   ", false},
		{"ftp://youtube.com/video", false},
		{"https://notyoutube.com/watch", false},
		{"https://youtube.com.evil.example/watch", false},
		{"youtu.be/abc123", false}, // missing scheme
	}
	for _, tc := range cases {
		if got := videourl.Supported(tc.raw); got != tc.want {
			t.Fatalf("Supported(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

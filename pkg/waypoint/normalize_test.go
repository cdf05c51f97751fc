package waypoint

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"//", "/"},
		{"a", "/a"},
		{"/a/", "/a"},
		{"/a", "/a"},
		{"a/b/", "/a/b"},
		{"  /list/detail/12  ", "/list/detail/12"},
		{"///x//", "/x"},
		{"a//", "/a"},
	}

	for _, tt := range tests {
		got := NormalizeURL(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := NormalizeURL(got); again != got {
			t.Errorf("NormalizeURL is not idempotent for %q: %q then %q", tt.in, got, again)
		}
	}
}

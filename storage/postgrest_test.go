package storage

import "testing"

func TestSanitizeFilterTerm(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"kim", "kim"},
		{`kim,(x)."*\`, "kimx"},
		{"a.b,c)", "abc"},
		{",().", ""},
	}
	for _, tc := range cases {
		if got := sanitizeFilterTerm(tc.in); got != tc.want {
			t.Errorf("sanitizeFilterTerm(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

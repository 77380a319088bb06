package tools

import "testing"

func TestSanitizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"03001234567", "923001234567"},
		{"0300-123-4567", "923001234567"},
		{"+92 300 1234567", "923001234567"},
		{"923001234567", "923001234567"},
		{"(0300) 1234567", "923001234567"},
		{"abc", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := SanitizePhone(c.in); got != c.want {
			t.Errorf("SanitizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

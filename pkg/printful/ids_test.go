package printful

import "testing"

func TestNormalizeID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"123456", "123456"},
		{"my-external-sku", "@my-external-sku"},
		{"@already-prefixed", "@already-prefixed"},
		{"sku42", "@sku42"},
		{" 77 ", "77"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizeID(tc.in); got != tc.want {
			t.Errorf("normalizeID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Sunrise Villas ", "Sunrise Villas"},
		{"<script>alert(1)</script>Pune", "Pune"},
		{"<b>Tom</b> & Jerry", "Tom & Jerry"},
		{"O'Neil", "O'Neil"},
		{"<img src=x onerror=alert(1)>", ""},
		{"&lt;script&gt;alert(1)&lt;/script&gt;", ""},
		{"&lt;img src=x onerror=alert(1)&gt;", ""},
		{"&amp;lt;b&amp;gt;Bold&amp;lt;/b&amp;gt;", "Bold"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
	}
	for _, tc := range cases {
		got := cleanText(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.NotContains(t, got, "<", tc.in)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", normalizeEmail("  A@B.Com "))
}

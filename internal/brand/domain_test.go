package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"https://github.com/yeqown/go-qrcode", "github.com"},
		{"https://www.Example.com/path?q=1", "example.com"},
		{"http://shop.example.co.uk:8080/cart", "shop.example.co.uk"},
		{"someone@GMAIL.com", "gmail.com"},
		{"mailto:team@instagram.com", "instagram.com"},
		{"https://user:pw@github.com/x", "github.com/x"},
		{"github.com/no-scheme", ""},
		{"just some text", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDomain(tt.in))
		})
	}
}

func TestPrimaryLabel(t *testing.T) {
	assert.Equal(t, "github", PrimaryLabel("github.com"))
	assert.Equal(t, "shop", PrimaryLabel("shop.example.co.uk"))
	assert.Equal(t, "localhost", PrimaryLabel("localhost"))
	assert.Equal(t, "", PrimaryLabel(""))
	assert.Equal(t, "github", PrimaryLabel(ExtractDomain("https://user:pw@github.com/x")))
}

func TestPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.NoColorize("github"))
	assert.True(t, p.NoColorize("GMail"))
	assert.False(t, p.NoColorize("example"))
	assert.Equal(t, []string{"github", "gmail", "instagram"}, p.Labels())

	custom := NewPolicy(" Acme ", "")
	assert.True(t, custom.NoColorize("acme"))
	assert.False(t, custom.NoColorize("github"))
	assert.Len(t, custom.Labels(), 1)

	var none *Policy
	assert.False(t, none.NoColorize("github"))
}

package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeProfileURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.linkedin.com/in/jane-doe", "https://www.linkedin.com/in/jane-doe/"},
		{"  linkedin.com/in/jane-doe/  ", "https://linkedin.com/in/jane-doe/"},
		{"http://WWW.LinkedIn.com/in/jane-doe/details/experience/", "https://www.linkedin.com/in/jane-doe/"},
		{"https://uk.linkedin.com/in/jane?trk=public#about", "https://uk.linkedin.com/in/jane/"},
	}
	for _, tt := range tests {
		got, err := NormalizeProfileURL(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNormalizeProfileURLRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"https://example.com/in/jane",
		"https://notlinkedin.com/in/jane",
		"https://www.linkedin.com/company/acme",
		"https://www.linkedin.com/in/",
		"ftp://www.linkedin.com/in/jane",
		"https://linkedin.com.evil.io/in/jane",
	} {
		_, err := NormalizeProfileURL(in)
		assert.ErrorIs(t, err, ErrInvalidProfileURL, in)
	}
}

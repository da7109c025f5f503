package httputil

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https anywhere", "https://example.com/v1.tar.gz", false},
		{"http loopback ip", "http://127.0.0.1:8080/v1.tar.gz", false},
		{"http localhost", "http://localhost:8080/v1.tar.gz", false},
		{"http remote", "http://example.com/v1.tar.gz", true},
		{"ftp", "ftp://example.com/v1.tar.gz", true},
		{"file", "file:///tmp/v1.tar.gz", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			err = CheckURL(u)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(ClientOptions{})
	require.NotNil(t, c.Transport)
	require.NotNil(t, c.CheckRedirect)
	assert.Zero(t, c.Timeout, "no overall timeout for large archive downloads")
}

// Package httputil provides the hardened HTTP client and the archive
// fetcher used to download tooling version releases.
package httputil

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"
)

// ClientOptions configures the download client.
type ClientOptions struct {
	// Timeout is the overall request timeout. Zero means no overall
	// timeout; version archives can be large, so the per-phase
	// timeouts below bound stalls instead.
	Timeout time.Duration

	// DialTimeout is the TCP dial timeout. Default: 30s.
	DialTimeout time.Duration

	// TLSHandshakeTimeout is the TLS handshake timeout. Default: 10s.
	TLSHandshakeTimeout time.Duration

	// ResponseHeaderTimeout is the time to wait for response headers.
	// Default: 30s.
	ResponseHeaderTimeout time.Duration

	// MaxRedirects is the maximum redirect depth. Default: 10.
	MaxRedirects int
}

// DefaultOptions returns client options suitable for archive downloads.
func DefaultOptions() ClientOptions {
	return ClientOptions{
		DialTimeout:           30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		MaxRedirects:          10,
	}
}

// NewClient creates an HTTP client for release downloads.
//
// Redirects must stay on HTTPS; plain HTTP is tolerated only for
// loopback addresses so local mirrors and tests work. Compression is
// disabled since archives are already compressed.
func NewClient(opts ClientOptions) *http.Client {
	if opts.DialTimeout == 0 {
		opts.DialTimeout = 30 * time.Second
	}
	if opts.TLSHandshakeTimeout == 0 {
		opts.TLSHandshakeTimeout = 10 * time.Second
	}
	if opts.ResponseHeaderTimeout == 0 {
		opts.ResponseHeaderTimeout = 30 * time.Second
	}
	if opts.MaxRedirects == 0 {
		opts.MaxRedirects = 10
	}

	return &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			DisableCompression: true,
			DialContext: (&net.Dialer{
				Timeout:   opts.DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   opts.TLSHandshakeTimeout,
			ResponseHeaderTimeout: opts.ResponseHeaderTimeout,
			ExpectContinueTimeout: 1 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= opts.MaxRedirects {
				return fmt.Errorf("too many redirects")
			}
			if err := CheckURL(req.URL); err != nil {
				return fmt.Errorf("refusing redirect: %w", err)
			}
			return nil
		},
	}
}

// CheckURL validates a download URL: HTTPS everywhere, plain HTTP only
// for loopback hosts.
func CheckURL(u *url.URL) error {
	switch u.Scheme {
	case "https":
		return nil
	case "http":
		if isLoopbackHost(u.Hostname()) {
			return nil
		}
		return fmt.Errorf("plain HTTP is only allowed for loopback hosts, got %q", u.Host)
	default:
		return fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

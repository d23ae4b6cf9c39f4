package upstreamproxy

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http/httpproxy"
	xproxy "golang.org/x/net/proxy"
)

// transportOptions holds per-call configuration applied via TransportOption.
type transportOptions struct {
	timeout time.Duration
	noProxy string
	logger  *slog.Logger
}

// TransportOption configures a single NewTransport or NewHTTPClient call.
type TransportOption func(*transportOptions)

// WithTimeout sets the overall request timeout on clients built by
// NewHTTPClient. Zero means no timeout.
func WithTimeout(d time.Duration) TransportOption {
	return func(o *transportOptions) {
		o.timeout = d
	}
}

// WithNoProxy sets a comma-separated list of hosts, IPs, and CIDR ranges
// that bypass an HTTP proxy, in the format of the NO_PROXY environment
// variable. It has no effect on SOCKS routes.
func WithNoProxy(hosts string) TransportOption {
	return func(o *transportOptions) {
		o.noProxy = hosts
	}
}

// WithLogger sets the structured logger. If unset, logging is discarded.
func WithLogger(l *slog.Logger) TransportOption {
	return func(o *transportOptions) {
		o.logger = l
	}
}

// NewTransport builds an *http.Transport that routes traffic of the given
// class through the effective proxy. HTTP proxies are installed as the
// transport's Proxy function. SOCKS proxies replace DialContext with a
// SOCKS5 client dialer, which sends hostnames to the proxy for resolution,
// satisfying socks5h semantics. With no proxy configured the transport is a
// plain clone of http.DefaultTransport.
func (c *Config) NewTransport(class TrafficClass, opts ...TransportOption) (*http.Transport, error) {
	o := newTransportOptions(opts)
	transport := http.DefaultTransport.(*http.Transport).Clone()

	rt := c.Route(class)
	switch rt.Kind {
	case RouteDirect:
		return transport, nil

	case RouteHTTP:
		raw := rt.URL.String()
		proxyCfg := &httpproxy.Config{
			HTTPProxy:  raw,
			HTTPSProxy: raw,
			NoProxy:    o.noProxy,
		}
		proxyFunc := proxyCfg.ProxyFunc()
		transport.Proxy = func(req *http.Request) (*url.URL, error) {
			return proxyFunc(req.URL)
		}

	case RouteSOCKS:
		dialer, err := xproxy.SOCKS5("tcp", rt.URL.Host, socksAuth(rt.URL), xproxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("upstreamproxy: socks5 dialer for %s: %w", rt.URL.Host, err)
		}
		contextDialer, ok := dialer.(xproxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("upstreamproxy: socks5 dialer for %s does not support context dialing", rt.URL.Host)
		}
		transport.Proxy = nil
		transport.DialContext = contextDialer.DialContext
	}

	o.logger.Debug("transport configured",
		"class", class.String(),
		"route", rt.Kind.String(),
		"proxy", rt.URL.Redacted(),
	)
	return transport, nil
}

// NewHTTPClient builds an *http.Client whose transport routes traffic of
// the given class through the effective proxy.
func (c *Config) NewHTTPClient(class TrafficClass, opts ...TransportOption) (*http.Client, error) {
	transport, err := c.NewTransport(class, opts...)
	if err != nil {
		return nil, err
	}
	o := newTransportOptions(opts)
	return &http.Client{
		Transport: transport,
		Timeout:   o.timeout,
	}, nil
}

func newTransportOptions(opts []TransportOption) *transportOptions {
	o := &transportOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// socksAuth extracts user credentials from a SOCKS proxy URL.
func socksAuth(u *url.URL) *xproxy.Auth {
	if u.User == nil {
		return nil
	}
	password, _ := u.User.Password()
	return &xproxy.Auth{
		User:     u.User.Username(),
		Password: password,
	}
}

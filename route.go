package upstreamproxy

import "net/url"

// SOCKSProxyKey is the sentinel key used by SchemeKeyedProxyMap when the
// effective proxy is a SOCKS proxy. Client libraries keyed by URL prefix
// cannot express SOCKS proxies; a caller that sees this key must construct
// a SOCKS transport instead (NewTransport does this).
const SOCKSProxyKey = "_socks_proxy"

// RouteKind discriminates how outbound traffic of a class reaches the
// network.
type RouteKind int

const (
	// RouteDirect means no proxy is configured; connect directly.
	RouteDirect RouteKind = iota

	// RouteHTTP means traffic goes through an HTTP/HTTPS CONNECT proxy.
	RouteHTTP

	// RouteSOCKS means traffic goes through a SOCKS5 proxy.
	RouteSOCKS
)

// String returns the string representation of a RouteKind.
func (k RouteKind) String() string {
	switch k {
	case RouteDirect:
		return "direct"
	case RouteHTTP:
		return "http"
	case RouteSOCKS:
		return "socks"
	default:
		return "unknown"
	}
}

// Route describes the resolved proxy route for a traffic class.
// URL is nil when Kind is RouteDirect.
type Route struct {
	Kind RouteKind
	URL  *url.URL
}

// Route resolves the effective proxy for the given class into a tagged
// route. It is the preferred form for callers that construct transports;
// the map adapters below exist for client libraries with dictionary-shaped
// proxy settings.
func (c *Config) Route(class TrafficClass) Route {
	raw := c.Effective(class)
	if raw == "" {
		return Route{Kind: RouteDirect}
	}
	u, err := url.Parse(raw)
	if err != nil {
		// Unreachable for configs built with New, which rejects
		// unparseable URLs.
		return Route{Kind: RouteDirect}
	}
	if isSOCKSScheme(u.Scheme) {
		return Route{Kind: RouteSOCKS, URL: u}
	}
	return Route{Kind: RouteHTTP, URL: u}
}

func isSOCKSScheme(scheme string) bool {
	return scheme == "socks5" || scheme == "socks5h"
}

// SimpleProxyMap returns the effective proxy for the given class as a
// mapping with "http" and "https" keys, the shape accepted by client
// libraries that take one proxy URL per target scheme. It returns nil when
// no proxy is configured for the class.
func (c *Config) SimpleProxyMap(class TrafficClass) map[string]string {
	raw := c.Effective(class)
	if raw == "" {
		return nil
	}
	return map[string]string{
		"http":  raw,
		"https": raw,
	}
}

// SchemeKeyedProxyMap returns the effective proxy for the given class as a
// mapping keyed by URL prefix ("http://", "https://"), the shape used by
// client libraries that match proxies by target-URL prefix. SOCKS proxies
// cannot be expressed that way; for them the map holds the raw URL under
// SOCKSProxyKey. Returns nil when no proxy is configured.
func (c *Config) SchemeKeyedProxyMap(class TrafficClass) map[string]string {
	rt := c.Route(class)
	switch rt.Kind {
	case RouteSOCKS:
		return map[string]string{SOCKSProxyKey: c.Effective(class)}
	case RouteHTTP:
		raw := c.Effective(class)
		return map[string]string{
			"http://":  raw,
			"https://": raw,
		}
	default:
		return nil
	}
}

// LLMClientEnv returns the environment variables that direct an LLM client
// honoring the conventional proxy variables through the effective LLM
// proxy. The map is empty when no LLM proxy is configured.
func (c *Config) LLMClientEnv() map[string]string {
	env := map[string]string{}
	if raw := c.Effective(TrafficLLM); raw != "" {
		env["HTTP_PROXY"] = raw
		env["HTTPS_PROXY"] = raw
	}
	return env
}

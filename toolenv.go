package upstreamproxy

import (
	"github.com/usestrix/upstreamproxy/internal/envutil"
)

// noProxyValue lists addresses that bypass the proxy: localhost, loopback,
// link-local, and RFC 1918 private ranges. Tool traffic to local services
// must not leave the machine through the upstream proxy.
const noProxyValue = "localhost,127.0.0.1,::1,*.local,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16,100.64.0.0/10,169.254.0.0/16,fc00::/7,fe80::/10"

// ToolCommandEnv merges proxy environment variables for the effective tools
// proxy into base, an env slice of "KEY=VALUE" entries as used by
// exec.Cmd.Env. HTTP proxies are exported through HTTP_PROXY and HTTPS_PROXY
// (plus lowercase variants), SOCKS proxies through ALL_PROXY. NO_PROXY is
// set alongside so local traffic stays direct. Entries in base with the
// same keys are overwritten. With no tools proxy configured, base is
// returned unchanged.
func (c *Config) ToolCommandEnv(base []string) []string {
	rt := c.Route(TrafficTools)
	if rt.Kind == RouteDirect {
		return base
	}
	raw := c.Effective(TrafficTools)

	var extra []string
	switch rt.Kind {
	case RouteHTTP:
		extra = append(extra,
			"HTTP_PROXY="+raw,
			"http_proxy="+raw,
			"HTTPS_PROXY="+raw,
			"https_proxy="+raw,
		)
	case RouteSOCKS:
		extra = append(extra,
			"ALL_PROXY="+raw,
			"all_proxy="+raw,
		)
	}
	extra = append(extra,
		"NO_PROXY="+noProxyValue,
		"no_proxy="+noProxyValue,
	)

	return envutil.Merge(base, extra)
}

// Package upstreamproxy loads and validates upstream proxy settings for an
// AI agent runtime.
//
// Two classes of outbound traffic are configured independently: tool traffic
// (requests made by agent tool execution) and LLM traffic (requests to the
// language-model provider API). Settings come from three environment
// variables:
//
//	STRIX_PROXY_TOOLS  proxy URL for tool traffic
//	STRIX_PROXY_LLM    proxy URL for LLM API traffic
//	STRIX_PROXY_ALL    fallback proxy URL for both classes
//
// Supported schemes are http, https, socks5, and socks5h; host and port are
// mandatory. Class-specific settings always win over the fallback.
//
// Basic usage:
//
//	cfg, err := upstreamproxy.Global()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client, err := cfg.NewHTTPClient(upstreamproxy.TrafficTools)
//
// The package performs no network I/O itself. It produces configuration in
// shapes consumable by HTTP client libraries, builds proxied transports on
// request, and exports the conventional HTTP_PROXY/HTTPS_PROXY variables for
// LLM clients that read them.
package upstreamproxy

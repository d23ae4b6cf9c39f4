package upstreamproxy

import (
	"fmt"
	"net/url"
	"strconv"
)

// Environment variables consumed by LoadFromEnvironment. Validation errors
// reference these names so a misconfigured deployment points straight at the
// variable to fix.
const (
	EnvToolsProxy = "STRIX_PROXY_TOOLS"
	EnvLLMProxy   = "STRIX_PROXY_LLM"
	EnvAllProxy   = "STRIX_PROXY_ALL"
)

// TrafficClass identifies which class of outbound traffic a proxy setting
// applies to.
type TrafficClass int

const (
	// TrafficTools is outbound traffic generated by agent tool execution.
	TrafficTools TrafficClass = iota

	// TrafficLLM is outbound traffic to the language-model provider API.
	TrafficLLM
)

// String returns the string representation of a TrafficClass.
func (c TrafficClass) String() string {
	switch c {
	case TrafficTools:
		return "tools"
	case TrafficLLM:
		return "llm"
	default:
		return "unknown"
	}
}

// Config holds upstream proxy settings for tool and LLM traffic.
// Values are validated by New and must not be mutated afterwards.
type Config struct {
	// ToolsProxy is the proxy URL for tool traffic. Empty means unset.
	ToolsProxy string

	// LLMProxy is the proxy URL for LLM API traffic. Empty means unset.
	LLMProxy string

	// AllProxy is the fallback proxy URL for both classes. Empty means unset.
	AllProxy string
}

// New validates the given proxy URLs and returns a Config. Each non-empty
// URL must use one of the schemes http, https, socks5, or socks5h and carry
// an explicit hostname and non-zero port. If any URL is invalid, New returns
// an *InvalidProxyURLError naming the corresponding environment variable and
// no Config is produced.
func New(toolsProxy, llmProxy, allProxy string) (*Config, error) {
	for _, f := range []struct {
		envVar string
		rawURL string
	}{
		{EnvToolsProxy, toolsProxy},
		{EnvLLMProxy, llmProxy},
		{EnvAllProxy, allProxy},
	} {
		if f.rawURL == "" {
			continue
		}
		if err := validateProxyURL(f.envVar, f.rawURL); err != nil {
			return nil, err
		}
	}

	return &Config{
		ToolsProxy: toolsProxy,
		LLMProxy:   llmProxy,
		AllProxy:   allProxy,
	}, nil
}

// Effective returns the proxy URL in effect for the given traffic class:
// the class-specific setting if present, otherwise the fallback. Empty means
// direct connection.
func (c *Config) Effective(class TrafficClass) string {
	switch class {
	case TrafficTools:
		if c.ToolsProxy != "" {
			return c.ToolsProxy
		}
	case TrafficLLM:
		if c.LLMProxy != "" {
			return c.LLMProxy
		}
	default:
		return ""
	}
	return c.AllProxy
}

func validateProxyURL(envVar, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return &InvalidProxyURLError{Var: envVar, URL: rawURL, Reason: "unparseable URL", Err: err}
	}

	switch u.Scheme {
	case "http", "https", "socks5", "socks5h":
	default:
		return &InvalidProxyURLError{
			Var: envVar, URL: rawURL,
			Reason: fmt.Sprintf("unsupported scheme %q (supported: http, https, socks5, socks5h)", u.Scheme),
		}
	}

	if u.Hostname() == "" {
		return &InvalidProxyURLError{Var: envVar, URL: rawURL, Reason: "missing hostname"}
	}

	if port, err := strconv.Atoi(u.Port()); err != nil || port <= 0 {
		return &InvalidProxyURLError{Var: envVar, URL: rawURL, Reason: "missing or zero port"}
	}

	return nil
}

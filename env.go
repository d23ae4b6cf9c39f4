package upstreamproxy

import (
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
)

// envVars mirrors the environment variables consumed by LoadFromEnvironment.
type envVars struct {
	ToolsProxy string `env:"STRIX_PROXY_TOOLS"`
	LLMProxy   string `env:"STRIX_PROXY_LLM"`
	AllProxy   string `env:"STRIX_PROXY_ALL"`
}

// LoadFromEnvironment reads STRIX_PROXY_TOOLS, STRIX_PROXY_LLM, and
// STRIX_PROXY_ALL and constructs a Config. Validation failures propagate
// unchanged; a misconfigured proxy should stop startup rather than run with
// a broken route.
func LoadFromEnvironment() (*Config, error) {
	var vars envVars
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("upstreamproxy: read environment: %w", err)
	}
	return New(vars.ToolsProxy, vars.LLMProxy, vars.AllProxy)
}

// ConfigureGlobalProxies loads the configuration from the environment and
// exports the effective LLM proxy as HTTP_PROXY and HTTPS_PROXY, overwriting
// any existing values. LLM client libraries capture those variables when
// they are constructed, so this must run before any such client is created.
func ConfigureGlobalProxies() (*Config, error) {
	cfg, err := LoadFromEnvironment()
	if err != nil {
		return nil, err
	}
	for key, value := range cfg.LLMClientEnv() {
		if err := os.Setenv(key, value); err != nil {
			return nil, fmt.Errorf("upstreamproxy: set %s: %w", key, err)
		}
	}
	return cfg, nil
}

// globalConfig latches the first ConfigureGlobalProxies result. The
// environment is read once; later calls observe the cached result even if
// the variables have changed since.
var globalConfig = sync.OnceValues(ConfigureGlobalProxies)

// Global returns the process-wide proxy configuration, constructed via
// ConfigureGlobalProxies on first call. The result is fixed for the process
// lifetime; there is no reset. Safe for concurrent use.
func Global() (*Config, error) {
	return globalConfig()
}

package upstreamproxy

import (
	"reflect"
	"strings"
	"testing"
)

func envSliceToMap(env []string) map[string]string {
	m := make(map[string]string, len(env))
	for _, e := range env {
		k, v, _ := strings.Cut(e, "=")
		m[k] = v
	}
	return m
}

func TestToolCommandEnv_HTTPProxy(t *testing.T) {
	cfg := mustNew(t, "http://tools.example.com:8080", "", "")
	base := []string{
		"PATH=/usr/bin",
		"HTTP_PROXY=http://stale.example.com:1",
	}

	env := cfg.ToolCommandEnv(base)
	envMap := envSliceToMap(env)

	expected := map[string]string{
		"PATH":        "/usr/bin",
		"HTTP_PROXY":  "http://tools.example.com:8080",
		"http_proxy":  "http://tools.example.com:8080",
		"HTTPS_PROXY": "http://tools.example.com:8080",
		"https_proxy": "http://tools.example.com:8080",
		"NO_PROXY":    noProxyValue,
		"no_proxy":    noProxyValue,
	}
	for key, wantVal := range expected {
		gotVal, ok := envMap[key]
		if !ok {
			t.Errorf("missing env var %s", key)
			continue
		}
		if gotVal != wantVal {
			t.Errorf("env var %s = %q, want %q", key, gotVal, wantVal)
		}
	}

	if _, ok := envMap["ALL_PROXY"]; ok {
		t.Error("ALL_PROXY should not be set for an HTTP proxy")
	}

	// The stale HTTP_PROXY in base must be replaced, not duplicated.
	count := 0
	for _, e := range env {
		if strings.HasPrefix(e, "HTTP_PROXY=") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("HTTP_PROXY appears %d times, want 1", count)
	}
}

func TestToolCommandEnv_SOCKSProxy(t *testing.T) {
	cfg := mustNew(t, "socks5h://tools.example.com:1080", "", "")

	env := cfg.ToolCommandEnv([]string{"PATH=/usr/bin"})
	envMap := envSliceToMap(env)

	for _, key := range []string{"ALL_PROXY", "all_proxy"} {
		if got := envMap[key]; got != "socks5h://tools.example.com:1080" {
			t.Errorf("%s = %q, want %q", key, got, "socks5h://tools.example.com:1080")
		}
	}
	for _, key := range []string{"HTTP_PROXY", "http_proxy", "HTTPS_PROXY", "https_proxy"} {
		if _, ok := envMap[key]; ok {
			t.Errorf("unexpected env var %s for a SOCKS proxy", key)
		}
	}
	if got := envMap["NO_PROXY"]; got != noProxyValue {
		t.Errorf("NO_PROXY = %q, want %q", got, noProxyValue)
	}
}

func TestToolCommandEnv_FallbackToAll(t *testing.T) {
	cfg := mustNew(t, "", "", "http://all.example.com:3128")

	env := cfg.ToolCommandEnv(nil)
	envMap := envSliceToMap(env)

	if got := envMap["HTTP_PROXY"]; got != "http://all.example.com:3128" {
		t.Errorf("HTTP_PROXY = %q, want the catch-all proxy", got)
	}
}

func TestToolCommandEnv_NoProxy(t *testing.T) {
	cfg := mustNew(t, "", "", "")
	base := []string{"PATH=/usr/bin", "HOME=/root"}

	env := cfg.ToolCommandEnv(base)
	if !reflect.DeepEqual(env, base) {
		t.Errorf("ToolCommandEnv = %v, want base unchanged %v", env, base)
	}
}

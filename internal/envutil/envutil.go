// Package envutil manipulates env slices in the "KEY=VALUE" format used by
// exec.Cmd.Env.
package envutil

import "strings"

// Get returns the value of key in an env slice. When the key appears more
// than once, the last occurrence wins, matching how the OS resolves
// duplicate entries. Returns the value and true if found.
func Get(env []string, key string) (string, bool) {
	prefix := key + "="
	for i := len(env) - 1; i >= 0; i-- {
		if strings.HasPrefix(env[i], prefix) {
			return env[i][len(prefix):], true
		}
	}
	return "", false
}

// Merge merges extra into base, with extra taking precedence. Entries in
// base whose key also appears in extra are replaced in place; remaining
// extra entries are appended in order. Returns a new slice.
func Merge(base, extra []string) []string {
	overrides := make(map[string]string, len(extra))
	for _, e := range extra {
		overrides[keyOf(e)] = e
	}

	merged := make([]string, 0, len(base)+len(extra))
	replaced := make(map[string]bool, len(overrides))
	for _, e := range base {
		k := keyOf(e)
		if override, ok := overrides[k]; ok {
			if !replaced[k] {
				merged = append(merged, override)
				replaced[k] = true
			}
			continue
		}
		merged = append(merged, e)
	}

	for _, e := range extra {
		k := keyOf(e)
		if !replaced[k] {
			merged = append(merged, overrides[k])
			replaced[k] = true
		}
	}
	return merged
}

func keyOf(entry string) string {
	if i := strings.IndexByte(entry, '='); i >= 0 {
		return entry[:i]
	}
	return entry
}

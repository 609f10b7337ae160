package transform

import (
	"strings"

	"github.com/spf13/cast"
)

// stringList reads a frontmatter value that may be a single string or a list.
func stringList(v any) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
		return nil
	}
	raw, err := cast.ToStringSliceE(v)
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// firstList returns the first non-empty list among keys.
func firstList(fm map[string]any, keys ...string) []string {
	for _, k := range keys {
		if l := stringList(fm[k]); len(l) > 0 {
			return l
		}
	}
	return nil
}

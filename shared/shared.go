package shared

import (
	"net/url"
	"sort"
	"strings"
)

// BuildCacheKey joins key parts with a colon separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// CanonicalQueryKey derives a deterministic cache key from request query
// parameters: names sorted lexicographically, joined as name=value pairs.
// Only the first value of a repeated parameter counts. Values are taken as
// sent; differing spellings of the same zone produce distinct keys.
func CanonicalQueryKey(params url.Values) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}

	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+params.Get(name))
	}

	return strings.Join(pairs, "&")
}

package router

import (
	"sort"
	"strings"
)

// Root is the key of the implicit ancestor of every other path.
const Root = "/"

// Normalize removes one trailing separator. The root path is kept as-is.
func Normalize(p string) string {
	if p == Root {
		return p
	}
	return strings.TrimSuffix(p, "/")
}

// IsMatch reports whether the route key is active for target: the key equals
// the target, the key is the root and the target is not, or the key is a
// proper path-prefix of the target.
func IsMatch(routeKey, target string) bool {
	key := Normalize(routeKey)
	path := Normalize(target)

	if key == path {
		return true
	}

	// Root needs no trailing separator to be an ancestor.
	if key == Root && path != Root {
		return true
	}

	return strings.HasPrefix(path, key+"/")
}

// Match returns the routes active for target, outermost layout first.
// Routes with keys of equal length keep registration order.
func Match(reg *Registry, target string) []*Route {
	if reg == nil {
		return nil
	}

	var matches []*Route
	for _, r := range reg.Routes() {
		if IsMatch(r.Key, target) {
			matches = append(matches, r)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return len(matches[i].Key) < len(matches[j].Key)
	})
	return matches
}

// Keys returns the keys of routes, in order.
func Keys(routes []*Route) []string {
	keys := make([]string, len(routes))
	for i, r := range routes {
		keys[i] = r.Key
	}
	return keys
}

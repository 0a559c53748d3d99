package report

import (
	"fmt"
	"sort"
	"strings"

	"toroute/internal/model"
	"toroute/pkg/router"
)

// Analyzer inspects a route table and reports how the routes nest.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze describes every registered route and the matched chain for current.
func (a *Analyzer) Analyze(reg *router.Registry, current string) model.AnalysisResult {
	routes := reg.Routes()
	active := make(map[string]bool)
	chain := router.Match(reg, current)
	for _, r := range chain {
		active[r.Key] = true
	}

	entries := make([]model.RouteEntry, 0, len(routes))
	for _, r := range routes {
		// Match on the route's own key gives its ancestors plus itself.
		lineage := router.Match(reg, r.Key)
		entry := model.RouteEntry{
			Key:        r.Key,
			Normalized: router.Normalize(r.Key),
			HasArgs:    r.Args != nil,
			IsActive:   active[r.Key],
		}

		var ancestors []*router.Route
		for _, anc := range lineage {
			if router.Normalize(anc.Key) != entry.Normalized {
				ancestors = append(ancestors, anc)
			}
		}
		entry.Depth = len(ancestors)
		if len(ancestors) > 0 {
			entry.Parent = ancestors[len(ancestors)-1].Key
		}

		for _, other := range routes {
			if other == r {
				continue
			}
			if router.Normalize(other.Key) != entry.Normalized && router.IsMatch(r.Key, other.Key) {
				entry.IsLayout = true
				break
			}
		}

		entry.Diagnostics = diagnoseKey(r.Key, entry.Parent)
		entries = append(entries, entry)
	}

	return model.AnalysisResult{
		Routes: entries,
		Current: model.MatchResult{
			Path:  current,
			Chain: router.Keys(chain),
		},
		Diagnostics: diagnoseTable(routes),
	}
}

// diagnoseKey flags keys that will not nest the way their author probably
// expects.
func diagnoseKey(key, parent string) []string {
	var diags []string

	if key == "" {
		diags = append(diags, "Empty key: it is a prefix of every path that starts with \"/\".")
		return diags
	}
	if !strings.HasPrefix(key, "/") {
		diags = append(diags, fmt.Sprintf("Key %q does not start with \"/\"; only keys sharing its prefix can nest under it.", key))
	}
	if key != router.Root && strings.HasSuffix(key, "/") {
		diags = append(diags, fmt.Sprintf("Trailing separator: matches as %q.", router.Normalize(key)))
	}

	// Nested key whose immediate parent path is not registered.
	norm := router.Normalize(key)
	if idx := strings.LastIndex(norm, "/"); idx > 0 {
		want := norm[:idx]
		if parent == "" || router.Normalize(parent) != want {
			diags = append(diags, fmt.Sprintf("No route registered for %q; renders without that layout.", want))
		}
	}
	return diags
}

// diagnoseTable reports problems that involve more than one key.
func diagnoseTable(routes []*router.Route) []string {
	var diags []string

	byNorm := make(map[string][]string)
	for _, r := range routes {
		n := router.Normalize(r.Key)
		byNorm[n] = append(byNorm[n], r.Key)
	}
	norms := make([]string, 0, len(byNorm))
	for n := range byNorm {
		norms = append(norms, n)
	}
	sort.Strings(norms)
	for _, n := range norms {
		if keys := byNorm[n]; len(keys) > 1 {
			diags = append(diags, fmt.Sprintf("Keys %s all match as %q; they render as nested levels of each other.", quoteAll(keys), n))
		}
	}

	for _, r := range routes {
		if router.Normalize(r.Key) == router.Root {
			diags = append(diags, fmt.Sprintf("Root route %q wraps every other path.", r.Key))
			break
		}
	}
	return diags
}

func quoteAll(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return strings.Join(quoted, ", ")
}

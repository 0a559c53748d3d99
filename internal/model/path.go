package model

// Version is the toroute release.
const Version = "0.1.0"

// RouteEntry describes one registered route.
type RouteEntry struct {
	Key         string   // The route key (e.g., /h/about)
	Normalized  string   // Key as the matcher sees it
	Parent      string   // Nearest registered ancestor, "" for outermost routes
	Depth       int      // Number of registered ancestors
	HasArgs     bool     // True if navigation parameters are validated
	IsLayout    bool     // True if other routes nest inside this one
	IsActive    bool     // True if part of the matched chain for the current path
	Diagnostics []string // Naming problems found for this key
}

// MatchResult is the matched chain for one path.
type MatchResult struct {
	Path  string   // The path that was matched
	Chain []string // Route keys, outermost layout first
}

// AnalysisResult contains the processed view of a route table.
type AnalysisResult struct {
	Routes      []RouteEntry
	Current     MatchResult
	Diagnostics []string
}

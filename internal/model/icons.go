package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconLayout  = "▸" // Route with nested routes
	IconLeaf    = "•" // Route without nested routes
	IconActive  = "◆" // Part of the current matched chain
	IconArgs    = "§" // Route validates its arguments
	IconWarning = "!" // Route has diagnostics
	IconOK      = " " // Space (OK - no icon to reduce noise)
)

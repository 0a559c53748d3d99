package report

import (
	"fmt"
	"strings"

	"toroute/internal/model"
)

// GenerateReport renders an analysis as plain text.
// Verbose adds the normalized key and parent of every route.
func GenerateReport(res model.AnalysisResult, verbose bool) string {
	var sb strings.Builder

	sb.WriteString("ROUTE TABLE\n")
	sb.WriteString("===========\n\n")

	if len(res.Routes) == 0 {
		sb.WriteString("  (no routes registered)\n")
	}

	for i, e := range res.Routes {
		icon := model.IconLeaf
		if e.IsLayout {
			icon = model.IconLayout
		}
		marker := model.IconOK
		if e.IsActive {
			marker = model.IconActive
		}
		args := ""
		if e.HasArgs {
			args = " " + model.IconArgs + " args"
		}
		warn := ""
		if len(e.Diagnostics) > 0 {
			warn = " " + model.IconWarning
		}

		indent := strings.Repeat("  ", e.Depth)
		sb.WriteString(fmt.Sprintf("%2d. %s %s%s %s%s%s\n", i+1, marker, indent, icon, e.Key, args, warn))

		if verbose {
			parent := e.Parent
			if parent == "" {
				parent = "(none)"
			}
			sb.WriteString(fmt.Sprintf("      matches as: %s\n", e.Normalized))
			sb.WriteString(fmt.Sprintf("      parent:     %s\n", parent))
			sb.WriteString(fmt.Sprintf("      depth:      %d\n", e.Depth))
		}
		for _, d := range e.Diagnostics {
			sb.WriteString(fmt.Sprintf("      %s %s\n", model.IconWarning, d))
		}
	}

	sb.WriteString("\nMATCHED CHAIN\n")
	sb.WriteString("=============\n\n")
	sb.WriteString(fmt.Sprintf("  Path: %s\n", res.Current.Path))
	if len(res.Current.Chain) == 0 {
		sb.WriteString("  (nothing renders)\n")
	}
	for i, key := range res.Current.Chain {
		sb.WriteString(fmt.Sprintf("  %d. %s%s\n", i, strings.Repeat("  ", i), key))
	}

	if len(res.Diagnostics) > 0 {
		sb.WriteString("\nDIAGNOSTICS\n")
		sb.WriteString("===========\n\n")
		for _, d := range res.Diagnostics {
			sb.WriteString(fmt.Sprintf("  %s %s\n", model.IconWarning, d))
		}
	}

	return sb.String()
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"toroute/internal/config"
	"toroute/internal/logging"
	"toroute/internal/model"
	"toroute/internal/report"
	"toroute/internal/screens"
	"toroute/internal/telemetry"
	"toroute/internal/tui"
	"toroute/internal/web"
	"toroute/pkg/router"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "toroute",
		Repository: "toroute",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/toroute/toroute/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: toroute [options]\n\n")
		fmt.Fprintf(os.Stderr, "toroute is a terminal app built on a hierarchical route resolver.\n")
		fmt.Fprintf(os.Stderr, "Layouts stay on screen while the routes nested under them change.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  toroute                  # Start TUI mode\n")
		fmt.Fprintf(os.Stderr, "  toroute --routes         # Print the route table report\n")
		fmt.Fprintf(os.Stderr, "  toroute -r -o r.txt      # Save the report to a file\n")
		fmt.Fprintf(os.Stderr, "  toroute --match /h/about # Show the chain a path renders\n")
		fmt.Fprintf(os.Stderr, "  toroute --web            # Serve the router over HTTP\n")
	}

	configFlag := pflag.StringP("config", "c", "", "Read settings from this YAML file")
	jsonFlag := pflag.BoolP("json", "j", false, "Output the route analysis as JSON")
	reportFlag := pflag.BoolP("routes", "r", false, "Print the route table report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --routes)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "Include matcher details in the report")
	matchFlag := pflag.StringP("match", "m", "", "Print the matched chain for a path")
	tuiFlag := pflag.Bool("tui", false, "Start TUI mode (the default when no other mode is given)")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode (see --addr)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	config.RegisterFlags(pflag.CommandLine)
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("toroute version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err == nil {
		err = config.Overlay(&cfg, pflag.CommandLine)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	initial := cfg.InitialRoute
	if initial == "" {
		initial = screens.Home
	}
	routes := screens.NewRegistry(screens.StaticWidgets{})
	if _, ok := routes.Lookup(initial); !ok {
		fmt.Fprintf(os.Stderr, "Error: initial route %q is not registered\n", initial)
		os.Exit(2)
	}

	if *tuiFlag {
		runTuiMode(cfg, initial)
		return
	}

	if *webFlag {
		runWebMode(cfg, routes, initial)
		return
	}

	if *matchFlag != "" {
		runMatchMode(routes, *matchFlag, *jsonFlag)
		return
	}

	if *reportFlag {
		runReportMode(routes, initial, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(routes, initial)
		return
	}

	// Default: TUI
	runTuiMode(cfg, initial)
}

// newLogger opens the configured log destination. fallback is used when no
// log file is set.
func newLogger(cfg config.Config, fallback io.Writer) (*slog.Logger, func()) {
	lvl, _ := cfg.SlogLevel()
	if cfg.LogFile == "" {
		if fallback == nil {
			return logging.NewNop(), func() {}
		}
		return logging.New(lvl, fallback), func() {}
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", cfg.LogFile, err)
		os.Exit(1)
	}
	return logging.New(lvl, f), func() { f.Close() }
}

func runReportMode(routes *router.Registry, initial, outputFile string, verbose bool) {
	text := report.GenerateReport(report.NewAnalyzer().Analyze(routes, initial), verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(text), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(text)
	}
}

func runJsonMode(routes *router.Registry, initial string) {
	writeJSON(report.NewAnalyzer().Analyze(routes, initial))
}

func runMatchMode(routes *router.Registry, path string, asJSON bool) {
	res := model.MatchResult{
		Path:  path,
		Chain: router.Keys(router.Match(routes, path)),
	}
	if asJSON {
		writeJSON(res)
		return
	}
	if len(res.Chain) == 0 {
		fmt.Printf("%s: nothing renders\n", path)
		return
	}
	fmt.Printf("%s:\n", path)
	for i, key := range res.Chain {
		fmt.Printf("  %d. %s\n", i+1, key)
	}
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func runWebMode(cfg config.Config, routes *router.Registry, initial string) {
	logger, closeLog := newLogger(cfg, os.Stderr)
	defer closeLog()

	opts := []router.Option{router.WithHooks(telemetry.LogHooks(logger))}
	var gatherer prometheus.Gatherer
	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		m := telemetry.NewMetrics(reg)
		opts = append(opts, router.WithHooks(m.Hooks(routes)))
		gatherer = reg
	}
	rt := screens.NewRouter(routes, initial, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting toroute web server at http://%s\n", cfg.WebAddr)
	h := web.NewHandler(web.Server{Router: rt, Logger: logger, Gatherer: gatherer})
	if err := web.ListenAndServe(ctx, cfg.WebAddr, h, logger); err != nil {
		logger.Error("Web server failed", "error", err)
		os.Exit(1)
	}
}

func runTuiMode(cfg config.Config, initial string) {
	// The terminal belongs to the TUI, so logs only go to a file.
	logger, closeLog := newLogger(cfg, nil)
	defer closeLog()

	var p *tea.Program
	m := tui.New(initial, logger, router.WithOnChange(func(st router.State) {
		// Send blocks until the event loop reads it, and navigations
		// usually run inside Update.
		go p.Send(tui.MsgRouteChanged(st))
	}))
	p = tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

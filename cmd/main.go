// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"lexiscan/internal/config"
	"lexiscan/internal/engine"
	"lexiscan/internal/extract"
	"lexiscan/internal/help"
	"lexiscan/internal/observability"
	"lexiscan/internal/paths"
	"lexiscan/internal/patterns"
	"lexiscan/internal/risk"
	"lexiscan/internal/suppressions"
	"lexiscan/internal/version"
	"lexiscan/internal/web"

	"lexiscan/internal/formatters"
	_ "lexiscan/internal/formatters/csv"
	_ "lexiscan/internal/formatters/json"
	_ "lexiscan/internal/formatters/text"
	_ "lexiscan/internal/formatters/yaml"

	"golang.org/x/term"
)

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	// If config file is not specified, try to find one in standard locations
	configPath := configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	// Load configuration (will use defaults if file not found)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("") // Load default config
	}
	return cfg
}

// configFlags holds command line flag values
type configFlags struct {
	outputFormat   string
	severityLevels string
	documentType   string
	jurisdiction   string
	verbose        bool
	debug          bool
	noColor        bool
	showExcerpts   bool
	catalogFile    string
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format         string
	severityLevels string
	documentType   string
	jurisdiction   string
	verbose        bool
	debug          bool
	noColor        bool
	showExcerpts   bool
	catalogFile    string
}

// resolveConfiguration resolves final configuration values from config
// file, profile, and command line flags, in increasing precedence.
func resolveConfiguration(cfg *config.Config, activeProfile *config.Profile, flags *configFlags) *finalConfiguration {
	final := &finalConfiguration{}

	// Format
	final.format = "text" // default fallback
	if cfg != nil && cfg.Defaults.Format != "" {
		final.format = cfg.Defaults.Format
	}
	if activeProfile != nil && activeProfile.Format != "" {
		final.format = activeProfile.Format
	}
	if isFlagSet("format") && flags.outputFormat != "" {
		final.format = flags.outputFormat
	}

	// Severity levels
	final.severityLevels = "all" // default fallback
	if cfg != nil && cfg.Defaults.SeverityLevels != "" {
		final.severityLevels = cfg.Defaults.SeverityLevels
	}
	if activeProfile != nil && activeProfile.SeverityLevels != "" {
		final.severityLevels = activeProfile.SeverityLevels
	}
	if isFlagSet("severity") && flags.severityLevels != "" {
		final.severityLevels = flags.severityLevels
	}

	// Document type
	final.documentType = risk.DocTypeOther // default fallback
	if cfg != nil && cfg.Defaults.DocumentType != "" {
		final.documentType = cfg.Defaults.DocumentType
	}
	if activeProfile != nil && activeProfile.DocumentType != "" {
		final.documentType = activeProfile.DocumentType
	}
	if isFlagSet("type") && flags.documentType != "" {
		final.documentType = flags.documentType
	}

	// Jurisdiction
	final.jurisdiction = engine.DefaultJurisdiction // default fallback
	if cfg != nil && cfg.Defaults.Jurisdiction != "" {
		final.jurisdiction = cfg.Defaults.Jurisdiction
	}
	if activeProfile != nil && activeProfile.Jurisdiction != "" {
		final.jurisdiction = activeProfile.Jurisdiction
	}
	if isFlagSet("jurisdiction") && flags.jurisdiction != "" {
		final.jurisdiction = flags.jurisdiction
	}

	// Verbose
	final.verbose = false // default fallback
	if cfg != nil {
		final.verbose = cfg.Defaults.Verbose
	}
	if activeProfile != nil {
		final.verbose = activeProfile.Verbose
	}
	if isFlagSet("verbose") {
		final.verbose = flags.verbose
	}

	// Debug
	final.debug = false // default fallback
	if cfg != nil {
		final.debug = cfg.Defaults.Debug
	}
	if activeProfile != nil {
		final.debug = activeProfile.Debug
	}
	if isFlagSet("debug") {
		final.debug = flags.debug
	}

	// No color
	final.noColor = false // default fallback
	if cfg != nil {
		final.noColor = cfg.Defaults.NoColor
	}
	if activeProfile != nil {
		final.noColor = activeProfile.NoColor
	}
	if isFlagSet("no-color") {
		final.noColor = flags.noColor
	}

	// Show excerpts
	final.showExcerpts = true // default fallback
	if cfg != nil {
		final.showExcerpts = cfg.Defaults.ShowExcerpts
	}
	if activeProfile != nil {
		final.showExcerpts = activeProfile.ShowExcerpts
	}
	if isFlagSet("show-excerpts") {
		final.showExcerpts = flags.showExcerpts
	}

	// Pattern catalog
	final.catalogFile = "" // default fallback: built-in catalog
	if cfg != nil && cfg.Catalog != "" {
		final.catalogFile = cfg.Catalog
	}
	if isFlagSet("catalog") && flags.catalogFile != "" {
		final.catalogFile = flags.catalogFile
	}

	return final
}

// handleProfiles handles profile listing and selection
func handleProfiles(cfg *config.Config, listProfiles bool, profileName string) *config.Profile {
	// List profiles if requested
	if listProfiles {
		profiles := cfg.ListProfiles()
		if len(profiles) == 0 {
			fmt.Println("No profiles defined in configuration file.")
		} else {
			fmt.Println("Available profiles:")
			for _, name := range profiles {
				profile, err := cfg.GetProfile(name)
				if err == nil && profile.Description != "" {
					fmt.Printf("  - %s: %s\n", name, profile.Description)
				} else {
					fmt.Printf("  - %s\n", name)
				}
			}
		}
		os.Exit(0)
	}

	// Apply profile settings if specified
	var activeProfile *config.Profile
	if profileName != "" {
		profile, err := cfg.GetProfile(profileName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "Check available profiles with --list-profiles\n")
			os.Exit(1)
		}
		activeProfile = profile
	}
	return activeProfile
}

func main() {
	// Parse command line flags
	inputFile := flag.String("file", "", "Path to the document to assess (.txt, .md, .pdf)")
	clauseFile := flag.String("clauses", "", "Path to a pre-segmented clause file (JSON or YAML)")
	segmentClauses := flag.Bool("segment", true, "Derive clauses from the document text when no clause file is given")
	documentType := flag.String("type", "", "Document type: contract, lease, loan_agreement, terms_of_service, privacy_policy, other")
	jurisdiction := flag.String("jurisdiction", "", "Jurisdiction code recorded in the report (default: US)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	catalogFile := flag.String("catalog", "", "Path to a custom risk pattern catalog (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	severityLevels := flag.String("severity", "", "Severity levels to display: high, medium, low, or combinations like 'high,medium'")
	verbose := flag.Bool("verbose", false, "Display detailed information for each finding")
	debug := flag.Bool("debug", false, "Enable debug logging for the assessment pipeline")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	showExcerpts := flag.Bool("show-excerpts", true, "Include matched text excerpts in the report")
	showHelp := flag.Bool("help", false, "Show help information")
	showVersion := flag.Bool("version", false, "Show version information")
	suppressionFile := flag.String("suppression-file", "", "Path to suppression configuration file")
	showSuppressed := flag.Bool("show-suppressed", false, "Include suppressed findings in output with suppression details")

	// Web server flags
	webMode := flag.Bool("web", false, "Start web server mode instead of CLI assessment")
	webPort := flag.String("port", "8080", "Port for web server (default: 8080)")

	flag.Parse()

	// Auto-detect non-interactive environment
	isInteractive := isTerminal(os.Stderr)
	if !isInteractive || os.Getenv("CI") != "" {
		*noColor = true
	}

	// Create debug observer early for configuration logging
	var mainDebugObs *observability.DebugObserver
	if *debug {
		mainDebugObs = observability.NewDebugObserver(os.Stderr)
		mainDebugObs.LogDetail("main", fmt.Sprintf("Command line arguments: %v", os.Args))
	}

	// Load configuration
	cfg := loadConfiguration(*configFile)

	// Handle profile operations
	activeProfile := handleProfiles(cfg, *listProfiles, *profileName)

	// Resolve final configuration values
	finalConfig := resolveConfiguration(cfg, activeProfile, &configFlags{
		outputFormat:   *outputFormat,
		severityLevels: *severityLevels,
		documentType:   *documentType,
		jurisdiction:   *jurisdiction,
		verbose:        *verbose,
		debug:          *debug,
		noColor:        *noColor,
		showExcerpts:   *showExcerpts,
		catalogFile:    *catalogFile,
	})

	// Check if LEXISCAN_DEBUG environment variable is set
	if os.Getenv("LEXISCAN_DEBUG") != "" {
		finalConfig.debug = true
	}

	// Handle version command
	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	// Load the pattern catalog before help so --help patterns reflects
	// any custom catalog.
	catalog, err := loadCatalog(finalConfig.catalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if mainDebugObs != nil {
		mainDebugObs.LogDetail("main", fmt.Sprintf("Pattern catalog loaded: %d patterns", catalog.Len()))
	}

	// Handle help commands
	if *showHelp {
		helpSystem := help.NewSystem(catalog, finalConfig.noColor)

		args := flag.Args()
		if len(args) == 0 {
			helpSystem.ShowGeneralHelp()
			return
		} else if len(args) == 1 {
			if strings.ToLower(args[0]) == "patterns" {
				helpSystem.ShowPatternsHelp()
				return
			}
			if helpSystem.ShowPatternHelp(args[0]) {
				return
			}
			os.Exit(1)
		} else {
			fmt.Println("Error: Too many arguments for help command")
			fmt.Println("Use 'lexiscan --help', 'lexiscan --help patterns', or 'lexiscan --help <pattern-id>'")
			os.Exit(1)
		}
	}

	// Set up the engine with observability
	var engineObserver *observability.StandardObserver
	if finalConfig.debug {
		debugObs := observability.NewDebugObserver(os.Stderr)
		engineObserver = debugObs.StandardObserver
		engineObserver.DebugObserver = debugObs
	} else {
		engineObserver = observability.NewStandardObserver(observability.ObservabilityMetrics, os.Stderr)
	}
	assessmentEngine := engine.New(
		engine.WithCatalog(catalog),
		engine.WithObserver(engineObserver),
	)

	// Initialize suppression manager
	suppressionPath := *suppressionFile
	if suppressionPath == "" && cfg != nil {
		suppressionPath = cfg.Suppressions
	}
	suppressionManager := suppressions.NewSuppressionManager(suppressionPath)

	// Handle web mode - start the server and block
	if *webMode {
		if err := handleWebMode(*webPort, flag.Args(), *inputFile, assessmentEngine, suppressionManager); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Web server runs indefinitely, so this should not be reached
		return
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: Input file is required\n")
		fmt.Fprintf(os.Stderr, "Specify a document to assess with --file, or run with --help\n")
		os.Exit(1)
	}

	// Validate document type early so a typo fails before extraction
	if !isKnownDocumentType(finalConfig.documentType) {
		fmt.Fprintf(os.Stderr, "Error: Unknown document type '%s'\n", finalConfig.documentType)
		fmt.Fprintf(os.Stderr, "Available types: %s\n", strings.Join(knownDocumentTypes(), ", "))
		os.Exit(1)
	}

	// Extract document text
	doc, err := extract.ExtractFile(*inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if mainDebugObs != nil {
		mainDebugObs.LogDetail("extract", fmt.Sprintf("Extracted %d words, %d characters from %s",
			doc.WordCount, doc.CharCount, doc.Filename))
	}

	// Resolve clauses: explicit clause file wins over built-in segmentation
	var clauses []risk.Clause
	if *clauseFile != "" {
		clauses, err = extract.LoadClauseFile(*clauseFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else if *segmentClauses {
		clauses = extract.SegmentClauses(doc.Text)
	}
	if mainDebugObs != nil {
		mainDebugObs.LogDetail("extract", fmt.Sprintf("Assessing with %d clauses", len(clauses)))
	}

	// Run the assessment
	result := assessmentEngine.AssessDocumentRisks(doc.Text, clauses, finalConfig.documentType, finalConfig.jurisdiction)

	// Apply suppressions
	kept, suppressed := suppressionManager.Apply(result.Risks)
	result.Risks = kept
	if len(suppressed) > 0 {
		if *showSuppressed {
			fmt.Fprintf(os.Stderr, "Suppressed %d findings based on suppression rules (shown below)\n", len(suppressed))
		} else {
			fmt.Fprintf(os.Stderr, "Suppressed %d findings based on suppression rules (use --show-suppressed to see them)\n", len(suppressed))
		}
	}

	// Format and display results
	formatterOptions := formatters.FormatterOptions{
		SeverityLevels: parseSeverityLevels(finalConfig.severityLevels),
		Verbose:        finalConfig.verbose,
		NoColor:        finalConfig.noColor,
		ShowExcerpts:   finalConfig.showExcerpts,
	}

	var suppressedForOutput []risk.SuppressedRisk
	if *showSuppressed {
		suppressedForOutput = suppressed
	}
	output, err := formatters.Export(finalConfig.format, result, suppressedForOutput, formatterOptions)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting results: %v\n", err)
		os.Exit(1)
	}

	// Output results
	if *outputFile != "" {
		cleanOutputPath := filepath.Clean(*outputFile)
		outputDir := filepath.Dir(cleanOutputPath)
		if err := os.MkdirAll(outputDir, 0700); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(cleanOutputPath, []byte(output), 0600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to output file: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Println(output)
	}

	// A high overall score exits non-zero so CI pipelines can block on it
	if result.OverallRiskScore == risk.SeverityHigh {
		os.Exit(1)
	}
	os.Exit(0)
}

// loadCatalog returns the catalog from an explicit path, falling back to
// the user's config-dir catalog override when one exists, then to the
// built-in catalog.
func loadCatalog(path string) (*patterns.Catalog, error) {
	if path == "" {
		userCatalog := paths.GetCatalogFile()
		if _, err := os.Stat(userCatalog); err == nil {
			return patterns.LoadCatalog(userCatalog)
		}
		return patterns.DefaultCatalog(), nil
	}
	return patterns.LoadCatalog(path)
}

// parseSeverityLevels converts a comma-separated string of severity
// levels (e.g. "high,medium" or "all") into a filter map. "all" and
// empty input return nil, which formatters treat as no filtering.
func parseSeverityLevels(levels string) map[string]bool {
	if levels == "" || levels == "all" {
		return nil
	}

	result := make(map[string]bool)
	for _, level := range strings.Split(levels, ",") {
		levelStr := strings.ToLower(strings.TrimSpace(level))
		switch levelStr {
		case "high", "medium", "low":
			result[levelStr] = true
		case "":
		default:
			fmt.Fprintf(os.Stderr, "Error: Unknown severity level '%s'\n", levelStr)
			fmt.Fprintf(os.Stderr, "Available levels: high, medium, low, all\n")
			os.Exit(1)
		}
	}
	return result
}

func isKnownDocumentType(documentType string) bool {
	for _, known := range knownDocumentTypes() {
		if documentType == known {
			return true
		}
	}
	return false
}

func knownDocumentTypes() []string {
	return []string{
		risk.DocTypeContract,
		risk.DocTypeLease,
		risk.DocTypeLoanAgreement,
		risk.DocTypeTermsOfService,
		risk.DocTypePrivacyPolicy,
		risk.DocTypeOther,
	}
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// handleWebMode validates web mode flags and starts the web server
func handleWebMode(port string, args []string, inputFile string, eng *engine.Engine, suppressionManager *suppressions.SuppressionManager) error {
	if len(args) > 0 {
		return fmt.Errorf("--web flag cannot be used with file arguments\n"+
			"Web mode starts a server - POST documents to http://localhost:%s/api/assess", port)
	}
	if inputFile != "" {
		return fmt.Errorf("--web flag cannot be used with --file flag\n"+
			"Web mode starts a server - POST documents to http://localhost:%s/api/assess", port)
	}
	if err := validateWebModeFlags(); err != nil {
		return err
	}

	finalPort, err := findAvailablePort(port)
	if err != nil {
		return fmt.Errorf("port validation failed: %w\n"+
			"Troubleshooting: Try a different port with --port <number> or ensure no other services are using ports 8080-8089", err)
	}

	server := web.NewServer(finalPort, eng, suppressionManager)
	return server.Start()
}

// validateWebModeFlags validates that incompatible flags are not used with --web
func validateWebModeFlags() error {
	var incompatibleFlags []string
	var troubleshooting []string

	if isFlagSet("output") {
		incompatibleFlags = append(incompatibleFlags, "--output")
		troubleshooting = append(troubleshooting, "Web mode returns results over HTTP")
	}
	if isFlagSet("clauses") {
		incompatibleFlags = append(incompatibleFlags, "--clauses")
		troubleshooting = append(troubleshooting, "Web mode accepts clauses in the request body")
	}
	if isFlagSet("no-color") {
		incompatibleFlags = append(incompatibleFlags, "--no-color")
		troubleshooting = append(troubleshooting, "Web mode output is never colored")
	}
	if isFlagSet("help") {
		incompatibleFlags = append(incompatibleFlags, "--help")
		troubleshooting = append(troubleshooting, "Run --help without --web")
	}
	if isFlagSet("version") {
		incompatibleFlags = append(incompatibleFlags, "--version")
		troubleshooting = append(troubleshooting, "Web mode serves version info at /api/version")
	}
	if isFlagSet("list-profiles") {
		incompatibleFlags = append(incompatibleFlags, "--list-profiles")
		troubleshooting = append(troubleshooting, "Web mode does not support configuration profiles")
	}
	if isFlagSet("show-suppressed") {
		incompatibleFlags = append(incompatibleFlags, "--show-suppressed")
		troubleshooting = append(troubleshooting, "Web mode always includes suppressed findings in responses")
	}

	if len(incompatibleFlags) > 0 {
		errorMsg := fmt.Sprintf("--web flag cannot be used with the following flags: %s\n\n", strings.Join(incompatibleFlags, ", "))
		errorMsg += "Troubleshooting:\n"
		for i, tip := range troubleshooting {
			errorMsg += fmt.Sprintf("  %d. %s\n", i+1, tip)
		}
		errorMsg += "\nRemove the incompatible flags and try again."
		return fmt.Errorf("%s", errorMsg)
	}

	return nil
}

// findAvailablePort validates the requested port and finds an available port
func findAvailablePort(requestedPort string) (string, error) {
	port, err := validatePort(requestedPort)
	if err != nil {
		return "", err
	}

	if isPortAvailable(port) {
		return port, nil
	}

	// If requested port is not available, try alternatives in range 8080-8089
	basePort := 8080
	for i := 0; i < 10; i++ {
		alternativePort := fmt.Sprintf("%d", basePort+i)
		if isPortAvailable(alternativePort) {
			fmt.Fprintf(os.Stderr, "Warning: Port %s is not available, using port %s instead\n", requestedPort, alternativePort)
			return alternativePort, nil
		}
	}

	return "", fmt.Errorf("no available ports found in range 8080-8089")
}

// validatePort validates that the port string is a valid port number
func validatePort(portStr string) (string, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", fmt.Errorf("invalid port format '%s': must be a number", portStr)
	}

	if port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if port < 1024 && os.Geteuid() != 0 {
		return "", fmt.Errorf("port %d requires root privileges (ports below 1024 are privileged)", port)
	}

	return portStr, nil
}

// isPortAvailable checks if a port is available for binding
func isPortAvailable(port string) bool {
	address := fmt.Sprintf(":%s", port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

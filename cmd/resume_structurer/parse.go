package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-structurer/internal/config"
	"github.com/jonathan/resume-structurer/internal/engine"
	"github.com/jonathan/resume-structurer/internal/enrich"
	"github.com/jonathan/resume-structurer/internal/schemas"
)

var parseCommand = &cobra.Command{
	Use:   "parse",
	Short: "Parse raw resume text into structured JSON",
	Long: `Reads raw resume text (from --input or stdin), runs the structuring engine, and writes the structured record as JSON (to --output or stdout).

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runParseCmd,
}

var (
	parseConfigPath   string
	parseInput        string
	parseOutput       string
	parseEnrich       bool
	parseUseBrowser   bool
	parseVerbose      bool
	parseSearchAPIKey string
	parseSearchCX     string
)

func init() {
	// Config file flag (processed first)
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	parseCommand.Flags().StringVarP(&parseInput, "input", "i", "", "Path to raw resume text file (defaults to stdin)")
	parseCommand.Flags().StringVarP(&parseOutput, "output", "o", "", "Path to write structured JSON (defaults to stdout)")
	parseCommand.Flags().BoolVar(&parseEnrich, "enrich", false, "Resolve company and institution websites")
	parseCommand.Flags().BoolVar(&parseUseBrowser, "use-browser", false, "Use headless browser for search fallback (requires Chrome)")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")

	// Search credentials can be passed as flags, or read from env vars
	parseCommand.Flags().StringVar(&parseSearchAPIKey, "search-api-key", "", "Google Custom Search API key (optional, defaults to SEARCH_API_KEY env var)")
	parseCommand.Flags().StringVar(&parseSearchCX, "search-cx", "", "Custom Search engine ID (optional, defaults to SEARCH_CX env var)")

	rootCmd.AddCommand(parseCommand)
}

func runParseCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if parseConfigPath != "" {
		loadedCfg, err := config.LoadConfig(parseConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if parseVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", parseConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("input") {
		cfg.Input = parseInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = parseOutput
	}
	if cmd.Flags().Changed("enrich") {
		cfg.Enrich = parseEnrich
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = parseUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = parseVerbose
	}
	if cmd.Flags().Changed("search-api-key") {
		cfg.SearchAPIKey = parseSearchAPIKey
	}
	if cmd.Flags().Changed("search-cx") {
		cfg.SearchCX = parseSearchCX
	}

	// Step 3: Fill credentials from environment and validate
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 4: Read raw resume text
	rawText, err := readInput(cfg.Input)
	if err != nil {
		return err
	}

	// Step 5: Build the engine, with a network lookup only when enriching
	opts := &engine.Options{
		Enrich:  cfg.Enrich,
		Verbose: cfg.Verbose,
	}
	if cfg.Enrich {
		lookup, err := enrich.NewHTTPLookup(ctx, &enrich.Options{
			AttemptTimeout: enrich.DefaultAttemptTimeout,
			UserAgent:      enrich.DefaultUserAgent,
			SearchAPIKey:   cfg.SearchAPIKey,
			SearchCX:       cfg.SearchCX,
			UseBrowser:     cfg.UseBrowser,
			Verbose:        cfg.Verbose,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize website lookup: %w", err)
		}
		opts.Lookup = lookup
	}

	resume, err := engine.New(opts).Structure(ctx, rawText)
	if err != nil {
		return fmt.Errorf("structuring failed: %w", err)
	}

	// Step 6: Serialize and check the output against the published schema
	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %w", err)
	}
	if err := schemas.ValidateParsedResume(string(data)); err != nil {
		return fmt.Errorf("output failed schema validation: %w", err)
	}

	return writeOutput(cfg.Output, data)
}

// readInput reads the raw resume text from a file, or stdin when no path is
// configured.
func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return string(data), nil
}

// writeOutput writes the JSON record to a file, or stdout when no path is
// configured.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

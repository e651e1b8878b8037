package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"schemascope/internal/config"
	"schemascope/internal/introspection"
	"schemascope/internal/logging"
	"schemascope/internal/render"
	"schemascope/internal/traverse"
	"schemascope/internal/viewer"
)

const Version = "0.2.0"

var (
	flagDepth     int
	flagStats     bool
	flagGUI       bool
	flagFormat    string
	flagRoots     []string
	flagStrict    bool
	flagConfig    string
	flagLogFormat string
	flagLogLevel  string

	rootCmd = &cobra.Command{
		Use:   "schemascope [schema.json]",
		Short: "Explore a GraphQL schema as a bounded-depth type tree",
		Long: `schemascope reads a GraphQL schema - an introspection JSON dump, an SDL
file, or a live endpoint URL - and prints a simplified nested view of its
types and fields, with cycle avoidance and a configurable recursion depth.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
		RunE:          run,
	}
)

func init() {
	rootCmd.Flags().IntVar(&flagDepth, "depth", traverse.DefaultMaxDepth, "limit recursion depth when expanding types")
	rootCmd.Flags().BoolVar(&flagStats, "stats", false, "print schema statistics instead of the nested tree")
	rootCmd.Flags().BoolVar(&flagGUI, "gui", false, "browse the tree interactively instead of printing")
	rootCmd.Flags().StringVar(&flagFormat, "format", "json", "output format: json, yaml or dot")
	rootCmd.Flags().StringSliceVar(&flagRoots, "root", nil, "expand only the named root types (repeatable)")
	rootCmd.Flags().BoolVar(&flagStrict, "strict", false, "validate the introspection document shape before decoding")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "optional YAML config path")
	rootCmd.Flags().StringVar(&flagLogFormat, "log-format", "text", "log output format: text, json")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.Setup(cfg.Log.Format, cfg.Log.Level)

	input := "schema.json"
	if len(args) == 1 {
		input = args[0]
	}

	doc, err := loadDocument(cmd, cfg, logger, input)
	if err != nil {
		return err
	}

	index, err := traverse.NewIndex(doc)
	if err != nil {
		return err
	}
	logger.Debug("schema indexed", "input", input, "types", index.Len())

	tr := traverse.New(index, traverse.Options{
		MaxDepth:        *cfg.Depth,
		WrapperSuffixes: cfg.WrapperSuffixes,
		Roots:           cfg.Roots,
	}, logger)

	if flagStats {
		return writeStats(cmd, cfg, tr.Stats())
	}

	result := tr.TraverseAll()
	if flagGUI {
		return viewer.Run(result)
	}

	var out []byte
	switch cfg.Format {
	case "yaml":
		out, err = render.YAML(result)
	case "dot":
		out = render.DOT(result)
	default:
		out, err = render.JSON(result)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

// resolveConfig layers the config file under the CLI flags; an explicitly
// set flag always wins.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
		cfg.ApplyDefaults()
	}

	if cmd.Flags().Changed("depth") {
		cfg.Depth = &flagDepth
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = flagFormat
	}
	if cmd.Flags().Changed("root") {
		cfg.Roots = flagRoots
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flagStrict
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = flagLogFormat
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

func loadDocument(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, input string) (*introspection.Document, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		logger.Info("fetching introspection", "url", input)
		fetcher := introspection.NewFetcher(time.Duration(cfg.TimeoutSeconds) * time.Second)
		raw, err := fetcher.FetchIntrospection(cmd.Context(), input, cfg.FetchAuth())
		if err != nil {
			return nil, err
		}
		if cfg.Strict {
			if err := introspection.ValidateShape(raw); err != nil {
				return nil, err
			}
		}
		return introspection.Parse(raw)
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return nil, &introspection.NotFoundError{Path: input, Err: err}
	}
	if cfg.Strict && introspection.LooksLikeIntrospection(raw) {
		if err := introspection.ValidateShape(raw); err != nil {
			return nil, err
		}
	}
	return introspection.Detect(raw)
}

// writeStats prints text by default; an explicit --format picks the codec.
func writeStats(cmd *cobra.Command, cfg *config.Config, stats *traverse.Stats) error {
	if !cmd.Flags().Changed("format") {
		_, err := fmt.Fprint(os.Stdout, render.StatsText(stats))
		return err
	}
	var out []byte
	var err error
	switch cfg.Format {
	case "yaml":
		out, err = render.YAML(stats)
	case "json":
		out, err = render.JSON(stats)
	default:
		return fmt.Errorf("stats output supports json or yaml, got %q", cfg.Format)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

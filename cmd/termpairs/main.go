// Command termpairs generates synthetic English-Icelandic sentence
// pairs seeded with rare vocabulary.
//
// Phase 1 collects templates from an authentic parallel corpus:
//
//	termpairs template --lexicon bin.csv --glossary glossary.txt corpus.tsv templates.tsv
//
// Phase 2 substitutes rare terms into the collected templates:
//
//	termpairs generate --lexicon bin.csv --terms terms.txt --count 10 templates.tsv out.tsv
//
// Input and output files default to stdin and stdout. All files are
// UTF-8; corpus, template and output lines are tab-separated with the
// English sentence first.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/icelandic-nmt/termpairs"
)

const (
	version = "0.1.0"
	appName = "termpairs"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		cfg        jobConfig
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Synthetic parallel-corpus generator for rare-term vocabulary",
		Long: `Termpairs creates synthetic English-Icelandic sentence pairs for
machine-translation training, in two phases: collecting noun-placeholder
templates from an authentic parallel corpus, then substituting correctly
inflected rare terms into those templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(logLevel)
			if configPath != "" {
				fileCfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg.applyDefaults(fileCfg, cmd)
			}
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Job config file (YAML)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&cfg.Lexicon, "lexicon", "", "Morphological lexicon file (BÍN-style form list)")

	templateCmd := &cobra.Command{
		Use:   "template [infile [outfile]]",
		Short: "Collect placeholder templates from a parallel corpus",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(cfg, args)
		},
	}
	templateCmd.Flags().StringVar(&cfg.Glossary, "glossary", "", "Common-noun glossary file")
	templateCmd.Flags().IntVar(&cfg.MaxLines, "max-lines", 1000, "Maximum corpus lines to read (0 = unlimited)")
	cmd.AddCommand(templateCmd)

	generateCmd := &cobra.Command{
		Use:   "generate [infile [outfile]]",
		Short: "Generate synthetic pairs by substituting rare terms into templates",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cfg, args)
		},
	}
	generateCmd.Flags().StringVar(&cfg.Terms, "terms", "", "Rare-term glossary file")
	generateCmd.Flags().IntVar(&cfg.Count, "count", 10, "Instances of each term to generate")
	generateCmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time-based)")
	cmd.AddCommand(generateCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, version)
		},
	})

	return cmd
}

func setupLogging(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
}

// openStreams resolves the optional positional infile/outfile arguments,
// defaulting to stdin/stdout. The returned closer closes whichever files
// were actually opened.
func openStreams(args []string) (io.Reader, io.Writer, func(), error) {
	in := io.Reader(os.Stdin)
	out := io.Writer(os.Stdout)
	var closers []func()

	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open input: %w", err)
		}
		in = f
		closers = append(closers, func() { f.Close() })
	}
	if len(args) >= 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			for _, c := range closers {
				c()
			}
			return nil, nil, nil, fmt.Errorf("create output: %w", err)
		}
		out = f
		closers = append(closers, func() { f.Close() })
	}
	return in, out, func() {
		for _, c := range closers {
			c()
		}
	}, nil
}

func loadLexicon(cfg jobConfig) (*termpairs.Lexicon, error) {
	if cfg.Lexicon == "" {
		return nil, fmt.Errorf("a --lexicon file is required")
	}
	return termpairs.NewLexicon(cfg.Lexicon)
}

func runTemplate(cfg jobConfig, args []string) error {
	if cfg.Glossary == "" {
		return fmt.Errorf("a --glossary file is required")
	}
	lx, err := loadLexicon(cfg)
	if err != nil {
		return err
	}
	glossary, err := termpairs.LoadGlossaryFile(cfg.Glossary)
	if err != nil {
		return err
	}
	if dropped := glossary.PruneMissing(lx); len(dropped) > 0 {
		slog.Warn("glossary entries missing from lexicon",
			"count", len(dropped), "entries", strings.Join(dropped, ", "))
	}
	if len(glossary.Entries) == 0 {
		return fmt.Errorf("glossary %s: no usable entries", cfg.Glossary)
	}

	in, out, closeAll, err := openStreams(args)
	if err != nil {
		return err
	}
	defer closeAll()

	stats, err := termpairs.CollectTemplates(in, out, termpairs.NewMatcher(lx, glossary), cfg.MaxLines)
	if err != nil {
		return err
	}
	slog.Info("template collection finished",
		"lines", stats.Lines, "templates", stats.Written, "unmatched", stats.Skipped)
	return nil
}

func runGenerate(cfg jobConfig, args []string) error {
	if cfg.Terms == "" {
		return fmt.Errorf("a --terms file is required")
	}
	lx, err := loadLexicon(cfg)
	if err != nil {
		return err
	}
	terms, err := termpairs.LoadTermsFile(cfg.Terms)
	if err != nil {
		return err
	}

	in, out, closeAll, err := openStreams(args)
	if err != nil {
		return err
	}
	defer closeAll()

	collection := termpairs.NewCollection()
	loaded, err := collection.ReadFrom(in)
	if err != nil {
		return err
	}
	slog.Debug("templates loaded", "count", loaded)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	stats, err := termpairs.GeneratePairs(collection, terms, lx, cfg.Count, rng, out)
	if err != nil {
		return err
	}
	if stats.Skipped > 0 {
		slog.Warn("pairings skipped", "count", stats.Skipped)
	}
	slog.Info("generation finished",
		"terms", stats.Lines, "pairs", stats.Written, "skipped", stats.Skipped)
	return nil
}

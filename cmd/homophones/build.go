package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/homophones/internal/config"
	"github.com/nao1215/homophones/internal/dictionary"
	"github.com/nao1215/homophones/internal/log"
	"github.com/nao1215/homophones/internal/model"
	"github.com/nao1215/homophones/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewBuildCmd creates the build command.
func NewBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] <wordlist>...",
		Short: "Look up every word and write the homophones found",
		Long: `Build reads the given word lists, looks every distinct word up on the
dictionary site and writes the homophones it finds.

Word lists are UTF-8 text files with one word per line. Words from all files
are merged, sorted and de-duplicated before the lookups start. Lookups run
one at a time; a failed request is retried once after --retry-backoff and
a second failure aborts the run without writing anything.

Outputs:
  --pairs    one "word,homophone" line per pair
  --singles  every word that appears in a pair, sorted, one per line
  --summary  a Markdown report of the run (needs --pairs or --singles too)

Examples:
  # Write both outputs
  homophones build -p pairs.txt -s singles.txt words.txt

  # Merge several lists and overwrite previous results
  homophones build -f -s singles.txt nouns.txt verbs.txt

  # Use a local mirror with a short backoff
  homophones build -b http://localhost:8080/wiki/ --retry-backoff 2s -p pairs.txt words.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runBuildCmd,
	}

	// Output flags
	cmd.Flags().StringP("pairs", "p", "", "Write word,homophone pairs to this file")
	cmd.Flags().StringP("singles", "s", "", "Write the sorted list of words in pairs to this file")
	cmd.Flags().StringP("summary", "m", "", "Write a Markdown run summary to this file")
	cmd.Flags().BoolP("force", "f", false, "Overwrite existing output files")

	// Lookup flags
	cmd.Flags().StringP("base-url", "b", config.DefaultBaseURL,
		"Dictionary page prefix the word is appended to")
	cmd.Flags().String("selector", config.DefaultSelector,
		"CSS selector matching homophone elements")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each request")
	cmd.Flags().Duration("retry-backoff", config.DefaultRetryBackoff,
		"Wait before retrying a failed request")
	cmd.Flags().String("proxy", "",
		"Route requests through a SOCKS5 proxy (host:port)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .homophones in current or home directory)")

	return cmd
}

// runBuildCmd executes the build command.
func runBuildCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runBuild(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file and the
// command flags. A flag overrides the file only when it was set explicitly.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// If the user named a config file, it must exist. Otherwise a missing
	// file just means defaults.
	if configPath := config.FindConfigFile(cfg.ConfigFilePath); configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if flags.Changed("base-url") {
		if cfg.BaseURL, err = flags.GetString("base-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("selector") {
		if cfg.Selector, err = flags.GetString("selector"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("retry-backoff") {
		if cfg.RetryBackoff, err = flags.GetDuration("retry-backoff"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}

	if cfg.PairsPath, err = flags.GetString("pairs"); err != nil {
		return nil, err
	}
	if cfg.SinglesPath, err = flags.GetString("singles"); err != nil {
		return nil, err
	}
	if cfg.SummaryPath, err = flags.GetString("summary"); err != nil {
		return nil, err
	}
	if cfg.Force, err = flags.GetBool("force"); err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Inputs = args

	return cfg, nil
}

// runBuild executes the build pipeline and prints a one-line result.
func runBuild(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer) error {
	client, err := dictionary.NewHTTPClient(cfg.Timeout, cfg.ProxyAddress)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	p, err := pipeline.Default(cfg, client, logger)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	run := model.NewRun(cfg.Inputs)
	if err := p.Execute(ctx, run); err != nil {
		return err
	}
	run.Finish()

	fmt.Fprintf(out, "Looked up %d words in %s: %d pairs, %d singles\n",
		run.Stats.WordsLookedUp,
		run.Stats.Duration.Round(time.Millisecond),
		len(run.Pairs),
		len(run.Singles))

	return nil
}

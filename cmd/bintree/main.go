package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-bintrees/internal/applog"
	"github.com/g-m-twostay/go-bintrees/internal/config"
	"github.com/g-m-twostay/go-bintrees/internal/demo"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	debug      bool
	recursive  bool
	postfix    string
}

// loadConfig resolves defaults, then the config file, then the flags that
// were set on the command line.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = o.debug
	}
	if cmd.Flags().Changed("recursive") {
		cfg.BST.Recursive = o.recursive
	}
	if cmd.Flags().Changed("postfix") {
		cfg.Expr.Postfix = o.postfix
	}
	return cfg, errors.Wrap(cfg.Validate(), "invalid flags")
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	// run loads the configuration and hands a scoped logger to f.
	run := func(scope string, f func(*config.Config, zerolog.Logger) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				applog.WithScope(applog.NewLogger(stderr, opts.debug), "CONFIG").Error().Err(err).Msg("failed to load configuration")
				return err
			}
			logger := applog.WithScope(applog.NewLogger(stderr, cfg.Debug), scope)
			if err := f(cfg, logger); err != nil {
				logger.Error().Err(err).Msg("demo failed")
				return err
			}
			return nil
		}
	}

	rootCmd := &cobra.Command{
		Use:           "bintree",
		Short:         "Binary search tree and expression tree demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log every demo step")

	bstCmd := &cobra.Command{
		Use:     "bst",
		Short:   "Insert, remove and query an unbalanced binary search tree",
		Example: `bintree bst --recursive`,
		Args:    cobra.NoArgs,
		RunE: run("BST", func(cfg *config.Config, logger zerolog.Logger) error {
			return demo.BST(stdout, cfg.BST, logger)
		}),
	}
	bstCmd.Flags().BoolVar(&opts.recursive, "recursive", false, "use the recursive insert and remove")

	exprCmd := &cobra.Command{
		Use:     "expr",
		Short:   "Build an expression tree from a postfix string and traverse it",
		Example: `bintree expr --postfix "ab+c*"`,
		Args:    cobra.NoArgs,
		RunE: run("EXPR", func(cfg *config.Config, logger zerolog.Logger) error {
			return demo.Expr(stdout, cfg.Expr, logger)
		}),
	}
	exprCmd.Flags().StringVar(&opts.postfix, "postfix", "", "postfix expression, one rune per token")

	rootCmd.AddCommand(bstCmd, exprCmd)
	return rootCmd
}

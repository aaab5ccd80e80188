// Package cmd provides the command-line interface for rp with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--file, --output, etc.) - highest priority
//	2. RP_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (RP_OUTPUT, RP_WORKERS, etc.)
//	4. Configuration files (.rp.yml) - lowest priority
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/magnhaug/rp/internal/assembly"
	"github.com/magnhaug/rp/internal/config"
	"github.com/magnhaug/rp/internal/logging"
	"github.com/magnhaug/rp/internal/serializer"
	"github.com/magnhaug/rp/internal/tokens"
)

var cfgFile string

// rootFlags holds the per-invocation flag values for the root command.
type rootFlags struct {
	Prompts []string
	Files   []string
	List    string
	Output  string
	Silent  bool
	Workers int
}

var flags rootFlags

// silentMode is the effective silent setting after merging flags and
// config, consulted by Execute for top-level error reporting.
var silentMode bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rp [flags] [additional_prompt ...]",
	Short: "Aggregate prompt templates and files into a single XML prompt",
	Long: `rp (repo prompt) aggregates file content and prompt templates into a
single, well-structured XML prompt suitable for downstream automated
parsers.

Templates come from -p flags and positional arguments; files come from
-f flags and from an optional list file (-l) whose lines are additional
paths. The assembled document is written to stdout or to -o, and an
approximate token count is reported on stderr.

Examples:
  rp -f main.go "Explain this file"
  rp -p prompts/review.txt -l files.txt -o prompt.xml
  rp -s -f a.go -f b.go`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRootCommand,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !silentMode {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .rp.yml, can also use RP_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.Flags().StringArrayVarP(&flags.Prompts, "prompt", "p", nil, "Path to a prompt template file (repeatable)")
	rootCmd.Flags().StringArrayVarP(&flags.Files, "file", "f", nil, "Path to a single file (repeatable)")
	rootCmd.Flags().StringVarP(&flags.List, "list", "l", "", "Path to a file containing a list of file paths")
	rootCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path to output file (default stdout)")
	rootCmd.Flags().BoolVarP(&flags.Silent, "silent", "s", false, "Suppress stderr output")
	rootCmd.Flags().IntVar(&flags.Workers, "workers", 0, "Parallel file reads (0 = number of CPUs)")
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. RP_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .rp.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("RP_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".rp")
	}

	viper.SetEnvPrefix("RP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files are not fatal here; the tool
	// works with flags alone.
	_ = viper.ReadInConfig()
}

func runRootCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	mergeFlags(cmd, cfg)
	silentMode = cfg.Silent

	logger := logging.NewLogger(&logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Output: cmd.ErrOrStderr(),
		Silent: cfg.Silent,
	})

	doc, err := assembly.New(logger).Assemble(cmd.Context(), assembly.Options{
		TemplateFiles: cfg.Templates,
		InlinePrompts: args,
		Files:         cfg.Files,
		ListFile:      cfg.ListFile,
		Workers:       cfg.Workers,
	})
	if err != nil {
		return err
	}

	rendered := serializer.Render(doc)

	if cfg.Output != "" {
		if writeErr := os.WriteFile(cfg.Output, []byte(rendered), 0644); writeErr != nil {
			return fmt.Errorf("could not write output file %s: %w", cfg.Output, writeErr)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}

	if !cfg.Silent {
		fmt.Fprintf(cmd.ErrOrStderr(), "Success: Prompt generated with %d tokens.\n", tokens.Estimate(rendered))
	}

	return nil
}

// mergeFlags layers flag values over config-file defaults: list flags
// append, scalar flags override when set on the command line.
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	cfg.Templates = append(cfg.Templates, flags.Prompts...)
	cfg.Files = append(cfg.Files, flags.Files...)

	if cmd.Flags().Changed("list") {
		cfg.ListFile = flags.List
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = flags.Output
	}
	if cmd.Flags().Changed("silent") {
		cfg.Silent = flags.Silent
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flags.Workers
	}
}

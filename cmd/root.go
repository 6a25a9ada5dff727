// Copyright © 2026 The qassert authors

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/luthersystems/qassert/diagnostic"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "qassert",
	Short: "Explain QP/QF framework assertion failures",
	Long: `qassert explains the assertions raised by the QP/C++ real-time
framework. A failed assertion reports a module name and a numeric id; qassert
maps that pair to a short summary, troubleshooting tips, and a link to the
framework documentation.

Getting started:
  qassert describe qf_actq 190     Explain one assertion
  qassert describe qf_actq:190     Same, in the form the framework prints
  qassert list qf_mem              List the known assertions of a module
  qassert vet extra.yaml           Check a supplementary description file
  qassert repl                     Look up assertions interactively
  qassert guide                    Describe your own assertions

Supplementary descriptions:
  Projects can describe their own assertions, or ones the built-in table
  lacks, in YAML, JSON or HCL files. Name them with --source or the
  "sources" config key; they are consulted only when the built-in table has
  no match.

Configuration:
  Settings are read from $HOME/.qassert.yaml (or --config) and from
  environment variables with the QASSERT_ prefix, for example
  QASSERT_COLOR=never or QASSERT_SOURCES="a.yaml b.hcl".`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, "qassert:", msg) //nolint:errcheck // best-effort error display
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.qassert.yaml)")
	flags.String("color", "auto", `Control colored output: "auto", "always", or "never".`)
	flags.Int("width", diagnostic.DefaultWidth, "Wrap width for tips and notes.")
	flags.StringSlice("source", nil, "Supplementary description file (may be repeated).")
	flags.String("log-level", "warn", "Log level: debug, info, warn, or error.")

	for key, flag := range map[string]string{
		keyColor:    "color",
		keyWidth:    "width",
		keySources:  "source",
		keyLogLevel: "log-level",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		DescribeCommand(),
		ListCommand(),
		VetCommand(),
		newReplCommand(),
		newGuideCommand(),
	)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			// Search config in home directory with name ".qassert" (without extension).
			viper.AddConfigPath(home)
			viper.SetConfigName(".qassert")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("qassert")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing default config file is fine; an unreadable or malformed one
	// is reported when the command builds its settings.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = fmt.Errorf("reading config: %w", err)
		}
	}
}

// configErr holds a failure from initConfig for the running command to
// report, since cobra initializers cannot return errors.
var configErr error

// exitError carries a process exit code. An exitError with a nil err exits
// silently.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitCode maps a command error to a process exit code. Errors that are not
// exitErrors come from cobra's flag and argument validation and count as bad
// invocations.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 2
}

/*
Package cli implements the stepsearch command line: a catalogue listing,
a headless runner, an interactive terminal viewer and scenario tooling
(validate, generate), configured via flags, environment (STEPSEARCH_*)
and an optional YAML config file.
*/
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	projectName = "stepsearch"
	envPrefix   = "STEPSEARCH"
)

// Config keys.
const (
	keyScenario    = "scenario"
	keyAlgorithm   = "algorithm"
	keyLimit       = "limit"
	keyMaxLimit    = "max_limit"
	keyInterval    = "interval"
	keyLogLevel    = "log_level"
	keyMetricsAddr = "metrics_addr"
)

// ErrNoScenario is returned by commands that need a scenario file when none is configured.
var ErrNoScenario = errors.New("cli: no scenario file (use --scenario or STEPSEARCH_SCENARIO)")

/*
Execute builds the command tree and runs it against os.Args.
*/
func Execute() error {
	return NewRootCommand().Execute()
}

/*
NewRootCommand returns the root command with every subcommand attached.
Each call owns a fresh viper instance, so commands can be built and run
repeatedly in one process.
*/
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           projectName,
		Short:         "Step-wise graph search runner",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.StringP("scenario", "s", "", "scenario file (yaml)")
	pf.StringP("algorithm", "a", "breadth-first", "search algorithm or alias (see 'stepsearch algorithms')")
	pf.Int("limit", 0, "depth limit for depth-limited search (0 = default)")
	pf.Int("max-limit", 0, "maximum limit for iterative-deepening search (0 = default)")
	pf.Duration("interval", 0, "delay between steps (run: 0 = as fast as possible)")

	for key, flag := range map[string]string{
		keyLogLevel:  "log-level",
		keyScenario:  "scenario",
		keyAlgorithm: "algorithm",
		keyLimit:     "limit",
		keyMaxLimit:  "max-limit",
		keyInterval:  "interval",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	root.AddCommand(
		newAlgorithmsCmd(),
		newRunCmd(v),
		newTUICmd(v),
		newValidateCmd(),
		newGenerateCmd(),
	)

	return root
}

/*
initConfig wires the environment and, when given, the config file into v.
Precedence is flag > env > file > default.
*/
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("cli: read config: %w", err)
	}

	return nil
}

var longRoot = `
stepsearch runs breadth-first, depth-first, depth-limited, iterative-deepening,
uniform-cost, greedy, A* and bidirectional searches one step at a time over a
graph loaded from a scenario file.

Configuration is read from flags, then STEPSEARCH_* environment variables,
then the optional --config file.
`

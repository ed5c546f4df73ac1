// Package cli implements the linearbench cobra commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/adamluzsi/linearkit/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.llib.dev/frameless/pkg/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

// app carries the state shared by the subcommands of one root command.
type app struct {
	viper      *viper.Viper
	configPath string
}

func NewRootCommand() *cobra.Command {
	a := &app{viper: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "linearbench",
		Short: "Compare a linked list and a vector on prepend and pop-last workloads",
		Long: `linearbench runs the same workloads against a doubly linked list and a
doubling vector, and reports how long each took and the difference between them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default is ./linearbench.yaml or $HOME/.linearbench/linearbench.yaml)")
	flags.String("log-level", "", "logging level: debug, info, warn or error")
	flags.StringP("output", "o", "", "report format: text, json or yaml")
	flags.String("history", "", "path of the bolt database that keeps earlier runs")
	a.bind(flags, config.KeyLogLevel, "log-level")
	a.bind(flags, config.KeyOutput, "output")
	a.bind(flags, config.KeyHistory, "history")

	rootCmd.AddCommand(a.newRunCommand())
	rootCmd.AddCommand(a.newHistoryCommand())
	return rootCmd
}

func (a *app) bind(flags *pflag.FlagSet, key, name string) {
	if err := a.viper.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

func (a *app) load() (config.Config, error) {
	return config.Load(a.viper, a.configPath)
}

func (a *app) logger(cmd *cobra.Command, c config.Config) *logging.Logger {
	return &logging.Logger{Out: cmd.ErrOrStderr(), Level: c.Level()}
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute(rootCmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

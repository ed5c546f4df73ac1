package cli

import (
	"strconv"

	"github.com/adamluzsi/linearkit/internal/bench"
	"github.com/adamluzsi/linearkit/internal/config"
	"github.com/adamluzsi/linearkit/internal/history"
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

func (a *app) newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [repeat]",
		Short: "Run the smoke workload, then time both containers",
		Long: `run executes the smoke workload repeat times (default 1) on both containers.
When repeat is 1, or --force-timing is given, it also times the prepend and
pop-last workloads and prints the elapsed nanoseconds.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run,
	}

	flags := cmd.Flags()
	flags.Int("operations", 0, "elements handled by each timed workload")
	flags.String("payload", "", "payload kind: fixed or random")
	flags.Bool("force-timing", false, "time the workloads even when repeat is more than 1")
	a.bind(flags, config.KeyOperations, "operations")
	a.bind(flags, config.KeyPayload, "payload")
	a.bind(flags, config.KeyForceTiming, "force-timing")
	return cmd
}

func (a *app) run(cmd *cobra.Command, args []string) (returnErr error) {
	if len(args) == 1 {
		repeat, err := strconv.Atoi(args[0])
		if err != nil {
			return config.ErrInvalidConfig.F("repeat must be a number: %q", args[0])
		}
		a.viper.Set(config.KeyRepeat, repeat)
	}

	c, err := a.load()
	if err != nil {
		return err
	}
	var (
		ctx    = cmd.Context()
		logger = a.logger(cmd, c)
	)

	out, err := bench.NewWriter(c.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	sinks := []bench.Sink{out}

	if c.History != "" {
		store, err := history.Open(c.History)
		if err != nil {
			return err
		}
		defer errorkit.Finish(&returnErr, store.Close)
		sinks = append(sinks, store)
	}

	report, err := bench.Runner{Logger: logger, Config: c.Bench()}.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "publishing report", logging.Field("run_id", report.ID), logging.Field("sinks", len(sinks)))
	return bench.Publish(ctx, report, sinks...)
}

package cli

import (
	"fmt"
	"time"

	"github.com/adamluzsi/linearkit/internal/bench"
	"github.com/adamluzsi/linearkit/internal/config"
	"github.com/adamluzsi/linearkit/internal/history"
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrHistoryDisabled errorkit.Error = "no history database is configured"

func (a *app) newHistoryCommand() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the reports of earlier runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.history(cmd, id)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "only show the run with this ID")
	return cmd
}

func (a *app) history(cmd *cobra.Command, id string) (returnErr error) {
	c, err := a.load()
	if err != nil {
		return err
	}
	if c.History == "" {
		return ErrHistoryDisabled.F("set --history, %s_%s or %q in the config file", config.EnvPrefix, "HISTORY", config.KeyHistory)
	}

	ctx := cmd.Context()
	store, err := history.Open(c.History)
	if err != nil {
		return err
	}
	defer errorkit.Finish(&returnErr, store.Close)

	var reports []bench.Report
	if id != "" {
		r, err := store.FindByID(ctx, id)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	} else {
		reports, err = store.List(ctx)
		if err != nil {
			return err
		}
	}
	a.logger(cmd, c).Debug(ctx, "history loaded", logging.Field("reports", len(reports)))

	out, err := bench.NewWriter(c.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	for _, r := range reports {
		if c.Output == bench.FormatText {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "# %s %s\n", r.ID, r.StartedAt.Format(time.RFC3339)); err != nil {
				return err
			}
		}
		if err := out.Write(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

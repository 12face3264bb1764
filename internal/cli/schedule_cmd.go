package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/cli/formatter"
)

func newScheduleCmd(a *app.App) *cobra.Command {
	var limit int
	var all bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List upcoming workouts",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			from := now
			if all {
				// Far enough back to include everything ever booked.
				from = time.Time{}
			}

			entries, err := a.Schedule.ListUpcoming(context.Background(), from, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(entries, now))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to list")
	cmd.Flags().BoolVar(&all, "all", false, "Include past workouts")
	return cmd
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/cli/formatter"
	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/repository"
)

func newPlanCmd(a *app.App) *cobra.Command {
	var planID string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the latest workout plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			plan, err := loadPlan(ctx, a, planID)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No plan yet. Run 'fitbuddy chat' and ask for one.")
					return nil
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "id", "", "Show a specific plan instead of the latest")
	cmd.AddCommand(newPlanListCmd(a))
	return cmd
}

func loadPlan(ctx context.Context, a *app.App, planID string) (*domain.Plan, error) {
	if planID != "" {
		return a.Plans.GetByID(ctx, planID)
	}
	return a.Plans.GetLatest(ctx)
}

func newPlanListCmd(a *app.App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored plans, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := a.Plans.List(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plans yet.")
				return nil
			}
			for _, p := range plans {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
					formatter.Dim(p.ID),
					formatter.Bold(p.Title),
					formatter.Dim(fmt.Sprintf("%d days · %s", p.Days(), p.Difficulty)),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of plans to list")
	return cmd
}

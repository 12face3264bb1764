// Package cli implements the fitbuddy command line interface: an
// interactive coaching chat plus commands for inspecting the profile,
// the current plan, and the workout schedule.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/fitbuddy/internal/app"
)

// defaultSessionID is used when no --session flag is given. The CLI is a
// single-user surface, so one shared conversation is the common case.
const defaultSessionID = "cli"

// NewRootCmd creates the top-level "fitbuddy" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitbuddy",
		Short: "Conversational fitness coach",
		Long: `FitBuddy is a conversational fitness coach. Chat with it to set up
your profile, get a workout plan, edit it, and put sessions on your calendar.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newChatCmd(a),
		newProfileCmd(a),
		newPlanCmd(a),
		newScheduleCmd(a),
		newServeCmd(a),
	)

	return root
}

// addSessionFlag registers the shared --session flag on a command.
func addSessionFlag(fs *pflag.FlagSet, sessionID *string) {
	fs.StringVar(sessionID, "session", defaultSessionID, "Conversation session id")
}

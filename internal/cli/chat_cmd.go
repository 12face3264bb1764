package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/cli/formatter"
)

func newChatCmd(a *app.App) *cobra.Command {
	var sessionID string
	var reset bool

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the coach (interactive, or one message at a time)",
		Long: `Start an interactive coaching session, or pass a message for a
single turn.

Examples:
  fitbuddy chat
  fitbuddy chat "I want a workout plan"
  fitbuddy chat --reset`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if reset {
				if err := a.Sessions.Reset(ctx, sessionID); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Conversation reset.")
				if len(args) == 0 {
					return nil
				}
			}

			if len(args) > 0 {
				return runChatOneShot(cmd.OutOrStdout(), a, sessionID, strings.Join(args, " "))
			}

			if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return runChatTUI(a, sessionID)
			}
			return runChatRepl(cmd.InOrStdin(), cmd.OutOrStdout(), a, sessionID)
		},
	}

	addSessionFlag(cmd.Flags(), &sessionID)
	cmd.Flags().BoolVar(&reset, "reset", false, "Forget the conversation state before starting")
	return cmd
}

func runChatOneShot(w io.Writer, a *app.App, sessionID, message string) error {
	reply, _, err := a.Sessions.HandleTurn(context.Background(), sessionID, message)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, reply.Text)
	return nil
}

// runChatRepl is the plain line-based loop used when stdin is not a
// terminal, for piping and scripting.
func runChatRepl(in io.Reader, w io.Writer, a *app.App, sessionID string) error {
	ctx := context.Background()
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(w, chatWelcomeText())
	for {
		fmt.Fprint(w, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		switch strings.ToLower(input) {
		case "/quit", "/exit", "/q":
			return nil
		}

		reply, _, err := a.Sessions.HandleTurn(ctx, sessionID, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "coach> "+reply.Text)
	}
}

func runChatTUI(a *app.App, sessionID string) error {
	model := newChatModel(a, sessionID)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func chatWelcomeText() string {
	return formatter.Header("FitBuddy") + "\n" +
		formatter.Dim("Ask for a workout plan, advice, or say hi. /quit to leave.")
}

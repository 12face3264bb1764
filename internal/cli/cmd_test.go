package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/config"
	"github.com/alexanderramin/fitbuddy/internal/db"
)

func newTestApp(t *testing.T) *app.App {
	t.Helper()
	conn, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	cfg, err := config.Load("")
	require.NoError(t, err)

	a, err := app.NewWithDB(cfg, conn)
	require.NoError(t, err)
	return a
}

func execute(t *testing.T, a *app.App, args ...string) string {
	t.Helper()
	root := NewRootCmd(a)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestChatOneShot(t *testing.T) {
	a := newTestApp(t)

	out := execute(t, a, "chat", "I want a workout plan")
	assert.Contains(t, out, "What's your name?")

	// State carries over to the next invocation.
	out = execute(t, a, "chat", "Alex")
	assert.Contains(t, out, "How old are you?")
}

func TestChatSessionFlagSeparatesConversations(t *testing.T) {
	a := newTestApp(t)

	execute(t, a, "chat", "--session", "one", "I want a workout plan")
	out := execute(t, a, "chat", "--session", "two", "hello")
	assert.NotContains(t, out, "What's your name?")
}

func TestChatReset(t *testing.T) {
	a := newTestApp(t)

	execute(t, a, "chat", "I want a workout plan")
	out := execute(t, a, "chat", "--reset")
	assert.Contains(t, out, "Conversation reset.")

	out = execute(t, a, "chat", "hello")
	assert.NotContains(t, out, "How old")
}

func TestChatReplReadsLines(t *testing.T) {
	a := newTestApp(t)
	root := NewRootCmd(a)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("I want a workout plan\n/quit\n"))
	root.SetArgs([]string{"chat"})
	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "coach>")
	assert.Contains(t, out.String(), "What's your name?")
}

func TestPlanAndScheduleBeforeAnyWorkout(t *testing.T) {
	a := newTestApp(t)

	assert.Contains(t, execute(t, a, "plan"), "No plan yet")
	assert.Contains(t, execute(t, a, "plan", "list"), "No plans yet")
	assert.Contains(t, execute(t, a, "schedule"), "Nothing scheduled")
	assert.Contains(t, execute(t, a, "profile"), "No profile yet")
}

func TestPlanAndScheduleAfterConversation(t *testing.T) {
	a := newTestApp(t)

	execute(t, a, "chat", "I want a workout plan")
	for _, answer := range []string{"Alex", "30", "75", "180", "get fit", "none", "beginner"} {
		execute(t, a, "chat", answer)
	}
	execute(t, a, "chat", "yes")

	out := execute(t, a, "plan")
	assert.Contains(t, out, "Day 1")

	out = execute(t, a, "schedule")
	assert.Contains(t, out, "UPCOMING WORKOUTS")

	out = execute(t, a, "profile")
	assert.Contains(t, out, "Alex")
}

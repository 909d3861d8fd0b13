package main

import (
	"breakout-lab/domain"
	"breakout-lab/internal"
	"breakout-lab/services"
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestStack(t *testing.T) *services.Stack {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	config := internal.Config{BreakoutRoomsEnabled: true, Locale: "fr", MaxContentLength: 100, SinkTimeout: time.Second}
	return services.NewStack(config, db, logs.GetLoggerFromLevel(slog.LevelDebug))
}

// runCommand executes one command and returns its trimmed output.
func runCommand(t *testing.T, stack *services.Stack, args ...string) string {
	var out bytes.Buffer
	require.NoError(t, execute(context.Background(), stack, args, &out), strings.Join(args, " "))
	return strings.TrimSpace(out.String())
}

func TestExecute_Breakout_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	stack := newTestStack(t)

	// Given a group with an owner and a user
	parent := runCommand(t, stack, "create", "-kind", "group", "-name", "Atelier")
	runCommand(t, stack, "join", "-session", parent, "-actor-id", "M", "-role", "owner")
	runCommand(t, stack, "join", "-session", parent, "-actor-id", "A")

	// When rooms are set up
	out := runCommand(t, stack, "setup", "-parent", parent, "-mode", "automatic", "-amount", "2")

	// Then they are listed with their localized names
	lines := strings.Split(out, "\n")
	req.Len(lines, 2)
	req.True(strings.HasSuffix(lines[0], "Salle 1"))
	room := strings.Fields(lines[0])[0]

	runCommand(t, stack, "start", "-parent", parent)
	runCommand(t, stack, "assist", "-room", room, "-status", "2")
	stored, err := stack.Sessions.GetSession(ctx, domain.Token(room))
	req.NoError(err)
	req.Equal(domain.AssistanceRequested, stored.Assistance)

	runCommand(t, stack, "broadcast", "-parent", parent, "-actor-id", "M", "-text", "Five minutes left")
	req.Contains(runCommand(t, stack, "history", "-room", room), "Five minutes left")

	runCommand(t, stack, "stop", "-parent", parent)
	runCommand(t, stack, "remove", "-parent", parent)
	children, err := stack.Sessions.FindChildrenByParentRef(ctx, domain.BreakoutParentRef(domain.Token(parent)))
	req.NoError(err)
	req.Empty(children)
}

func TestExecute_Reports_Bad_Input(t *testing.T) {
	stack := newTestStack(t)
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"explode"}},
		{name: "unknown kind", args: []string{"create", "-kind", "circle"}},
		{name: "unknown mode", args: []string{"setup", "-parent", "p", "-mode", "random"}},
		{name: "unknown role", args: []string{"join", "-session", "p", "-role", "admin"}},
		{name: "missing parent", args: []string{"start", "-parent", "ghost"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.Error(t, execute(context.Background(), stack, tt.args, &out))
		})
	}
}

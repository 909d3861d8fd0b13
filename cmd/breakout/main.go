package main

import (
	"breakout-lab/domain"
	"breakout-lab/internal"
	"breakout-lab/services"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run opens the database named by the configuration, builds the engine on top
// of it and executes one command against it.
func run(args []string) error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, services.NewStack(config, db, log), args, os.Stdout)
}

type command func(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error

var commands = map[string]command{
	"create":    createSession,
	"join":      joinSession,
	"setup":     setupRooms,
	"remove":    removeRooms,
	"start":     startRooms,
	"stop":      stopRooms,
	"assist":    assist,
	"broadcast": broadcast,
	"history":   history,
}

func usage() error {
	names := lo.Keys(commands)
	sort.Strings(names)
	return fmt.Errorf("usage: breakout <%s> [flags]", strings.Join(names, "|"))
}

func execute(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error {
	if len(args) == 0 {
		return usage()
	}
	cmd, ok := commands[args[0]]
	if !ok {
		return usage()
	}
	return cmd(ctx, stack, args[1:], w)
}

func createSession(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error {
	flags := flag.NewFlagSet("create", flag.ContinueOnError)
	kind := flags.String("kind", "group", "Session kind: group, public, one-to-one or changelog")
	name := flags.String("name", "", "Session name")
	if err := flags.Parse(args); err != nil {
		return err
	}
	sessionKind, err := parseKind(*kind)
	if err != nil {
		return err
	}
	session, err := stack.Sessions.CreateSession(ctx, sessionKind, *name, nil)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, session.Token)
	return err
}

func joinSession(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error {
	flags := flag.NewFlagSet("join", flag.ContinueOnError)
	token := flags.String("session", "", "Session token")
	actorType := flags.String("actor-type", string(domain.ActorUsers), "Actor type")
	actorID := flags.String("actor-id", "", "Actor id")
	displayName := flags.String("name", "", "Display name, defaults to the actor id")
	role := flags.String("role", "user", "Participant type: owner, moderator, user, guest, self-joined or guest-moderator")
	if err := flags.Parse(args); err != nil {
		return err
	}
	participantType, ok := participantTypes[*role]
	if !ok {
		return fmt.Errorf("unknown role %q", *role)
	}
	session, err := stack.Sessions.GetSession(ctx, domain.Token(*token))
	if err != nil {
		return err
	}
	attendee := domain.AttendeeDescriptor{
		ActorType:       domain.ActorType(*actorType),
		ActorID:         *actorID,
		DisplayName:     lo.Ternary(*displayName == "", *actorID, *displayName),
		ParticipantType: participantType,
	}
	if err = stack.Participants.AddParticipants(ctx, session, []domain.AttendeeDescriptor{attendee}); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s joined %s\n", domain.RecipientID(attendee.ActorType, attendee.ActorID), session.Token)
	return err
}

func setupRooms(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error {
	flags := flag.NewFlagSet("setup", flag.ContinueOnError)
	token := flags.String("parent", "", "Parent session token")
	mode := flags.String("mode", "automatic", "Assignment mode: automatic, manual or free")
	amount := flags.Int("amount", 2, "Number of breakout rooms")
	attendeeMap := flags.String("map", "", "Attendee map for manual mode, as a JSON object")
	if err := flags.Parse(args); err != nil {
		return err
	}
	breakoutMode, err := parseMode(*mode)
	if err != nil {
		return err
	}
	parent, err := stack.Sessions.GetSession(ctx, domain.Token(*token))
	if err != nil {
		return err
	}
	rooms, err := stack.Breakout.SetupBreakoutRooms(ctx, parent, breakoutMode, *amount, *attendeeMap)
	if err != nil {
		return err
	}
	for _, room := range rooms {
		if _, err = fmt.Fprintf(w, "%s\t%s\n", room.Token, room.Name); err != nil {
			return err
		}
	}
	return nil
}

// parentCommand builds the commands that only need a parent session.
func parentCommand(name, done string, apply func(*services.BreakoutService, context.Context, *domain.Session) error) command {
	return func(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error {
		flags := flag.NewFlagSet(name, flag.ContinueOnError)
		token := flags.String("parent", "", "Parent session token")
		if err := flags.Parse(args); err != nil {
			return err
		}
		parent, err := stack.Sessions.GetSession(ctx, domain.Token(*token))
		if err != nil {
			return err
		}
		if err = apply(stack.Breakout, ctx, parent); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, color.Green.Sprintf("%s %s", parent.Token, done))
		return err
	}
}

var (
	removeRooms = parentCommand("remove", "removed", (*services.BreakoutService).RemoveBreakoutRooms)
	startRooms  = parentCommand("start", "started", (*services.BreakoutService).StartBreakoutRooms)
	stopRooms   = parentCommand("stop", "stopped", (*services.BreakoutService).StopBreakoutRooms)
)

func assist(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error {
	flags := flag.NewFlagSet("assist", flag.ContinueOnError)
	token := flags.String("room", "", "Breakout room token")
	status := flags.Int("status", int(domain.AssistanceRequested), "2 to request assistance, 0 to clear it")
	if err := flags.Parse(args); err != nil {
		return err
	}
	room, err := stack.Sessions.GetSession(ctx, domain.Token(*token))
	if err != nil {
		return err
	}
	if err = stack.Breakout.SetAssistanceRequest(ctx, room, *status); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s assistance %s\n", room.Token, domain.AssistanceStatus(*status))
	return err
}

func broadcast(ctx context.Context, stack *services.Stack, args []string, w io.Writer) error {
	flags := flag.NewFlagSet("broadcast", flag.ContinueOnError)
	token := flags.String("parent", "", "Parent session token")
	actorType := flags.String("actor-type", string(domain.ActorUsers), "Author actor type")
	actorID := flags.String("actor-id", "", "Author actor id")
	text := flags.String("text", "", "Message to post in every breakout room")
	if err := flags.Parse(args); err != nil {
		return err
	}
	parent, err := stack.Sessions.GetSession(ctx, domain.Token(*token))
	if err != nil {
		return err
	}
	author, err := stack.Participants.FindParticipantByActor(ctx, parent, domain.ActorType(*actorType), *actorID)
	if err != nil {
		return fmt.Errorf("author of the broadcast: %w", err)
	}
	if err = stack.Breakout.BroadcastMessage(ctx, parent, author, *text); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, color.Green.Sprintf("broadcast sent to the rooms of %s", parent.Token))
	return err
}

// history prints one page of a session's messages, newest first, followed by
// the cursor of the next page.
func history(_ context.Context, stack *services.Stack, args []string, w io.Writer) error {
	flags := flag.NewFlagSet("history", flag.ContinueOnError)
	token := flags.String("room", "", "Session token")
	cursor := flags.String("cursor", "", "Cursor returned by a previous page")
	if err := flags.Parse(args); err != nil {
		return err
	}
	messages, next, err := stack.Chat.GetMessages(domain.Token(*token), lo.EmptyableToPtr(*cursor))
	if err != nil {
		return err
	}
	for _, message := range messages {
		line := fmt.Sprintf("%s\t%s\t%s", message.CreatedAt.Format("15:04:05"),
			color.Cyan.Sprint(domain.RecipientID(message.ActorType, message.ActorID)), message.Content)
		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if next != nil && len(messages) > 0 {
		_, err = fmt.Fprintf(w, "next: %s\n", *next)
	}
	return err
}

var participantTypes = map[string]domain.ParticipantType{
	"owner":           domain.ParticipantOwner,
	"moderator":       domain.ParticipantModerator,
	"user":            domain.ParticipantUser,
	"guest":           domain.ParticipantGuest,
	"self-joined":     domain.ParticipantUserSelfJoined,
	"guest-moderator": domain.ParticipantGuestModerator,
}

func parseKind(value string) (domain.SessionKind, error) {
	kinds := []domain.SessionKind{domain.KindOneToOne, domain.KindGroup, domain.KindPublic, domain.KindChangelog}
	kind, ok := lo.Find(kinds, func(k domain.SessionKind) bool { return k.String() == value })
	if !ok {
		return 0, fmt.Errorf("unknown session kind %q", value)
	}
	return kind, nil
}

func parseMode(value string) (domain.Mode, error) {
	modes := []domain.Mode{domain.ModeAutomatic, domain.ModeManual, domain.ModeFree}
	mode, ok := lo.Find(modes, func(m domain.Mode) bool { return m.String() == value })
	if !ok {
		return 0, fmt.Errorf("unknown breakout mode %q", value)
	}
	return mode, nil
}

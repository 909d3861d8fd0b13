package main

import (
	"breakout-lab/domain"
	"breakout-lab/internal"
	"breakout-lab/repositories"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run prints the stored sessions and their breakout state.
// With -parent, only the breakout rooms of that session are listed, with their members.
func run() error {
	parent := flag.String("parent", "", "Token of a parent session whose breakout rooms are listed")
	flag.Parse()

	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// BypassLockGuard allows opening while another process holds the lock
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	ctx := context.Background()
	sessionRepository := repositories.NewSessionRepository(db, log)
	participantRepository := repositories.NewParticipantRepository(db, log)

	var sessions []*domain.Session
	switch *parent {
	case "":
		sessions, err = sessionRepository.ListSessions(ctx)
	default:
		sessions, err = sessionRepository.FindChildrenByParentRef(ctx, domain.BreakoutParentRef(domain.Token(*parent)))
	}
	if err != nil {
		return fmt.Errorf("listing sessions failed: %w", err)
	}

	rows := make([][]string, 0, len(sessions))
	for _, session := range sessions {
		members, err := participantRepository.ListParticipants(ctx, session)
		if err != nil {
			return fmt.Errorf("listing members of %s failed: %w", session.Token, err)
		}
		rows = append(rows, toRow(session, members, *parent != ""))
	}
	render(os.Stdout, rows, *parent != "")
	return nil
}

func header(withMembers bool) []string {
	columns := []string{"Token", "Name", "Kind", "Parent", "Mode", "Status", "Lobby", "Assistance", "Members"}
	if withMembers {
		columns = append(columns, "Attendees")
	}
	return columns
}

func toRow(session *domain.Session, members []domain.Participant, withMembers bool) []string {
	parent := "-"
	if session.Parent != nil {
		parent = shortToken(session.Parent.Token)
	}
	row := []string{
		shortToken(session.Token),
		session.Name,
		session.Kind.String(),
		parent,
		session.Mode.String(),
		statusCell(session),
		lobbyCell(session),
		assistanceCell(session.Assistance),
		strconv.Itoa(len(members)),
	}
	if withMembers {
		names := lo.Map(members, func(p domain.Participant, _ int) string {
			if p.HasModeratorPermissions() {
				return p.Attendee.DisplayName + "*"
			}
			return p.Attendee.DisplayName
		})
		row = append(row, fmt.Sprint(names))
	}
	return row
}

// Status only means something on a configured parent, lobby only on a child.
func statusCell(session *domain.Session) string {
	if !session.IsBreakoutConfigured() {
		return "-"
	}
	if session.Status == domain.StatusStarted {
		return color.Green.Sprint(session.Status.String())
	}
	return color.Yellow.Sprint(session.Status.String())
}

func lobbyCell(session *domain.Session) string {
	if !session.IsBreakoutChild() {
		return "-"
	}
	if session.Lobby == domain.LobbyOpenToAll {
		return color.Green.Sprint(session.Lobby.String())
	}
	return color.Gray.Sprint(session.Lobby.String())
}

func assistanceCell(assistance domain.AssistanceStatus) string {
	if assistance == domain.AssistanceRequested {
		return color.New(color.BgRed, color.FgWhite).Render(assistance.String())
	}
	return assistance.String()
}

// shortToken keeps the first 8 characters of a token for readability
func shortToken(token domain.Token) string {
	s := token.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

func render(w io.Writer, rows [][]string, withMembers bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header(withMembers))
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

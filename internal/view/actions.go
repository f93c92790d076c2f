package view

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/six78/gameroom-cli/internal/view/commands"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/pkg/games"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

type Action string

const (
	Create    Action = "create"
	Join      Action = "join"
	Leave     Action = "leave"
	Start     Action = "start"
	Avatar    Action = "avatar"
	Move      Action = "move"
	Reconnect Action = "reconnect"
)

type actionFunc func(m *model, args []string) tea.Cmd

var actions = map[Action]actionFunc{
	Create:    runCreateAction,
	Join:      runJoinAction,
	Leave:     runLeaveAction,
	Start:     runStartAction,
	Avatar:    runAvatarAction,
	Move:      runMoveAction,
	Reconnect: runReconnectAction,
}

func ProcessUserInput(m *model) tea.Cmd {
	cmd := ProcessInput(m)
	m.input.Reset()
	return cmd
}

func ProcessInput(m *model) tea.Cmd {
	args := strings.Fields(m.input.Value())
	if len(args) == 0 {
		return nil
	}

	action := Action(strings.ToLower(args[0]))
	runAction, ok := actions[action]
	if !ok {
		return func() tea.Msg {
			err := fmt.Errorf("unknown command: '%s'", args[0])
			return messages.NewErrorMessage(err)
		}
	}

	return runAction(m, args[1:])
}

func parseGameKind(input string) (protocol.GameKind, error) {
	kind := protocol.GameKind(strings.ToLower(input))
	if !games.Supported(kind) {
		kinds := make([]string, 0, len(games.Kinds()))
		for _, k := range games.Kinds() {
			kinds = append(kinds, string(k))
		}
		return "", fmt.Errorf("unknown game: '%s', available games: %s", input, strings.Join(kinds, ", "))
	}
	return kind, nil
}

func runCreateAction(m *model, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return messages.NewErrorMessage(errors.New("no game provided"))
		}
	}
	kind, err := parseGameKind(args[0])
	if err != nil {
		return func() tea.Msg {
			return messages.NewErrorMessage(err)
		}
	}
	return commands.SelectGame(m.app, kind)
}

func runJoinAction(m *model, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return messages.NewErrorMessage(errors.New("no room id argument provided"))
		}
	}
	return commands.JoinRoom(m.app, protocol.RoomID(args[0]))
}

func runLeaveAction(m *model, args []string) tea.Cmd {
	return commands.ReturnToHome(m.app)
}

func runStartAction(m *model, args []string) tea.Cmd {
	return commands.StartGame(m.app)
}

func runAvatarAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if len(args) == 0 {
			return messages.NewErrorMessage(errors.New("no avatar provided"))
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			err = fmt.Errorf("invalid avatar: %s (%w)", args[0], err)
			return messages.NewErrorMessage(err)
		}
		avatar := protocol.AvatarKind(index)
		if !avatar.Valid() {
			err = fmt.Errorf("unknown avatar: %d, expected 0..%d", index, protocol.NumAvatarKinds-1)
			return messages.NewErrorMessage(err)
		}
		return commands.SetAvatar(m.app, avatar)()
	}
}

// runMoveAction sends the raw JSON move without local validation.
func runMoveAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if len(args) == 0 {
			return messages.NewErrorMessage(errors.New("empty move"))
		}
		// Fields splits on whitespace, so JSON with spaces is joined back
		raw := json.RawMessage(strings.Join(args, " "))
		if !json.Valid(raw) {
			return messages.NewErrorMessage(errors.New("move is not valid JSON"))
		}
		return commands.SendGameMove(m.app, raw)()
	}
}

func runReconnectAction(m *model, args []string) tea.Cmd {
	return commands.Reconnect(m.app)
}

package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/six78/gameroom-cli/internal/app"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/internal/view/states"
	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

func InitializeApp(a *app.App) tea.Cmd {
	return func() tea.Msg {
		err := a.Initialize()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to initialize app"),
			}
		}
		return messages.AppStateFinishedMessage{State: states.Initializing}
	}
}

// Connect never fails the app. Without a server the client stays on the
// home screen and can reconnect later.
func Connect(a *app.App) tea.Cmd {
	return tea.Sequence(
		func() tea.Msg {
			return messages.NewErrorMessage(a.Connect())
		},
		func() tea.Msg {
			return messages.AppStateFinishedMessage{State: states.Connecting}
		},
	)
}

func Reconnect(a *app.App) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(a.Connect())
	}
}

func SelectGame(a *app.App, kind protocol.GameKind) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(a.Session.SelectGame(kind))
	}
}

func JoinRoom(a *app.App, roomID protocol.RoomID) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(a.Session.JoinRoom(roomID))
	}
}

func SetAvatar(a *app.App, avatar protocol.AvatarKind) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(a.Session.SetAvatar(avatar))
	}
}

func StartGame(a *app.App) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(a.Session.StartGame())
	}
}

func ProposeMove(a *app.App, move any) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(a.Session.ProposeMove(move))
	}
}

func SendGameMove(a *app.App, move any) tea.Cmd {
	return func() tea.Msg {
		return messages.NewErrorMessage(a.Session.SendGameMove(move))
	}
}

func ReturnToHome(a *app.App) tea.Cmd {
	return func() tea.Msg {
		a.Session.ReturnToHome()
		return messages.NewErrorMessage(nil)
	}
}

// HandleConnectionStatus lets the app react to a status delivered to the view.
func HandleConnectionStatus(a *app.App, status connection.Status) tea.Cmd {
	return func() tea.Msg {
		a.HandleConnectionStatus(status)
		return nil
	}
}

func QuitApp(a *app.App) tea.Cmd {
	return func() tea.Msg {
		if a != nil && a.Session != nil {
			a.Session.ReturnToHome()
		}
		return tea.Quit()
	}
}

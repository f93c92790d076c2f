package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/app"
	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/internal/view/commands"
	"github.com/six78/gameroom-cli/internal/view/components/boardview"
	"github.com/six78/gameroom-cli/internal/view/components/errorview"
	"github.com/six78/gameroom-cli/internal/view/components/eventhandler"
	"github.com/six78/gameroom-cli/internal/view/components/lobbyview"
	"github.com/six78/gameroom-cli/internal/view/components/roomsview"
	"github.com/six78/gameroom-cli/internal/view/components/shortcutsview"
	"github.com/six78/gameroom-cli/internal/view/components/statusview"
	"github.com/six78/gameroom-cli/internal/view/components/userinput"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/internal/view/states"
	"github.com/six78/gameroom-cli/internal/view/update"
	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/protocol"
	"github.com/six78/gameroom-cli/pkg/session"
)

type model struct {
	app *app.App

	// Filled from the app during Update, read by components.
	state      states.AppState
	fatalError error
	snapshot   session.Snapshot

	// UI components state
	commandMode            bool
	errorView              errorview.Model
	statusView             statusview.Model
	roomsView              roomsview.Model
	lobbyView              lobbyview.Model
	boardView              boardview.Model
	shortcutsView          shortcutsview.Model
	sessionEventHandler    eventhandler.Model[session.Event, messages.SessionEvent]
	connectionEventHandler eventhandler.Model[connection.Status, messages.ConnectionStatus]

	input   userinput.Model
	spinner spinner.Model
}

func initialModel(a *app.App) model {
	roomsView := roomsview.New()
	roomsView.Focus()

	return model{
		app:   a,
		state: states.Initializing,
		// View components
		input:         userinput.New(false),
		spinner:       createSpinner(),
		errorView:     errorview.New(),
		statusView:    statusview.New(a.URL()),
		roomsView:     roomsView,
		lobbyView:     lobbyview.New(),
		boardView:     boardview.New(),
		shortcutsView: shortcutsview.New(),
		// Event handlers
		sessionEventHandler: eventhandler.New[session.Event, messages.SessionEvent](
			func(event session.Event) messages.SessionEvent {
				return messages.SessionEvent{Event: event}
			},
		),
		connectionEventHandler: eventhandler.New[connection.Status, messages.ConnectionStatus](
			func(status connection.Status) messages.ConnectionStatus {
				return messages.ConnectionStatus{Status: status}
			},
		),
	}
}

func createSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.input.Init(),
		m.spinner.Tick,
		m.errorView.Init(),
		m.statusView.Init(),
		m.roomsView.Init(),
		m.lobbyView.Init(),
		m.boardView.Init(),
		m.shortcutsView.Init(),
		commands.InitializeApp(m.app),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := update.NewUpdateCommands()

	switchToState := func(state states.AppState) {
		m.state = state
		cmds.AppendMessage(messages.AppStateMessage{State: state})
	}

	switch msg := msg.(type) {
	case messages.FatalErrorMessage:
		m.fatalError = msg.Err

	case messages.AppStateFinishedMessage:
		switch msg.State {
		case states.Initializing:
			// Subscribe once the app owns a connection and a session
			cmds.AppendCommand(m.sessionEventHandler.Init(
				m.app.SessionEvents(),
				session.Event{Tag: session.EventStateChanged},
			))
			cmds.AppendCommand(m.connectionEventHandler.Init(
				m.app.StatusUpdates(),
				m.app.Connection.Status(),
			))
			switchToState(states.Connecting)
			cmds.AppendCommand(commands.Connect(m.app))
		case states.Connecting:
			switchToState(states.Playing)
			if config.InitialAction() != "" {
				m.input.SetValue(config.InitialAction())
				cmds.AppendCommand(ProcessUserInput(&m))
			}
		case states.Playing:
			break
		}

	case messages.ConnectionStatus:
		cmds.AppendCommand(commands.HandleConnectionStatus(m.app, msg.Status))

	case messages.SessionEvent:
		cmds.AppendMessage(messages.SessionState{
			Snapshot: m.app.Session.Snapshot(),
			Rooms:    m.app.Session.Rooms(),
		})
		if err, ok := msg.Event.Data.(*protocol.ServerError); ok && msg.Event.Tag == session.EventServerError {
			cmds.AppendMessage(messages.NewErrorMessage(err))
		}

	case messages.SessionState:
		m.snapshot = msg.Snapshot
		if m.snapshot.Screen == session.ScreenHome {
			m.roomsView.Focus()
		} else {
			m.roomsView.Blur()
		}

	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode

	case tea.KeyMsg:
		cmds.AppendCommand(m.handleKey(msg))
	}

	m.input, cmds.InputCommand = m.input.Update(msg)
	m.spinner, cmds.SpinnerCommand = m.spinner.Update(msg)
	m.errorView = m.errorView.Update(msg)
	m.statusView = m.statusView.Update(msg)
	m.roomsView, cmds.RoomsViewCommand = m.roomsView.Update(msg)
	m.lobbyView = m.lobbyView.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); !isKey || m.snapshot.Screen == session.ScreenGame {
		m.boardView = m.boardView.Update(msg)
	}
	m.shortcutsView = m.shortcutsView.Update(msg)
	m.sessionEventHandler, cmds.SessionEventHandlerCommand = m.sessionEventHandler.Update(msg)
	m.connectionEventHandler, cmds.ConnectionEventHandlerCommand = m.connectionEventHandler.Update(msg)

	return m, cmds.Batch()
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	keys := commands.DefaultKeyMap

	switch {
	case key.Matches(msg, keys.Quit):
		return commands.QuitApp(m.app)
	case key.Matches(msg, keys.CommandMode):
		change := messages.CommandModeChange{CommandMode: !m.commandMode}
		return func() tea.Msg {
			return change
		}
	case key.Matches(msg, keys.Select) && m.input.Focused():
		return ProcessUserInput(m)
	}

	if m.input.Focused() || m.state != states.Playing {
		return nil
	}

	if key.Matches(msg, keys.Home) {
		if m.snapshot.Screen == session.ScreenHome {
			return nil
		}
		return commands.ReturnToHome(m.app)
	}

	switch m.snapshot.Screen {
	case session.ScreenHome:
		return m.handleHomeKey(msg)
	case session.ScreenLobby:
		if key.Matches(msg, keys.Start) {
			return commands.StartGame(m.app)
		}
	case session.ScreenGame:
		return m.handleGameKey(msg)
	}
	return nil
}

func (m *model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	keys := commands.DefaultKeyMap

	switch {
	case key.Matches(msg, keys.ConnectFour):
		return commands.SelectGame(m.app, protocol.GameConnectFour)
	case key.Matches(msg, keys.Memory):
		return commands.SelectGame(m.app, protocol.GameMemory)
	case key.Matches(msg, keys.Santorini):
		return commands.SelectGame(m.app, protocol.GameSantorini)
	case key.Matches(msg, keys.Yahtzee):
		return commands.SelectGame(m.app, protocol.GameYahtzee)
	case key.Matches(msg, keys.Avatar):
		return commands.SetAvatar(m.app, m.snapshot.Avatar.Next())
	case key.Matches(msg, keys.Reconnect):
		return commands.Reconnect(m.app)
	case key.Matches(msg, keys.Select):
		room, ok := m.roomsView.Selected()
		if !ok {
			return nil
		}
		return commands.JoinRoom(m.app, room.ID)
	}
	return nil
}

func (m *model) handleGameKey(msg tea.KeyMsg) tea.Cmd {
	keys := commands.DefaultKeyMap

	var move any
	var ok bool

	switch {
	case key.Matches(msg, keys.Select):
		move, ok = m.boardView.Select()
	case key.Matches(msg, keys.Roll):
		move, ok = m.boardView.Roll()
	case key.Matches(msg, keys.Hold):
		move, ok = m.boardView.Hold(msg.String())
	}

	if !ok {
		return nil
	}
	return commands.ProposeMove(m.app, move)
}

func (m model) View() string {
	if m.fatalError != nil {
		return fmt.Sprintf(" ☠️ fatal error: %s\n%s", m.fatalError, renderLogPath())
	}

	view := "\n"
	if config.Debug() {
		view += fmt.Sprintf("%s\n\n", renderLogPath())
	}
	view += m.renderAppState()

	return lipgloss.JoinHorizontal(lipgloss.Left, "  ", view)
}

// Ensure that model fulfils the tea.Model interface at compile time.
// ref: https://www.inngest.com/blog/interactive-clis-with-bubbletea
var _ tea.Model = (*model)(nil)

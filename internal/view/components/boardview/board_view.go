package boardview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/six78/gameroom-cli/internal/view/commands"
	"github.com/six78/gameroom-cli/internal/view/components/cursor"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/pkg/games"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

// Model renders the active game and turns cursor positions into move
// intents. It never changes the game model, moves go through the session.
type Model struct {
	kind        protocol.GameKind
	game        any
	selfID      protocol.PlayerID
	worker      int
	commandMode bool

	cursor cursor.Model
}

func New() Model {
	return Model{
		cursor: cursor.New(0, 0, true),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.SessionState:
		if msg.Snapshot.GameKind != m.kind {
			m.kind = msg.Snapshot.GameKind
			m.worker = 0
			columns, rows := gridSize(m.kind)
			m.cursor = cursor.New(columns, rows, !m.commandMode)
		}
		m.game = msg.Snapshot.Game
		m.selfID = msg.Snapshot.SelfID

	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode
		m.cursor.SetFocus(!m.commandMode)

	case tea.KeyMsg:
		if m.commandMode {
			break
		}
		if m.kind == protocol.GameSantorini && key.Matches(msg, commands.DefaultKeyMap.Worker) {
			m.worker = (m.worker + 1) % 2
		}
	}

	m.cursor = m.cursor.Update(msg)
	return m
}

func gridSize(kind protocol.GameKind) (int, int) {
	switch kind {
	case protocol.GameConnectFour:
		return games.ConnectFourColumns, 1
	case protocol.GameMemory:
		return games.MemoryColumns, games.MemoryRows
	case protocol.GameSantorini:
		return games.SantoriniBoardSize, games.SantoriniBoardSize
	case protocol.GameYahtzee:
		return 1, games.YahtzeeCategories
	}
	return 0, 0
}

func (m *Model) Kind() protocol.GameKind {
	return m.kind
}

// Select is the move intent for the cell under the cursor.
func (m *Model) Select() (any, bool) {
	if m.game == nil || m.cursor.Empty() {
		return nil, false
	}
	switch game := m.game.(type) {
	case games.ConnectFourModel:
		return games.ConnectFourMove{Column: m.cursor.X()}, true
	case games.MemoryModel:
		return games.NewFlipMove(m.cursor.Position()), true
	case games.SantoriniModel:
		return games.SantoriniMove{
			X:      m.cursor.X(),
			Y:      m.cursor.Y(),
			Phase:  game.Phase,
			Worker: m.worker,
		}, true
	case games.YahtzeeModel:
		return games.YahtzeeMove{
			Action:   games.YahtzeeActionScore,
			Category: m.cursor.Position(),
		}, true
	}
	return nil, false
}

func (m *Model) Roll() (any, bool) {
	if _, ok := m.game.(games.YahtzeeModel); !ok {
		return nil, false
	}
	return games.YahtzeeMove{Action: games.YahtzeeActionRoll}, true
}

// Hold toggles the die under the given 1-based key.
func (m *Model) Hold(keyName string) (any, bool) {
	if _, ok := m.game.(games.YahtzeeModel); !ok {
		return nil, false
	}
	if len(keyName) != 1 || keyName[0] < '1' || keyName[0] > '0'+games.YahtzeeDice {
		return nil, false
	}
	return games.YahtzeeMove{
		Action:  games.YahtzeeActionHold,
		DiceIdx: int(keyName[0] - '1'),
	}, true
}

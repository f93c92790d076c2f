package boardview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/pkg/games"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

var (
	highlightStyle = lipgloss.NewStyle().Foreground(config.UserColor)
	shadeStyle     = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
)

func (m Model) View() string {
	switch game := m.game.(type) {
	case games.ConnectFourModel:
		return m.renderConnectFour(game)
	case games.MemoryModel:
		return m.renderMemory(game)
	case games.SantoriniModel:
		return m.renderSantorini(game)
	case games.YahtzeeModel:
		return m.renderYahtzee(game)
	}
	return shadeStyle.Render("Waiting for the game state ...")
}

func (m Model) renderConnectFour(game games.ConnectFourModel) string {
	markers := make([]string, games.ConnectFourColumns)
	for column := range markers {
		markers[column] = " "
		if m.cursor.MatchCell(column, 0) {
			markers[column] = highlightStyle.Render("v")
		}
	}

	rows := []string{" " + strings.Join(markers, " ")}
	for _, row := range game.Board {
		cells := make([]string, len(row))
		for column, cell := range row {
			cells[column] = connectFourCell(cell)
		}
		rows = append(rows, "|"+strings.Join(cells, " ")+"|")
	}

	var status string
	switch {
	case game.GameOver && game.Winner > 0:
		status = gameOverLine(playerName(game.Players, game.Winner-1))
	case game.GameOver:
		status = gameOverLine("")
	default:
		status = turnLine(game.CurrentPlayerName(), game.IsTurnOf(m.selfID))
	}

	rows = append(rows, "", status)
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func connectFourCell(cell games.Cell) string {
	switch cell {
	case games.CellPlayer1:
		return "X"
	case games.CellPlayer2:
		return "O"
	}
	return "."
}

func (m Model) renderMemory(game games.MemoryModel) string {
	rows := make([]string, 0, games.MemoryRows+4)

	for y := 0; y < games.MemoryRows; y++ {
		var row string
		for x := 0; x < games.MemoryColumns; x++ {
			index := y*games.MemoryColumns + x
			face := "??"
			if game.IsFlipped(index) || game.IsMatched(index) {
				face = fmt.Sprintf("%2d", cardValue(game.Cards, index))
			}
			row += m.cell(x, y, face)
		}
		rows = append(rows, row)
	}

	scores := make([]string, 0, len(game.Players))
	for i, player := range game.Players {
		score := 0
		if i < len(game.Scores) {
			score = game.Scores[i]
		}
		scores = append(scores, fmt.Sprintf("%s %d", player.DisplayName(), score))
	}
	rows = append(rows, "", "Scores: "+strings.Join(scores, ", "))

	var status string
	if game.GameOver {
		winner, ok := game.Winner()
		if ok {
			status = gameOverLine(playerName(game.Players, winner))
		} else {
			status = "Game over, tie"
		}
	} else {
		status = turnLine(game.CurrentPlayerName(), game.IsTurnOf(m.selfID))
	}

	rows = append(rows, status)
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func cardValue(cards []int, index int) int {
	if index < 0 || index >= len(cards) {
		return 0
	}
	return cards[index]
}

func (m Model) renderSantorini(game games.SantoriniModel) string {
	rows := []string{fmt.Sprintf("Phase: %s, worker %d", game.Phase, m.worker+1)}

	levels, ok := game.Levels()
	for y := 0; y < games.SantoriniBoardSize; y++ {
		var row string
		for x := 0; x < games.SantoriniBoardSize; x++ {
			face := "?"
			if ok && y < len(levels) && x < len(levels[y]) {
				face = fmt.Sprintf("%d", levels[y][x])
			}
			row += m.cell(x, y, face)
		}
		rows = append(rows, row)
	}

	status := turnLine(game.CurrentPlayerName(), game.IsTurnOf(m.selfID))
	if game.GameOver {
		status = "Game over"
	}

	rows = append(rows, "", status)
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func (m Model) renderYahtzee(game games.YahtzeeModel) string {
	dice := make([]string, len(game.Dice))
	for i, value := range game.Dice {
		face := "-"
		if value > 0 {
			face = fmt.Sprintf("%d", value)
		}
		if game.Kept[i] {
			face += "*"
		} else {
			face += " "
		}
		dice[i] = face
	}

	rows := []string{
		"Dice: " + strings.Join(dice, " "),
		fmt.Sprintf("Rolls left: %d", game.RollsLeft),
		"",
	}

	for i, name := range games.YahtzeeCategoryNames {
		if m.cursor.Match(i) {
			rows = append(rows, highlightStyle.Render("> "+name))
		} else {
			rows = append(rows, "  "+name)
		}
	}

	status := turnLine(game.CurrentPlayerName(), game.IsTurnOf(m.selfID))
	if game.GameOver {
		status = "Game over"
	}

	rows = append(rows, "", status)
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func (m Model) cell(x int, y int, face string) string {
	if m.cursor.MatchCell(x, y) {
		return highlightStyle.Render("[" + face + "]")
	}
	return " " + face + " "
}

func turnLine(name string, mine bool) string {
	if name == "" {
		return shadeStyle.Render("Waiting for players ...")
	}
	if mine {
		return highlightStyle.Render("Your turn")
	}
	return fmt.Sprintf("Turn: %s", name)
}

func gameOverLine(winner string) string {
	if winner == "" {
		return "Game over, draw"
	}
	return fmt.Sprintf("Game over, %s wins", winner)
}

func playerName(players protocol.PlayersList, index int) string {
	if index < 0 || index >= len(players) {
		return ""
	}
	return players[index].DisplayName()
}

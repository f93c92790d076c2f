package cursor

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
)

func TestCursor(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	suite.Suite
}

var (
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
)

func (s *Suite) TestNew() {
	model := New(7, 1, true)
	s.Require().True(model.Focused())
	s.Require().Equal(7, model.Columns())
	s.Require().Equal(1, model.Rows())
	s.Require().Equal(0, model.Position())
	s.Require().Nil(model.Init())

	model = New(0, 0, false)
	s.Require().False(model.Focused())
	s.Require().True(model.Empty())
}

func (s *Suite) TestUpdate() {
	testCases := []struct {
		name      string
		columns   int
		rows      int
		decrement tea.KeyMsg
		increment tea.KeyMsg
	}{
		{
			name:      "row",
			columns:   3,
			rows:      1,
			decrement: keyLeft,
			increment: keyRight,
		},
		{
			name:      "list",
			columns:   1,
			rows:      3,
			decrement: keyUp,
			increment: keyDown,
		},
	}

	for _, tc := range testCases {
		test := func(t *testing.T) {
			model := New(tc.columns, tc.rows, false)
			model.SetPosition(1)
			s.Require().Equal(1, model.Position())

			// No focus - no reaction to any button
			for _, key := range []tea.Msg{keyLeft, keyRight, keyUp, keyDown} {
				model = model.Update(key)
				s.Require().Equal(1, model.Position())
			}

			model.SetFocus(true)

			expected := []int{0, 0, 1, 2, 2, 1}
			steps := []tea.KeyMsg{tc.decrement, tc.decrement, tc.increment, tc.increment, tc.increment, tc.decrement}
			for i, step := range steps {
				model = model.Update(step)
				s.Require().Equal(expected[i], model.Position(), fmt.Sprintf("step %d", i))
			}
		}
		s.T().Run(tc.name, test)
	}
}

func (s *Suite) TestGrid() {
	model := New(6, 4, true)

	model = model.Update(keyDown)
	model = model.Update(keyDown)
	model = model.Update(keyRight)
	s.Require().Equal(1, model.X())
	s.Require().Equal(2, model.Y())
	s.Require().Equal(13, model.Position())
	s.Require().True(model.MatchCell(1, 2))
	s.Require().False(model.MatchCell(2, 1))

	model.SetPosition(23)
	s.Require().Equal(5, model.X())
	s.Require().Equal(3, model.Y())

	model = model.Update(keyRight)
	model = model.Update(keyDown)
	s.Require().Equal(23, model.Position())
}

func (s *Suite) TestSetSizeAdjustsPosition() {
	model := New(1, 5, true)
	model.SetPosition(4)

	model.SetSize(1, 2)
	s.Require().Equal(1, model.Position())

	model.SetSize(1, 0)
	s.Require().Equal(0, model.Position())
	s.Require().True(model.Empty())

	model.SetSize(-1, -1)
	s.Require().Equal(0, model.Columns())
	s.Require().Equal(0, model.Rows())

	// No columns - position is ignored
	model.SetPosition(3)
	s.Require().Equal(0, model.Position())
}

func (s *Suite) TestMatch() {
	model := New(1, 3, true)
	model.SetPosition(1)

	for _, v := range []int{0, 1, 2} {
		s.Require().Equal(v == 1, model.Match(v))
	}

	model.SetFocus(false)
	for _, v := range []int{0, 1, 2} {
		s.Require().False(model.Match(v))
	}
}

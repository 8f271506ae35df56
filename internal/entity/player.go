package entity

import "strconv"

// Mark is the state of a single cell.
type Mark int

const (
	EmptyMark Mark = iota
	PlayerOneMark
	PlayerTwoMark
)

func (m Mark) String() string {
	switch m {
	case EmptyMark:
		return "."
	case PlayerOneMark:
		return "O"
	case PlayerTwoMark:
		return "X"
	default:
		return "?"
	}
}

// Player identifies whose turn it is. The numeric value is what front-ends display.
type Player int

const (
	PlayerOne Player = 1
	PlayerTwo Player = 2
)

func (p Player) Mark() Mark {
	if p == PlayerTwo {
		return PlayerTwoMark
	}
	return PlayerOneMark
}

func (p Player) Opponent() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (p Player) String() string {
	return strconv.Itoa(int(p))
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Outcome is derived on demand and never stored on the game.
type Outcome struct {
	Status Status `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

package entity

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSize = 3

	// ExitChoice is the console sentinel for leaving the game. Tile indexes start at 1.
	ExitChoice = -1
)

var (
	choicePattern = regexp.MustCompile(`^[-+]?[0-9]+$`)

	// WinLines holds every row, column and both diagonals as row-major cell offsets.
	WinLines = buildWinLines(BoardSize)
)

// Position is a zero-based (row, column) pair on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Game is the rule engine: it owns the board, the turn and the tile index mapping.
type Game struct {
	board [BoardSize][BoardSize]Mark
	turn  Player
	tiles map[int]Position
}

func NewGame() *Game {
	tiles := make(map[int]Position, BoardSize*BoardSize)

	tileNumber := 1
	for row := range BoardSize {
		for col := range BoardSize {
			tiles[tileNumber] = Position{Row: row, Col: col}
			tileNumber++
		}
	}

	return &Game{
		turn:  PlayerOne,
		tiles: tiles,
	}
}

// TileCount - number of selectable tiles, i.e. the highest valid tile index.
func (that *Game) TileCount() int {
	return len(that.tiles)
}

// TileIndexToPosition - translates a 1-based row-major tile index into a board position.
func (that *Game) TileIndexToPosition(index int) (Position, error) {
	pos, ok := that.tiles[index]
	if !ok {
		return Position{}, fmt.Errorf("%w: tile %d", apperror.ErrInvalidTile, index)
	}

	return pos, nil
}

// IsTileInRange - reports whether index is a key of the tile mapping.
func (that *Game) IsTileInRange(index int) bool {
	_, ok := that.tiles[index]
	return ok
}

// ParseChoice - parses raw console input as an optionally signed integer.
// Integers too large for int are reported as out-of-range tiles, not parse failures.
func ParseChoice(raw string) (int, error) {
	if !choicePattern.MatchString(raw) {
		return 0, fmt.Errorf("%w: %q", apperror.ErrParse, raw)
	}

	choice, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidTile, raw)
	}

	return choice, nil
}

// ValidateChoice - validates console input and returns the parsed choice.
// The exit sentinel is accepted regardless of the board.
func (that *Game) ValidateChoice(raw string) (int, error) {
	choice, err := ParseChoice(raw)
	if err != nil {
		return 0, err
	}

	if choice == ExitChoice {
		return choice, nil
	}

	pos, err := that.TileIndexToPosition(choice)
	if err != nil {
		return 0, err
	}

	if !that.IsEmpty(pos.Row, pos.Col) {
		return 0, fmt.Errorf("%w: tile %d", apperror.ErrOccupiedTile, choice)
	}

	return choice, nil
}

func (that *Game) IsValidChoice(raw string) bool {
	_, err := that.ValidateChoice(raw)
	return err == nil
}

func (that *Game) IsValidMove(row, col int) bool {
	return inBounds(row, col) && that.board[row][col] == EmptyMark
}

// IsEmpty - reports whether the cell holds no mark. Out-of-bounds cells are never empty.
func (that *Game) IsEmpty(row, col int) bool {
	return inBounds(row, col) && that.board[row][col] == EmptyMark
}

// ApplyMove - places the current player's mark. The turn is not changed.
// Unlike a bare assignment it refuses to overwrite a marked cell.
func (that *Game) ApplyMove(row, col int) error {
	if !inBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	if that.board[row][col] != EmptyMark {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOccupiedTile, row, col)
	}

	that.board[row][col] = that.turn.Mark()

	return nil
}

func (that *Game) ChangeTurn() {
	that.turn = that.turn.Opponent()
}

// IsWinning - checks the player whose turn it currently is.
// Call it after ApplyMove and before ChangeTurn.
func (that *Game) IsWinning() bool {
	mark := that.turn.Mark()

	for _, line := range WinLines {
		complete := true
		for _, cell := range line {
			if that.board[cell/BoardSize][cell%BoardSize] != mark {
				complete = false
				break
			}
		}

		if complete {
			return true
		}
	}

	return false
}

// IsDraw - true when no empty cell remains. It does not look for a winning line,
// so callers check IsWinning first.
func (that *Game) IsDraw() bool {
	for _, row := range that.board {
		for _, cell := range row {
			if cell == EmptyMark {
				return false
			}
		}
	}

	return true
}

// Outcome - derives the game result from the board and the current turn.
func (that *Game) Outcome() Outcome {
	switch {
	case that.IsWinning():
		return Outcome{Status: StatusWon, Winner: that.turn}
	case that.IsDraw():
		return Outcome{Status: StatusDraw}
	default:
		return Outcome{Status: StatusInProgress}
	}
}

func (that *Game) Turn() Player {
	return that.turn
}

func (that *Game) Cell(row, col int) (Mark, error) {
	if !inBounds(row, col) {
		return EmptyMark, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.board[row][col], nil
}

// Board - returns a copy of the grid.
func (that *Game) Board() [BoardSize][BoardSize]Mark {
	return that.board
}

func inBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

func buildWinLines(size int) [][]int {
	lines := make([][]int, 0, 2*size+2)

	// rows
	for row := range size {
		line := make([]int, 0, size)
		for col := range size {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}

	// columns
	for col := range size {
		line := make([]int, 0, size)
		for row := range size {
			line = append(line, row*size+col)
		}
		lines = append(lines, line)
	}

	// bottom-left to top-right, then top-left to bottom-right
	anti := make([]int, 0, size)
	diag := make([]int, 0, size)
	for i := range size {
		anti = append(anti, (size-1-i)*size+i)
		diag = append(diag, i*size+i)
	}

	return append(lines, anti, diag)
}

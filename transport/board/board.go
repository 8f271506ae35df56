package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const msgOccupiedTile = "Tile is already occupied!"

var markStyles = map[entity.Mark]struct {
	symbol rune
	style  tcell.Style
}{
	entity.PlayerOneMark: {'O', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	entity.PlayerTwoMark: {'X', tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)},
}

type gameController interface {
	Game() *entity.Game
	Play(row, col int) (tictactoe.Result, error)
	Exit() tictactoe.Result
	IsOver() bool
}

// Board is the mouse-driven front-end: a grid of tiles and an info line below it.
type Board struct {
	logger *slog.Logger
	ctrl   gameController

	tileWidth  int
	tileHeight int

	app    *tview.Application
	layout *tview.Flex
	grid   *tview.Box
	info   *tview.TextView
}

func New(logger *slog.Logger, ctrl gameController, conf config.Board) *Board {
	that := &Board{
		logger:     logger.With("component", "board"),
		ctrl:       ctrl,
		tileWidth:  conf.TileWidth,
		tileHeight: conf.TileHeight,
		app:        tview.NewApplication(),
		grid:       tview.NewBox(),
		info:       tview.NewTextView(),
	}

	that.grid.SetDrawFunc(that.draw)
	that.grid.SetMouseCapture(that.mouse)

	that.info.SetTextAlign(tview.AlignCenter)
	that.info.SetText(turnMessage(ctrl.Game().Turn()))

	that.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(that.grid, entity.BoardSize*that.tileHeight, 0, true).
		AddItem(that.info, 1, 0, false)
	that.layout.SetBorder(true).SetTitle(" " + conf.Title + " ")

	that.app.SetInputCapture(that.keys)

	return that
}

// SetScreen - replaces the terminal, mostly for tcell.NewSimulationScreen.
func (that *Board) SetScreen(screen tcell.Screen) {
	that.app.SetScreen(screen)
}

// Run - blocks in the tview event loop until the player quits or ctx is canceled.
func (that *Board) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	if ctx.Err() != nil {
		that.ctrl.Exit()
		return nil
	}

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			log.Info("context canceled, closing board")
			that.app.Stop()
		case <-done:
		}
	}()

	if err := that.app.SetRoot(that.layout, true).EnableMouse(true).Run(); err != nil {
		return fmt.Errorf("board stopped: %w", err)
	}

	that.ctrl.Exit()

	return nil
}

// Info - current text of the info line.
func (that *Board) Info() string {
	return that.info.GetText(true)
}

// tileAt - maps screen coordinates to a board cell. The separator cells belong to the tile on their left/top.
func (that *Board) tileAt(x, y int) (entity.Position, error) {
	left, top, _, _ := that.grid.GetInnerRect()

	dx, dy := x-left, y-top
	if dx < 0 || dy < 0 {
		return entity.Position{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	pos := entity.Position{Row: dy / that.tileHeight, Col: dx / that.tileWidth}
	if pos.Row >= entity.BoardSize || pos.Col >= entity.BoardSize {
		return entity.Position{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	return pos, nil
}

// handleClick - plays the clicked tile and updates the info line.
func (that *Board) handleClick(x, y int) {
	log := that.logger.With("method", "handleClick")

	if that.ctrl.IsOver() {
		return
	}

	pos, err := that.tileAt(x, y)
	if err != nil {
		log.Debug("click outside the board", "x", x, "y", y)
		return
	}

	result, err := that.ctrl.Play(pos.Row, pos.Col)
	if err != nil {
		if errors.Is(err, apperror.ErrOccupiedTile) {
			that.info.SetText(msgOccupiedTile)
			return
		}

		log.Error("failed to play tile", "error", err)
		return
	}

	switch result.State {
	case tictactoe.StateWon:
		that.info.SetText(fmt.Sprintf("PLAYER %s WIN!", result.Player))
	case tictactoe.StateDrawn:
		that.info.SetText("DRAW!")
	default:
		that.info.SetText(turnMessage(result.Player))
	}
}

func (that *Board) mouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	switch action {
	case tview.MouseLeftClick, tview.MouseLeftDoubleClick:
		that.handleClick(event.Position())
		return tview.MouseConsumed, nil
	default:
		return action, event
	}
}

func (that *Board) keys(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
		that.ctrl.Exit()
		that.app.Stop()
		return nil
	}

	return event
}

func (that *Board) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	game := that.ctrl.Game()
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	gridWidth := entity.BoardSize * that.tileWidth
	gridHeight := entity.BoardSize * that.tileHeight

	for i := 1; i < entity.BoardSize; i++ {
		sepX := x + i*that.tileWidth - 1
		for dy := 0; dy < gridHeight; dy++ {
			screen.SetContent(sepX, y+dy, tview.BoxDrawingsLightVertical, nil, lineStyle)
		}
	}

	// one-row tiles have no room for horizontal separators
	for i := 1; i < entity.BoardSize && that.tileHeight > 1; i++ {
		sepY := y + i*that.tileHeight - 1
		for dx := 0; dx < gridWidth; dx++ {
			r := tview.BoxDrawingsLightHorizontal
			if (dx+1)%that.tileWidth == 0 && dx < gridWidth-1 {
				r = tview.BoxDrawingsLightVerticalAndHorizontal
			}
			screen.SetContent(x+dx, sepY, r, nil, lineStyle)
		}
	}

	for row, cells := range game.Board() {
		for col, mark := range cells {
			ms, ok := markStyles[mark]
			if !ok {
				continue
			}

			cx := x + col*that.tileWidth + (that.tileWidth-1)/2
			cy := y + row*that.tileHeight + (that.tileHeight-1)/2
			screen.SetContent(cx, cy, ms.symbol, nil, ms.style)
		}
	}

	return x, y, width, height
}

func turnMessage(player entity.Player) string {
	return fmt.Sprintf("Player %s's turn", player)
}

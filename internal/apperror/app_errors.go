package apperror

import "errors"

var (
	ErrParse        = errors.New("input is not an integer")
	ErrInvalidTile  = errors.New("invalid tile index")
	ErrOccupiedTile = errors.New("tile is already occupied")
	ErrOutOfBounds  = errors.New("position is out of bounds")
	ErrGameFinished = errors.New("game is already finished")
)

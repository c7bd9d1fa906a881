package apperror

import "errors"

var (
	ErrGameFinished  = errors.New("game is already finished")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrCellOccupied  = errors.New("cell is already occupied")
	ErrInvalidCell   = errors.New("invalid cell")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrTerminalBoard = errors.New("board is already terminal")
)

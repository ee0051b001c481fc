package service

import (
	"errors"
	"fmt"
)

// Классы ошибок, по ним транспорт выбирает код ответа
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrPreconditionFailed = errors.New("precondition failed")
	ErrNotFound           = errors.New("not found")
)

var (
	ErrSessionNotFound     = fmt.Errorf("%w: session", ErrNotFound)
	ErrInvalidEventIndex   = fmt.Errorf("%w: event index out of range", ErrInvalidArgument)
	ErrUnknownServant      = fmt.Errorf("%w: unknown servant", ErrInvalidArgument)
	ErrInvalidTurnOption   = fmt.Errorf("%w: unknown turn option", ErrInvalidArgument)
	ErrInsufficientQuantum = fmt.Errorf("%w: insufficient quantum", ErrPreconditionFailed)
	ErrTurnAlreadySelected = fmt.Errorf("%w: turn already selected", ErrPreconditionFailed)
	ErrNoSpinsRemaining    = fmt.Errorf("%w: no spins remaining", ErrPreconditionFailed)
	ErrServantNotInShop    = fmt.Errorf("%w: servant not in shop", ErrPreconditionFailed)
	ErrInsufficientQuartz  = fmt.Errorf("%w: insufficient saint quartz", ErrPreconditionFailed)
	ErrRosterFull          = fmt.Errorf("%w: active roster is full", ErrPreconditionFailed)
	ErrNotInInventory      = fmt.Errorf("%w: servant not in inventory", ErrPreconditionFailed)
	ErrGameOver            = fmt.Errorf("%w: game is over", ErrPreconditionFailed)
)

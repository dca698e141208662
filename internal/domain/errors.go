package domain

import "errors"

var (
	ErrInvalidSpreadType = errors.New("spread type must be 1, 3 or 5")
	ErrSpreadAlreadyFull = errors.New("spread already has all its cards")
	ErrCardNotInDeck     = errors.New("card is not in the remaining deck")
	ErrEmptyReading      = errors.New("reading has no drawn cards")
	ErrInvalidCatalog    = errors.New("invalid card catalog")
	ErrCardNotFound      = errors.New("card not found")
	ErrInvalidFilter     = errors.New("filter must be one of all, major, wands, cups, swords, pentacles")
	ErrReadingIncomplete = errors.New("reading is not revealed yet")
	ErrTooManyPicks      = errors.New("more picks than spread positions")
)

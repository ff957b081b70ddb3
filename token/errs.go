package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8         = errors.New("bad utf8")
	ErrUnclassified    = errors.New("unclassified line")
	ErrEmptyKey        = errors.New("empty key")
	ErrLineEnding      = errors.New("bad line ending")
	ErrInstructionType = errors.New("bad instruction type")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

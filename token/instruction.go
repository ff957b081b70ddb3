package token

import (
	"fmt"
	"io"
)

// InstructionType is the merge operator in front of a key.
type InstructionType int

const (
	InstructionSet InstructionType = iota
	InstructionAdd
	InstructionAddForce
	InstructionRemove
	InstructionClear
)

var instructionPrefixes = map[InstructionType]string{
	InstructionSet:      "",
	InstructionAdd:      "+",
	InstructionAddForce: ".",
	InstructionRemove:   "-",
	InstructionClear:    "!",
}

// InstructionTypeOf maps an operator character to its type. ok is false if
// c is not an operator, in which case the line is a plain set.
func InstructionTypeOf(c byte) (InstructionType, bool) {
	switch c {
	case '+':
		return InstructionAdd, true
	case '.':
		return InstructionAddForce, true
	case '-':
		return InstructionRemove, true
	case '!':
		return InstructionClear, true
	}
	return InstructionSet, false
}

func ParseInstructionType(v string) (InstructionType, error) {
	it, ok := map[string]InstructionType{
		"set":      InstructionSet,
		"add":      InstructionAdd,
		"addforce": InstructionAddForce,
		"remove":   InstructionRemove,
		"clear":    InstructionClear,
	}[v]
	if ok {
		return it, nil
	}
	return InstructionSet, fmt.Errorf("%w: %q", ErrInstructionType, v)
}

// Prefix is the text written immediately before the key.
func (t InstructionType) Prefix() string {
	return instructionPrefixes[t]
}

func (t InstructionType) String() string {
	switch t {
	case InstructionSet:
		return "set"
	case InstructionAdd:
		return "add"
	case InstructionAddForce:
		return "addforce"
	case InstructionRemove:
		return "remove"
	case InstructionClear:
		return "clear"
	default:
		return fmt.Sprintf("InstructionType(%d)", int(t))
	}
}

func (t InstructionType) MarshalText() ([]byte, error) {
	if _, ok := instructionPrefixes[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInstructionType, int(t))
	}
	return []byte(t.String()), nil
}

// InstructionToken is a key/value directive. A nil Value means the line has
// no '=' at all, which is distinct from an empty value.
type InstructionToken struct {
	LineToken
	Type  InstructionType
	Key   string
	Value *string
}

func NewInstruction(t InstructionType, key string) *InstructionToken {
	return &InstructionToken{Type: t, Key: key}
}

func (t *InstructionToken) WithValue(v string) *InstructionToken {
	t.Value = &v
	return t
}

func (t *InstructionToken) WithLineEnding(le LineEnding) *InstructionToken {
	t.LineEnding = le
	return t
}

func (t *InstructionToken) HasValue() bool { return t.Value != nil }

// ValueString returns the value or "" when absent.
func (t *InstructionToken) ValueString() string {
	if t.Value == nil {
		return ""
	}
	return *t.Value
}

func (t *InstructionToken) Kind() Kind { return KindInstruction }

func (t *InstructionToken) Clone() Token {
	c := *t
	if t.Value != nil {
		v := *t.Value
		c.Value = &v
	}
	return &c
}

func (t *InstructionToken) Write(w io.Writer, nl LineEnding) error {
	if err := writeString(w, t.Type.Prefix()+t.Key); err != nil {
		return err
	}
	if t.Value != nil {
		if err := writeString(w, "="+*t.Value); err != nil {
			return err
		}
	}
	return t.LineEnding.Write(w, nl)
}

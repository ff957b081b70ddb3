package query

import (
	"fmt"
	"path"

	"github.com/signadot/ueini/ini"
	"github.com/signadot/ueini/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Entry is the environment an expression is evaluated against, one per
// instruction.
type Entry struct {
	Section  string
	Op       string
	Prefix   string
	Key      string
	Value    string
	HasValue bool
	// Index is the position of the instruction among the instructions of
	// its section.
	Index int

	tok *token.InstructionToken
}

func (e Entry) Token() *token.InstructionToken { return e.tok }

func NewEntry(s *ini.Section, i int, it *token.InstructionToken) Entry {
	return Entry{
		Section:  s.SectionName(),
		Op:       it.Type.String(),
		Prefix:   it.Type.Prefix(),
		Key:      it.Key,
		Value:    it.ValueString(),
		HasValue: it.HasValue(),
		Index:    i,
		tok:      it,
	}
}

type Query struct {
	src string
	prg *vm.Program
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Entry{}),
		expr.AsBool(),
		expr.Function("glob", func(params ...any) (any, error) {
			return path.Match(params[0].(string), params[1].(string))
		},
			new(func(string, string) bool)),
	}
}

// Compile compiles a boolean expression over Entry fields, for example
//
//	Section == "/Script/Engine.Engine" && Op == "add"
//	glob("/Script/*", Section) && Key startsWith "Axis"
func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

func (q *Query) Match(e Entry) (bool, error) {
	res, err := expr.Run(q.prg, e)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrQuery, q.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrQuery, q.src, res)
	}
	return b, nil
}

// Select returns the matching entries in document order.
func Select(cfg *ini.Config, q *Query) ([]Entry, error) {
	var res []Entry
	for _, s := range cfg.Sections {
		for i, it := range s.Instructions("") {
			e := NewEntry(s, i, it)
			ok, err := q.Match(e)
			if err != nil {
				return nil, err
			}
			if ok {
				res = append(res, e)
			}
		}
	}
	return res, nil
}

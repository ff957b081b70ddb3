package encode

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	WasteColor
	OpColor
	KeyColor
	SepColor
	ValueColor
	CommentColor
	TextColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			HeaderColor:  color.RGB(196, 96, 16).SprintfFunc(),
			OpColor:      color.RGB(255, 0, 196).SprintfFunc(),
			KeyColor:     color.RGB(128, 168, 196).SprintfFunc(),
			SepColor:     color.RGB(196, 128, 128).SprintfFunc(),
			ValueColor:   color.RGB(8, 196, 16).SprintfFunc(),
			CommentColor: color.New(color.FgBlue).SprintfFunc(),
			TextColor:    color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	if s == "" {
		return s
	}
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

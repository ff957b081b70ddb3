package token

import (
	"fmt"
	"io"
)

func PrintTokens(w io.Writer, toks []Token, msg string) {
	fmt.Fprintf(w, "%s tokens:\n", msg)
	for i, t := range toks {
		fmt.Fprintf(w, "\t%d %s\n", i, Info(t))
	}
}

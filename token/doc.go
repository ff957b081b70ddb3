// Package token provides the lossless token model for Unreal Engine style
// ini files, and a line tokenizer producing it.
//
// Every [Token] writes back exactly the bytes it was read from, including
// the line terminator recorded as a [LineEnding]. [Tokenize] turns raw
// bytes into a sequence of tokens in source order.
package token

// Package ini holds the section and document model built from tokens.
//
// # Usage
//
//	s := ini.NewSection("/Script/Engine.PlayerInput")
//	s.Tokens = append(s.Tokens,
//	    token.NewInstruction(token.InstructionAdd, "AxisMappings").WithValue("(AxisName=\"MoveForward\")"),
//	    token.NewWhitespace(""),
//	)
//	s.MergeConsecutiveTokens()
//	err := s.Write(w, token.Unix)
//
// A [Section] is not safe for concurrent use. Writing only reads tokens;
// MergeConsecutiveTokens mutates the token list in place.
//
// # Related Packages
//
//   - github.com/signadot/ueini/token - Tokens and line endings
//   - github.com/signadot/ueini/parse - Parse text into a Config
//   - github.com/signadot/ueini/encode - Encode a Config
package ini

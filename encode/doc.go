// Package encode encodes an [ini.Config] as ini text, or as a JSON or YAML
// outline of its instructions.
//
// # Usage
//
//	// lossless ini text
//	err := encode.Encode(cfg, w)
//
//	// with colors, compacting blank and comment runs first
//	err := encode.Encode(cfg, w, encode.EncodeColors(encode.NewColors()), encode.EncodeMerge(true))
//
//	// JSON outline
//	err := encode.Encode(cfg, w, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/signadot/ueini/ini - Section and document model
//   - github.com/signadot/ueini/parse - Parse text into a Config
package encode

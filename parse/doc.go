// Package parse parses ini text into a [ini.Config].
//
// # Usage
//
//	cfg, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//
//	// keep every blank and comment line as its own token
//	cfg, err := parse.Parse(data, parse.ParseMerge(false))
//
// Parsing is lossless: encoding the result reproduces data byte for byte.
//
// # Related Packages
//
//   - github.com/signadot/ueini/ini - Section and document model
//   - github.com/signadot/ueini/encode - Encode a Config
//   - github.com/signadot/ueini/token - Tokenization
package parse

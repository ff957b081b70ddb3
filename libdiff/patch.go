package libdiff

import (
	"fmt"

	"github.com/signadot/ueini/encode"
	"github.com/signadot/ueini/ini"

	jsonpatch "github.com/evanphx/json-patch"
)

// MergePatch returns the RFC 7386 merge patch taking the JSON outline of
// from to that of to. Changed sections appear with their full entry list.
func MergePatch(from, to *ini.Config) ([]byte, error) {
	a, b, err := outlines(from, to)
	if err != nil {
		return nil, err
	}
	p, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return p, nil
}

// ApplyMergePatch applies a merge patch to the JSON outline of cfg.
func ApplyMergePatch(cfg *ini.Config, patch []byte) ([]byte, error) {
	d, err := encode.MarshalJSON(cfg)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// Equivalent reports whether both documents have the same instructions in
// each section, ignoring blanks, comments, unclassified lines and line
// endings.
func Equivalent(a, b *ini.Config) (bool, error) {
	ja, jb, err := outlines(a, b)
	if err != nil {
		return false, err
	}
	return jsonpatch.Equal(ja, jb), nil
}

func outlines(a, b *ini.Config) ([]byte, []byte, error) {
	ja, err := encode.MarshalJSON(a)
	if err != nil {
		return nil, nil, err
	}
	jb, err := encode.MarshalJSON(b)
	if err != nil {
		return nil, nil, err
	}
	return ja, jb, nil
}

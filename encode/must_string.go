package encode

import (
	"bytes"

	"github.com/signadot/ueini/ini"
)

func MustString(cfg *ini.Config, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(cfg, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

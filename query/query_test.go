package query

import (
	"errors"
	"testing"

	"github.com/signadot/ueini/parse"

	"github.com/google/go-cmp/cmp"
)

const doc = `; input
[/Script/Engine.PlayerInput]
+AxisMappings=(AxisName="MoveForward",Key=W)
-AxisMappings=(AxisName="MoveForward",Key=Up)
bEnableMouseSmoothing=True
[/Script/Engine.Engine]
!Paths=ClearArray
.Paths=../../../Game
[Core.Log]
LogTemp
`

func keys(es []Entry) []string {
	var res []string
	for _, e := range es {
		res = append(res, e.Section+":"+e.Prefix+e.Key)
	}
	return res
}

func TestSelect(t *testing.T) {
	cfg, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		q    string
		want []string
	}{
		{`Op == "add"`, []string{"/Script/Engine.PlayerInput:+AxisMappings"}},
		{`Key == "Paths"`, []string{"/Script/Engine.Engine:!Paths", "/Script/Engine.Engine:.Paths"}},
		{`glob("/Script/*", Section) && Key startsWith "b"`, []string{"/Script/Engine.PlayerInput:bEnableMouseSmoothing"}},
		{`!HasValue`, []string{"Core.Log:LogTemp"}},
		{`Value contains "MoveForward" && Index == 1`, []string{"/Script/Engine.PlayerInput:-AxisMappings"}},
		{`Prefix == "."`, []string{"/Script/Engine.Engine:.Paths"}},
		{`Section == "nope"`, nil},
	} {
		q, err := Compile(c.q)
		if err != nil {
			t.Fatalf("%s: %v", c.q, err)
		}
		got, err := Select(cfg, q)
		if err != nil {
			t.Fatalf("%s: %v", c.q, err)
		}
		if diff := cmp.Diff(c.want, keys(got)); diff != "" {
			t.Errorf("%s (-want +got):\n%s", q, diff)
		}
		for _, e := range got {
			if e.Token() == nil || e.Token().Key != e.Key {
				t.Errorf("%s: entry token %v", q, e.Token())
			}
		}
	}
}

func TestCompileError(t *testing.T) {
	for _, src := range []string{
		`Key ==`,
		`Nope == "x"`,
		`Key`,
	} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("%s: got %v", src, err)
		}
	}
}

func TestMatchGlobError(t *testing.T) {
	q, err := Compile(`glob("[", Key)`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.Match(Entry{Key: "k"}); !errors.Is(err, ErrQuery) {
		t.Errorf("got %v", err)
	}
}

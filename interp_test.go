package goscheme

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrograms(t *testing.T) {
	fns, err := filepath.Glob("testdir/*.scm")
	if err != nil {
		t.Fatal(err)
	}

	for _, fn := range fns {
		t.Log(fn)
		f, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		env := NewEnv(nil)
		err = LoadLib(env)
		if err != nil {
			t.Fatal(err)
		}
		env.SetOutput(&buf)
		_, err = env.Load(f)
		f.Close()
		base := fn[:len(fn)-3]
		if err != nil {
			b, err2 := ioutil.ReadFile(base + "err")
			if err2 != nil || err.Error() != strings.TrimSpace(string(b)) {
				t.Error(err)
			}
			continue
		}
		got := buf.String()
		b, err := ioutil.ReadFile(base + "out")
		if err != nil {
			t.Fatal(err)
		}
		want := string(b)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: %s", fn, diff)
		}
	}
}

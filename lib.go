package goscheme

import (
	"fmt"
	"net/http"
	"path"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/goscheme/statik"
)

//go:generate statik -src=lib -Z -m -f

// LoadLib defines the Scheme prelude in env.
func LoadLib(env *Env) error {
	statikFS, err := fs.New()
	if err != nil {
		return err
	}
	dir, err := statikFS.Open("/")
	if err != nil {
		return err
	}
	defer dir.Close()

	fis, err := dir.Readdir(-1)
	if err != nil {
		return err
	}
	for _, fi := range fis {
		if err := loadFile(env, statikFS, path.Join("/", fi.Name())); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(env *Env, hfs http.FileSystem, name string) error {
	f, err := hfs.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := env.Load(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

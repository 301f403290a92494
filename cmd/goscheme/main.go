package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mattn/goscheme"
	"github.com/peterh/liner"
)

const (
	name        = "goscheme"
	historyFile = ".goscheme_history"
	promptMain  = "> "
	promptCont  = "... "
)

var (
	expr      = flag.String("e", "", "evaluate expression and exit")
	noPrelude = flag.Bool("no-prelude", false, "do not load the prelude")
	verbose   = flag.Bool("v", false, "verbose")
)

func newEnv() *goscheme.Env {
	env := goscheme.NewEnv(nil)
	if *noPrelude {
		return env
	}
	if err := goscheme.LoadLib(env); err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Print("prelude loaded")
	}
	return env
}

func printValue(v goscheme.Value) {
	if s := v.String(); s != "" {
		fmt.Println(s)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFile
	}
	return filepath.Join(home, historyFile)
}

// readDatum prompts until the buffered input is a complete program.
func readDatum(ln *liner.State) (string, error) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err != nil {
			return "", err
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !goscheme.IsIncomplete(src) {
			return src, nil
		}
	}
}

func repl(env *goscheme.Env) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		src, err := readDatum(ln)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if err != io.EOF {
				log.Print(err)
			}
			fmt.Println()
			return
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(src)

		ret, err := env.EvalString(src)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if goscheme.IsTerminate(ret) {
			return
		}
		printValue(ret)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(name + ": ")
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	env := newEnv()

	if *expr != "" {
		ret, err := env.EvalString(*expr)
		if err != nil {
			log.Fatal(err)
		}
		if !goscheme.IsTerminate(ret) {
			printValue(ret)
		}
		return
	}

	var f *os.File
	if flag.NArg() == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			repl(env)
			return
		}
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if *verbose {
			log.Printf("loading %s", flag.Arg(0))
		}
	}

	if _, err := env.Load(f); err != nil {
		log.Fatal(err)
	}
}

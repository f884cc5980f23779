/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/fsnotify/fsnotify"
	units "github.com/docker/go-units"

	"github.com/lisptree/malgo/interp"
)

const newprompt = "\033[32muser>\033[0m "
const contprompt = "\033[32m  ..>\033[0m "
const resultprompt = "\033[31m=\033[0m "

func main() {
	prelude := flag.String("prelude", "lisp/core.lisp", "path to the bootstrap prelude to load-file at startup")
	historyFile := flag.String("history", ".malgo-history.tmp", "path to the readline history file")
	noColor := flag.Bool("no-color", false, "disable ANSI colors in prompts")
	watchPrelude := flag.Bool("watch-prelude", false, "reload the prelude into the root environment whenever it changes on disk")
	flag.Parse()

	fmt.Print(`malgo Copyright (C) 2023   Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	root := interp.NewEnv(nil)
	interp.InstallCoreBuiltins(root)

	if err := loadFile(root, *prelude); err != nil {
		fmt.Fprintf(os.Stderr, "malgo: fatal: could not load prelude %s: %v\n", *prelude, err)
		os.Exit(1)
	}

	var watcher *fsnotify.Watcher
	if *watchPrelude {
		var err error
		watcher, err = fsnotify.NewWatcher()
		if err != nil {
			fmt.Fprintf(os.Stderr, "malgo: warning: could not start prelude watcher: %v\n", err)
		} else {
			if err := watcher.Add(*prelude); err != nil {
				fmt.Fprintf(os.Stderr, "malgo: warning: could not watch %s: %v\n", *prelude, err)
			} else {
				go watchLoop(watcher, root, *prelude)
			}
		}
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:            promptFor(newprompt, *noColor),
		HistoryFile:       *historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "malgo: fatal: %v\n", err)
		os.Exit(1)
	}
	defer l.Close()
	l.CaptureExitSignal()

	onexit.Register(func() {
		l.Close()
		if watcher != nil {
			watcher.Close()
		}
	})

	runLoop(l, root, *noColor)
}

func promptFor(p string, noColor bool) string {
	if noColor {
		return "user> "
	}
	return p
}

func watchLoop(watcher *fsnotify.Watcher, root *interp.Env, path string) {
	for event := range watcher.Events {
		if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
			continue
		}
		if err := loadFile(root, path); err != nil {
			fmt.Fprintf(os.Stderr, "malgo: reload of %s failed: %v\n", path, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "malgo: reloaded %s\n", path)
	}
}

// loadFile reads and evaluates every form in path against env in sequence,
// the same semantics the prelude's own load-file lambda gives to user code.
func loadFile(env *interp.Env, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return readErr
	}
	fmt.Fprintf(os.Stderr, "malgo: loading %s (%s)\n", path, units.HumanSize(float64(len(data))))
	forms, readErr := interp.ReadAll(string(data))
	if readErr != nil {
		return readErr
	}
	for _, form := range forms {
		interp.Eval(form, env)
	}
	return nil
}

func runLoop(l *readline.Instance, root *interp.Env, noColor bool) {
	cont := contprompt
	plain := "user> "
	resultp := resultprompt
	if noColor {
		cont = "  ..> "
		resultp = "= "
	}

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			oldline = ""
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "malgo: %v\n", err)
			break
		}
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintln(os.Stderr, "malgo:", r)
					fmt.Fprintln(os.Stderr, string(debug.Stack()))
					oldline = ""
					l.SetPrompt(plainOrColor(newprompt, noColor, plain))
				}
			}()
			form, err := interp.ReadString(line)
			if err != nil {
				if err == interp.ErrUnterminatedList {
					oldline = line + "\n"
					l.SetPrompt(cont)
					return
				}
				fmt.Fprintln(os.Stderr, "malgo:", err)
				oldline = ""
				l.SetPrompt(plainOrColor(newprompt, noColor, plain))
				return
			}
			result := interp.Eval(form, root)
			fmt.Print(resultp)
			fmt.Println(interp.Readable(result))
			oldline = ""
			l.SetPrompt(plainOrColor(newprompt, noColor, plain))
		}()
	}
	os.Exit(0)
}

func plainOrColor(colored string, noColor bool, plain string) string {
	if noColor {
		return plain
	}
	return colored
}

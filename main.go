/*
Copyright (C) 2026  Carl-Philip Hänsch

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
/*
	rectrank: a static top-K ranked rectangle search engine

	Build an engine from a point file (CSV or JSONL, by extension) and
	issue ad-hoc rectangle queries against it from an interactive prompt.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/fsnotify/fsnotify"

	"github.com/launix-de/rectrank/engine"
	"github.com/launix-de/rectrank/pointsrc"
)

const (
	newprompt    = "\033[32mrect>\033[0m "
	resultprompt = "\033[31m=\033[0m "
)

func main() {
	fmt.Print(`rectrank Copyright (C) 2026  Carl-Philip Hänsch
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	pointsFile := flag.String("points", "", "path to a point file (.csv or .jsonl)")
	delimiter := flag.String("delimiter", ",", "field delimiter for .csv point files")
	linearN := flag.Int("linear-n", engine.Default().LinearN, "linear tier size")
	bucketBase := flag.Int("bucket-base", engine.Default().BucketBase, "mipmap level 0 bucket size")
	growth := flag.Int("growth", engine.Default().Growth, "mipmap bucket growth factor")
	watch := flag.Bool("watch", false, "rebuild the engine whenever -points changes on disk")
	flag.Parse()

	if *pointsFile == "" {
		fmt.Fprintln(os.Stderr, "rectrank: -points is required")
		os.Exit(1)
	}

	cfg := engine.Config{LinearN: *linearN, BucketBase: *bucketBase, Growth: *growth}

	var current atomic.Pointer[engine.Engine]
	e, err := buildFromFile(*pointsFile, *delimiter, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rectrank: %v\n", err)
		os.Exit(1)
	}
	current.Store(e)

	onexit.Register(func() {
		if e := current.Load(); e != nil {
			e.Close()
		}
	})
	defer onexit.Exit(0)

	if *watch {
		w, err := startWatch(*pointsFile, *delimiter, cfg, &current)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rectrank: watch: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
	}

	repl(&current)
}

// buildFromFile loads points from path (CSV or JSONL by extension) and
// builds a fresh engine over them. It prints nothing itself; engine.New
// prints a one-line build summary when the engine has mipmap levels.
func buildFromFile(path, delimiter string, cfg engine.Config) (*engine.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var points []engine.Point
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".json":
		points, err = pointsrc.LoadJSONL(f)
	default:
		points, err = pointsrc.LoadCSV(f, delimiter)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return engine.New(points, cfg), nil
}

// startWatch rebuilds and atomically swaps in a fresh *engine.Engine
// whenever path changes on disk. The previous engine is left for any
// in-flight queries to finish against (read-only data, spec §5) and is
// garbage-collected once no longer referenced; it is never mutated in
// place.
func startWatch(path, delimiter string, cfg engine.Config, current *atomic.Pointer[engine.Engine]) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				e, err := buildFromFile(path, delimiter, cfg)
				if err != nil {
					fmt.Fprintf(os.Stderr, "rectrank: rebuild failed: %v\n", err)
					continue
				}
				current.Store(e)
				fmt.Printf("rectrank: rebuilt engine %s from %s\n", e.ID(), path)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "rectrank: watch error: %v\n", err)
			}
		}
	}()
	return w, nil
}

// repl runs the interactive query prompt: one command per line,
//
//	rect lx ly hx hy k
//
// prints up to k matching points in ascending rank order. Adapted from
// scm/prompt.go's readline loop, stripped of the Scheme reader.
func repl(current *atomic.Pointer[engine.Engine]) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".rectrank-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "rectrank: %v\n", r)
				}
			}()
			var b bytes.Buffer
			runCommand(line, current.Load(), &b)
			fmt.Print(resultprompt)
			fmt.Println(b.String())
		}()
	}
}

// runCommand parses and executes a single REPL line, writing its result
// into out. Recognized commands: "rect lx ly hx hy k", "timeit <command>"
// and "help".
func runCommand(line string, e *engine.Engine, out io.Writer) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "help":
		fmt.Fprint(out, "rect lx ly hx hy k   -- top-k points inside the rectangle\n"+
			"timeit <command>     -- run a command, reporting elapsed wall-clock time")
	case "timeit":
		if len(fields) < 2 {
			panic("usage: timeit <command>")
		}
		timer := engine.NewTimer()
		runCommand(strings.Join(fields[1:], " "), e, out)
		fmt.Fprintf(out, "\n  elapsed=%s", timer.Elapsed())
	case "rect":
		if len(fields) != 6 {
			panic("usage: rect lx ly hx hy k")
		}
		rect := engine.Rect{
			Lx: mustFloat(fields[1]),
			Ly: mustFloat(fields[2]),
			Hx: mustFloat(fields[3]),
			Hy: mustFloat(fields[4]),
		}
		k, err := strconv.Atoi(fields[5])
		if err != nil {
			panic("k: " + err.Error())
		}
		for _, p := range e.Search(rect, k) {
			fmt.Fprintf(out, "\n  id=%d rank=%d x=%g y=%g", p.ID, p.Rank, p.X, p.Y)
		}
	default:
		panic("unknown command: " + fields[0] + " (try \"help\")")
	}
}

func mustFloat(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		panic(err)
	}
	return float32(f)
}

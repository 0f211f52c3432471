// Command jtoken is a small driver over the jtoken/query packages: it
// loads a JSON document once, runs a path query against it, and prints
// the result. It exists to give the library a driveable surface, not
// as a general-purpose JSON CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mcvoid/jtoken"
	"github.com/mcvoid/jtoken/query"
)

func main() {
	exitCode := 0
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = 1
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func newRootCmd() *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:           "jtoken",
		Short:         "Resolve path expressions against a JSON document without building a tree",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", "", "path to a JSON file (defaults to stdin)")

	root.AddCommand(newQueryCmd(&file))
	root.AddCommand(newWatchCmd(&file))
	return root
}

func newQueryCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "query <path>",
		Short: "Resolve a dotted/bracketed path, e.g. map.entity[4].position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(*file)
			if err != nil {
				return err
			}
			return runQuery(cmd.OutOrStdout(), src, args[0])
		},
	}
}

func newWatchCmd(file *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <path>",
		Short: "Re-run a query every time --file changes on disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if *file == "" {
				return fmt.Errorf("watch requires --file")
			}
			return runWatch(cmd.OutOrStdout(), *file, args[0])
		},
	}
}

func readInput(file string) ([]byte, error) {
	if file == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

// runQuery loads src exactly once, sized by jtoken.Num, and resolves
// path against the result. On a miss it reports the failure and offers
// fuzzy-matched suggestions for the final path segment rather than
// leaving the caller to guess what key was meant.
func runQuery(w io.Writer, src []byte, path string) error {
	n := jtoken.Num(src)
	if n == 0 {
		return fmt.Errorf("empty or unparseable document")
	}

	toks := make([]jtoken.Token, n)
	read := 0
	if status, err := jtoken.Load(toks, n, &read, src); err != nil {
		return fmt.Errorf("loading document: %w (%s)", err, status)
	}
	toks = toks[:read]

	tok := query.Query(toks, path)
	if tok == nil {
		fmt.Fprintf(w, "no match for %q\n", path)
		if suggestions := query.Suggest(lastSegment(path), toks); len(suggestions) > 0 {
			fmt.Fprintf(w, "did you mean one of: %s?\n", strings.Join(suggestions, ", "))
		}
		return nil
	}

	switch tok.Kind {
	case jtoken.Number:
		v, ok := jtoken.Convert(*tok)
		if !ok {
			return fmt.Errorf("malformed number at %q", path)
		}
		fmt.Fprintln(w, v)
	case jtoken.String:
		fmt.Fprintln(w, string(tok.Bytes()))
	default:
		fmt.Fprintln(w, tok.Kind)
	}
	return nil
}

// lastSegment strips any leading path down to its final name, so a
// miss on "map.entity[4].colour" suggests against "colour" rather than
// the whole path.
func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.IndexByte(path, '['); i >= 0 {
		path = path[:i]
	}
	return path
}

func runWatch(w io.Writer, file, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(file); err != nil {
		return fmt.Errorf("watching %s: %w", file, err)
	}

	report := func() {
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintln(w, "read error:", err)
			return
		}
		if err := runQuery(w, src, path); err != nil {
			fmt.Fprintln(w, "query error:", err)
		}
	}
	report()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				report()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(w, "watch error:", err)
		}
	}
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mechabyte/absinthe/internal/trace"
	"github.com/mechabyte/absinthe/schema"
)

var watchMode bool

var validateCmd = &cobra.Command{
	Use:   "validate <schema-file>...",
	Short: "Validate schema definition documents",
	Long: `Loads each schema definition (YAML or JSON), checks every type
reachable from its operation roots, and reports PASS or FAIL per file.
Exits non-zero if any file fails. With --watch, stays running and
re-validates files as they change.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&watchMode, "watch", false,
		"re-validate files when they change")
}

func runValidate(cmd *cobra.Command, args []string) error {
	run, err := trace.New(verbose)
	if err != nil {
		return err
	}
	defer run.Sync()

	ok := true
	for _, path := range args {
		if err := validateFile(run, path); err != nil {
			ok = false
		}
	}

	if watchMode {
		return watchFiles(run, args)
	}
	if !ok {
		return fmt.Errorf("validation failed")
	}
	return nil
}

// validateFile loads and validates one document, printing a PASS/FAIL
// line. The returned error has already been reported.
func validateFile(run *trace.Run, path string) error {
	run.Log.Debugw("validating", "path", path)

	s, err := schema.LoadFile(path)
	if err == nil {
		err = schema.Validate(s)
	}
	if err != nil {
		fmt.Printf("%s  %s: %v\n", paint("FAIL", red), path, err)
		return err
	}
	fmt.Printf("%s  %s\n", paint("PASS", green), path)
	return nil
}

// watchFiles re-validates each target whenever it changes, until
// interrupted.
func watchFiles(run *trace.Run, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories rather than files: editors that write via
	// rename would otherwise drop the watch after the first save.
	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	run.Log.Infow("watching for changes", "files", len(targets))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || !targets[abs] {
				continue
			}
			run = run.Next()
			_ = validateFile(run, event.Name)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			run.Log.Warnw("watch error", "error", err)

		case <-interrupt:
			return nil
		}
	}
}

type color string

const (
	red   color = "\x1b[31m"
	green color = "\x1b[32m"
	reset color = "\x1b[0m"
)

// paint wraps s in an ANSI color when stdout is a terminal.
func paint(s string, c color) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return string(c) + s + string(reset)
}

// Copyright 2024 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Command exifwalk prints the EXIF metadata of JPEG and TIFF files.
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/exifwalk/exifwalk"
	"github.com/hashicorp/go-multierror"
)

const version = "0.1.0"

const (
	formatHuman = "human"
	formatJSON  = "json"
	formatCSV   = "csv"
)

type config struct {
	quick     bool
	strict    bool
	debug     bool
	excReport bool
	format    string
	color     string
	version   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cfg config

	fs := flag.NewFlagSet("exifwalk", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: exifwalk [options] file1.jpg [file2.jpg ...]")
		fmt.Fprintln(stderr, "Extract EXIF information from digital camera image files.")
		fs.PrintDefaults()
	}
	for _, name := range []string{"q", "quick"} {
		fs.BoolVar(&cfg.quick, name, false, "do not process MakerNotes")
	}
	for _, name := range []string{"s", "strict"} {
		fs.BoolVar(&cfg.strict, name, false, "run in strict mode (stop on errors)")
	}
	for _, name := range []string{"d", "debug"} {
		fs.BoolVar(&cfg.debug, name, false, "run in debug mode (display extra info)")
	}
	for _, name := range []string{"f", "format"} {
		fs.StringVar(&cfg.format, name, formatHuman, "output format: human, json or csv")
	}
	for _, name := range []string{"v", "version"} {
		fs.BoolVar(&cfg.version, name, false, "print current version and exit")
	}
	fs.BoolVar(&cfg.excReport, "exc-report", false, "print a report of failures after execution")
	fs.StringVar(&cfg.color, "color", "auto", "colorize human readable output: auto, never or always")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if cfg.version {
		fmt.Fprintln(stdout, version)
		return 0
	}

	if !slices.Contains([]string{formatHuman, formatJSON, formatCSV}, cfg.format) {
		fmt.Fprintf(stderr, "unknown format %q\n", cfg.format)
		return 2
	}

	level := slog.LevelInfo
	if cfg.debug {
		cfg.excReport = true
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	useColors := cfg.color == "always"
	if cfg.color == "auto" {
		useColors = isTerminal(stdout)
	}

	p := &printer{
		cfg:       cfg,
		logger:    logger,
		stdout:    stdout,
		stderr:    stderr,
		useColors: useColors,
	}

	return p.printFiles(fs.Args())
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

type printer struct {
	cfg       config
	logger    *slog.Logger
	stdout    io.Writer
	stderr    io.Writer
	useColors bool

	failures *multierror.Error
}

// entry is one printed tag.
type entry struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value string `json:"value"`

	// Raw holds the decoded values. Rationals marshal as "n/d".
	Raw []any `json:"raw,omitempty"`
}

type fileResult struct {
	File    string  `json:"file"`
	Entries []entry `json:"tags,omitempty"`
	Error   string  `json:"error,omitempty"`
}

func (p *printer) decode(filename string) ([]entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log := p.logger.With("file", filename)

	res, err := exifwalk.ProcessFile(f, exifwalk.Options{
		Quick:  p.cfg.quick,
		Strict: p.cfg.strict,
		Warnf: func(format string, args ...any) {
			log.Warn(fmt.Sprintf(format, args...))
		},
		Debugf: func(format string, args ...any) {
			log.Debug(fmt.Sprintf(format, args...))
		},
	})
	if err != nil {
		return nil, err
	}

	var entries []entry
	for _, key := range res.Tags.Keys() {
		tag := res.Tags[key]
		e := entry{Key: key, Type: tag.Type.Name(), Value: tag.Printable()}
		if tag.Type != exifwalk.Undefined {
			e.Raw = tag.Values
		}
		entries = append(entries, e)
	}
	for key := range res.Thumbnails {
		entries = append(entries, entry{Key: key, Type: "blob", Value: "<binary-object>"})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return entries, nil
}

func (p *printer) printFiles(filenames []string) int {
	var results []fileResult

	var csvw *csv.Writer
	if p.cfg.format == formatCSV {
		csvw = csv.NewWriter(p.stdout)
		csvw.Write([]string{"file", "key", "type", "value"})
	}

	for _, filename := range filenames {
		entries, err := p.decode(filename)
		if err != nil {
			p.failures = multierror.Append(p.failures, &fileError{filename: filename, err: err})
		}

		switch p.cfg.format {
		case formatHuman:
			p.printHuman(filename, entries, err)
		case formatJSON:
			r := fileResult{File: filename, Entries: entries}
			if err != nil {
				r.Error = err.Error()
			}
			results = append(results, r)
		case formatCSV:
			if err != nil {
				p.logger.Error("failed to read metadata", "file", filename, "err", err)
			}
			for _, e := range entries {
				csvw.Write([]string{filename, e.Key, e.Type, e.Value})
			}
		}
	}

	switch p.cfg.format {
	case formatJSON:
		enc := json.NewEncoder(p.stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			p.logger.Error("failed to write JSON", "err", err)
			return 1
		}
	case formatCSV:
		csvw.Flush()
		if err := csvw.Error(); err != nil {
			p.logger.Error("failed to write CSV", "err", err)
			return 1
		}
	}

	if p.cfg.excReport {
		p.printFailures()
	}

	return 0
}

func (p *printer) printHuman(filename string, entries []entry, err error) {
	lineFormat := "  %s (%s) = %s\n"
	filenameFormat := "%s\n"
	if p.useColors {
		lineFormat = "  \x1b[1;36m%s\x1b[0m \x1b[0;36m(%s)\x1b[0m = \x1b[1;32m%s\x1b[0m\n"
		filenameFormat = "\x1b[1m%s\x1b[0m\n"
	}

	fmt.Fprintf(p.stdout, filenameFormat, filename)

	if err != nil {
		var pathErr *os.PathError
		switch {
		case errors.As(err, &pathErr):
			fmt.Fprintln(p.stdout, "  Unreadable file. Skipping.")
		case exifwalk.IsMissingData(err):
			fmt.Fprintln(p.stdout, "  No EXIF information found.")
		default:
			fmt.Fprintf(p.stdout, "  Error: %s\n", err)
		}
	}

	for _, e := range entries {
		fmt.Fprintf(p.stdout, lineFormat, e.Key, e.Type, e.Value)
	}
	fmt.Fprintln(p.stdout)
}

// printFailures writes the failure summary.
// Files that only lack EXIF data are listed apart from real failures.
func (p *printer) printFailures() {
	if p.failures == nil {
		return
	}

	fmtBad, fmtGood := "    !!! %s %s\n", "        %s %s\n"
	if p.useColors {
		fmtBad = "    \x1b[1m%s \x1b[1;31m%s\x1b[0m\n"
		fmtGood = "    \x1b[1m%s \x1b[1;32m%s\x1b[0m\n"
	}

	fmt.Fprint(p.stderr, "\n\nFailures Summary:\n")
	for _, err := range p.failures.Errors {
		var ferr *fileError
		if !errors.As(err, &ferr) {
			continue
		}
		if exifwalk.IsMissingData(ferr.err) {
			fmt.Fprintf(p.stderr, fmtGood, ferr.filename, ferr.err)
		} else {
			fmt.Fprintf(p.stderr, fmtBad, ferr.filename, ferr.err)
		}
	}
}

type fileError struct {
	filename string
	err      error
}

func (e *fileError) Error() string {
	return fmt.Sprintf("%s: %s", e.filename, e.err)
}

func (e *fileError) Unwrap() error {
	return e.err
}

package rename

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var ErrNotDirectory = errors.New("not a directory")

// Run renames every unprocessed image in dir to "NNN_name.ext". Only a
// missing or unreadable dir is an error; per-file problems are recorded in
// Result.Skipped. On cancellation the partial result is returned with
// ctx.Err().
func Run(ctx context.Context, dir string, cfg Config) (Result, error) {
	cfg = withDefaults(cfg)
	res := Result{Dir: dir, DryRun: cfg.DryRun, Renamed: []Renamed{}}

	if err := CheckDir(cfg.Fs, dir); err != nil {
		return res, err
	}

	// Snapshot once; renames below never feed back into this list.
	names, err := listNames(cfg.Fs, dir)
	if err != nil {
		return res, err
	}
	index := NextIndexFromNames(names)
	res.StartIndex = index
	cfg.Reporter.Start(dir, index)

	files := candidates(cfg.Fs, dir, names, cfg.Extensions)
	namer := &Namer{Generator: cfg.Generator, MaxChars: cfg.MaxChars, Timeout: cfg.Timeout, Log: cfg.Log}

	// stop ends the run early; the file in hand is left untouched.
	stop := func(err error) (Result, error) {
		res.NextIndex = index
		cfg.Reporter.Done(res)
		return res, err
	}

	for _, name := range files {
		if IsIndexed(name) {
			res.Indexed++
			continue
		}
		if err := ctx.Err(); err != nil {
			return stop(err)
		}

		log := cfg.Log.WithFields(logrus.Fields{"file": name, "index": index})
		skip := func(reason SkipReason) {
			res.Skipped = append(res.Skipped, Skipped{File: name, Reason: reason})
			cfg.Reporter.Skipped(name, reason)
		}

		if index > MaxIndex {
			log.Warnf("sequence index would exceed %03d", MaxIndex)
			skip(SkipIndexExhausted)
			continue
		}

		cfg.Reporter.Processing(name)
		src := filepath.Join(dir, name)

		text := cfg.Extractor.Extract(ctx, src)
		if err := ctx.Err(); err != nil {
			return stop(err)
		}
		if text == "" {
			skip(SkipNoText)
			continue
		}

		// A cancelled naming call comes back as FailedName; committing it
		// would mark the file as processed for every later run.
		clean := Sanitize(namer.Name(ctx, text))
		if err := ctx.Err(); err != nil {
			return stop(err)
		}
		if clean == "" {
			skip(SkipEmptyName)
			continue
		}

		target, err := freeName(cfg.Fs, dir, index, clean, filepath.Ext(name))
		if err != nil {
			log.WithError(err).Error("cannot check target name")
			skip(SkipRenameError)
			continue
		}

		if !cfg.DryRun {
			if err := ctx.Err(); err != nil {
				return stop(err)
			}
			if err := cfg.Fs.Rename(src, filepath.Join(dir, target)); err != nil {
				log.WithError(err).Error("rename failed")
				skip(SkipRenameError)
				continue
			}
		}
		log.WithField("to", target).Debug("renamed")
		res.Renamed = append(res.Renamed, Renamed{From: name, To: target, Index: index})
		cfg.Reporter.Renamed(name, target, cfg.DryRun)
		index++
	}

	res.NextIndex = index
	cfg.Reporter.Done(res)
	return res, nil
}

// CheckDir fails unless dir exists and is a directory.
func CheckDir(fs afero.Fs, dir string) error {
	fi, err := fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", dir, os.ErrNotExist)
		}
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}
	return nil
}

// candidates filters the snapshot to regular files with an accepted
// extension, in name order.
func candidates(fs afero.Fs, dir string, names []string, exts []string) []string {
	accept := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		accept[e] = true
	}

	var out []string
	for _, n := range names {
		if !accept[strings.ToLower(filepath.Ext(n))] {
			continue
		}
		if fi, err := fs.Stat(filepath.Join(dir, n)); err != nil || fi.IsDir() {
			continue
		}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// freeName returns the first of NNN_name.ext, NNN_name_1.ext, NNN_name_2.ext
// ... that does not exist in dir.
func freeName(fs afero.Fs, dir string, index int, name, ext string) (string, error) {
	for n := 0; ; n++ {
		suffix := ""
		if n > 0 {
			suffix = "_" + strconv.Itoa(n)
		}
		candidate := formatName(index, name, suffix, ext)
		ok, err := afero.Exists(fs, filepath.Join(dir, candidate))
		if err != nil {
			return "", err
		}
		if !ok {
			return candidate, nil
		}
	}
}

func withDefaults(cfg Config) Config {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultExtensions
	}
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	if cfg.Reporter == nil {
		cfg.Reporter = nopReporter{}
	}
	return cfg
}

type nopReporter struct{}

func (nopReporter) Start(string, int) {}
func (nopReporter) Processing(string) {}
func (nopReporter) Skipped(string, SkipReason) {}
func (nopReporter) Renamed(string, string, bool) {}
func (nopReporter) Done(Result) {}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/shotnamer/internal/ai"
	"github.com/thywilljoshua/shotnamer/internal/ocr"
	"github.com/thywilljoshua/shotnamer/internal/rename"
	"github.com/thywilljoshua/shotnamer/internal/report"
)

func renameCmd() *cobra.Command {
	var ocrEngine string
	var langs string
	var model string
	var exts string
	var maxChars int
	var timeout time.Duration
	var dryRun bool
	var asJSON bool
	var verbose bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "rename <folder>",
		Short: "Rename new screenshots in a folder to NNN_topic.ext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			fs := afero.NewOsFs()
			if err := rename.CheckDir(fs, dir); err != nil {
				return err
			}

			ctx := cmd.Context()
			log := newLogger(cmd.ErrOrStderr(), verbose)

			g, err := ai.NewGemini(ctx, ai.APIKeyFromEnv(), model)
			if err != nil {
				return err
			}

			var engine ocr.Engine
			switch strings.ToLower(ocrEngine) {
			case "tesseract":
				engine = ocr.NewTesseract(splitList(langs)...)
			case "gemini":
				engine = g
			default:
				return fmt.Errorf("unknown OCR engine %q (want tesseract|gemini)", ocrEngine)
			}
			log.WithFields(logrus.Fields{"ocr": ocrEngine, "model": g.Model()}).Debug("engines ready")

			conf := rename.Config{
				Fs:         fs,
				Extensions: splitList(exts),
				MaxChars:   maxChars,
				Timeout:    timeout,
				DryRun:     dryRun,
				Extractor:  &ocr.Extractor{Fs: fs, Engine: engine, Log: log, Timeout: timeout},
				Generator:  g,
				Reporter:   report.NewConsole(cmd.OutOrStdout(), noColor),
				Log:        log,
			}

			res, err := rename.Run(ctx, dir, conf)
			if asJSON {
				b, jerr := json.MarshalIndent(res, "", "  ")
				if jerr != nil {
					return errors.Join(err, fmt.Errorf("encode result: %w", jerr))
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			}
			return err
		},
	}
	cmd.Flags().StringVar(&ocrEngine, "ocr", "tesseract", "OCR engine: tesseract|gemini")
	cmd.Flags().StringVar(&langs, "lang", ocr.DefaultLanguage, "Comma-separated Tesseract languages")
	cmd.Flags().StringVar(&model, "model", ai.DefaultModel, "Gemini model used for naming (and OCR with --ocr gemini)")
	cmd.Flags().StringVar(&exts, "ext", strings.Join(rename.DefaultExtensions, ","), "Comma-separated image extensions to process")
	cmd.Flags().IntVar(&maxChars, "max-chars", rename.DefaultMaxChars, "Maximum OCR characters sent to the model")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "Timeout for each Gemini call, naming and --ocr gemini (Tesseract runs to completion; 0 disables)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the new names without renaming anything")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the run result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/locstostms/internal/discover"
	"github.com/phobologic/locstostms/internal/lang"
	"github.com/phobologic/locstostms/internal/linemap"
	"github.com/phobologic/locstostms/internal/model"
	"github.com/phobologic/locstostms/internal/output"
	"github.com/phobologic/locstostms/internal/parse"
	"github.com/phobologic/locstostms/internal/report"
)

const description = "Parses source files and aggregates lines of code per statement."

// runMap implements the root command: it maps every class and rewrites the
// output file.
func runMap(cmd *cobra.Command, opts *rootOptions, classes []string) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	l, err := lang.Lookup(cfg.Language)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	out := progressWriter(cmd, opts)
	progress := report.NewProgress(out, !opts.noColor)
	progress.Println(description)

	// Create (or truncate) the output before parsing so an unwritable
	// destination fails fast.
	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	results, err := mapClasses(cmd.Context(), l, cfg.SrcDirs, classes, progress, logger)
	if err != nil {
		return err
	}

	if err := output.Write(f, format, results); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", cfg.OutputFile, err)
	}

	logger.Debug("wrote output",
		slog.String("file", cfg.OutputFile),
		slog.String("format", string(format)),
		slog.Int("files", len(results)),
	)

	if opts.summary {
		report.Summary(out, results)
	}
	return nil
}

// mapClasses resolves, parses and maps each class in turn. A class found in
// none of the roots is skipped; a parse failure aborts the run.
func mapClasses(ctx context.Context, l *lang.Language, roots, classes []string, progress *report.Progress, logger *slog.Logger) ([]model.FileResult, error) {
	parser := parse.New(l)
	ext := l.Extension()

	var results []model.FileResult
	for _, name := range classes {
		path, ok := discover.Locate(roots, name, ext)
		if !ok {
			logger.Debug("class not found",
				slog.String("class", name),
				slog.Int("dirs", len(roots)),
			)
			continue
		}
		progress.Parsing(path)

		root, err := parser.ParseFile(ctx, path)
		if err != nil {
			return nil, err
		}

		m := linemap.Build(root)
		r := model.FileResult{
			Name:   name,
			Path:   path,
			Ext:    ext,
			Owners: m.Len(),
			Pairs:  m.Pairs(),
		}
		logger.Debug("mapped class",
			slog.String("class", name),
			slog.String("path", path),
			slog.Int("statements", r.Owners),
			slog.Int("pairs", len(r.Pairs)),
		)
		results = append(results, r)
	}
	return results, nil
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/phobologic/locstostms/internal/discover"
	"github.com/phobologic/locstostms/internal/lang"
)

func newClassesCmd(opts *rootOptions) *cobra.Command {
	var skipTests bool

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the qualified names of the sources under --srcDirs",
		Long: `List the qualified names of every source file under the --srcDirs
directories, one per line, in a form accepted by the root command.

Hidden and build directories are skipped, as are files ignored by git or by a
.gitignore at the top of a source directory. A name present in several
directories is listed once, for the first directory that has it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			l, err := lang.Lookup(cfg.Language)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

			out := cmd.OutOrStdout()
			seen := make(map[string]struct{})
			for _, root := range cfg.SrcDirs {
				names, err := discover.Classes(root, l, discover.Options{SkipTests: skipTests})
				if err != nil {
					return fmt.Errorf("discovering files in %s: %w", root, err)
				}
				logger.Debug("discovered classes", slog.String("dir", root), slog.Int("count", len(names)))
				for _, name := range names {
					if _, dup := seen[name]; dup {
						continue
					}
					seen[name] = struct{}{}
					_, _ = fmt.Fprintln(out, name)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&skipTests, "skip-tests", false, "omit files that look like test sources")

	return cmd
}

package cmd

import (
	"fmt"
	"os"

	findfolder "github.com/PistonDevelopers/find-folder"
	"github.com/PistonDevelopers/find-folder/internal/logger"
	"github.com/PistonDevelopers/find-folder/internal/output"
	"github.com/PistonDevelopers/find-folder/internal/progress"
	"github.com/spf13/cobra"
)

type findOptions struct {
	search   string
	from     string
	json     bool
	progress bool
}

// NewFindCommand creates the find subcommand
func NewFindCommand(root *rootOptions) *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find <name>",
		Short: "Print the path of the first folder named <name>",
		Long: `Search for a folder named exactly <name> and print its absolute path.

The strategy comes from --search, then from the matching entry under
"folders" in the config file, then from the config's default search.

Exit code: 0 if found, 1 if not found or the search failed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, root, opts, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Search strategy, e.g. both:3,3")
	cmd.Flags().StringVar(&opts.from, "from", "", "Start directory (default: working directory)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&opts.progress, "progress", false, "Show each directory as it is probed")

	return cmd
}

func runFind(cmd *cobra.Command, root *rootOptions, opts *findOptions, name string) error {
	cfg, log, err := root.setup(cmd)
	if err != nil {
		return err
	}

	search := cfg.SearchFor(name)
	if opts.search != "" {
		search, err = findfolder.ParseSearch(opts.search)
		if err != nil {
			return err
		}
	}

	from := opts.from
	if from == "" {
		from, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	var display *progress.Display
	if opts.progress {
		display = progress.New(cmd.ErrOrStderr())
	}

	log.Debugf("searching for %q with %s from %s", name, search, from)
	finder := findfolder.Finder{Visit: visitor(log, display)}
	path, searchErr := finder.Find(search, from, name)

	if display != nil {
		display.Finish()
	}

	if opts.json {
		if err := output.Write(cmd.OutOrStdout(), output.NewDocument(name, search, from, path, searchErr)); err != nil {
			return err
		}
	}

	if searchErr != nil {
		if findfolder.IsNotFound(searchErr) {
			return fmt.Errorf("%q not found (%s from %s): %w", name, search, from, searchErr)
		}
		return fmt.Errorf("search for %q failed: %w", name, searchErr)
	}

	log.Infof("found %s", path)
	if !opts.json {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

// visitor returns the Finder.Visit hook feeding the trace log and the
// progress display, or nil when neither wants probes.
func visitor(log *logger.ConsoleLogger, display *progress.Display) func(string) {
	tracing := log.Enabled("trace")
	if !tracing && display == nil {
		return nil
	}

	return func(dir string) {
		if tracing {
			log.Tracef("probe %s", dir)
		}
		if display != nil {
			display.Probe(dir)
		}
	}
}

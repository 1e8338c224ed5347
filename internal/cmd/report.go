package cmd

import (
	"errors"
	"fmt"
	"os"

	findfolder "github.com/PistonDevelopers/find-folder"
	"github.com/PistonDevelopers/find-folder/internal/report"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	depth uint8
	from  string
}

// NewReportCommand creates the report subcommand
func NewReportCommand(root *rootOptions) *cobra.Command {
	opts := &reportOptions{}

	cmd := &cobra.Command{
		Use:   "report [name]...",
		Short: "Run every search strategy for each name and summarize",
		Long: `Search for each named folder with all five strategies (parents, kids,
both, parents-then-kids, kids-then-parents), each using --depth in every
direction. Folders listed in the config file are searched too, with their
configured strategy.

Exit code: 0 unless a search failed with an I/O error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, root, opts, args)
		},
		SilenceUsage: true,
	}

	cmd.Flags().Uint8Var(&opts.depth, "depth", 3, "Depth used in each direction")
	cmd.Flags().StringVar(&opts.from, "from", "", "Start directory (default: working directory)")

	return cmd
}

func runReport(cmd *cobra.Command, root *rootOptions, opts *reportOptions, names []string) error {
	cfg, log, err := root.setup(cmd)
	if err != nil {
		return err
	}

	var queries []report.Query
	for _, name := range names {
		for _, s := range report.AllStrategies(opts.depth) {
			queries = append(queries, report.Query{Name: name, Search: s})
		}
	}
	for _, folder := range cfg.Folders {
		search := cfg.Search
		if folder.Search != nil {
			search = *folder.Search
		}
		queries = append(queries, report.Query{Name: folder.Name, Search: search})
	}

	if len(queries) == 0 {
		return errors.New("no folder names given and none configured")
	}

	from := opts.from
	if from == "" {
		from, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	log.Debugf("running %d searches from %s", len(queries), from)
	result := report.Run(findfolder.Finder{Visit: visitor(log, nil)}, from, queries)

	for _, e := range result.Entries {
		if e.Outcome == report.Failed {
			log.Errorf("%s %s: %v", e.Search, e.Name, e.Err)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), report.FormatReport(result))

	if result.HasFailures() {
		return fmt.Errorf("%d searches failed", result.Count(report.Failed))
	}
	return nil
}

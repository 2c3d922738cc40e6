// Package cli implements the matcher's cobra commands.
// Every command loads the dataset into a fresh in-memory store, runs one
// operation and prints the result as a table or, with --json, as JSON.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/lesterlimjj/tp-sub001/internal/config"
	"github.com/lesterlimjj/tp-sub001/internal/domain"
	"github.com/lesterlimjj/tp-sub001/internal/logging"
)

// state is shared by the root command and its subcommands.
type state struct {
	cfg        config.Config
	jsonOutput bool
	page       int
	limit      int
	app        *App
}

// NewRootCmd creates the matcher root command with every subcommand attached.
// cfg supplies defaults that the persistent flags override.
func NewRootCmd(cfg config.Config) *cobra.Command {
	st := &state{cfg: cfg}

	cmd := &cobra.Command{
		Use:   "matcher",
		Short: "Match property listings with the people who want them",
		Long: `matcher loads a CRM dataset of persons, their property preferences and
listings, then matches them both ways:
  • match listings - listings that fit one of a person's preferences
  • match persons  - persons who would want a given listing
  • find           - persons or listings carrying all of some tags
  • tags           - list tags, or activate some and show the preferences using them`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			app, err := NewApp(st.cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			st.app = app
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&st.cfg.DataFile, "data", cfg.DataFile, "YAML dataset to load (default: bundled sample)")
	flags.StringVar(&st.cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&st.cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	flags.BoolVarP(&st.jsonOutput, "json", "j", false, "Output as JSON")
	flags.IntVar(&st.page, "page", 1, "Result page, starting at 1")
	flags.IntVar(&st.limit, "limit", cfg.ResultLimit, "Results per page (max 100)")

	cmd.AddCommand(NewPersonsCmd(st))
	cmd.AddCommand(NewListingsCmd(st))
	cmd.AddCommand(NewMatchCmd(st))
	cmd.AddCommand(NewFindCmd(st))
	cmd.AddCommand(NewTagsCmd(st))

	return cmd
}

// pageParams returns the paging requested on the command line.
func (st *state) pageParams() domain.PageParams {
	return domain.NewPageParams(&st.page, &st.limit)
}

// logged wraps a RunE so the command's outcome is logged.
func (st *state) logged(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		start := time.Now()
		err := run(cmd, args)
		logging.Command(st.app.Logger, cmd.CommandPath(), start, err)
		return err
	}
}

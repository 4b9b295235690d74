package main

import (
	"fmt"
	"os"

	"book-inventory/config"
	"book-inventory/library"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// libraryFile is bound to the persistent --file flag and shared by every
// subcommand.
var libraryFile string

func main() {
	cfg := config.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	zerolog.SetGlobalLevel(cfg.LogLevel)

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "book-inventory",
		Short: "Console book inventory manager",
		Long: "Manages a personal book inventory persisted to a JSON file.\n" +
			"Run without arguments for the interactive menu, or use the\n" +
			"subcommands for scripted access.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := library.NewManager(libraryFile)
			if err != nil {
				return err
			}
			runMenu(mgr)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&libraryFile, "file", "f", cfg.LibraryFile, "path to the library JSON file")
	root.AddCommand(newAddCmd(), newDeleteCmd(), newListCmd(), newSearchCmd(), newStatusCmd())
	return root
}

// openManager constructs the manager against the configured backing file.
func openManager() (*library.Manager, error) {
	return library.NewManager(libraryFile)
}

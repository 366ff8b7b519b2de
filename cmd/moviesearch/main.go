// Command moviesearch queries a movie catalog file from the shell
package main

import (
	"fmt"
	"os"

	"moviesearch/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "moviesearch",
		Short:         "Search and inspect a movie catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("catalog", "c", "movies.json", "catalog JSON file")
	root.PersistentFlags().String("locale", "en", "BCP 47 locale for title matching")
	root.PersistentFlags().Bool("json", false, "print JSON instead of a table")
	root.AddCommand(searchCmd(), facetsCmd(), validateCmd())
	return root
}

func main() {
	logger.Init(logger.Options{Level: "warn", Format: "console", Service: "moviesearch", Writer: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

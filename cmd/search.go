package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// searchCmd filters the local store by name and optional category.
var searchCmd = &cobra.Command{
	Use:   "search <name> [category]",
	Short: "Search the local store by name and optional category",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSearch,
}

func init() {
	RootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	category := ""
	if len(args) > 1 {
		category = args[1]
	}

	doc, err := a.store.Load()
	if err != nil {
		return err
	}

	matches := doc.Search(args[0], category)
	if len(matches) == 0 {
		fmt.Println("No matching products")
		return nil
	}
	for _, item := range matches {
		fmt.Printf("%s  %-40q %s %s (%d variants)\n",
			item.SyncID, item.Name, item.Price, item.Currency, len(item.Variants))
	}
	fmt.Printf("%d match(es)\n", len(matches))
	return nil
}

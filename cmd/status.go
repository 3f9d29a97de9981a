package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statusCmd reports the state of the local store.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show local store status",
	RunE:  runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	status, err := a.store.Status()
	if err != nil {
		return err
	}

	fmt.Printf("Store:     %s\n", status.Path)
	if !status.Exists {
		fmt.Println("State:     not created yet (run sync_all)")
		return nil
	}
	fmt.Printf("Items:     %d\n", status.Items)
	fmt.Printf("Size:      %d bytes\n", status.SizeBytes)
	if status.LastSync.IsZero() {
		fmt.Println("Last sync: never")
	} else {
		fmt.Printf("Last sync: %s\n", status.LastSync.Format("2006-01-02 15:04:05"))
	}
	return nil
}

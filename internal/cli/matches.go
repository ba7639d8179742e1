package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "matches <item-id>",
		Short: "List persisted matches for an item",
		Args:  cobra.ExactArgs(1),
		Run:   runMatches,
	}

	RootCmd.AddCommand(cmd)
}

func runMatches(cmd *cobra.Command, args []string) {
	matchStore, closeDB, err := openDB()
	if err != nil {
		exitErr("open store", err)
	}
	defer closeDB()

	matches, err := matchStore.ListForItem(cmd.Context(), args[0])
	if err != nil {
		exitErr("list matches", err)
	}

	for _, m := range matches {
		b, _ := json.Marshal(m)
		fmt.Println(string(b))
	}
}

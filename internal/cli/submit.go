package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/reclaim/lostfound-app/internal/item"
)

func init() {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Publish an item.created event for the matcher",
		Run:   runSubmit,
	}

	cmd.Flags().String("type", "", "Item type: lost or found (required)")
	cmd.Flags().String("category", "", "Item category (required)")
	cmd.Flags().String("title", "", "Item title (required)")
	cmd.Flags().String("description", "", "Item description (required)")
	cmd.Flags().String("location", "", "Where the item was lost/found")
	cmd.Flags().String("owner", "", "Owner user id (required)")

	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("category")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("owner")

	RootCmd.AddCommand(cmd)
}

func runSubmit(cmd *cobra.Command, args []string) {
	typ, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	location, _ := cmd.Flags().GetString("location")
	owner, _ := cmd.Flags().GetString("owner")

	now := time.Now().UTC()
	it := item.Item{
		ID:          uuid.New().String(),
		Type:        item.Type(typ),
		Category:    category,
		Title:       title,
		Description: description,
		Location:    location,
		Status:      item.StatusActive,
		OwnerID:     owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(it); err != nil {
		exitErr("submit", err)
	}

	nc, err := connectNATS("lfctl")
	if err != nil {
		exitErr("connect nats", err)
	}
	defer nc.Close()

	data, err := json.Marshal(it)
	if err != nil {
		exitErr("marshal item", err)
	}
	if err := nc.PublishItemCreated(data); err != nil {
		exitErr("publish", err)
	}

	fmt.Println(it.ID)
}

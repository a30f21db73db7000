package client

import (
	"io"

	"github.com/MKhiriev/help-me-shop/models"
	"github.com/spf13/cobra"
)

func (a *App) addItemCommand() *cobra.Command {
	var url, notes string

	cmd := &cobra.Command{
		Use:   "add-item <list-id> <title>",
		Short: "Append an item to a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.adapter.AddItem(cmd.Context(), args[0], models.AddItemRequest{
				Title: args[1],
				URL:   url,
				Notes: notes,
			})
			if err != nil {
				return err
			}

			return a.printer(cmd).print(resp, func(w io.Writer) error {
				return writeItem(w, resp)
			})
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "link for the item")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func (a *App) updateItemCommand() *cobra.Command {
	var title, url, notes string

	cmd := &cobra.Command{
		Use:   "update-item <list-id> <ident>",
		Short: "Change the fields of an item",
		Long: `Change the fields of an item. Only flags that are given are changed;
pass an empty value (--url "") to clear a field.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch models.ItemPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("url") {
				patch.URL = &url
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			resp, err := a.adapter.UpdateItem(cmd.Context(), args[0], args[1], models.UpdateItemRequest{ItemPatch: patch})
			if err != nil {
				return err
			}

			return a.printer(cmd).print(resp, func(w io.Writer) error {
				return writeItem(w, resp)
			})
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&url, "url", "", "new link")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")

	return cmd
}

func (a *App) removeItemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <list-id> <ident>",
		Short: "Remove an item from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.adapter.RemoveItem(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			return a.printListView(cmd, view)
		},
	}
}

package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/help-me-shop/models"
	"github.com/spf13/cobra"
)

func (a *App) listsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show the lists you created or edited",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lists, err := a.adapter.MyLists(cmd.Context())
			if err != nil {
				return err
			}

			return a.printer(cmd).print(lists, func(w io.Writer) error {
				return writeLists(w, lists)
			})
		},
	}
}

func (a *App) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [title]",
		Short: "Create a list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title string
			if len(args) == 1 {
				title = args[0]
			}

			view, err := a.adapter.CreateList(cmd.Context(), title)
			if err != nil {
				return err
			}

			return a.printListView(cmd, view)
		},
	}
}

func (a *App) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show the latest revision of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.adapter.GetList(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.printListView(cmd, view)
		},
	}
}

func (a *App) replaceCommand() *cobra.Command {
	var (
		file     string
		revision string
	)

	cmd := &cobra.Command{
		Use:   "replace <list-id>",
		Short: "Replace the contents of a list with a JSON document",
		Long: `Replace the contents of a list with a JSON document read from --file
("-" reads stdin).

With --revision the write fails instead of overwriting changes made after
that revision.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contents, err := readContents(cmd, file)
			if err != nil {
				return err
			}

			view, err := a.adapter.ReplaceList(cmd.Context(), args[0], models.ReplaceListRequest{
				RevisionID: revision,
				Contents:   contents,
			})
			if err != nil {
				return err
			}

			return a.printListView(cmd, view)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "contents file")
	cmd.Flags().StringVarP(&revision, "revision", "r", "", "only write if this is still the latest revision")

	return cmd
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <list-id>",
		Short: "Delete a list you own, with its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.adapter.DeleteList(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := struct {
				Deleted string `json:"deleted"`
			}{args[0]}

			return a.printer(cmd).print(out, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "deleted %s\n", args[0])
				return err
			})
		},
	}
}

func (a *App) historyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <list-id>",
		Short: "Show every revision of a list, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := a.adapter.History(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.printer(cmd).print(history, func(w io.Writer) error {
				return writeHistory(w, history)
			})
		},
	}
}

func (a *App) printListView(cmd *cobra.Command, view models.ListView) error {
	return a.printer(cmd).print(view, func(w io.Writer) error {
		return writeList(w, view)
	})
}

// readContents reads a JSON document from path, or from the command's stdin
// when path is "-".
func readContents(cmd *cobra.Command, path string) (json.RawMessage, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading contents: %w", err)
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("contents are not valid JSON")
	}

	return json.RawMessage(data), nil
}

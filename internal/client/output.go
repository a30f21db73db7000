package client

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/help-me-shop/models"
)

// printer writes a command result either as indented JSON or through a text
// renderer.
type printer struct {
	format string
	w      io.Writer
}

func (p printer) print(v any, text func(w io.Writer) error) error {
	if p.format == formatJSON {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(p.w)
}

func writeList(w io.Writer, view models.ListView) error {
	if _, err := fmt.Fprintf(w, "%s\nlist:     %s\nrevision: %s\nedited:   %s\n",
		view.Title, view.ListID, view.RevisionID, view.EditedAt.Format(time.RFC3339)); err != nil {
		return err
	}

	if len(view.Items) == 0 {
		_, err := fmt.Fprintln(w, "(no items)")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tURL\tNOTES")
	for _, item := range view.Items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", item.Ident, item.Title, item.URL, item.Notes)
	}
	return tw.Flush()
}

func writeLists(w io.Writer, lists models.ListsResponse) error {
	if lists.Length == 0 {
		_, err := fmt.Fprintln(w, "no lists yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LIST ID\tTITLE\tITEMS\tEDITED")
	for _, l := range lists.Lists {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", l.ListID, l.Title, len(l.Items), l.EditedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

func writeHistory(w io.Writer, history models.RevisionsResponse) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REVISION\tEDITED\tTITLE")
	for _, rev := range history.Revisions {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rev.RevisionID, rev.EditedAt.Format(time.RFC3339), rev.Title)
	}
	return tw.Flush()
}

func writeItem(w io.Writer, resp models.ItemResponse) error {
	_, err := fmt.Fprintf(w, "item %s %q in list %s (revision %s)\n",
		resp.Item.Ident, resp.Item.Title, resp.List.ListID, resp.List.RevisionID)
	return err
}

package models

import "time"

// ListRevision is one immutable snapshot of a list. A list is the set of
// revisions sharing a ListID; its current state is the latest revision.
type ListRevision struct {
	RevisionID string    `json:"revision_id"`
	ListID     string    `json:"list_id"`
	AuthorID   string    `json:"author_id"`
	EditedAt   time.Time `json:"edited_at"`
	Contents   string    `json:"contents"`

	// ParentRevisionID is the revision a conditional write was based on.
	// Empty for the first revision and for unconditional writes.
	ParentRevisionID string `json:"parent_revision_id,omitempty"`
}

// Newer reports whether r sorts after other in revision order: later
// EditedAt first, RevisionID breaking ties.
func (r ListRevision) Newer(other ListRevision) bool {
	if !r.EditedAt.Equal(other.EditedAt) {
		return r.EditedAt.After(other.EditedAt)
	}
	return r.RevisionID > other.RevisionID
}

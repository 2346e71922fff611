package model

import "time"

type Snippet struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Note      string    `json:"note"`
	Tags      []Tag     `json:"tags"`
	CreatedBy string    `json:"created_by"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// SnippetOverview is the lightweight shape used inside list payloads.
type SnippetOverview struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// SnippetListPayload is the cached overview-list view for one owner.
// TotalSnippets is derived from the same snapshot as Snippets so the
// two can never disagree under concurrent writes.
type SnippetListPayload struct {
	TotalSnippets int               `json:"total_snippets"`
	Snippets      []SnippetOverview `json:"snippets"`
}

// SnippetDeletePayload is returned after a delete, with the remaining
// snippets for the owner.
type SnippetDeletePayload struct {
	TotalSnippetsRemaining int               `json:"total_snippets_remaining"`
	Snippets               []SnippetOverview `json:"snippets"`
}

// SnippetWriteRequest carries snippet create/update input. Tags are
// accepted as a list of free-text titles so callers never have to look
// up or pre-create tag ids.
type SnippetWriteRequest struct {
	Title     string   `json:"title" binding:"required"`
	Note      string   `json:"note"`
	TagTitles []string `json:"tag_titles"`
}

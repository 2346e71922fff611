package model

type Tag struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// TagWithCount is the tag-list view entry: the tag plus how many
// snippets (across all owners) reference it.
type TagWithCount struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	SnippetCount int64  `json:"snippet_count"`
}

type TagListPayload struct {
	Tags []TagWithCount `json:"tags"`
}

// TagDetail is the per-owner view of a tag: only the requesting
// owner's snippets appear, which is why this view is cached per
// (tag, owner) pair.
type TagDetail struct {
	ID       int64             `json:"id"`
	Title    string            `json:"title"`
	Snippets []SnippetOverview `json:"snippets"`
}

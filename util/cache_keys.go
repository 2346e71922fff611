// util/cache_keys.go
package util

import "fmt"

// Cache key derivation lives in one place so key shapes never drift
// between readers and invalidators. All functions are pure: no
// lookups, no id allocation.
//
// List and detail keys are partitioned by the owning user so a cached
// view can never be served across tenants. The tag list is the only
// global view; tag detail is per (tag, owner) because the snippets
// shown under a tag are filtered to the requesting owner.

const TagDetailPrefix = "tags:detail:"

func SnippetListKey(ownerID int64) string {
	return fmt.Sprintf("snippets:list:user:%d", ownerID)
}

func SnippetDetailKey(ownerID, snippetID int64) string {
	return fmt.Sprintf("snippets:detail:user:%d:%d", ownerID, snippetID)
}

func TagListKey() string {
	return "tags:list"
}

func TagDetailKey(tagID, ownerID int64) string {
	return fmt.Sprintf("%s%d:user:%d", TagDetailPrefix, tagID, ownerID)
}

// dao/snippet_dao.go
package dao

import (
	"context"
	"encoding/json"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/snipvault/api/audit"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
	helper_util "github.com/snipvault/api/util/helper"
)

type SnippetDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewSnippetDAO(driver neo4j.Driver, auditService audit.Service) *SnippetDAO {
	dao := &SnippetDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Snippet id", zap.Error(err))
	}
	return dao
}

// EnsureUniqueConstraint installs the uniqueness constraints snippet
// writes depend on, including the counter name constraint backing id
// allocation.
func (dao *SnippetDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		queries := []string{
			`
        CREATE CONSTRAINT unique_snippet_id IF NOT EXISTS
        FOR (s:Snippet) REQUIRE s.id IS UNIQUE
        `,
			counterConstraintQuery,
		}
		for _, query := range queries {
			if _, err := tx.Run(query, nil); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	if err != nil {
		logger.Error("Failed to create unique constraint on Snippet id", zap.Error(err))
		return err
	}
	return nil
}

// CreateSnippet creates a snippet owned by ownerID and links the given
// tag ids. Returns the new snippet id.
func (dao *SnippetDAO) CreateSnippet(ctx context.Context, ownerID int64, title, note string, tagIDs []int64) (int64, error) {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		id, err := nextID(tx, "snippet")
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC().Format(time.RFC3339)
		res, err := tx.Run(`
        MATCH (u:User {id: $ownerID})
        CREATE (u)-[:OWNS]->(s:Snippet {id: $id, title: $title, note: $note, createdOn: $now, updatedOn: $now})
        RETURN s.id AS id
        `, map[string]interface{}{
			"ownerID": ownerID,
			"id":      id,
			"title":   title,
			"note":    note,
			"now":     now,
		})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}
		if !res.Next() {
			return nil, apierrors.ErrUserNotFound
		}

		if err := attachTags(tx, id, tagIDs); err != nil {
			return nil, err
		}
		return id, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create snippet",
			zap.Error(err),
			zap.Int64("ownerID", ownerID),
			zap.Duration("duration", duration))
		return 0, err
	}

	snippetID := result.(int64)
	logger.Info("Snippet created successfully",
		zap.Int64("snippetID", snippetID),
		zap.Int64("ownerID", ownerID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, audit.ActionCreateSnippet, ownerID, snippetID, map[string]interface{}{
		"title": title, "tag_ids": tagIDs,
	})
	return snippetID, nil
}

// FindByOwnerAndID returns the snippet with its tags, only when it is
// owned by ownerID. Ownership is enforced by the match itself.
func (dao *SnippetDAO) FindByOwnerAndID(ctx context.Context, ownerID, snippetID int64) (*model.Snippet, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (u:User {id: $ownerID})-[:OWNS]->(s:Snippet {id: $snippetID})
        OPTIONAL MATCH (s)-[:HAS_TAG]->(t:Tag)
        RETURN s, u.username AS username, collect(t) AS tags
        `, map[string]interface{}{"ownerID": ownerID, "snippetID": snippetID})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}
		if !res.Next() {
			return nil, apierrors.ErrSnippetNotFound
		}

		record := res.Record()
		node := record.Values[0].(neo4j.Node)
		snippet, err := mapNodeToSnippet(node)
		if err != nil {
			return nil, err
		}
		snippet.CreatedBy = record.Values[1].(string)
		for _, raw := range record.Values[2].([]interface{}) {
			tagNode := raw.(neo4j.Node)
			snippet.Tags = append(snippet.Tags, model.Tag{
				ID:    tagNode.Props["id"].(int64),
				Title: tagNode.Props["title"].(string),
			})
		}
		return snippet, nil
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.Snippet), nil
}

// FilterByOwner returns the overview of every snippet owned by
// ownerID, newest first.
func (dao *SnippetDAO) FilterByOwner(ctx context.Context, ownerID int64) ([]model.SnippetOverview, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (u:User {id: $ownerID})-[:OWNS]->(s:Snippet)
        RETURN s.id AS id, s.title AS title
        ORDER BY s.createdOn DESC
        `, map[string]interface{}{"ownerID": ownerID})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}

		snippets := []model.SnippetOverview{}
		for res.Next() {
			record := res.Record()
			snippets = append(snippets, model.SnippetOverview{
				ID:    record.Values[0].(int64),
				Title: record.Values[1].(string),
			})
		}
		return snippets, nil
	})

	if err != nil {
		return nil, err
	}
	return result.([]model.SnippetOverview), nil
}

// UpdateSnippet updates title and note, and when replaceTags is true
// replaces the snippet's tag links with tagIDs.
func (dao *SnippetDAO) UpdateSnippet(ctx context.Context, ownerID, snippetID int64, title, note string, tagIDs []int64, replaceTags bool) error {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (u:User {id: $ownerID})-[:OWNS]->(s:Snippet {id: $snippetID})
        SET s.title = $title, s.note = $note, s.updatedOn = $now
        RETURN s.id AS id
        `, map[string]interface{}{
			"ownerID":   ownerID,
			"snippetID": snippetID,
			"title":     title,
			"note":      note,
			"now":       time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}
		if !res.Next() {
			return nil, apierrors.ErrSnippetNotFound
		}

		if replaceTags {
			_, err = tx.Run(`
            MATCH (s:Snippet {id: $snippetID})-[r:HAS_TAG]->(:Tag)
            DELETE r
            `, map[string]interface{}{"snippetID": snippetID})
			if err != nil {
				return nil, apierrors.ErrDatabaseOperation
			}
			if err := attachTags(tx, snippetID, tagIDs); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update snippet",
			zap.Error(err),
			zap.Int64("snippetID", snippetID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Snippet updated successfully",
		zap.Int64("snippetID", snippetID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, audit.ActionUpdateSnippet, ownerID, snippetID, map[string]interface{}{
		"title": title, "tags_replaced": replaceTags,
	})
	return nil
}

// DeleteSnippet removes the snippet and all its relationships.
func (dao *SnippetDAO) DeleteSnippet(ctx context.Context, ownerID, snippetID int64) error {
	start := time.Now()
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (u:User {id: $ownerID})-[:OWNS]->(s:Snippet {id: $snippetID})
        DETACH DELETE s
        RETURN count(s) AS deleted
        `, map[string]interface{}{"ownerID": ownerID, "snippetID": snippetID})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}
		if res.Next() && res.Record().Values[0].(int64) > 0 {
			return nil, nil
		}
		return nil, apierrors.ErrSnippetNotFound
	})

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to delete snippet",
			zap.Error(err),
			zap.Int64("snippetID", snippetID),
			zap.Duration("duration", duration))
		return err
	}

	logger.Info("Snippet deleted successfully",
		zap.Int64("snippetID", snippetID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, audit.ActionDeleteSnippet, ownerID, snippetID, nil)
	return nil
}

func attachTags(tx neo4j.Transaction, snippetID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := tx.Run(`
    MATCH (s:Snippet {id: $snippetID})
    UNWIND $tagIDs AS tagID
    MATCH (t:Tag {id: tagID})
    MERGE (s)-[:HAS_TAG]->(t)
    `, map[string]interface{}{"snippetID": snippetID, "tagIDs": tagIDs})
	if err != nil {
		return apierrors.ErrDatabaseOperation
	}
	return nil
}

func mapNodeToSnippet(node neo4j.Node) (*model.Snippet, error) {
	createdOn, err := helper_util.ParseTime(node.Props["createdOn"].(string))
	if err != nil {
		return nil, err
	}
	updatedOn, err := helper_util.ParseTime(node.Props["updatedOn"].(string))
	if err != nil {
		return nil, err
	}
	return &model.Snippet{
		ID:        node.Props["id"].(int64),
		Title:     node.Props["title"].(string),
		Note:      node.Props["note"].(string),
		Tags:      []model.Tag{},
		CreatedOn: createdOn,
		UpdatedOn: updatedOn,
	}, nil
}

// Audit trail is best effort: a failure to index the entry never fails
// the data operation.
func (dao *SnippetDAO) logAudit(ctx context.Context, action string, userID, snippetID int64, details map[string]interface{}) {
	var raw json.RawMessage
	if details != nil {
		raw, _ = json.Marshal(details)
	}
	auditLog := audit.AuditLog{
		Timestamp:     time.Now(),
		UserID:        userID,
		Action:        action,
		ResourceKind:  "snippet",
		ResourceID:    snippetID,
		ChangeDetails: raw,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to index audit log", zap.Error(err), zap.String("action", action))
	}
}

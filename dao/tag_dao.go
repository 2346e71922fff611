// dao/tag_dao.go
package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/snipvault/api/audit"
	apierrors "github.com/snipvault/api/errors"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/model"
)

type TagDAO struct {
	Driver       neo4j.Driver
	AuditService audit.Service
}

func NewTagDAO(driver neo4j.Driver, auditService audit.Service) *TagDAO {
	dao := &TagDAO{Driver: driver, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureUniqueConstraint(ctx); err != nil {
		logger.Fatal("Failed to ensure unique constraint for Tag", zap.Error(err))
	}
	return dao
}

// EnsureUniqueConstraint installs the uniqueness constraints on tag
// titles and ids, plus the counter name constraint backing id
// allocation. The title constraint is the final arbiter of the
// get-or-create race.
func (dao *TagDAO) EnsureUniqueConstraint(ctx context.Context) error {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		queries := []string{
			`
        CREATE CONSTRAINT unique_tag_title IF NOT EXISTS
        FOR (t:Tag) REQUIRE t.title IS UNIQUE
        `,
			`
        CREATE CONSTRAINT unique_tag_id IF NOT EXISTS
        FOR (t:Tag) REQUIRE t.id IS UNIQUE
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
		logger.Error("Failed to ensure unique constraints on Tag", zap.Error(err))
		return err
	}
	return nil
}

// GetOrCreateByLabel resolves a normalized label to its tag id,
// creating the tag when absent. The second return reports whether this
// call inserted the tag. MERGE on the unique-constrained title makes
// the create atomic; if a concurrent caller still wins the race the
// constraint violation is swallowed and the lookup retried, so two
// callers submitting the same new label always converge on one tag.
func (dao *TagDAO) GetOrCreateByLabel(ctx context.Context, label string) (int64, bool, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		id, err := dao.findByLabel(ctx, label)
		if err != nil && err != apierrors.ErrTagNotFound {
			return 0, false, err
		}
		if err == nil {
			return id, false, nil
		}

		id, err = dao.createByLabel(ctx, label)
		if err == nil {
			return id, true, nil
		}
		if !isConstraintViolation(err) {
			return 0, false, err
		}
		// Lost the race to a concurrent insert: the tag exists now,
		// re-read instead of surfacing the violation.
		lastErr = err
		logger.Debug("Tag create lost uniqueness race, retrying lookup",
			zap.String("label", label), zap.Int("attempt", attempt))
	}
	return 0, false, fmt.Errorf("%w: %v", apierrors.ErrTagConflict, lastErr)
}

func (dao *TagDAO) findByLabel(ctx context.Context, label string) (int64, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (t:Tag {title: $title})
        RETURN t.id AS id
        `, map[string]interface{}{"title": label})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}
		if res.Next() {
			return res.Record().Values[0].(int64), nil
		}
		return nil, apierrors.ErrTagNotFound
	})

	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

func (dao *TagDAO) createByLabel(ctx context.Context, label string) (int64, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	result, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		id, err := nextID(tx, "tag")
		if err != nil {
			return nil, err
		}

		res, err := tx.Run(`
        MERGE (t:Tag {title: $title})
        ON CREATE SET t.id = $id
        RETURN t.id AS id
        `, map[string]interface{}{"title": label, "id": id})
		if err != nil {
			return nil, err
		}
		if res.Next() {
			return res.Record().Values[0], nil
		}
		return nil, apierrors.ErrDatabaseOperation
	})

	if err != nil {
		return 0, err
	}

	tagID := result.(int64)
	logger.Info("Tag resolved", zap.String("label", label), zap.Int64("tagID", tagID))

	auditLog := audit.AuditLog{
		Timestamp:    time.Now(),
		Action:       audit.ActionCreateTag,
		ResourceKind: "tag",
		ResourceID:   tagID,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to index audit log", zap.Error(err), zap.String("action", audit.ActionCreateTag))
	}
	return tagID, nil
}

// ListTags returns every tag with the number of snippets referencing
// it, across all owners, ordered by title.
func (dao *TagDAO) ListTags(ctx context.Context) ([]model.TagWithCount, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (t:Tag)
        OPTIONAL MATCH (s:Snippet)-[:HAS_TAG]->(t)
        RETURN t.id AS id, t.title AS title, count(s) AS snippetCount
        ORDER BY t.title
        `, nil)
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}

		tags := []model.TagWithCount{}
		for res.Next() {
			record := res.Record()
			tags = append(tags, model.TagWithCount{
				ID:           record.Values[0].(int64),
				Title:        record.Values[1].(string),
				SnippetCount: record.Values[2].(int64),
			})
		}
		return tags, nil
	})

	if err != nil {
		return nil, err
	}
	return result.([]model.TagWithCount), nil
}

// FindWithSnippetsForOwner returns the tag with the snippets attached
// to it, filtered to the requesting owner.
func (dao *TagDAO) FindWithSnippetsForOwner(ctx context.Context, tagID, ownerID int64) (*model.TagDetail, error) {
	session := dao.Driver.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close()

	result, err := session.ReadTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		res, err := tx.Run(`
        MATCH (t:Tag {id: $tagID})
        OPTIONAL MATCH (u:User {id: $ownerID})-[:OWNS]->(s:Snippet)-[:HAS_TAG]->(t)
        RETURN t.id AS id, t.title AS title,
               collect(CASE WHEN s IS NULL THEN NULL ELSE {id: s.id, title: s.title} END) AS snippets
        `, map[string]interface{}{"tagID": tagID, "ownerID": ownerID})
		if err != nil {
			return nil, apierrors.ErrDatabaseOperation
		}
		if !res.Next() {
			return nil, apierrors.ErrTagNotFound
		}

		record := res.Record()
		detail := &model.TagDetail{
			ID:       record.Values[0].(int64),
			Title:    record.Values[1].(string),
			Snippets: []model.SnippetOverview{},
		}
		for _, raw := range record.Values[2].([]interface{}) {
			entry := raw.(map[string]interface{})
			detail.Snippets = append(detail.Snippets, model.SnippetOverview{
				ID:    entry["id"].(int64),
				Title: entry["title"].(string),
			})
		}
		return detail, nil
	})

	if err != nil {
		return nil, err
	}
	return result.(*model.TagDetail), nil
}

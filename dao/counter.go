// dao/counter.go
package dao

import (
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	apierrors "github.com/snipvault/api/errors"
)

// Counter name uniqueness makes the MERGE in nextID race-safe: without
// it two first-time allocations for a kind can each create a counter
// node and hand out duplicate ids. Every DAO that allocates ids
// installs this constraint alongside its own.
const counterConstraintQuery = `
        CREATE CONSTRAINT unique_counter_name IF NOT EXISTS
        FOR (c:Counter) REQUIRE c.name IS UNIQUE
        `

// nextID allocates the next integer identity for an entity kind from a
// counter node, inside the caller's write transaction. Requires the
// counter name constraint. Allocated ids that lose a later constraint
// race are simply gaps, like any sequence.
func nextID(tx neo4j.Transaction, kind string) (int64, error) {
	result, err := tx.Run(`
        MERGE (c:Counter {name: $name})
        SET c.value = coalesce(c.value, 0) + 1
        RETURN c.value AS id
        `, map[string]interface{}{"name": kind})
	if err != nil {
		return 0, err
	}
	if result.Next() {
		return result.Record().Values[0].(int64), nil
	}
	return 0, apierrors.ErrDatabaseOperation
}

// isConstraintViolation reports whether err is the store rejecting a
// write for breaking a uniqueness constraint.
func isConstraintViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "ConstraintValidationFailed")
}

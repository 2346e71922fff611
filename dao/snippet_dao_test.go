// dao/snippet_dao_test.go
package dao_test

import (
	"strings"
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	tmock "github.com/stretchr/testify/mock"

	"github.com/snipvault/api/dao"
	logger "github.com/snipvault/api/logging"
	"github.com/snipvault/api/test/mock"
)

// constraintSession builds a session whose write transactions run the
// submitted work against tx, so the Cypher each DAO issues at
// construction can be inspected.
func constraintSession(tx *mock.MockTransaction) *mock.MockSession {
	session := &mock.MockSession{}
	session.On("WriteTransaction", tmock.Anything, tmock.Anything).
		Run(func(args tmock.Arguments) {
			work := args.Get(0).(neo4j.TransactionWork)
			work(tx)
		}).
		Return(nil, nil)
	session.On("Close").Return(nil)
	return session
}

func issuedQueries(tx *mock.MockTransaction) string {
	var queries []string
	for _, call := range tx.Calls {
		if call.Method == "Run" {
			queries = append(queries, call.Arguments.Get(0).(string))
		}
	}
	return strings.Join(queries, "\n")
}

// Id allocation MERGEs on Counter nodes, which is only race-safe when
// the counter name carries a uniqueness constraint. Every DAO must
// install it, together with the constraint on its own id property, so
// concurrent first-time allocations cannot mint duplicate ids.
func TestSnippetDAO_InstallsUniquenessConstraints(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	tx := &mock.MockTransaction{}
	tx.On("Run", tmock.Anything, tmock.Anything).Return(nil, nil)
	session := constraintSession(tx)
	driver := &mock.MockDriver{}
	driver.On("NewSession", tmock.Anything).Return(session)

	dao.NewSnippetDAO(driver, &mock.MockAuditService{})

	queries := issuedQueries(tx)
	assert.Contains(t, queries, "unique_snippet_id")
	assert.Contains(t, queries, "unique_counter_name")
	session.AssertExpectations(t)
}

package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-works/ratchet/pkg/database"
	"github.com/ratchet-works/ratchet/test/util"
)

// NewTestClient creates a test database client on an isolated schema.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: uses a shared testcontainer.
// The schema and connections are cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// The read views live outside ent's DDL; create them the same way
	// production startup does.
	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateReadViews(ctx, drv)
	require.NoError(t, err)

	// Cleanup (schema drop and connection close) is handled by SetupTestDatabase.
	return database.NewClientFromEnt(entClient, db)
}

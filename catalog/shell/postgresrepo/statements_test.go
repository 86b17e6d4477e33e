package postgresrepo_test

import (
	"database/sql"
	"testing"

	_ "github.com/lib/pq" // postgres driver
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell/postgresrepo"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore/postgresengine"
)

// sql.Open does not connect, so queuing statements works without a running database.
func newUnitOfWork(t *testing.T) *postgresrepo.UnitOfWork {
	t.Helper()

	db, err := sql.Open("postgres", "postgres://nobody@localhost:1/none?sslmode=disable")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	engine, err := postgresengine.NewEngineFromSQLDB(db)
	require.NoError(t, err)

	factory, err := postgresrepo.NewUnitOfWorkFactory(engine)
	require.NoError(t, err)

	uow, ok := factory.Begin().(*postgresrepo.UnitOfWork)
	require.True(t, ok)

	return uow
}

func Test_NewUnitOfWorkFactory_Rejects_Nil_Engine(t *testing.T) {
	_, err := postgresrepo.NewUnitOfWorkFactory(nil)

	assert.ErrorIs(t, err, eventstore.ErrNilDatabaseConnection)
}

func Test_BookRepository_Create_Queues_Book_Then_One_Join_Row_Per_Author(t *testing.T) {
	// arrange
	uow := newUnitOfWork(t)
	book := core.MaterializeBook(5, "Dune", 412, core.AuthorIDs{1, 2})

	// act
	err := uow.Books().Create(book)

	// assert
	require.NoError(t, err)
	pending := uow.Pending()
	require.Len(t, pending, 3)
	assert.Equal(t, `INSERT INTO "book" ("id", "name", "pages_count") VALUES ($1, $2, $3)`, pending[0].SQL)
	assert.Equal(t, []any{int64(5), "Dune", int64(412)}, pending[0].Args)
	assert.Equal(t, `INSERT INTO "author_book" ("author_id", "book_id") VALUES ($1, $2)`, pending[1].SQL)
	assert.Equal(t, []any{int64(1), int64(5)}, pending[1].Args)
	assert.Equal(t, []any{int64(2), int64(5)}, pending[2].Args)
}

func Test_BookRepository_Update_Replaces_All_Join_Rows(t *testing.T) {
	// arrange
	uow := newUnitOfWork(t)
	book := core.MaterializeBook(5, "Dune", 412, core.AuthorIDs{3})

	// act
	err := uow.Books().Update(book)

	// assert
	require.NoError(t, err)
	pending := uow.Pending()
	require.Len(t, pending, 3)
	assert.Equal(t, `UPDATE "book" SET "name"=$1,"pages_count"=$2 WHERE ("id" = $3)`, pending[0].SQL)
	assert.Equal(t, []any{"Dune", int64(412), int64(5)}, pending[0].Args)
	assert.Equal(t, `DELETE FROM "author_book" WHERE ("book_id" = $1)`, pending[1].SQL)
	assert.Equal(t, []any{int64(5)}, pending[1].Args)
	assert.Equal(t, []any{int64(3), int64(5)}, pending[2].Args)
}

func Test_AuthorRepository_Queues_Parameterized_Statements(t *testing.T) {
	// arrange
	uow := newUnitOfWork(t)
	author := core.MaterializeAuthor(9, "Robert'); DROP TABLE author;--", "Tables")

	// act
	createErr := uow.Authors().Create(author)
	updateErr := uow.Authors().Update(author)

	// assert
	require.NoError(t, createErr)
	require.NoError(t, updateErr)
	pending := uow.Pending()
	require.Len(t, pending, 2)
	assert.Equal(
		t,
		`INSERT INTO "author" ("first_name", "full_name", "id", "last_name") VALUES ($1, $2, $3, $4)`,
		pending[0].SQL,
	)
	assert.Equal(t, "Robert'); DROP TABLE author;--", pending[0].Args[0])
	assert.NotContains(t, pending[0].SQL, "DROP")
	assert.Equal(t, `UPDATE "author" SET "first_name"=$1,"full_name"=$2,"last_name"=$3 WHERE ("id" = $4)`, pending[1].SQL)
}

func Test_EventStore_Queues_Serialized_Event(t *testing.T) {
	// arrange
	uow := newUnitOfWork(t)

	// act
	err := uow.EventStore().Append(core.BuildAuthorCreated(1, "Ada", "Lovelace", "Ada Lovelace"))

	// assert
	require.NoError(t, err)
	pending := uow.Pending()
	require.Len(t, pending, 1)
	assert.Equal(t, `INSERT INTO "stored_event" ("name", "payload") VALUES ($1, $2)`, pending[0].SQL)
	assert.Equal(t, "author_created", pending[0].Args[0])
	assert.Contains(t, pending[0].Args[1], `"first_name":"Ada"`)
}

func Test_Repositories_Reject_Nil_Aggregates(t *testing.T) {
	// arrange
	uow := newUnitOfWork(t)

	// act & assert
	assert.ErrorIs(t, uow.Books().Create(nil), shell.ErrNilAggregate)
	assert.ErrorIs(t, uow.Books().Update(nil), shell.ErrNilAggregate)
	assert.ErrorIs(t, uow.Authors().Create(nil), shell.ErrNilAggregate)
	assert.ErrorIs(t, uow.Authors().Update(nil), shell.ErrNilAggregate)
	assert.Empty(t, uow.Pending())
}

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell/memoryrepo"
)

func Test_Run_CreateAuthor_With_Memory_Adapter(t *testing.T) {
	// arrange
	var stdout bytes.Buffer

	// act
	err := run(context.Background(), []string{"-adapter", "memory", "create-author", "-first", "Ada", "-last", "Lovelace"}, &stdout)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "CreateAuthor success id=1\n", stdout.String())
}

func Test_Run_Rejects_Unknown_Command(t *testing.T) {
	// act
	err := run(context.Background(), []string{"-adapter", "memory", "lend-book"}, &bytes.Buffer{})

	// assert
	assert.ErrorIs(t, err, errUnknownCommand)
}

func Test_Run_Requires_A_Command(t *testing.T) {
	// act
	err := run(context.Background(), []string{"-adapter", "memory"}, &bytes.Buffer{})

	// assert
	assert.ErrorIs(t, err, errMissingCommand)
}

func Test_Run_CreateBook_Without_Authors_Fails(t *testing.T) {
	// act
	err := run(context.Background(), []string{"-adapter", "memory", "create-book", "-name", "Dune", "-pages", "412"}, &bytes.Buffer{})

	// assert
	assert.ErrorIs(t, err, core.ErrInvariantViolated)
}

func Test_Dispatch_ListBooks_Prints_Current_Titles_In_ID_Order(t *testing.T) {
	// arrange
	ctx := context.Background()
	db := memoryrepo.NewDatabase()
	uow := db.Begin()
	require.NoError(t, uow.EventStore().Append(core.BuildAuthorCreated(1, "Frank", "Herbert", "Frank Herbert")))
	require.NoError(t, uow.EventStore().Append(core.BuildBookCreated(1, "Dune", 412, core.AuthorIDs{1})))
	require.NoError(t, uow.EventStore().Append(core.BuildBookCreated(2, "Emma", 474, core.AuthorIDs{1})))
	require.NoError(t, uow.EventStore().Append(core.BuildBookRenamed(1, "Dune Messiah")))
	require.NoError(t, uow.Commit(ctx))

	obs, err := initObservability(ctx, nil, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = obs.shutdown(ctx) })

	var stdout bytes.Buffer

	// act
	err = dispatch(ctx, db, obs, "list-books", nil, &stdout)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "1\tDune Messiah\n2\tEmma\n", stdout.String())
}

func Test_ParseAuthorIDs(t *testing.T) {
	authorIDs, err := parseAuthorIDs(" 3, 1,2 ")
	require.NoError(t, err)
	assert.Equal(t, core.AuthorIDs{3, 1, 2}, authorIDs)

	authorIDs, err = parseAuthorIDs("")
	require.NoError(t, err)
	assert.Empty(t, authorIDs)

	_, err = parseAuthorIDs("1,x")
	assert.ErrorIs(t, err, errInvalidFlag)
}

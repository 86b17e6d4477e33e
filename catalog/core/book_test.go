package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
)

func Test_NewBook_Publishes_BookCreated(t *testing.T) {
	// arrange
	publisher, events := recordingPublisher(t)

	// act
	book, err := core.NewBook(1, "Dune", 412, core.AuthorIDs{7, 8}, publisher)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.BookID(1), book.ID())
	assert.Equal(t, "Dune", book.Name())
	assert.Equal(t, 412, book.PagesCount())
	assert.Equal(t, core.AuthorIDs{7, 8}, book.AuthorIDs())
	assert.Equal(t, core.DomainEvents{core.BuildBookCreated(1, "Dune", 412, core.AuthorIDs{7, 8})}, *events)
}

func Test_NewBook_Rejects_Invalid_Input_Without_Publishing(t *testing.T) {
	testCases := []struct {
		description string
		name        string
		pagesCount  int
		authorIDs   core.AuthorIDs
	}{
		{description: "empty name", name: "", pagesCount: 10, authorIDs: core.AuthorIDs{1}},
		{description: "blank name", name: "   ", pagesCount: 10, authorIDs: core.AuthorIDs{1}},
		{description: "zero pages", name: "Dune", pagesCount: 0, authorIDs: core.AuthorIDs{1}},
		{description: "negative pages", name: "Dune", pagesCount: -3, authorIDs: core.AuthorIDs{1}},
		{description: "nil authors", name: "Dune", pagesCount: 10, authorIDs: nil},
		{description: "empty authors", name: "Dune", pagesCount: 10, authorIDs: core.AuthorIDs{}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			publisher, events := recordingPublisher(t)

			// act
			book, err := core.NewBook(1, tc.name, tc.pagesCount, tc.authorIDs, publisher)

			// assert
			assert.ErrorIs(t, err, core.ErrInvariantViolated)
			assert.Nil(t, book)
			assert.Empty(t, *events)
		})
	}
}

func Test_NewBook_Requires_A_Publisher(t *testing.T) {
	_, err := core.NewBook(1, "Dune", 412, core.AuthorIDs{7}, nil)

	assert.ErrorIs(t, err, core.ErrNilPublisher)
}

func Test_NewBook_Fails_When_A_Handler_Fails(t *testing.T) {
	// arrange
	publisher := core.NewPublisher()
	errHandler := errors.New("store is gone")
	require.NoError(t, publisher.Subscribe(func(core.DomainEvent) error { return errHandler }))

	// act
	book, err := core.NewBook(1, "Dune", 412, core.AuthorIDs{7}, publisher)

	// assert
	assert.Nil(t, book)
	assert.ErrorIs(t, err, core.ErrPublishingFailed)
	assert.ErrorIs(t, err, errHandler)
}

func Test_NewBook_Does_Not_Share_The_Author_Slice_With_The_Caller(t *testing.T) {
	publisher, _ := recordingPublisher(t)
	authorIDs := core.AuthorIDs{1, 2}

	book, err := core.NewBook(1, "Dune", 412, authorIDs, publisher)
	require.NoError(t, err)

	authorIDs[0] = 99
	book.AuthorIDs()[1] = 98

	assert.Equal(t, core.AuthorIDs{1, 2}, book.AuthorIDs())
}

func Test_Book_Rename_To_The_Same_Name_Publishes_Nothing(t *testing.T) {
	// arrange
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{7})
	publisher, events := recordingPublisher(t)

	// act
	err := book.Rename("Dune", publisher)

	// assert
	require.NoError(t, err)
	assert.Empty(t, *events)
}

func Test_Book_Rename_To_A_Different_Name_Publishes_Exactly_One_BookRenamed(t *testing.T) {
	// arrange
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{7})
	publisher, events := recordingPublisher(t)

	// act
	err := book.Rename("Dune Messiah", publisher)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", book.Name())
	assert.Equal(t, core.DomainEvents{core.BuildBookRenamed(1, "Dune Messiah")}, *events)
}

func Test_Book_Rename_Rejects_Empty_Name(t *testing.T) {
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{7})
	publisher, events := recordingPublisher(t)

	err := book.Rename("", publisher)

	assert.ErrorIs(t, err, core.ErrInvariantViolated)
	assert.Equal(t, "Dune", book.Name())
	assert.Empty(t, *events)
}

func Test_Book_Update_Replaces_Pages_And_Authors_Without_Publishing_When_Name_Is_Unchanged(t *testing.T) {
	// arrange
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{1, 2})
	publisher, events := recordingPublisher(t)

	// act
	err := book.Update("Dune", 500, core.AuthorIDs{3}, publisher)

	// assert
	require.NoError(t, err)
	assert.Equal(t, 500, book.PagesCount())
	assert.Equal(t, core.AuthorIDs{3}, book.AuthorIDs())
	assert.Empty(t, *events)
}

func Test_Book_Update_Publishes_BookRenamed_When_Name_Changes(t *testing.T) {
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{1})
	publisher, events := recordingPublisher(t)

	err := book.Update("Children of Dune", 444, core.AuthorIDs{1}, publisher)

	require.NoError(t, err)
	assert.Equal(t, core.DomainEvents{core.BuildBookRenamed(1, "Children of Dune")}, *events)
}

func Test_Book_Update_Changes_Nothing_When_An_Invariant_Is_Violated(t *testing.T) {
	// arrange
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{1, 2})
	publisher, events := recordingPublisher(t)

	// act
	err := book.Update("Dune Messiah", 300, core.AuthorIDs{}, publisher)

	// assert
	assert.ErrorIs(t, err, core.ErrInvariantViolated)
	assert.Equal(t, "Dune", book.Name())
	assert.Equal(t, 412, book.PagesCount())
	assert.Equal(t, core.AuthorIDs{1, 2}, book.AuthorIDs())
	assert.Empty(t, *events)
}

func Test_Book_Update_Changes_Nothing_When_A_Handler_Fails(t *testing.T) {
	// arrange
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{1, 2})
	publisher := failingPublisher(t)

	// act
	err := book.Update("Dune Messiah", 99, core.AuthorIDs{3}, publisher)

	// assert
	assert.ErrorIs(t, err, core.ErrPublishingFailed)
	assert.Equal(t, "Dune", book.Name())
	assert.Equal(t, 412, book.PagesCount())
	assert.Equal(t, core.AuthorIDs{1, 2}, book.AuthorIDs())
}

func Test_Book_Rename_Keeps_The_Name_When_A_Handler_Fails(t *testing.T) {
	book := core.MaterializeBook(1, "Dune", 412, core.AuthorIDs{1})

	err := book.Rename("Dune Messiah", failingPublisher(t))

	assert.ErrorIs(t, err, core.ErrPublishingFailed)
	assert.Equal(t, "Dune", book.Name())
}

func Test_MaterializeBook_Publishes_Nothing_And_Yields_Equal_Instances(t *testing.T) {
	first := core.MaterializeBook(5, "Dune", 412, core.AuthorIDs{1, 2})
	second := core.MaterializeBook(5, "Dune", 412, core.AuthorIDs{1, 2})

	assert.Equal(t, first, second)
	assert.NotSame(t, first, second)
}

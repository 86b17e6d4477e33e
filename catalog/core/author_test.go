package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
)

func Test_NewAuthor_Derives_The_Full_Name_And_Publishes_AuthorCreated(t *testing.T) {
	// arrange
	publisher, events := recordingPublisher(t)

	// act
	author, err := core.NewAuthor(3, "Ada", "Lovelace", publisher)

	// assert
	require.NoError(t, err)
	assert.Equal(t, core.AuthorID(3), author.ID())
	assert.Equal(t, "Ada Lovelace", author.FullName())
	assert.Equal(t, core.DomainEvents{core.BuildAuthorCreated(3, "Ada", "Lovelace", "Ada Lovelace")}, *events)
}

func Test_NewAuthor_Rejects_Empty_Names_Without_Publishing(t *testing.T) {
	testCases := []struct {
		description string
		firstName   string
		lastName    string
	}{
		{description: "empty first name", firstName: "", lastName: "Lovelace"},
		{description: "empty last name", firstName: "Ada", lastName: ""},
		{description: "blank first name", firstName: " ", lastName: "Lovelace"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			publisher, events := recordingPublisher(t)

			author, err := core.NewAuthor(3, tc.firstName, tc.lastName, publisher)

			assert.ErrorIs(t, err, core.ErrInvariantViolated)
			assert.Nil(t, author)
			assert.Empty(t, *events)
		})
	}
}

func Test_Author_Rename_Publishes_AuthorRenamed_And_Recomputes_The_Full_Name(t *testing.T) {
	// arrange
	author := core.MaterializeAuthor(3, "Ada", "Byron")
	publisher, events := recordingPublisher(t)

	// act
	err := author.Rename("Ada", "Lovelace", publisher)

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", author.FullName())
	require.Len(t, *events, 1)
	assert.IsType(t, core.AuthorRenamed{}, (*events)[0])
	assert.Equal(t, core.BuildAuthorRenamed(3, "Ada", "Lovelace", "Ada Lovelace"), (*events)[0])
}

func Test_Author_Rename_To_The_Same_Names_Publishes_Nothing(t *testing.T) {
	author := core.MaterializeAuthor(3, "Ada", "Lovelace")
	publisher, events := recordingPublisher(t)

	err := author.Rename("Ada", "Lovelace", publisher)

	require.NoError(t, err)
	assert.Empty(t, *events)
}

func Test_Author_Rename_Rejects_Empty_Names(t *testing.T) {
	author := core.MaterializeAuthor(3, "Ada", "Lovelace")
	publisher, events := recordingPublisher(t)

	err := author.Rename("Ada", "", publisher)

	assert.ErrorIs(t, err, core.ErrInvariantViolated)
	assert.Equal(t, "Ada Lovelace", author.FullName())
	assert.Empty(t, *events)
}

func Test_Author_Rename_Requires_A_Publisher(t *testing.T) {
	author := core.MaterializeAuthor(3, "Ada", "Lovelace")

	assert.ErrorIs(t, author.Rename("Augusta", "King", nil), core.ErrNilPublisher)
}

func Test_Author_Rename_Keeps_The_Names_When_A_Handler_Fails(t *testing.T) {
	// arrange
	author := core.MaterializeAuthor(3, "Ada", "Lovelace")

	// act
	err := author.Rename("Augusta", "King", failingPublisher(t))

	// assert
	assert.ErrorIs(t, err, core.ErrPublishingFailed)
	assert.Equal(t, "Ada", author.FirstName())
	assert.Equal(t, "Lovelace", author.LastName())
	assert.Equal(t, "Ada Lovelace", author.FullName())
}

func Test_Domain_Events_Have_Stable_Names(t *testing.T) {
	assert.Equal(t, "book_created", core.BookCreated{}.EventName())
	assert.Equal(t, "book_renamed", core.BookRenamed{}.EventName())
	assert.Equal(t, "author_created", core.AuthorCreated{}.EventName())
	assert.Equal(t, "author_renamed", core.AuthorRenamed{}.EventName())
}

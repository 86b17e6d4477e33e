package eventstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

func Test_Filter_Zero_Value_Matches_Everything(t *testing.T) {
	var filter eventstore.Filter

	assert.True(t, filter.IsEmpty())
	assert.True(t, filter.Matches("book_created"))
	assert.Empty(t, filter.Names())
}

func Test_FilterByNames_Drops_Duplicates_And_Empty_Names(t *testing.T) {
	filter := eventstore.FilterByNames("book_created", "", "book_renamed", "book_created")

	assert.Equal(t, []string{"book_created", "book_renamed"}, filter.Names())
	assert.True(t, eventstore.FilterByNames("").IsEmpty())
}

func Test_Filter_Apply_Keeps_Matching_Events_In_Order(t *testing.T) {
	// arrange
	storedEvents := eventstore.StoredEvents{
		{Name: "author_created", Payload: `{"author_id":1}`},
		{Name: "book_created", Payload: `{"book_id":1}`},
		{Name: "author_renamed", Payload: `{"author_id":1}`},
		{Name: "book_renamed", Payload: `{"book_id":1}`},
	}

	// act
	matching := eventstore.FilterByNames("book_renamed", "book_created").Apply(storedEvents)

	// assert
	assert.Equal(t, eventstore.StoredEvents{storedEvents[1], storedEvents[3]}, matching)
}

func Test_Filter_Names_Returns_A_Copy(t *testing.T) {
	filter := eventstore.FilterByNames("book_created")

	names := filter.Names()
	names[0] = "tampered"

	assert.True(t, filter.Matches("book_created"))
}

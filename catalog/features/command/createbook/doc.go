// Package createbook implements the Create Book use case.
//
// One Unit of Work and one Publisher per call: the bound event store is subscribed first,
// then any additional subscribers. The handler allocates an id, constructs the Book (which
// publishes BookCreated into the Unit of Work), queues the book rows and commits. Any failure
// before Commit leaves the database untouched.
package createbook

// Package updatebook implements the Update Book use case.
//
// The handler loads the committed Book, applies the new name, page count and authors, and
// queues the replace-all update. Only a changed name publishes BookRenamed. When no field
// changed the result is idempotent; the update is queued regardless, so the stored state is
// always exactly what the command asked for.
package updatebook

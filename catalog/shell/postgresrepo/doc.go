// Package postgresrepo implements the catalog ports on top of the postgresengine Unit of Work.
//
// Repositories translate aggregates into goqu statements in prepared mode and queue them by
// value; reads go straight to the engine and only see committed data. The schema is:
//
//	book(id serial primary key, name text, pages_count int)
//	author(id serial primary key, first_name text, last_name text, full_name text)
//	author_book(author_id int, book_id int references book(id))
//	stored_event(name text, payload text)
package postgresrepo

// Package bookprojector maintains a read model of book titles from book events.
//
// Project is a pure function over an event history. Projector wraps it as a publisher
// subscriber: it applies every published event to its read model and logs book changes.
// Author events are ignored.
package bookprojector

// Package renameauthor implements the Rename Author use case.
//
// A rename to the current first and last name is idempotent: nothing is published and
// nothing is queued.
package renameauthor

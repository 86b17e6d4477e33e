package eventstore

import (
	"errors"
)

var ErrEmptyTableNameSupplied = errors.New("empty table name supplied")
var ErrNilDatabaseConnection = errors.New("database connection is nil")
var ErrUnitOfWorkCompleted = errors.New("unit of work was already committed")
var ErrBuildingQueryFailed = errors.New("building query failed")
var ErrQueryingFailed = errors.New("querying the database failed")
var ErrScanningDBRowFailed = errors.New("scanning db row failed")
var ErrBeginTransactionFailed = errors.New("beginning the database transaction failed")
var ErrExecutingStatementFailed = errors.New("executing statement failed")
var ErrCommitFailed = errors.New("committing the unit of work failed")
var ErrNextIdentityFailed = errors.New("allocating the next identity failed")

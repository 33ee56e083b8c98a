package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Config errors
	ConfigLoadError
	ConfigGenerateError
	DatabaseURLError

	// Reference data errors
	RegionsConfigError
	IndicatorsConfigError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableExistsCheckError
	DBMissingTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaMigrateError
	SchemaSeedError

	// Collection errors
	PriceFetchError
	PriceInsertError
	ProductListError
	WageFetchError
	WageDecodeError
	StagingTruncateError
	StagingLoadError
	ReconcileError
)

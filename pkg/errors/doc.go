// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeParseFailure,
//	    "invalid executor core count",
//	    parseErr,
//	    map[string]interface{}{
//	        "setting": "spark.executor.cores",
//	        "source": path,
//	    },
//	)
package errors

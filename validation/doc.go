// Package validation checks constructor parameters and settings against
// struct tags using go-playground/validator.
//
// Failures are reported as *errors.AppError with code INVALID_ARGUMENT and a
// "fields" detail listing every rejected field.
//
//	type chunkParams struct {
//	    Size int `validate:"gt=0"`
//	}
//	validation.MustValidate(chunkParams{Size: n})
package validation

package validators

import "errors"

var (
	ErrSchemaCompile = errors.New("json schema could not be compiled")
	ErrInvalidValue  = errors.New("value does not satisfy validator")
)

package family

import "errors"

var (
	ErrNotFound             = errors.New("family not found")
	ErrCodeNotFound         = errors.New("family code not found")
	ErrCodeGenerationFailed = errors.New("family code generation failed")
)

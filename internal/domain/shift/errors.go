package shift

import "errors"

var (
	ErrRulesNotFound   = errors.New("shift rules not found for category")
	ErrInvalidCategory = errors.New("invalid staff category")
)

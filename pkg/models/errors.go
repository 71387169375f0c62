package models

import (
	"errors"
)

var (
	ErrMissingUserID       = errors.New("a user ID must be specified")
	ErrMissingCategory     = errors.New("a category must be specified")
	ErrInvalidBucket       = errors.New("bucket must be one of NEEDS, WANTS, SAVINGS, DEBT")
	ErrInvalidDebtStrategy = errors.New("debt strategy must be one of snowball, avalanche")
	ErrPlanNotFound        = errors.New("there is no budget plan")
	ErrTransactionNotFound = errors.New("there is no transaction")
)

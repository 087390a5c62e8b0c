package service

import "errors"

// ErrProductNotFound is returned when a referenced product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateCode is returned when saving a product whose code is taken.
var ErrDuplicateCode = errors.New("product code already exists")

// ErrUnknownTransactionKind is returned for a kind other than PURCHASE or SALE.
var ErrUnknownTransactionKind = errors.New("unknown transaction kind")

// ErrUnknownReportFormat is returned for a report type with no registered formatter.
var ErrUnknownReportFormat = errors.New("unknown report format")

// ErrValidation is returned when an input struct fails field validation.
var ErrValidation = errors.New("validation failed")

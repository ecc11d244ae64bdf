package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyDataset is returned when a load cannot derive a time window
	// because no complete match survived filtering and no explicit end time
	// was configured.
	ErrEmptyDataset = errors.New("empty dataset")
)

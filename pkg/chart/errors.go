package chart

import "errors"

var (
	// ErrUnknownSeries is returned for series kinds without a schema.
	ErrUnknownSeries = errors.New("chart: unknown series kind")
	// ErrInvalidSize is returned for sizes ParseSize cannot read.
	ErrInvalidSize = errors.New("chart: invalid size")
)

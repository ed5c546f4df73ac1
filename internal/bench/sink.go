package bench

//go:generate mockgen -destination benchmock/sink.go -package benchmock . Sink

import (
	"context"

	"go.llib.dev/frameless/pkg/errorkit"
)

// Sink receives finished reports.
type Sink interface {
	Write(ctx context.Context, r Report) error
}

// Publish hands the report to every sink, even when an earlier one fails.
func Publish(ctx context.Context, r Report, sinks ...Sink) error {
	var errs []error
	for _, sink := range sinks {
		if sink == nil {
			continue
		}
		if err := sink.Write(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errorkit.Merge(errs...)
}

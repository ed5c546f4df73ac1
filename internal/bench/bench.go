// Package bench compares the linked list and the vector on the prepend and pop-last workloads.
package bench

import (
	"context"
	"io"
	"time"

	"github.com/adamluzsi/linearkit/pkg/linkedlist"
	"github.com/adamluzsi/linearkit/pkg/vector"
	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/testcase/clock"
)

const (
	ErrWorkloadMismatch errorkit.Error = "workload produced an unexpected container state"
	ErrUnknownPayload   errorkit.Error = "unknown payload kind"
)

// DefaultOperations is the number of elements each timed workload handles.
const DefaultOperations = 10000

type Config struct {
	// Repeat is how many times the smoke workload runs, zero included.
	// Timed workloads only run when Repeat is 1, unless ForceTiming is set.
	Repeat int
	// Operations defaults to DefaultOperations when zero.
	Operations  int
	Payload     string
	ForceTiming bool
}

type Measurement struct {
	Container  string        `json:"container" yaml:"container"`
	Workload   string        `json:"workload" yaml:"workload"`
	Operations int           `json:"operations" yaml:"operations"`
	Elapsed    time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Comparison is the vector's elapsed time minus the linked list's elapsed time for a workload.
type Comparison struct {
	Workload   string        `json:"workload" yaml:"workload"`
	Difference time.Duration `json:"difference_ns" yaml:"difference_ns"`
}

type Report struct {
	ID           string        `json:"id" yaml:"id"`
	StartedAt    time.Time     `json:"started_at" yaml:"started_at"`
	SmokeRuns    int           `json:"smoke_runs" yaml:"smoke_runs"`
	Measurements []Measurement `json:"measurements,omitempty" yaml:"measurements,omitempty"`
	Comparisons  []Comparison  `json:"comparisons,omitempty" yaml:"comparisons,omitempty"`
}

// Lookup returns the measurement of a container on a workload.
func (r Report) Lookup(container, workload string) (Measurement, bool) {
	for _, m := range r.Measurements {
		if m.Container == container && m.Workload == workload {
			return m, true
		}
	}
	return Measurement{}, false
}

type Runner struct {
	Logger *logging.Logger
	Config Config
}

func (r Runner) logger() *logging.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return &logging.Logger{Out: io.Discard}
}

func (r Runner) Run(ctx context.Context) (Report, error) {
	var (
		repeat     = r.Config.Repeat
		operations = zerokit.Coalesce(r.Config.Operations, DefaultOperations)
		report     = Report{ID: uuid.NewString(), StartedAt: clock.Now()}
	)
	ctx = logging.ContextWith(ctx, logging.Field("run_id", report.ID))

	payload, err := MakePayload(r.Config.Payload, operations)
	if err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	for i := 0; i < repeat; i++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := r.smoke(); err != nil {
			r.logger().Error(ctx, "smoke workload failed", logging.ErrField(err), logging.Field("iteration", i))
			return report, err
		}
		report.SmokeRuns++
	}
	r.logger().Debug(ctx, "smoke workloads finished", logging.Field("runs", report.SmokeRuns))

	if repeat != 1 && !r.Config.ForceTiming {
		return report, nil
	}

	for _, wl := range []string{WorkloadPrepend, WorkloadPopLast} {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		vec, err := r.timed(ctx, ContainerVector, wl, payload)
		if err != nil {
			return report, err
		}
		list, err := r.timed(ctx, ContainerLinkedList, wl, payload)
		if err != nil {
			return report, err
		}
		report.Measurements = append(report.Measurements, vec, list)
		report.Comparisons = append(report.Comparisons, Comparison{
			Workload:   wl,
			Difference: vec.Elapsed - list.Elapsed,
		})
	}
	return report, nil
}

func (r Runner) smoke() error {
	return errorkit.Merge(
		smokeWorkload[linkedlist.Iterator[string], linkedlist.ConstIterator[string]](linkedlist.New[string]),
		smokeWorkload[vector.Iterator[string], vector.ConstIterator[string]](vector.New[string]),
	)
}

func (r Runner) timed(ctx context.Context, container, workload string, payload []string) (Measurement, error) {
	var (
		elapsed time.Duration
		err     error
	)
	switch container + "/" + workload {
	case ContainerLinkedList + "/" + WorkloadPrepend:
		elapsed, err = prependWorkload(newLinkedList, payload)
	case ContainerLinkedList + "/" + WorkloadPopLast:
		elapsed, err = popLastWorkload(newLinkedList, payload)
	case ContainerVector + "/" + WorkloadPrepend:
		elapsed, err = prependWorkload(newVector, payload)
	case ContainerVector + "/" + WorkloadPopLast:
		elapsed, err = popLastWorkload(newVector, payload)
	}
	if err != nil {
		r.logger().Error(ctx, "timed workload failed", logging.ErrField(err),
			logging.Field("container", container), logging.Field("workload", workload))
		return Measurement{}, err
	}
	m := Measurement{
		Container:  container,
		Workload:   workload,
		Operations: len(payload),
		Elapsed:    elapsed,
	}
	r.logger().Info(ctx, "workload measured",
		logging.Field("container", container),
		logging.Field("workload", workload),
		logging.Field("elapsed_ns", elapsed.Nanoseconds()))
	return m, nil
}

func newLinkedList() *linkedlist.LinkedList[string] { return &linkedlist.LinkedList[string]{} }

func newVector() *vector.Vector[string] { return &vector.Vector[string]{} }

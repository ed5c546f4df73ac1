package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.llib.dev/frameless/pkg/errorkit"
	"gopkg.in/yaml.v3"
)

const ErrUnknownFormat errorkit.Error = "unknown report format"

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// NewWriter returns a Sink that renders reports to out in the given format.
func NewWriter(format string, out io.Writer) (Sink, error) {
	switch format {
	case FormatText, "":
		return TextWriter{Out: out}, nil
	case FormatJSON:
		return JSONWriter{Out: out}, nil
	case FormatYAML:
		return YAMLWriter{Out: out}, nil
	default:
		return nil, ErrUnknownFormat.F("%q", format)
	}
}

// TextWriter prints the elapsed times and their differences as plain lines.
type TextWriter struct{ Out io.Writer }

func (w TextWriter) Write(ctx context.Context, r Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(r.Measurements) == 0 {
		_, err := fmt.Fprintf(w.Out, "smoke workload passed %d times\n", r.SmokeRuns)
		return err
	}
	for _, wl := range []struct{ name, verb string }{
		{name: WorkloadPrepend, verb: "prepending"},
		{name: WorkloadPopLast, verb: "popping last"},
	} {
		list, lok := r.Lookup(ContainerLinkedList, wl.name)
		vec, vok := r.Lookup(ContainerVector, wl.name)
		if !lok || !vok {
			continue
		}
		if _, err := fmt.Fprintf(w.Out, "ListTest elapsed in   %d ns when %s\n", list.Elapsed.Nanoseconds(), wl.verb); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w.Out, "VectorTest elapsed in %d ns when %s\n", vec.Elapsed.Nanoseconds(), wl.verb); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w.Out, "Difference when %s       %d ns\n", wl.verb, (vec.Elapsed - list.Elapsed).Nanoseconds()); err != nil {
			return err
		}
	}
	return nil
}

type JSONWriter struct{ Out io.Writer }

func (w JSONWriter) Write(ctx context.Context, r Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(w.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

type YAMLWriter struct{ Out io.Writer }

func (w YAMLWriter) Write(ctx context.Context, r Report) (returnErr error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w.Out)
	defer errorkit.Finish(&returnErr, enc.Close)
	enc.SetIndent(2)
	return enc.Encode(r)
}

package todolist

import (
	"context"

	"github.com/asecurityteam/logevent/v2"
	"github.com/rs/xstats"
)

// telemetryFunction attaches a logger and stat client to each invocation.
// The native lambda modes have no HTTP runtime to do this for them.
type telemetryFunction struct {
	Function
	Name   string
	Logger Logger
	Stat   Stat
}

func (f *telemetryFunction) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	logger := f.Logger.Copy()
	logger.SetField("function", f.Name)
	ctx = logevent.NewContext(ctx, logger)
	ctx = xstats.NewContext(ctx, f.Stat)
	return f.Function.Invoke(ctx, b)
}

// telemetryFetcher wraps fetched functions in a telemetryFunction.
type telemetryFetcher struct {
	Logger  Logger
	Stat    Stat
	Fetcher Fetcher
}

// Fetch calls the underlying Fetcher and adds log and stat injection.
func (f *telemetryFetcher) Fetch(ctx context.Context, name string) (Function, error) {
	r, err := f.Fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	return &telemetryFunction{Function: r, Name: name, Logger: f.Logger, Stat: f.Stat}, nil
}

package todolist

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/xstats"
)

const (
	// BuildModeHTTP is the standard mode of running an HTTP server
	// that implements parts of the Lambda API and the REST resources.
	BuildModeHTTP = "http"
	// BuildModeHTTPMock runs the HTTP server but with mocked versions
	// of the lambda functions loaded.
	BuildModeHTTPMock = "http_mock"
	// BuildModeLambda runs the official lambda server using the lambda
	// SDK. Using this mode requires the TargetFunction value to be set.
	BuildModeLambda = "lambda"
	// BuildModeLambdaMock runs the official lambda server using the lambda
	// SDK but with a mocked version of the loaded function. Using this mode
	// requires the TargetFunction value to be set.
	BuildModeLambdaMock = "lambda_mock"

	settingsPrefix = "todolist"
)

var (
	// BuildMode determines the behavior of the Start method. There
	// are several ways to use this value. The suggested way is through
	// build variables by adding `-ldflags "-X github.com/asecurityteam/todolist.BuildMode=<value>"`
	// to `go build` or `go run` commands. If you want to use environment variables
	// instead then you can set this variable in code before calling Start
	// like `todolist.BuildMode=os.Getenv("MYENVVAR")`.
	//
	// Alternatively, the StartMode() method may be used if you prefer to pass in
	// parameters via code rather than toggling the global setting.
	BuildMode = BuildModeHTTP
	// TargetFunction is used when building in a native lambda mode to select a
	// single function to run. This value can be set in all the same ways as the
	// BuildMode value.
	TargetFunction = ""
	// LambdaStartFn is the entry point of the native lambda runtime. It is
	// replaceable so the native modes can run outside of AWS.
	LambdaStartFn = lambda.StartHandler
)

// Start is a replacement for the lambda.Start method that introduces new
// features. By default, this method will start the lambda HTTP API and
// will invoke methods loaded using the given Fetcher.
func Start(ctx context.Context, s settings.Source, f Fetcher) error {
	return StartMode(ctx, s, f, BuildMode, TargetFunction)
}

// StartMode works just like Start but allows for explicit passing of the build
// mode and target function.
func StartMode(ctx context.Context, s settings.Source, f Fetcher, mode string, target string) error {
	switch {
	case strings.EqualFold(mode, BuildModeHTTP):
		return StartHTTP(ctx, s, f)
	case strings.EqualFold(mode, BuildModeHTTPMock):
		return StartHTTPMock(ctx, s, f)
	case strings.EqualFold(mode, BuildModeLambda):
		return StartLambda(ctx, s, f, target)
	case strings.EqualFold(mode, BuildModeLambdaMock):
		return StartLambdaMock(ctx, s, f, target)
	default:
		return fmt.Errorf("unknown build mode %s", mode)
	}
}

func newHTTPRuntime(ctx context.Context, s settings.Source, f Fetcher, mockMode bool) (*runhttp.Runtime, error) {
	conf := &RouterConfig{
		Fetcher:  f,
		MockMode: mockMode,
	}
	router := NewRouter(conf)
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		rtC,
		rt,
	)
	return rt, err
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, f Fetcher) error {
	rt, err := newHTTPRuntime(ctx, s, f, false)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartHTTPMock runs the HTTP API with mocked out functions.
func StartHTTPMock(ctx context.Context, s settings.Source, f Fetcher) error {
	rt, err := newHTTPRuntime(ctx, s, &MockingFetcher{Fetcher: f}, true)
	if err != nil {
		return err
	}
	return rt.Run()
}

// LambdaConfig contains settings for the native lambda modes.
type LambdaConfig struct {
	LogLevel string `description:"The minimum level of logs to emit. One of DEBUG, INFO, WARN, ERROR."`
}

// Name of the config root.
func (*LambdaConfig) Name() string {
	return "lambda"
}

// LambdaComponent implements the settings.Component interface.
type LambdaComponent struct{}

// Settings generates a config populated with defaults.
func (*LambdaComponent) Settings() *LambdaConfig {
	return &LambdaConfig{LogLevel: "INFO"}
}

// New generates the native lambda runtime. The lambda environment collects
// stdout so logs go there. There is no stat sink.
func (*LambdaComponent) New(_ context.Context, conf *LambdaConfig) (*LambdaRuntime, error) {
	return &LambdaRuntime{
		Logger: logevent.New(logevent.Config{Level: conf.LogLevel, Output: os.Stdout}),
		Stat:   xstats.FromContext(context.Background()),
	}, nil
}

// LambdaRuntime runs one function under the official lambda SDK.
type LambdaRuntime struct {
	Logger Logger
	Stat   Stat
}

// Start fetches the target function and hands it to LambdaStartFn. Every
// invocation receives the runtime's logger and stat client.
func (rt *LambdaRuntime) Start(ctx context.Context, f Fetcher, target string) error {
	f = &telemetryFetcher{Logger: rt.Logger, Stat: rt.Stat, Fetcher: f}
	fn, err := f.Fetch(ctx, target)
	if err != nil {
		return err
	}
	LambdaStartFn(fn)
	return nil
}

func newLambdaRuntime(ctx context.Context, s settings.Source) (*LambdaRuntime, error) {
	rt := new(LambdaRuntime)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		&LambdaComponent{},
		rt,
	)
	return rt, err
}

// StartLambda runs the target function from the fetcher as the
// native lambda server.
func StartLambda(ctx context.Context, s settings.Source, f Fetcher, target string) error {
	if target == "" {
		return fmt.Errorf("build mode %s requires a target function", BuildModeLambda)
	}
	rt, err := newLambdaRuntime(ctx, s)
	if err != nil {
		return err
	}
	return rt.Start(ctx, f, target)
}

// StartLambdaMock starts the native lambda server with a mocked out function.
func StartLambdaMock(ctx context.Context, s settings.Source, f Fetcher, target string) error {
	return StartLambda(ctx, s, &MockingFetcher{Fetcher: f}, target)
}

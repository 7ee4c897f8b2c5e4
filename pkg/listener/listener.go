// Package listener satisfies the "serve HTTP requests" contract of a Go
// web framework inside the AWS Lambda execution environment. Instead of
// binding a socket it registers a per-invocation handler with the Lambda
// runtime; the runtime's invocation loop takes the place of an accept
// loop. Routing, middleware and dispatch stay entirely inside the wrapped
// framework, which only needs to implement http.Handler.
package listener

import (
	"net"
	"net/http"

	"gin-lambda-listener/internal/config"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

// StartFunc registers a per-invocation handler with the serverless runtime
// and drives its invocation loop for the process lifetime. The production
// implementation is lambda.Start.
type StartFunc func(handler interface{})

// Option configures a Listener
type Option func(*Listener)

// WithLogger sets the logger used for invocation and lifecycle logging
func WithLogger(log *logrus.Logger) Option {
	return func(l *Listener) {
		l.log = log
		l.adapter.log = log
	}
}

// WithStartFunc replaces the runtime registration function. Used in tests
// to drive invocations without a real Lambda runtime.
func WithStartFunc(start StartFunc) Option {
	return func(l *Listener) {
		l.start = start
	}
}

// Listener connects an http.Handler to the Lambda invocation loop
type Listener struct {
	adapter *Adapter
	log     *logrus.Logger
	start   StartFunc
}

// New creates a Listener that serves handler, one invocation at a time
func New(handler http.Handler, opts ...Option) *Listener {
	l := &Listener{
		adapter: NewAdapter(handler, nil),
		log:     logrus.StandardLogger(),
		start:   awslambda.Start,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Listen registers the invocation adapter with the Lambda runtime and
// blocks for the lifetime of the process. It fails only when registration
// itself is impossible, i.e. when the required Lambda execution
// environment is absent; a single bad invocation never reaches this error
// path because the adapter converts it into an HTTP response instead.
func (l *Listener) Listen() error {
	rc := config.GetRuntimeConfig()
	if !rc.IsLambda {
		return &FatalError{Err: ErrNotLambda}
	}

	l.log.WithFields(logrus.Fields{
		"function": rc.FunctionName,
		"version":  rc.FunctionVersion,
		"region":   rc.Region,
	}).Info("Registering Lambda invocation handler")

	l.start(l.adapter.Invoke)
	return nil
}

// Addr reports a synthetic sentinel address. No socket exists under Lambda
// invocation, so unlike a net.Listener there is no real local address to
// report; this deviation from the usual listener contract is deliberate.
func (l *Listener) Addr() net.Addr {
	return lambdaAddr{function: config.GetRuntimeConfig().FunctionName}
}

type lambdaAddr struct {
	function string
}

func (a lambdaAddr) Network() string { return "lambda" }

func (a lambdaAddr) String() string {
	if a.function == "" {
		return "lambda:unbound"
	}
	return "lambda:" + a.function
}

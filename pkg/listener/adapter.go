package listener

import (
	"context"
	"fmt"
	"net/http"

	"gin-lambda-listener/pkg/event"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/sirupsen/logrus"
)

// Adapter drives a single Lambda invocation through the wrapped handler:
// translate the incoming event into an *http.Request, dispatch it, and
// translate the captured response back into an outgoing event. It holds no
// per-invocation state; every invocation constructs and discards its own
// request and recorder, so warm-instance reuse is never relied on.
type Adapter struct {
	handler http.Handler
	log     *logrus.Logger
}

// NewAdapter creates an Adapter dispatching to handler
func NewAdapter(handler http.Handler, log *logrus.Logger) *Adapter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Adapter{handler: handler, log: log}
}

// Invoke handles one invocation. It always returns a well-formed response
// and a nil error: conversion failures on ingress become a 400, handler
// panics and conversion failures on egress become a 500. Returning an
// error to the runtime would surface as a fatal invocation failure and
// trigger the platform's retry behavior, which is never warranted for a
// per-request problem.
func (a *Adapter) Invoke(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	log := a.invocationLogger(ctx)

	req, err := event.NewRequest(ctx, ev)
	if err != nil {
		log.WithError(err).Warn("Rejecting malformed event")
		return errorEvent(http.StatusBadRequest, err.Error()), nil
	}

	recorder := event.NewResponseRecorder()
	if err := a.serve(recorder, req); err != nil {
		log.WithError(err).Error("Handler failed")
		return errorEvent(http.StatusInternalServerError, "internal server error"), nil
	}

	out, err := recorder.Event()
	if err != nil {
		log.WithError(err).Error("Failed to convert response")
		return errorEvent(http.StatusInternalServerError, "internal server error"), nil
	}
	return out, nil
}

// serve dispatches to the handler, converting a propagated panic into an
// error. Frameworks like gin already turn handler panics into 5xx
// responses; this guard covers handlers that do not.
func (a *Adapter) serve(w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	a.handler.ServeHTTP(w, r)
	return nil
}

func (a *Adapter) invocationLogger(ctx context.Context) *logrus.Entry {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return a.log.WithField("request_id", lc.AwsRequestID)
	}
	return logrus.NewEntry(a.log)
}

// errorEvent synthesizes a diagnostic JSON response. The message for 5xx
// responses is a fixed generic string so internal error detail is never
// echoed to the caller.
func errorEvent(status int, message string) events.APIGatewayProxyResponse {
	body := fmt.Sprintf("{%q: %q}", "error", message)
	return events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           map[string]string{"Content-Type": "application/json"},
		MultiValueHeaders: map[string][]string{"Content-Type": {"application/json"}},
		Body:              body,
		IsBase64Encoded:   false,
	}
}

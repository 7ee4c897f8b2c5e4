package event

import (
	"bytes"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// ResponseRecorder is an http.ResponseWriter that captures the handler's
// response in memory so it can be translated into an outgoing API Gateway
// event. A fresh recorder is created per invocation; nothing is shared
// across invocations.
type ResponseRecorder struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
	readErr     error
}

// NewResponseRecorder creates a new ResponseRecorder
func NewResponseRecorder() *ResponseRecorder {
	return &ResponseRecorder{header: make(http.Header)}
}

// Header returns the header map that will be sent on the outgoing event
func (r *ResponseRecorder) Header() http.Header {
	return r.header
}

// Write appends b to the response body, implicitly writing a 200 status
// if WriteHeader has not been called.
func (r *ResponseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.body.Write(b)
}

// WriteHeader records the status code. Only the first call has an effect,
// matching net/http semantics.
func (r *ResponseRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
}

// ReadFrom drains src into the response body, recording any read error so
// that Event can surface it as a body read failure. io.Copy picks this up
// when a handler streams its body into the writer.
func (r *ResponseRecorder) ReadFrom(src io.Reader) (int64, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	n, err := r.body.ReadFrom(src)
	if err != nil {
		r.readErr = err
	}
	return n, err
}

// Event translates the recorded response into an outgoing API Gateway
// event. The body is classified by Content-Type and UTF-8 validity, and
// IsBase64Encoded is set to exactly match how the body string was encoded.
// Headers are re-split into the single-value and multi-value maps of the
// event schema at this egress boundary.
func (r *ResponseRecorder) Event() (events.APIGatewayProxyResponse, error) {
	if r.readErr != nil {
		return events.APIGatewayProxyResponse{}, NewConversionError("Event", ErrBodyReadFailure)
	}

	status := r.status
	if !r.wroteHeader {
		status = http.StatusOK
	}
	if status < 100 || status > 999 {
		return events.APIGatewayProxyResponse{}, NewConversionError("Event", ErrInvalidStatus)
	}

	headers := make(map[string]string, len(r.header))
	multiValueHeaders := make(map[string][]string, len(r.header))
	for name, values := range r.header {
		if len(values) == 0 {
			continue
		}
		headers[name] = values[len(values)-1]
		multiValueHeaders[name] = values
	}

	body := r.body.Bytes()
	binary := IsBinary(r.header.Get("Content-Type"), body)

	return events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           headers,
		MultiValueHeaders: multiValueHeaders,
		Body:              EncodeBody(body, binary),
		IsBase64Encoded:   binary,
	}, nil
}

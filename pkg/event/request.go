package event

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

type contextKey string

// proxyContextKey is the key under which the API Gateway request context
// rides along in the request context.
const proxyContextKey = contextKey("apigw_request_context")

// RequestContext returns the API Gateway request context attached to a
// request produced by NewRequest.
func RequestContext(ctx context.Context) (events.APIGatewayProxyRequestContext, bool) {
	rc, ok := ctx.Value(proxyContextKey).(events.APIGatewayProxyRequestContext)
	return rc, ok
}

// NewRequest converts an inbound API Gateway proxy event into a standard
// *http.Request ready for dispatch to any http.Handler. The conversion is
// purely structural: it fails only on malformed input, never on transient
// conditions. The single-value and multi-value header/query maps of the
// event are unified into one multi-valued representation on ingress.
func NewRequest(ctx context.Context, ev events.APIGatewayProxyRequest) (*http.Request, error) {
	if !validMethod(ev.HTTPMethod) {
		return nil, NewConversionError("NewRequest", ErrInvalidMethod)
	}

	body, err := DecodeBody(ev.Body, ev.IsBase64Encoded)
	if err != nil {
		return nil, err
	}

	u := url.URL{
		Path:     ev.Path,
		RawQuery: unifyValues(ev.QueryStringParameters, ev.MultiValueQueryStringParameters).Encode(),
	}

	ctx = context.WithValue(ctx, proxyContextKey, ev.RequestContext)
	req, err := http.NewRequestWithContext(ctx, ev.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, NewConversionError("NewRequest", err)
	}

	for name, values := range unifyValues(ev.Headers, ev.MultiValueHeaders) {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	req.ContentLength = int64(len(body))
	if host := req.Header.Get("Host"); host != "" {
		req.Host = host
	}
	if ip := ev.RequestContext.Identity.SourceIP; ip != "" {
		req.RemoteAddr = ip
	}

	return req, nil
}

// unifyValues merges the single-value and multi-value maps of the API
// Gateway event schema into one multi-valued mapping. The multi-value map
// wins when a key appears in both, since the single-value map only carries
// the last value.
func unifyValues(single map[string]string, multi map[string][]string) url.Values {
	unified := make(url.Values, len(single)+len(multi))
	for key, values := range multi {
		unified[key] = values
	}
	for key, value := range single {
		if _, ok := unified[key]; !ok {
			unified[key] = []string{value}
		}
	}
	return unified
}

// validMethod checks an HTTP method against the token grammar of RFC 7230
func validMethod(method string) bool {
	if method == "" {
		return false
	}
	return !strings.ContainsFunc(method, func(r rune) bool {
		return r <= ' ' || r >= 0x7f || strings.ContainsRune(`()<>@,;:\"/[]?={}`, r)
	})
}

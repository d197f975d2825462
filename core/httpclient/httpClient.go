package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

var log = logger.GetOrCreate("core/httpclient")

const (
	contentTypeJSON    = "application/json"
	maxBodyInErrorSize = 256
	maxConnWaitTimeout = 10 * time.Second
)

// ArgsHttpClient holds the arguments needed to create a new JSON http client
type ArgsHttpClient struct {
	BaseURL        string
	RequestTimeout time.Duration
	Headers        map[string]string
	Marshaller     marshal.Marshalizer
}

type httpClient struct {
	client         *fasthttp.Client
	baseURL        string
	requestTimeout time.Duration
	headers        map[string]string
	marshaller     marshal.Marshalizer
}

// NewHttpClient creates a JSON over http client for the provided base URL
func NewHttpClient(args ArgsHttpClient) (*httpClient, error) {
	if len(args.BaseURL) == 0 {
		return nil, ErrEmptyBaseURL
	}
	if args.RequestTimeout <= 0 {
		return nil, ErrInvalidRequestTimeout
	}
	if check.IfNil(args.Marshaller) {
		return nil, ErrNilMarshaller
	}

	headers := make(map[string]string, len(args.Headers))
	for key, value := range args.Headers {
		headers[key] = value
	}

	return &httpClient{
		client: &fasthttp.Client{
			MaxConnWaitTimeout: maxConnWaitTimeout,
		},
		baseURL:        strings.TrimSuffix(args.BaseURL, "/"),
		requestTimeout: args.RequestTimeout,
		headers:        headers,
		marshaller:     args.Marshaller,
	}, nil
}

// Get issues a GET request and decodes the JSON answer into response. The status code is always returned
// when the remote service answered.
func (hc *httpClient) Get(ctx context.Context, path string, response interface{}) (int, error) {
	return hc.do(ctx, http.MethodGet, path, nil, response)
}

// Post issues a POST request with the JSON encoded request and decodes the JSON answer into response
func (hc *httpClient) Post(ctx context.Context, path string, request interface{}, response interface{}) (int, error) {
	body, err := hc.marshaller.Marshal(request)
	if err != nil {
		return 0, errors.Wrap(err, "cannot marshal request")
	}

	return hc.do(ctx, http.MethodPost, path, body, response)
}

// Delete issues a DELETE request
func (hc *httpClient) Delete(ctx context.Context, path string) (int, error) {
	return hc.do(ctx, http.MethodDelete, path, nil, nil)
}

func (hc *httpClient) do(ctx context.Context, method string, path string, body []byte, response interface{}) (int, error) {
	timeout, err := hc.computeTimeout(ctx)
	if err != nil {
		return 0, err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	url := hc.baseURL + path
	req.SetRequestURI(url)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, contentTypeJSON)
	for key, value := range hc.headers {
		req.Header.Set(key, value)
	}
	if body != nil {
		req.Header.SetContentType(contentTypeJSON)
		req.SetBody(body)
	}

	log.Trace("http request", "method", method, "url", url)

	err = hc.client.DoTimeout(req, resp, timeout)
	if err != nil {
		return 0, errors.Wrapf(err, "%s %s", method, url)
	}

	statusCode := resp.StatusCode()
	respBody := resp.Body()
	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return statusCode, fmt.Errorf("%w %d for %s %s: %s", ErrHttpStatus, statusCode, method, url, truncate(respBody))
	}
	if response == nil || len(respBody) == 0 {
		return statusCode, nil
	}

	err = hc.marshaller.Unmarshal(response, respBody)
	if err != nil {
		return statusCode, errors.Wrapf(err, "cannot decode response of %s %s", method, url)
	}

	return statusCode, nil
}

func (hc *httpClient) computeTimeout(ctx context.Context) (time.Duration, error) {
	err := ctx.Err()
	if err != nil {
		return 0, err
	}

	timeout := hc.requestTimeout
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}

	return timeout, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (hc *httpClient) IsInterfaceNil() bool {
	return hc == nil
}

func truncate(body []byte) string {
	if len(body) > maxBodyInErrorSize {
		return string(body[:maxBodyInErrorSize]) + "..."
	}

	return string(body)
}

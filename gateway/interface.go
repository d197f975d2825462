package gateway

import "context"

// HttpClient is the JSON transport used to reach the gateway
type HttpClient interface {
	Get(ctx context.Context, path string, response interface{}) (int, error)
	Post(ctx context.Context, path string, request interface{}, response interface{}) (int, error)
	IsInterfaceNil() bool
}

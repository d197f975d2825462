package hardware

import "context"

// HttpClient is the JSON transport used to reach the hardware bridge
type HttpClient interface {
	Post(ctx context.Context, path string, request interface{}, response interface{}) (int, error)
	IsInterfaceNil() bool
}

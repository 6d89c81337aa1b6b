package optimizer

import "context"

//go:generate mockgen -source=optimizer.go -destination=mock.go -package=optimizer

// Optimizer places task demand into free slots. Implementations return a non-empty
// response or an error wrapping domain.ErrScheduling.
type Optimizer interface {
	Optimize(ctx context.Context, req *Request) (Response, error)
}

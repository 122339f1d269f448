package gateway

import (
	"context"
	"net/http"
	"time"
)

type InFlightOptions struct {
	Max            int
	RejectStatus   int
	AcquireTimeout time.Duration
}

// InFlight limita quantas requisições são atendidas ao mesmo tempo.
//
// Com AcquireTimeout <= 0 a requisição espera por uma vaga até o cliente
// desistir; com AcquireTimeout > 0 desiste após esse prazo. Max <= 0 desliga.
func InFlight(opts InFlightOptions) func(next http.Handler) http.Handler {
	if opts.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusServiceUnavailable
	}
	sem := make(chan struct{}, opts.Max)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if opts.AcquireTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.AcquireTimeout)
				defer cancel()
			}

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}
			defer func() { <-sem }()

			next.ServeHTTP(w, r)
		})
	}
}

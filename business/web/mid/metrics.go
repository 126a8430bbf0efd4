package mid

import (
	"context"
	"net/http"

	"github.com/timo-juhani/blockchain/business/web/metrics"
	"github.com/timo-juhani/blockchain/foundation/web"
)

// Metrics updates the request and error counters published on the debug
// endpoint.
func Metrics() web.Middleware {

	// This is the actual middleware function to be executed.
	m := func(handler web.Handler) web.Handler {

		// Create the handler that will be attached in the middleware chain.
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			metrics.AddRequest()

			err := handler(ctx, w, r)
			if err != nil {
				metrics.AddError()
			}

			return err
		}

		return h
	}

	return m
}

// Package metrics constructs the metrics the node publishes on the debug
// endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockchain",
		Subsystem: "web",
		Name:      "requests_total",
		Help:      "Count of requests handled by the node's APIs.",
	})
	errorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockchain",
		Subsystem: "web",
		Name:      "errors_total",
		Help:      "Count of requests that resulted in an error.",
	})
	panicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockchain",
		Subsystem: "web",
		Name:      "panics_total",
		Help:      "Count of panics recovered while handling requests.",
	})

	blocksMinedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockchain",
		Subsystem: "node",
		Name:      "blocks_mined_total",
		Help:      "Count of blocks mined by this node.",
	})
	transactionsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockchain",
		Subsystem: "node",
		Name:      "transactions_submitted_total",
		Help:      "Count of transactions accepted into the pending pool.",
	})
	chainReplacementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockchain",
		Subsystem: "node",
		Name:      "chain_replacements_total",
		Help:      "Count of consensus resolutions that replaced the chain.",
	})
)

// AddRequest increments the request counter.
func AddRequest() { requestsTotal.Inc() }

// AddError increments the error counter.
func AddError() { errorsTotal.Inc() }

// AddPanic increments the panic counter.
func AddPanic() { panicsTotal.Inc() }

// AddBlockMined increments the mined block counter.
func AddBlockMined() { blocksMinedTotal.Inc() }

// AddTransaction increments the submitted transaction counter.
func AddTransaction() { transactionsSubmittedTotal.Inc() }

// AddChainReplacement increments the chain replacement counter.
func AddChainReplacement() { chainReplacementsTotal.Inc() }

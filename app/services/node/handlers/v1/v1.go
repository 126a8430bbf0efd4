// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/timo-juhani/blockchain/app/services/node/handlers/v1/private"
	"github.com/timo-juhani/blockchain/app/services/node/handlers/v1/public"
	"github.com/timo-juhani/blockchain/foundation/blockchain/state"
	"github.com/timo-juhani/blockchain/foundation/events"
	"github.com/timo-juhani/blockchain/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log   *zap.SugaredLogger
	State *state.State
	Evts  *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	pbl := public.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
		Evts:  cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", pbl.Events)
	app.Handle(http.MethodGet, version, "/chain/mine", pbl.Mine)
	app.Handle(http.MethodGet, version, "/chain/list", pbl.Chain)
	app.Handle(http.MethodGet, version, "/chain/validate", pbl.Validate)
	app.Handle(http.MethodGet, version, "/chain/resolve", pbl.Resolve)
	app.Handle(http.MethodPost, version, "/tx/add", pbl.AddTransaction)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", pbl.Mempool)
	app.Handle(http.MethodPost, version, "/peers/add", pbl.AddPeers)
	app.Handle(http.MethodGet, version, "/peers/list", pbl.Peers)
}

// PrivateRoutes binds all the version 1 private routes.
func PrivateRoutes(app *web.App, cfg Config) {
	prv := private.Handlers{
		Log:   cfg.Log,
		State: cfg.State,
	}

	app.Handle(http.MethodGet, version, "/node/chain/list", prv.Chain)
	app.Handle(http.MethodGet, version, "/node/status", prv.Status)
}

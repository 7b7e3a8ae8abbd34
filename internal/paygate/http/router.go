package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/paygate/internal/paygate/service"
	"github.com/aussiebroadwan/paygate/internal/paygate/store"
	"github.com/aussiebroadwan/paygate/pkg/httpx"
	"github.com/aussiebroadwan/paygate/pkg/jwtx"
	"github.com/aussiebroadwan/paygate/pkg/slogx"

	_ "github.com/aussiebroadwan/paygate/api/paygate" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer           *jwtx.Signer
	buildVersion     string
	secretConfigured bool
	startTime        time.Time
	logger           *slog.Logger

	store            store.Store
	DocumentService  *service.DocumentService
	GateService      *service.GateService
	VerifyService    *service.VerifyService
	PublishService   *service.PublishService
	PublisherService *service.PublisherService
}

func NewRouter(
	signer *jwtx.Signer,
	buildVersion string,
	secretConfigured bool,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:              http.NewServeMux(),
		signer:           signer,
		buildVersion:     buildVersion,
		secretConfigured: secretConfigured,
		startTime:        time.Now(),
		store:            st,
		logger:           logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerDocuments()
	r.registerVerify()
	r.registerPublishing()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Paygate Document Library API
//	@version		0.1.0
//	@description	L402 payment-gated document library. Paid documents answer 402 with a
//	@description	Lightning invoice and a macaroon; clients settle the invoice and retry
//	@description	with "Authorization: L402 <macaroon>:<preimage>".
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/paygate
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Publisher session JWT. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerDocuments() {
	h := &DocumentsHandler{
		Documents: r.DocumentService,
		Gate:      r.GateService,
	}

	// GET /documents - public listing, high limit
	r.Mux.Handle("GET /v1/documents",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// GET /documents/{id} - gated retrieval, lenient (paid clients re-read)
	r.Mux.Handle("GET /v1/documents/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /documents/{id}/challenge - each call mints an invoice upstream,
	// so keep it strict
	r.Mux.Handle("POST /v1/documents/{id}/challenge",
		httpx.Chain(http.HandlerFunc(h.HandleChallenge),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerVerify() {
	h := &VerifyHandler{Store: r.store, Verifier: r.VerifyService}

	// POST /verify - polling endpoint; moderate limit tolerates honest
	// polling while capping callback-probe abuse
	r.Mux.Handle("POST /v1/verify",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerPublishing() {
	tokenHandler := &PublisherTokenHandler{Publishers: r.PublisherService}

	// POST /publishers/token - strict rate limit (credential guessing)
	r.Mux.Handle("POST /v1/publishers/token",
		httpx.Chain(tokenHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	h := &PublishHandler{Publish: r.PublishService}

	// POST /publish - authenticated, mints invoices upstream
	r.Mux.Handle("POST /v1/publish",
		httpx.Chain(http.HandlerFunc(h.HandleSubmit),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByPublisher(httpx.ModerateLimit),
		),
	)

	// POST /publish/{id}/complete - authenticated polling
	r.Mux.Handle("POST /v1/publish/{id}/complete",
		httpx.Chain(http.HandlerFunc(h.HandleComplete),
			httpx.AuthnMiddleware(r.signer),
			httpx.RateLimitByPublisher(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.secretConfigured),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

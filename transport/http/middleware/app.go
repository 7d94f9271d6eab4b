package middleware

import (
	"context"
	"fmt"
	"net/http"
	"reserva/config"
	"reserva/infras/otel"
	"reserva/shared/cache"
	"reserva/shared/constant"
	"reserva/shared/failure"
	"reserva/transport/http/response"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Tenant(next http.Handler) http.Handler
	APIKey(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": a.getUA(request),
			"http.host":       request.Host,
			"http.source":     a.getClientIP(request),
		})

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// Tenant requires the tenant header on every request and threads the tenant
// id and acting user through the context. There is no ambient session state;
// the tenant is always an explicit parameter.
func (a *appMiddleware) Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		tenantID := request.Header.Get(constant.RequestHeaderTenantID)
		if tenantID == "" {
			tenantID = request.URL.Query().Get("tenant_id")
		}

		if tenantID == "" {
			response.WithError(writer, failure.BadRequestFromString("missing tenant id"))

			return
		}

		ctx := context.WithValue(request.Context(), constant.ContextKeyTenantID, tenantID)

		if user := request.Header.Get(constant.RequestHeaderUserID); user != "" {
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, user)
		}

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// APIKey guards the API when a key is configured. Requests without a matching
// key are rejected; with no key configured every request passes.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if a.config.App.APIKey == "" {
			next.ServeHTTP(writer, request)

			return
		}

		if request.Header.Get(constant.RequestHeaderAPIKey) != a.config.App.APIKey {
			response.WithError(writer, failure.Unauthorized("invalid api key"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}

package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"eats/internal/adapters/in/http/api"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const (
	callerKey = "caller"

	// TokenHeader is accepted besides "Authorization: Bearer".
	TokenHeader = "X-Jwt"

	ReasonForbiddenResource = "Forbidden resource"

	// APIPrefix marks the paths the OpenAPI document owns.
	APIPrefix = "/api/"
)

// Authenticate resolves the bearer token into a caller. A missing or
// invalid token leaves the request anonymous; the route guard decides
// whether that is enough.
func Authenticate(issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token := bearerToken(c.Request()); token != "" {
				if caller, err := issuer.Parse(token); err == nil {
					c.Set(callerKey, caller)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get(echo.HeaderAuthorization); header != "" {
		scheme, token, found := strings.Cut(header, " ")
		if found && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(token)
		}
	}
	return strings.TrimSpace(r.Header.Get(TokenHeader))
}

// CallerFrom returns the authenticated caller of the request.
func CallerFrom(c echo.Context) (user.Caller, bool) {
	caller, ok := c.Get(callerKey).(user.Caller)
	return caller, ok
}

// OpenAPIGuard enforces the x-roles of each documented operation and
// validates the request against the document. A path under /api/ that the
// document does not describe is refused. Other paths such as /health pass
// through untouched.
type OpenAPIGuard struct {
	router     routers.Router
	authorizer services.RoleAuthorizer
	options    *openapi3filter.Options
	logger     *slog.Logger
}

func NewOpenAPIGuard(doc *openapi3.T, authorizer services.RoleAuthorizer, logger *slog.Logger) (*OpenAPIGuard, error) {
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return &OpenAPIGuard{
		router:     router,
		authorizer: authorizer,
		options: &openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			MultiError:         false,
		},
		logger: logger.With("component", "OpenAPIGuard"),
	}, nil
}

func (g *OpenAPIGuard) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		route, pathParams, err := g.router.FindRoute(req)
		if err != nil {
			if !strings.HasPrefix(req.URL.Path, APIPrefix) {
				return next(c)
			}
			g.logger.Debug("Refusing undocumented API route", "method", req.Method, "path", req.URL.Path)
			return routeMiss(err)
		}

		var caller *user.Caller
		if authenticated, ok := CallerFrom(c); ok {
			caller = &authenticated
		}
		if !g.authorizer.Authorize(RequiredRoles(route.Operation), caller) {
			return echo.NewHTTPError(http.StatusForbidden, ReasonForbiddenResource)
		}

		if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
			return next(c)
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
			Options:    g.options,
		}
		if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, validationReason(err))
		}

		return next(c)
	}
}

func routeMiss(err error) error {
	var routeErr *routers.RouteError
	if errors.As(err, &routeErr) && routeErr.Reason == routers.ErrMethodNotAllowed.Error() {
		return echo.ErrMethodNotAllowed
	}
	return echo.ErrNotFound
}

// RequiredRoles reads the x-roles extension of op.
func RequiredRoles(op *openapi3.Operation) []user.AllowedRole {
	if op == nil {
		return nil
	}
	raw, ok := op.Extensions[api.RolesExtension].([]any)
	if !ok {
		return nil
	}
	roles := make([]user.AllowedRole, 0, len(raw))
	for _, r := range raw {
		if label, ok := r.(string); ok {
			roles = append(roles, user.AllowedRole(label))
		}
	}
	return roles
}

func validationReason(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		if requestErr.Parameter != nil {
			return fmt.Sprintf("Invalid parameter %s", requestErr.Parameter.Name)
		}
		if requestErr.RequestBody != nil {
			var schemaErr *openapi3.SchemaError
			if errors.As(err, &schemaErr) {
				return "Invalid request body: " + schemaErr.Reason
			}
			return "Invalid request body"
		}
	}
	return "Invalid request"
}

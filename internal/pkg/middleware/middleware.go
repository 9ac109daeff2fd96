package middleware

import (
	"fmt"
	"strings"

	"wedding-marketplace/config"
	"wedding-marketplace/internal/pkg/errors"
	"wedding-marketplace/internal/pkg/helpers"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type Middleware struct {
	Log        *otelzap.Logger
	HttpClient *circuit.HTTPClient
	CfgAuth    *config.AuthServiceConfig
}

type authValidateResponse struct {
	IsValid bool   `json:"is_valid"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
	Email   string `json:"email"`
}

// ValidateToken resolves the bearer token into a trusted actor identity
// (couple, vendor or admin) through the auth service. Every mutating route
// sits behind this.
func (m *Middleware) ValidateToken(ctx *fiber.Ctx) error {
	auth := ctx.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		m.Log.Ctx(ctx.UserContext()).Error("error get token from header")
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error get token from header"))
	}
	token := strings.TrimPrefix(auth, "Bearer ")

	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", m.CfgAuth.Host, m.CfgAuth.Port, token)
	resp, err := m.HttpClient.Get(url)
	if err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate token: status %d", resp.StatusCode))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	var respData authValidateResponse
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error decode token response: %v", err))
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("error validate token"))
	}

	if !respData.IsValid {
		return helpers.RespError(ctx, m.Log, errors.UnauthorizedError("invalid token"))
	}

	ctx.Locals("user_id", respData.UserID)
	ctx.Locals("role", respData.Role)
	ctx.Locals("email_user", respData.Email)

	return ctx.Next()
}

// RequireRole guards routes that only one side of the marketplace may call.
func (m *Middleware) RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, _ := ctx.Locals("role").(string)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		m.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("role %q not allowed", role))
		return helpers.RespError(ctx, m.Log, errors.ForbiddenError("actor role not allowed for this operation"))
	}
}

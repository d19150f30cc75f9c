package middlewares

import (
	"strings"

	errprocess "entrust_service/pkg/err"
	"entrust_service/pkg/token"

	"github.com/gofiber/fiber/v2"
)

const (
	//QueryToken token in query name
	QueryToken = "auth"

	//CookieToken token in cookie name
	CookieToken = "auth_token"

	//TokenUID get uid form token, set c.locals name
	TokenUID = "uid"
	//TokenRole get role form token, set c.locals name
	TokenRole = "role"
)

// JWTMiddleware validates the JWT from the Authorization header, the auth query or the auth_token cookie
func JWTMiddleware(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := bearer(c.Get(fiber.HeaderAuthorization))
		if tokenStr == "" {
			tokenStr = c.Query(QueryToken)
		}
		if tokenStr == "" {
			tokenStr = c.Cookies(CookieToken)
		}
		if tokenStr == "" {
			return errprocess.New(errprocess.KindUnauthorized, "missing token")
		}

		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			return errprocess.Wrap(errprocess.KindUnauthorized, err, "invalid token")
		}

		c.Locals(TokenUID, claims.UID)
		c.Locals(TokenRole, claims.Role)
		return c.Next()
	}
}

// UID requester uid set by JWTMiddleware
func UID(c *fiber.Ctx) (int64, error) {
	uid, ok := c.Locals(TokenUID).(int64)
	if !ok {
		return 0, errprocess.New(errprocess.KindUnauthorized, "missing identity")
	}
	return uid, nil
}

func bearer(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

package middleware

import "github.com/labstack/echo/v4"

// currentUserID resolves the identity a rate-limit bucket should be
// keyed on.  Authenticated requests use the JWT subject stored by
// JWTAuth; everything else shares the "anon" bucket.
func currentUserID(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s
	}
	return "anon"
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const minJWTSecretLen = 32

// Validate reports every rule the configuration breaks. Load calls it.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	a := c.Auth
	check(len(a.JWTSecret) >= minJWTSecretLen, "auth.jwt_secret must be at least %d characters (got %d)", minJWTSecretLen, len(a.JWTSecret))
	check(a.AccessTokenTTL > 0, "auth.access_token_ttl must be > 0 (got %s)", a.AccessTokenTTL)
	check(strings.TrimSpace(a.CookieName) != "", "auth.cookie_name must not be empty")
	check(a.BcryptCost >= bcrypt.MinCost && a.BcryptCost <= bcrypt.MaxCost,
		"auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, a.BcryptCost)

	check(c.Server.Port > 0 && c.Server.Port <= 65535, "server.port must be in 1..65535 (got %d)", c.Server.Port)
	check(c.Database.MinConns <= c.Database.MaxConns,
		"database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	check(c.RateLimit.LoginPerMinute > 0, "rate_limit.login_per_minute must be > 0 (got %d)", c.RateLimit.LoginPerMinute)

	return errors.Join(errs...)
}

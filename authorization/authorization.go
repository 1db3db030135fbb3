package authorization

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/alamin516/roombooking-server/domain"
	"github.com/alamin516/roombooking-server/errors"
	"github.com/cristalhq/jwt/v4"
)

const tokenDuration = 24 * time.Hour

// KeyClaims is the context key under which verified token claims are
// stored for downstream handlers.
type KeyClaims struct{}

type TokenManager struct {
	signer   jwt.Signer
	verifier jwt.Verifier
}

func NewTokenManager(secret []byte) (*TokenManager, error) {
	signer, err := jwt.NewSignerHS(jwt.HS256, secret)
	if err != nil {
		return nil, err
	}

	verifier, err := jwt.NewVerifierHS(jwt.HS256, secret)
	if err != nil {
		return nil, err
	}

	return &TokenManager{
		signer:   signer,
		verifier: verifier,
	}, nil
}

// Generate signs the submitted profile fields as-is, adding only the
// expiry claim. Whatever the client sent ends up in the token payload.
func (manager *TokenManager) Generate(profile domain.Profile) (string, error) {
	return manager.generateWithExpiry(profile, time.Now().Add(tokenDuration))
}

func (manager *TokenManager) generateWithExpiry(profile domain.Profile, expiresAt time.Time) (string, error) {
	claims := make(map[string]interface{}, len(profile)+1)
	for field, value := range profile {
		claims[field] = value
	}
	claims["exp"] = jwt.NewNumericDate(expiresAt)

	token, err := jwt.NewBuilder(manager.signer).Build(claims)
	if err != nil {
		return "", err
	}

	return token.String(), nil
}

// Verify checks signature and expiry and returns the embedded claims.
func (manager *TokenManager) Verify(tokenString string) (domain.Profile, error) {
	token, err := jwt.Parse([]byte(tokenString), manager.verifier)
	if err != nil {
		return nil, fmt.Errorf(errors.InvalidTokenError)
	}

	var registered jwt.RegisteredClaims
	if err := json.Unmarshal(token.Claims(), &registered); err != nil {
		return nil, fmt.Errorf(errors.InvalidTokenError)
	}
	if !registered.IsValidExpiresAt(time.Now()) {
		return nil, fmt.Errorf(errors.ExpiredTokenError)
	}

	var claims domain.Profile
	if err := json.Unmarshal(token.Claims(), &claims); err != nil {
		return nil, fmt.Errorf(errors.InvalidTokenError)
	}

	return claims, nil
}

// Middleware gates a route behind a bearer token. A missing or malformed
// Authorization header is a 401, a token that fails verification is a 403.
func (manager *TokenManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		bearer := req.Header.Get("Authorization")
		if bearer == "" {
			http.Error(writer, errors.UnauthorizedError, http.StatusUnauthorized)
			return
		}

		bearerToken := strings.Split(bearer, "Bearer ")
		if len(bearerToken) != 2 {
			http.Error(writer, errors.UnauthorizedError, http.StatusUnauthorized)
			return
		}

		claims, err := manager.Verify(bearerToken[1])
		if err != nil {
			http.Error(writer, errors.ForbiddenError, http.StatusForbidden)
			return
		}

		ctx := context.WithValue(req.Context(), KeyClaims{}, claims)
		next.ServeHTTP(writer, req.WithContext(ctx))
	})
}

// ClaimsFromContext returns the claims stashed by Middleware, or nil when
// the route was not token-gated.
func ClaimsFromContext(ctx context.Context) domain.Profile {
	claims, ok := ctx.Value(KeyClaims{}).(domain.Profile)
	if !ok {
		return nil
	}
	return claims
}

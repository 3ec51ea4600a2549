package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SleeperKt/GoogleTeamRepo/internal/api/shared"
	"github.com/SleeperKt/GoogleTeamRepo/internal/redact"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultClockSkew is the leeway applied to time-based token claims.
const DefaultClockSkew = 30 * time.Second

// CallerIdentity reads an optional HS256 bearer token and, when it is valid,
// attaches the caller to the request context. It never rejects a request:
// missing, malformed and expired tokens are logged and the request proceeds
// anonymously.
type CallerIdentity struct {
	secret    []byte
	clockSkew time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewCallerIdentity creates the middleware. An empty secret disables token
// parsing entirely.
func NewCallerIdentity(secret string, logger *slog.Logger) *CallerIdentity {
	if logger == nil {
		logger = slog.Default()
	}
	return &CallerIdentity{
		secret:    []byte(secret),
		clockSkew: DefaultClockSkew,
		logger:    logger.With("component", "caller_identity"),
		now:       time.Now,
	}
}

// Enabled reports whether tokens are parsed at all.
func (m *CallerIdentity) Enabled() bool {
	return len(m.secret) > 0
}

// Handler returns the middleware handler.
func (m *CallerIdentity) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.Enabled() {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		caller, err := m.parse(token)
		if err != nil {
			m.logger.DebugContext(r.Context(), "ignoring invalid bearer token",
				"trace_id", shared.GetTraceID(r.Context()),
				"error", redact.Error(err))
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithCaller(r.Context(), caller)))
	})
}

func (m *CallerIdentity) parse(tokenString string) (shared.Caller, error) {
	claims := &jwt.RegisteredClaims{}
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(m.clockSkew),
		jwt.WithTimeFunc(m.now),
	}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		parserOpts...)
	if err != nil {
		return shared.Caller{}, err
	}
	if !token.Valid {
		return shared.Caller{}, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return shared.Caller{}, errors.New("token has no subject")
	}

	return shared.Caller{Subject: claims.Subject, Issuer: claims.Issuer}, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type visitorKey struct{}

// Visitors issues and checks the signed cookie that ties a browser to its
// page session. It identifies a visitor; it does not authenticate anyone.
type Visitors struct {
	secret []byte
	cookie string
	ttl    time.Duration
	secure bool
	now    func() time.Time
	log    *zap.Logger
}

func NewVisitors(secret, cookieName string, ttl time.Duration, secure bool, log *zap.Logger) *Visitors {
	return &Visitors{
		secret: []byte(secret),
		cookie: cookieName,
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
		log:    log,
	}
}

// Issue signs a token whose subject is the visitor id.
func (v *Visitors) Issue(id string) (string, error) {
	now := v.now()
	claims := jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign visitor token: %w", err)
	}
	return token, nil
}

// Parse validates a token and returns the visitor id it carries.
func (v *Visitors) Parse(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(v.now))
	if err != nil {
		return "", fmt.Errorf("parse visitor token: %w", err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", errors.New("visitor token subject is not a uuid")
	}
	return claims.Subject, nil
}

// Middleware resolves the visitor from the cookie, or starts a new one when
// the cookie is missing or does not verify. The cookie is refreshed on every
// request so it expires together with the idle page session.
func (v *Visitors) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(v.cookie); err == nil {
			id, err = v.Parse(c.Value)
			if err != nil {
				v.log.Debug("Discarding visitor cookie", zap.Error(err))
			}
		}
		if id == "" {
			id = uuid.NewString()
		}

		token, err := v.Issue(id)
		if err != nil {
			v.log.Error("Could not issue visitor cookie", zap.Error(err))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     v.cookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(v.ttl.Seconds()),
			HttpOnly: true,
			Secure:   v.secure,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
	})
}

func WithVisitor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorKey{}, id)
}

// VisitorID returns the id stored by Middleware, or "" outside of it.
func VisitorID(ctx context.Context) string {
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}

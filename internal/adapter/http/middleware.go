package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"sponsored-ads/internal/core/domain"
)

type actorKey struct{}

// authClaims are the token claims campaign management relies on. The
// auth provider issuing the tokens is an external collaborator; this
// middleware only verifies the signature and extracts identity.
type authClaims struct {
	SellerID int64  `json:"seller_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// authenticate verifies the bearer token and stores the resulting
// actor in the request context. Only SELLER and ADMIN roles may reach
// the campaign-management endpoints; ownership is checked by the use
// case.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("Authorization")
		if raw == "" {
			h.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		parts := strings.SplitN(raw, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			h.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return h.secret, nil
		})
		if err != nil || !token.Valid {
			h.writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		role := domain.Role(claims.Role)
		if role != domain.RoleSeller && role != domain.RoleAdmin {
			h.writeError(w, http.StatusForbidden, "forbidden")
			return
		}

		actor := domain.Actor{SellerID: claims.SellerID, Role: role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, actor)))
	})
}

func actorFromContext(ctx context.Context) domain.Actor {
	actor, _ := ctx.Value(actorKey{}).(domain.Actor)
	return actor
}

// clientIP resolves the requester address for the rate-limiter key,
// preferring proxy headers over the socket peer.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("x-forwarded-for"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			fwd = fwd[:i]
		}
		return strings.TrimSpace(fwd)
	}
	if ip := r.Header.Get("x-real-ip"); ip != "" {
		return ip
	}
	host := r.RemoteAddr
	if i := strings.LastIndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	return host
}

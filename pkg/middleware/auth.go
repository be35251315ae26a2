package middleware

import (
	"net/http"
	"strings"

	"fraud-portal/internal/data/entity"
	"fraud-portal/internal/data/repository"
	"fraud-portal/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and puts identity id and
// role on the request context. The token is self-contained; no store lookup
// happens here.
func AuthSession(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseSessionToken(parts[1], jwtSecret)
			if err != nil {
				logger.Warn("Invalid or expired session token")
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			identityID, err := utils.ParseUUID(claims.Subject)
			if err != nil {
				logger.Warn("Session token with malformed subject")
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetIdentityContext(r.Context(), identityID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Officer requires an authenticated OFFICER. The role claim is cross-checked
// against the verified record so a stale token cannot outlive a role change.
func Officer(identities repository.IdentityRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identityID, ok := utils.GetIdentityIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			ident, err := identities.FindVerifiedByID(r.Context(), identityID)
			if err != nil {
				logger.Error("Officer check: failed to load identity",
					zap.Error(err), zap.String("identity_id", identityID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if ident == nil || ident.Role != entity.RoleOfficer {
				logger.Warn("Officer check: non-officer access attempt",
					zap.String("identity_id", identityID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Officer access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

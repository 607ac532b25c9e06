package middlware

import (
	"context"
	"net/http"
	"strings"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	"github.com/adergachev/smmstore/internal/app/handlers"
	"github.com/adergachev/smmstore/internal/app/logger"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/service"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	tokenService   service.TokenService
	userService    service.UserService
	profileService service.ProfileService
	contextTimeout time.Duration
}

func NewAuthMiddleware(tokenService service.TokenService,
	userService service.UserService,
	profileService service.ProfileService,
	contextTimeoutSec int) AuthMiddleware {
	return AuthMiddleware{
		tokenService:   tokenService,
		userService:    userService,
		profileService: profileService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), am.contextTimeout)
		defer cancel()

		authHeader := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Missing token", http.StatusUnauthorized)
			return
		}

		userEmail, err := am.tokenService.GetUserEmail(token)
		if err != nil {
			logger.Log.Error("failed to get user email", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Invalid token", http.StatusUnauthorized)
			return
		}

		user, err := am.userService.GetByUserEmail(ctx, userEmail)
		if err != nil {
			logger.Log.Error("failed to get user", zap.Error(err))
			handlers.WriteJSONErrorResponse(w, "Unauthorized: User not found", http.StatusUnauthorized)
			return
		}

		err = appContext.GetContextError(ctx)
		if err != nil {
			handlers.PrepareError(w, err)
			return
		}

		r = r.WithContext(appContext.WithUserUID(r.Context(), &user.UUID))
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates the review console. It must run after Authenticate.
func (am *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), am.contextTimeout)
		defer cancel()

		userUID := appContext.UserUID(r.Context())
		if userUID == nil {
			handlers.WriteJSONErrorResponse(w, "Unauthorized: Missing token", http.StatusUnauthorized)
			return
		}

		profile, err := am.profileService.GetProfile(ctx, userUID)
		if err != nil {
			handlers.PrepareError(w, err)
			return
		}
		if profile.Role != models.RoleAdmin {
			logger.Log.Warn("non-admin attempted to access review console",
				zap.String("userUID", userUID.String()))
			handlers.WriteJSONErrorResponse(w, "Forbidden", http.StatusForbidden)
			return
		}

		err = appContext.GetContextError(ctx)
		if err != nil {
			handlers.PrepareError(w, err)
			return
		}

		r = r.WithContext(appContext.WithUserRole(r.Context(), profile.Role))
		next.ServeHTTP(w, r)
	})
}

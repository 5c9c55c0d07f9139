package auth

import (
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/respond"
	"dispatch/internal/service/access"
	"dispatch/pkg/logger"
)

const codeUnauthorized = "UNAUTHORIZED"

// Middleware пропускает дальше только запросы с валидным JWT и кладёт Principal в контекст.
func Middleware(log handlerLogger, verifier *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := verifier.ParseHeader(r.Header.Get("Authorization"))
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("unauthenticated request")

				w.Header().Set("WWW-Authenticate", `Bearer realm="dispatch"`)
				respond.JSON(w, log, http.StatusUnauthorized, dto.Error{
					Code:    codeUnauthorized,
					Message: err.Error(),
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// Require проверяет роль вызывающего по таблице доступа до вызова ручки.
func Require(log handlerLogger, authorizer Authorizer, op access.Operation) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authorizer.Authorize(op, RoleFromContext(r.Context())); err != nil {
				respond.Error(w, log, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

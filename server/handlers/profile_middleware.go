package handlers

import (
	"context"
	"net/http"
	"strings"

	"cardapio-server/config"

	"github.com/google/uuid"
)

const PROFILE_COOKIE_MAX_AGE = 365 * 24 * 60 * 60

type profileKey struct{}

// ProfileMiddleware makes sure every request carries a visitor profile id,
// issuing the cookie on first visit. Profile ids namespace visitor storage.
func ProfileMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileID := ""
		if cookie, err := r.Cookie(config.PROFILE_COOKIE_NAME); err == nil {
			if id, err := uuid.Parse(cookie.Value); err == nil {
				profileID = id.String()
			}
		}
		if profileID == "" {
			profileID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     config.PROFILE_COOKIE_NAME,
				Value:    profileID,
				Path:     "/",
				MaxAge:   PROFILE_COOKIE_MAX_AGE,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), profileKey{}, profileID)))
	})
}

// ProfileID returns the visitor profile id set by ProfileMiddleware.
func ProfileID(r *http.Request) string {
	id, _ := r.Context().Value(profileKey{}).(string)
	return id
}

// TabID returns the tab id carried by the request, or a fresh one.
func TabID(r *http.Request) string {
	if id, err := uuid.Parse(r.FormValue(TAB_ARG)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

// SystemPrefersDark reads the Sec-CH-Prefers-Color-Scheme client hint.
func SystemPrefersDark(r *http.Request) bool {
	hint := strings.Trim(r.Header.Get(COLOR_SCHEME_HINT_HEADER), `" `)
	return strings.EqualFold(hint, "dark")
}

package session

import (
	"net/http"

	"github.com/google/uuid"
)

const cookieName = "smartcart_session"

// EnsureID returns the caller's session id, minting a new one and setting
// the cookie when the request carries none. The id keys per-session state
// such as the shopping cart.
func EnsureID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

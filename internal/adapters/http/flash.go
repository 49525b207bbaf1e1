package web

import (
	"net/http"

	"github.com/gorilla/securecookie"
)

// flashCookie is the name of the signed one-shot message cookie.
const flashCookie = "planner_flash"

// flashCodec signs flash cookies so a crafted cookie cannot inject
// markup into the next rendered page.
var flashCodec *securecookie.SecureCookie

// initFlash sets up the flash codec with the app secret.
// PRE: key is 32 bytes
func initFlash(key []byte) {
	flashCodec = securecookie.New(key, nil)
	flashCodec.MaxAge(300)
}

// setFlash stores a one-shot message for the next page load.
func setFlash(w http.ResponseWriter, msg string) {
	encoded, err := flashCodec.Encode(flashCookie, msg)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash message, if any, and clears it.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	var msg string
	if err := flashCodec.Decode(flashCookie, c.Value, &msg); err != nil {
		return ""
	}
	return msg
}

package studyblog

import (
	"crypto/rand"
	"encoding/gob"
	"encoding/hex"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const sessionName = "studyblog_session"

func init() {
	gob.Register(Flash{})
}

func (a *App) newSessionStore() *sessions.CookieStore {
	secret := a.Config.SessionSecret
	if secret == "" {
		// Flashes only need to survive one redirect, so a per-process key is enough.
		b := make([]byte, 32)
		_, _ = rand.Read(b)
		secret = hex.EncodeToString(b)
	}
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 60,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store
}

// addFlash queues f to be shown on the next rendered page.
func addFlash(c echo.Context, f Flash) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(f)
	return sess.Save(c.Request(), c.Response())
}

// popFlash returns the oldest queued flash, or nil when there is none. Any other
// queued flashes are discarded.
func (a *App) popFlash(c echo.Context) *Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		a.Logger.WithError(err).Warn("save session")
	}
	f, ok := flashes[0].(Flash)
	if !ok {
		return nil
	}
	return &f
}

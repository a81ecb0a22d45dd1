package middlewares

import (
	"context"
	"hospital-web-service/internal/app/config"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// NewSessionStore builds the signed cookie store that carries the session id.
func NewSessionStore(sessionConfig config.AppSession) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(sessionConfig.CookieSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((time.Duration(sessionConfig.CookieMaxAgeInHours) * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   sessionConfig.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Session makes sure the browser carries a session cookie and puts its id
// into the request context. View state is keyed by that id.
func (m *Middlewares) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		// A cookie that no longer decodes yields a fresh session.
		session, err := m.SessionStore.Get(r, constvars.SessionCookieName)
		if err != nil {
			m.Log.Warn("Session cookie could not be decoded, starting a new session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			session, _ = m.SessionStore.New(r, constvars.SessionCookieName)
			session.Values = make(map[interface{}]interface{})
		}

		sessionID, _ := session.Values[constvars.SessionKeyID].(string)
		if sessionID == "" {
			sessionID = utils.GenerateSessionID()
			session.Values[constvars.SessionKeyID] = sessionID
			if err := session.Save(r, w); err != nil {
				m.Log.Error("Session failed to save session cookie",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
			m.Log.Info("Anonymous session created",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			)
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

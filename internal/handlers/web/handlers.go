package web

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/KirkDiggler/joingate/internal/services/join"
	"github.com/sirupsen/logrus"
)

const logoutPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Logged out</title></head>
<body>
<h1>You have been logged out</h1>
<p>Join a server from the game again to log back in with your current roles.</p>
</body>
</html>
`

func (s *Server) handleJoin(w http.ResponseWriter, r *http.Request) {
	output, err := s.join.Join(r.Context(), &join.JoinInput{
		SessionToken:   s.cookies.read(r),
		GameInstanceID: r.URL.Query().Get("id"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.redirect(w, r, output.SessionToken, output.RedirectURL)
}

func (s *Server) handleVerifyCaptcha(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body.", http.StatusBadRequest)
		return
	}

	output, err := s.join.VerifyCaptcha(r.Context(), &join.VerifyCaptchaInput{
		SessionToken: s.cookies.read(r),
		Response:     r.PostForm.Get("h-captcha-response"),
		RemoteIP:     remoteIP(r),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.redirect(w, r, output.SessionToken, output.RedirectURL)
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	output, err := s.join.Callback(r.Context(), &join.CallbackInput{
		SessionToken: s.cookies.read(r),
		Code:         query.Get("code"),
		State:        query.Get("state"),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.log.WithFields(logrus.Fields{
		"user_id": output.Identity.ID,
		"tier":    output.Tier,
	}).Info("user logged in")

	s.redirect(w, r, output.SessionToken, output.RedirectURL)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, err := s.join.Logout(r.Context(), &join.LogoutInput{
		SessionToken: s.cookies.read(r),
	}); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.cookies.clear(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(logoutPage))
}

func (s *Server) handleSiteKey(w http.ResponseWriter, r *http.Request) {
	output, err := s.join.SiteKey(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"sitekey": output.SiteKey}); err != nil {
		s.log.WithError(err).Warn("failed to write site key")
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if err := s.health.Ping(r.Context()); err != nil {
		s.log.WithError(err).Warn("health check failed")
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	_, _ = w.Write([]byte("ok"))
}

// redirect refreshes the session cookie and sends a 302
func (s *Server) redirect(w http.ResponseWriter, r *http.Request, token, location string) {
	if token != "" {
		if err := s.cookies.write(w, token); err != nil {
			s.writeError(w, r, err)
			return
		}
	}

	http.Redirect(w, r, location, http.StatusFound)
}

// remoteIP strips the port chi's RealIP may leave on RemoteAddr
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package cli

import (
	"github.com/linguago/linguago/internal/domain/entities"
	"github.com/linguago/linguago/internal/session"
)

// route identifies a screen. Course routes additionally carry the language
// id from the route path, mirroring /course/{languageId}.
type route struct {
	name string
	lang entities.Language
}

var (
	routeLogin          = route{name: "login"}
	routeRegister       = route{name: "register"}
	routeForgotPassword = route{name: "forgot-password"}
	routeDashboard      = route{name: "dashboard"}
	routeProfile        = route{name: "profile"}
	routeQuit           = route{name: "quit"}
)

func routeCourse(lang entities.Language) route {
	return route{name: "course", lang: lang}
}

// public routes are only reachable while logged out.
func (r route) public() bool {
	switch r.name {
	case routeLogin.name, routeRegister.name, routeForgotPassword.name:
		return true
	}
	return false
}

// protected routes require an authenticated session.
func (r route) protected() bool {
	switch r.name {
	case routeDashboard.name, routeProfile.name, routeCourse("").name:
		return true
	}
	return false
}

// gate redirects unauthenticated users away from protected screens and
// authenticated users away from public screens.
func (h *Handler) gate(r route) route {
	state, _ := h.session.Snapshot()

	switch {
	case r.public() && state == session.StateAuthenticated:
		return routeDashboard
	case r.protected() && state != session.StateAuthenticated:
		return routeLogin
	}

	return r
}

// defaultRoute resolves the landing screen from the session state.
func (h *Handler) defaultRoute() route {
	state, _ := h.session.Snapshot()
	if state == session.StateAuthenticated {
		return routeDashboard
	}
	return routeLogin
}

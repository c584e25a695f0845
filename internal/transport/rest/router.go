package rest

import (
	"net/http"

	"github.com/heartmarshall/shepherd-backend/internal/domain"
	"github.com/heartmarshall/shepherd-backend/internal/transport/middleware"
)

// RouterConfig holds the handlers and per-route middleware mounted by NewRouter.
type RouterConfig struct {
	Auth       *AuthHandler
	Dashboard  *DashboardHandler
	Attendance *AttendanceHandler
	Members    *MemberHandler
	Events     *EventHandler
	Groups     *GroupHandler
	Users      *UserHandler
	Health     *HealthHandler

	// LoginLimit throttles POST /api/auth/login. Optional.
	LoginLimit middleware.Middleware
}

// NewRouter registers all routes. Authentication is expected to run before
// the returned handler; routes only check roles.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	var (
		anyone = middleware.RequireRoles(domain.UserRoleBishop, domain.UserRoleLeader)
		leader = middleware.RequireRoles(domain.UserRoleLeader)
		bishop = middleware.RequireRoles(domain.UserRoleBishop)
		handle = func(pattern string, mw middleware.Middleware, h http.HandlerFunc) { mux.Handle(pattern, mw(h)) }
		login  = http.Handler(http.HandlerFunc(cfg.Auth.Login))
	)
	if cfg.LoginLimit != nil {
		login = cfg.LoginLimit(login)
	}

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	mux.Handle("POST /api/auth/login", login)
	mux.HandleFunc("POST /api/auth/logout", cfg.Auth.Logout)
	handle("GET /api/me", anyone, cfg.Auth.Me)

	handle("GET /api/dashboard", anyone, cfg.Dashboard.Group)
	handle("GET /api/bishop/dashboard", bishop, cfg.Dashboard.Overview)

	handle("POST /api/attendance", leader, cfg.Attendance.Submit)
	handle("POST /api/attendance/mark", leader, cfg.Attendance.Mark)
	handle("GET /api/attendance", anyone, cfg.Attendance.List)

	handle("POST /api/members", leader, cfg.Members.Add)
	handle("GET /api/members", anyone, cfg.Members.List)

	handle("POST /api/events", leader, cfg.Events.Create)
	handle("GET /api/events", anyone, cfg.Events.List)

	handle("GET /api/group", anyone, cfg.Groups.Get)
	handle("POST /api/groups", bishop, cfg.Groups.Create)
	handle("GET /api/groups", bishop, cfg.Groups.List)
	handle("PUT /api/groups/{id}/leader", bishop, cfg.Groups.AssignLeader)

	handle("POST /api/users", bishop, cfg.Users.Create)
	handle("GET /api/users", bishop, cfg.Users.List)
	handle("GET /api/users/{id}", bishop, cfg.Users.Get)
	handle("PATCH /api/users/{id}", bishop, cfg.Users.Update)
	handle("DELETE /api/users/{id}", bishop, cfg.Users.Delete)

	return mux
}

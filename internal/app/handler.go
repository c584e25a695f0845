package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres"
	attendancerepo "github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/attendance"
	eventrepo "github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/event"
	grouprepo "github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/group"
	userrepo "github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/shepherd-backend/internal/auth"
	"github.com/heartmarshall/shepherd-backend/internal/config"
	"github.com/heartmarshall/shepherd-backend/internal/dataloader"
	"github.com/heartmarshall/shepherd-backend/internal/service/attendance"
	authsvc "github.com/heartmarshall/shepherd-backend/internal/service/auth"
	"github.com/heartmarshall/shepherd-backend/internal/service/dashboard"
	"github.com/heartmarshall/shepherd-backend/internal/service/event"
	"github.com/heartmarshall/shepherd-backend/internal/service/group"
	"github.com/heartmarshall/shepherd-backend/internal/service/user"
	"github.com/heartmarshall/shepherd-backend/internal/transport/middleware"
	"github.com/heartmarshall/shepherd-backend/internal/transport/rest"
)

// NewHandler wires repositories, services and handlers into the HTTP stack.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, limiter *middleware.RateLimiter) http.Handler {
	// Repositories
	users := userrepo.New(pool)
	groups := grouprepo.New(pool)
	events := eventrepo.New(pool)
	records := attendancerepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Auth primitives
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)

	// Services
	authService := authsvc.NewService(logger, users, jwtManager, hasher)
	dashboardService := dashboard.NewService(logger, groups, users, events, records)
	attendanceService := attendance.NewService(logger, groups, users, events, records, tx)
	userService := user.NewService(logger, users, groups, hasher, tx)
	groupService := group.NewService(logger, groups, users, tx)
	eventService := event.NewService(logger, groups, events)

	router := rest.NewRouter(rest.RouterConfig{
		Auth: rest.NewAuthHandler(authService, rest.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		}, logger),
		Dashboard:  rest.NewDashboardHandler(dashboardService, logger),
		Attendance: rest.NewAttendanceHandler(attendanceService, logger),
		Members:    rest.NewMemberHandler(userService, logger),
		Events:     rest.NewEventHandler(eventService, logger),
		Groups:     rest.NewGroupHandler(groupService, logger),
		Users:      rest.NewUserHandler(userService, logger),
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		LoginLimit: limiter.Limit(cfg.RateLimit.LoginPerMinute),
	})

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Authenticate(jwtManager, cfg.Auth.CookieName),
		dataloader.Middleware(&dataloader.Repos{User: users}),
	)(router)
}

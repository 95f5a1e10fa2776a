package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"ecowaste-backend/internal/security"
	"ecowaste-backend/internal/service"
)

// Services bundles everything the API surface depends on.
type Services struct {
	Auth         service.AuthService
	User         service.UserService
	Collection   service.CollectionService
	Report       service.ReportService
	Reward       service.RewardService
	Transition   service.TransitionService
	Notification service.NotificationService
	Schedule     service.ScheduleService
}

type Server struct {
	httpServer *http.Server
}

func NewServer(addr string, svcs Services, tokens security.TokenManager) *Server {
	authHandler := NewAuthHandler(svcs.Auth)
	userHandler := NewUserHandler(svcs.User)
	collectionHandler := NewCollectionHandler(svcs.Collection, svcs.Transition)
	reportHandler := NewReportHandler(svcs.Report, svcs.Transition)
	rewardHandler := NewRewardHandler(svcs.Reward)
	notificationHandler := NewNotificationHandler(svcs.Notification)
	scheduleHandler := NewScheduleHandler(svcs.Schedule, svcs.User)
	adminHandler := NewAdminHandler(svcs.User)

	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(AuthMiddleware(tokens))

	authed.HandleFunc("/profile", userHandler.Profile).Methods(http.MethodGet)
	authed.HandleFunc("/dashboard/stats", userHandler.DashboardStats).Methods(http.MethodGet)

	authed.HandleFunc("/collections", collectionHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/collections", collectionHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/collections/{id}", collectionHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/collections/{id}", collectionHandler.Delete).Methods(http.MethodDelete)
	authed.HandleFunc("/collections/{id}/status", RequireStaff(collectionHandler.UpdateStatus)).Methods(http.MethodPatch)

	authed.HandleFunc("/reports", reportHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/reports", reportHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/reports/{id}", reportHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/reports/{id}/status", RequireStaff(reportHandler.UpdateStatus)).Methods(http.MethodPatch)

	authed.HandleFunc("/rewards", rewardHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/rewards/{id}/redeem", rewardHandler.Redeem).Methods(http.MethodPost)
	authed.HandleFunc("/rewards/redemptions", rewardHandler.ListRedemptions).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/read-all", notificationHandler.MarkAllAsRead).Methods(http.MethodPatch)
	authed.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsRead).Methods(http.MethodPatch)

	authed.HandleFunc("/schedule", scheduleHandler.List).Methods(http.MethodGet)

	authed.HandleFunc("/admin/users", RequireAdmin(adminHandler.ListUsers)).Methods(http.MethodGet)
	authed.HandleFunc("/admin/users/{id}/role", RequireAdmin(adminHandler.ChangeRole)).Methods(http.MethodPatch)

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

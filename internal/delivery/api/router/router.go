// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smokebreak/internal/delivery/api/middleware"
	"smokebreak/internal/delivery/api/router/handler"
	workerhandler "smokebreak/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	GroupHandler      *handler.GroupHandler
	InvitationHandler *handler.InvitationHandler
	SessionHandler    *handler.SessionHandler
	StreamHandler     *handler.StreamHandler
	AuthMiddleware    *middleware.AuthMiddleware

	// PushHandler is set when invitation events are delivered back to this process.
	PushHandler *workerhandler.PushHandler `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	groupHandler      *handler.GroupHandler
	invitationHandler *handler.InvitationHandler
	sessionHandler    *handler.SessionHandler
	streamHandler     *handler.StreamHandler
	authMiddleware    *middleware.AuthMiddleware
	pushHandler       *workerhandler.PushHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		groupHandler:      params.GroupHandler,
		invitationHandler: params.InvitationHandler,
		sessionHandler:    params.SessionHandler,
		streamHandler:     params.StreamHandler,
		authMiddleware:    params.AuthMiddleware,
		pushHandler:       params.PushHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/google", r.authHandler.SignInWithGoogle)
		authGroup.POST("/password-reset", r.authHandler.SendPasswordReset)
		authGroup.POST("/signout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
	}

	if r.pushHandler != nil {
		e.POST("/pubsub/push", r.pushHandler.HandlePush)
	}

	// The auth stream starts signed out when no token is presented
	e.GET("/ws/auth", r.streamHandler.Auth)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/count", r.userHandler.CountUsers)
		usersGroup.GET("/departments", r.userHandler.Departments)
		usersGroup.GET("/me", r.userHandler.GetMe)
		usersGroup.PATCH("/me", r.userHandler.UpdateProfile)
		usersGroup.DELETE("/me", r.userHandler.DeleteAccount)
		usersGroup.PUT("/me/preferences", r.userHandler.UpdatePreferences)
		usersGroup.PUT("/me/online", r.userHandler.UpdateOnlineStatus)
		usersGroup.PUT("/me/fcm-token", r.userHandler.UpdateFCMToken)
		usersGroup.GET("/me/sessions", r.sessionHandler.MySessions)
		usersGroup.GET("/me/analytics", r.sessionHandler.Analytics)
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}

	groupsGroup := apiV1.Group("/groups")
	{
		groupsGroup.GET("", r.groupHandler.MyGroups)
		groupsGroup.POST("", r.groupHandler.CreateGroup)
		groupsGroup.POST("/join", r.groupHandler.JoinGroup)
		groupsGroup.GET("/public", r.groupHandler.PublicGroups)
		groupsGroup.GET("/search", r.groupHandler.SearchGroups)
		groupsGroup.GET("/created", r.groupHandler.CreatedGroups)
		groupsGroup.GET("/count", r.groupHandler.CountActiveGroups)
		groupsGroup.GET("/:id", r.groupHandler.GetGroup)
		groupsGroup.PATCH("/:id", r.groupHandler.UpdateGroup)
		groupsGroup.DELETE("/:id", r.groupHandler.DeleteGroup)
		groupsGroup.POST("/:id/deactivate", r.groupHandler.DeactivateGroup)
		groupsGroup.POST("/:id/leave", r.groupHandler.LeaveGroup)
		groupsGroup.GET("/:id/qr", r.groupHandler.InviteQRCode)
		groupsGroup.PUT("/:id/members/:userId/role", r.groupHandler.SetMemberRole)
		groupsGroup.DELETE("/:id/members/:userId", r.groupHandler.RemoveMember)

		groupsGroup.GET("/:id/invitations", r.invitationHandler.ForGroup)
		groupsGroup.GET("/:id/invitations/active", r.invitationHandler.ActiveForGroup)
		groupsGroup.GET("/:id/invitations/today", r.invitationHandler.CountTodayForGroup)
		groupsGroup.POST("/:id/invitations/sync", r.invitationHandler.SyncGroup)
		groupsGroup.GET("/:id/sessions", r.sessionHandler.ForGroup)
	}

	invitationsGroup := apiV1.Group("/invitations")
	{
		invitationsGroup.POST("", r.invitationHandler.CreateInvitation)
		invitationsGroup.GET("/active", r.invitationHandler.Active)
		invitationsGroup.GET("/mine", r.invitationHandler.Mine)
		invitationsGroup.GET("/range", r.invitationHandler.InDateRange)
		invitationsGroup.GET("/today", r.invitationHandler.CountToday)
		invitationsGroup.GET("/status/:status", r.invitationHandler.ByStatus)
		invitationsGroup.POST("/expire", r.invitationHandler.ExpireSweep)
		invitationsGroup.GET("/:id", r.invitationHandler.GetInvitation)
		invitationsGroup.POST("/:id/respond", r.invitationHandler.Respond)
		invitationsGroup.POST("/:id/cancel", r.invitationHandler.Cancel)
		invitationsGroup.POST("/:id/start", r.invitationHandler.Start)
		invitationsGroup.POST("/:id/complete", r.invitationHandler.Complete)
		invitationsGroup.GET("/:id/session", r.sessionHandler.ByInvitation)
	}

	sessionsGroup := apiV1.Group("/sessions")
	{
		sessionsGroup.GET("/:id", r.sessionHandler.GetSession)
		sessionsGroup.PUT("/:id/duration", r.sessionHandler.UpdateDuration)
		sessionsGroup.POST("/:id/rating", r.sessionHandler.Rate)
	}

	wsGroup := apiV1.Group("/ws")
	{
		wsGroup.GET("/groups", r.streamHandler.Groups)
		wsGroup.GET("/invitations", r.streamHandler.Invitations)
	}
}

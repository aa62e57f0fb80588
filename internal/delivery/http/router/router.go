// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"comfortstay/internal/delivery/http/middleware"
	"comfortstay/internal/delivery/http/router/handler"
	"comfortstay/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	AuthHandler         *handler.AuthHandler
	RoomHandler         *handler.RoomHandler
	ResidentHandler     *handler.ResidentHandler
	CheckoutHandler     *handler.CheckoutHandler
	PaymentHandler      *handler.PaymentHandler
	ComplaintHandler    *handler.ComplaintHandler
	VisitHandler        *handler.VisitHandler
	ExpenseHandler      *handler.ExpenseHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes: no account needed to apply, book a tour or browse rooms
	publicGroup := e.Group("/api")
	{
		publicGroup.POST("/register", p.RegistrationHandler.Register)
		publicGroup.POST("/login", p.AuthHandler.Login)
		publicGroup.POST("/visits", p.VisitHandler.RequestVisit)
		publicGroup.GET("/rooms/available", p.RoomHandler.AvailableRooms)
	}

	// Resident routes that require authentication
	meGroup := e.Group("/api/me")
	meGroup.Use(p.AuthMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		meGroup.GET("", p.ResidentHandler.GetProfile)
		meGroup.PUT("", p.ResidentHandler.UpdateProfile)
		meGroup.POST("/change-password", p.AuthHandler.ChangePassword)
		meGroup.POST("/notice", p.ResidentHandler.StartNoticePeriod)
		meGroup.DELETE("/notice", p.ResidentHandler.CancelNoticePeriod)
		meGroup.GET("/payments", p.PaymentHandler.MyPayments)
		meGroup.POST("/complaints", p.ComplaintHandler.CreateComplaint)
		meGroup.GET("/complaints", p.ComplaintHandler.MyComplaints)
		meGroup.GET("/notifications", p.NotificationHandler.ListNotifications)
		meGroup.GET("/notifications/unread-count", p.NotificationHandler.UnreadCount)
		meGroup.PUT("/notifications/:id/read", p.NotificationHandler.MarkRead)
		meGroup.PUT("/notifications/read-all", p.NotificationHandler.MarkAllRead)
	}

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/api/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)                           // First, check if logged in
	adminGroup.Use(p.AuthMiddleware.RequireRole(entity.RoleAdmin.String())) // Then, check for the role
	{
		adminGroup.GET("/registrations/pending", p.RegistrationHandler.ListPending)
		adminGroup.POST("/registrations/:id/confirm", p.RegistrationHandler.Confirm)
		adminGroup.POST("/registrations/:id/reject", p.RegistrationHandler.Reject)

		adminGroup.POST("/rooms", p.RoomHandler.CreateRoom)
		adminGroup.GET("/rooms", p.RoomHandler.ListRooms)
		adminGroup.GET("/rooms/:id", p.RoomHandler.GetRoom)
		adminGroup.PUT("/rooms/:id", p.RoomHandler.UpdateRoom)
		adminGroup.DELETE("/rooms/:id", p.RoomHandler.DeleteRoom)

		adminGroup.GET("/residents", p.ResidentHandler.ListResidents)
		adminGroup.GET("/residents/:id", p.ResidentHandler.GetResident)
		adminGroup.PUT("/residents/:id", p.ResidentHandler.UpdateResident)
		adminGroup.POST("/residents/:id/checkout", p.CheckoutHandler.Checkout)
		adminGroup.POST("/residents/:id/deactivate", p.CheckoutHandler.Deactivate)
		adminGroup.GET("/residents/:id/exit-survey", p.CheckoutHandler.GetExitSurvey)
		adminGroup.PUT("/residents/:id/exit-survey", p.CheckoutHandler.UpdateExitSurvey)
		adminGroup.GET("/archives", p.CheckoutHandler.ListArchives)

		adminGroup.POST("/payments", p.PaymentHandler.RecordPayment)
		adminGroup.GET("/payments", p.PaymentHandler.ListPayments)
		adminGroup.GET("/payments/export", p.PaymentHandler.ExportReport)
		adminGroup.GET("/payments/:id", p.PaymentHandler.GetPayment)
		adminGroup.PUT("/payments/:id", p.PaymentHandler.UpdatePayment)
		adminGroup.GET("/payments/:id/receipt-qr", p.PaymentHandler.ReceiptQR)

		adminGroup.GET("/complaints", p.ComplaintHandler.ListComplaints)
		adminGroup.GET("/complaints/:id", p.ComplaintHandler.GetComplaint)
		adminGroup.PUT("/complaints/:id", p.ComplaintHandler.UpdateComplaint)
		adminGroup.DELETE("/complaints/:id", p.ComplaintHandler.DeleteComplaint)

		adminGroup.GET("/visits", p.VisitHandler.ListVisits)
		adminGroup.PUT("/visits/:id/schedule", p.VisitHandler.ScheduleVisit)
		adminGroup.PUT("/visits/:id/complete", p.VisitHandler.CompleteVisit)
		adminGroup.PUT("/visits/:id/cancel", p.VisitHandler.CancelVisit)

		adminGroup.POST("/expenses", p.ExpenseHandler.CreateExpense)
		adminGroup.GET("/expenses", p.ExpenseHandler.ListExpenses)
		adminGroup.PUT("/expenses/:id", p.ExpenseHandler.UpdateExpense)
		adminGroup.DELETE("/expenses/:id", p.ExpenseHandler.DeleteExpense)
	}
}

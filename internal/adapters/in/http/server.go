// Package http is the inbound JSON API adapter. It translates requests into
// commands and queries and maps the domain error taxonomy onto HTTP codes:
// unknown record 404, illegal transition or concurrent resend 409, ineligible
// resend 400, failed delivery on an explicit resend 502.
package http

import (
	"errors"
	"net/http"

	"punarvasthra/internal/core/application/notifications"
	"punarvasthra/internal/core/application/usecases/commands"
	"punarvasthra/internal/core/application/usecases/queries"
	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/core/domain/model/order"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createSubmissionHandler    commands.CreateSubmissionCommandHandler
	changeSubmissionHandler    commands.ChangeSubmissionStatusCommandHandler
	deleteSubmissionHandler    commands.DeleteSubmissionCommandHandler
	createCustomizationHandler commands.CreateCustomizationRequestCommandHandler
	assignTailorHandler        commands.AssignTailorCommandHandler
	changeCustomizationHandler commands.ChangeCustomizationStatusCommandHandler
	createOrderHandler         commands.CreateOrderCommandHandler
	changeOrderHandler         commands.ChangeOrderStatusCommandHandler
	resendNotificationHandler  commands.ResendNotificationCommandHandler
	getAllSubmissionsHandler   queries.GetAllSubmissionsQueryHandler
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createSubmissionHandler commands.CreateSubmissionCommandHandler,
	changeSubmissionHandler commands.ChangeSubmissionStatusCommandHandler,
	deleteSubmissionHandler commands.DeleteSubmissionCommandHandler,
	createCustomizationHandler commands.CreateCustomizationRequestCommandHandler,
	assignTailorHandler commands.AssignTailorCommandHandler,
	changeCustomizationHandler commands.ChangeCustomizationStatusCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderHandler commands.ChangeOrderStatusCommandHandler,
	resendNotificationHandler commands.ResendNotificationCommandHandler,
	getAllSubmissionsHandler queries.GetAllSubmissionsQueryHandler,
	getUnfinishedOrdersHandler queries.GetUnfinishedOrdersQueryHandler,
) *Server {
	return &Server{
		createSubmissionHandler:    createSubmissionHandler,
		changeSubmissionHandler:    changeSubmissionHandler,
		deleteSubmissionHandler:    deleteSubmissionHandler,
		createCustomizationHandler: createCustomizationHandler,
		assignTailorHandler:        assignTailorHandler,
		changeCustomizationHandler: changeCustomizationHandler,
		createOrderHandler:         createOrderHandler,
		changeOrderHandler:         changeOrderHandler,
		resendNotificationHandler:  resendNotificationHandler,
		getAllSubmissionsHandler:   getAllSubmissionsHandler,
		getUnfinishedOrdersHandler: getUnfinishedOrdersHandler,
	}
}

// RegisterRoutes wires the API endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/submissions", s.CreateSubmission)
	api.GET("/submissions", s.GetSubmissions)
	api.DELETE("/submissions/:id", s.DeleteSubmission)
	api.PATCH("/submissions/:id/status", s.ChangeSubmissionStatus)

	api.POST("/customizations", s.CreateCustomization)
	api.PATCH("/customizations/:id/status", s.ChangeCustomizationStatus)
	api.POST("/customizations/:id/assign", s.AssignTailor)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetUnfinishedOrders)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)

	api.POST("/notifications/resend", s.ResendNotification)
}

// CreateSubmission handles POST /api/v1/submissions.
func (s *Server) CreateSubmission(ctx echo.Context) error {
	var req CreateSubmissionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateSubmissionCommand(kernel.NewUUID(), submission.Details{
		FullName:        req.FullName,
		ContactNumber:   req.ContactNumber,
		Email:           req.Email,
		Address:         req.Address,
		SareeCount:      req.SareeCount,
		SareeCondition:  req.SareeCondition,
		MaterialType:    req.MaterialType,
		ImagePath:       req.ImagePath,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		PreferredBranch: req.PreferredBranch,
		Notes:           req.Notes,
	})
	if err != nil {
		return badRequest(ctx, "Invalid submission data: "+err.Error())
	}

	if err := s.createSubmissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetSubmissions handles GET /api/v1/submissions.
func (s *Server) GetSubmissions(ctx echo.Context) error {
	query := queries.NewGetAllSubmissionsQuery()

	submissions, err := s.getAllSubmissionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve submissions")
	}

	response := make([]SubmissionResponse, len(submissions))
	for i, sub := range submissions {
		response[i] = SubmissionResponse{
			ID:                 sub.ID.String(),
			FullName:           sub.FullName,
			Email:              sub.Email,
			SareeCount:         sub.SareeCount,
			MaterialType:       sub.MaterialType,
			PreferredBranch:    sub.PreferredBranch,
			Status:             sub.Status,
			NotificationStatus: sub.NotificationStatus,
			NotificationSentAt: sub.NotificationSentAt,
			SubmittedAt:        sub.SubmittedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DeleteSubmission handles DELETE /api/v1/submissions/:id.
func (s *Server) DeleteSubmission(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid submission id")
	}

	cmd, err := commands.NewDeleteSubmissionCommand(id)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.deleteSubmissionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeSubmissionStatus handles PATCH /api/v1/submissions/:id/status.
func (s *Server) ChangeSubmissionStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid submission id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := submission.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeSubmissionStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.changeSubmissionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SubmissionResponse{
		ID:                 updated.ID().String(),
		FullName:           updated.Details().FullName,
		Email:              updated.Details().Email,
		SareeCount:         updated.Details().SareeCount,
		MaterialType:       updated.Details().MaterialType,
		PreferredBranch:    updated.Details().PreferredBranch,
		Status:             updated.Status().String(),
		NotificationStatus: updated.Delivery().Status().String(),
		NotificationSentAt: updated.Delivery().SentAt(),
		SubmittedAt:        updated.SubmittedAt(),
	})
}

// CreateCustomization handles POST /api/v1/customizations.
func (s *Server) CreateCustomization(ctx echo.Context) error {
	var req CreateCustomizationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomizationRequestCommand(kernel.NewUUID(), customization.Details{
		RequesterName:    req.RequesterName,
		RequesterEmail:   req.RequesterEmail,
		Phone:            req.Phone,
		Address:          req.Address,
		ProductType:      req.ProductType,
		Material:         req.Material,
		ColorDescription: req.ColorDescription,
		SpecialNotes:     req.SpecialNotes,
	})
	if err != nil {
		return badRequest(ctx, "Invalid customization data: "+err.Error())
	}

	if err := s.createCustomizationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// ChangeCustomizationStatus handles PATCH /api/v1/customizations/:id/status.
func (s *Server) ChangeCustomizationStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customization id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := customization.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeCustomizationStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.changeCustomizationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customizationResponse(updated))
}

// AssignTailor handles POST /api/v1/customizations/:id/assign.
func (s *Server) AssignTailor(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customization id")
	}

	var req AssignTailorRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	tailorID, err := kernel.UUIDFromString(req.TailorID)
	if err != nil {
		return badRequest(ctx, "Invalid tailor id")
	}

	cmd, err := commands.NewAssignTailorCommand(id, tailorID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.assignTailorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customizationResponse(updated))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, len(req.Items))
	for i, item := range req.Items {
		items[i] = order.Item{
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.OrderNumber, order.Customer{
		FirstName: req.Customer.FirstName,
		LastName:  req.Customer.LastName,
		Email:     req.Customer.Email,
		Phone:     req.Customer.Phone,
		Address:   req.Customer.Address,
		City:      req.Customer.City,
	}, items, req.TotalAmount)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetUnfinishedOrders handles GET /api/v1/orders/active.
func (s *Server) GetUnfinishedOrders(ctx echo.Context) error {
	query := queries.NewGetUnfinishedOrdersQuery()

	orders, err := s.getUnfinishedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, ord := range orders {
		response[i] = OrderResponse{
			ID:          ord.ID.String(),
			OrderNumber: ord.OrderNumber,
			Customer:    ord.Customer,
			TotalAmount: ord.TotalAmount,
			Status:      ord.Status,
			PlacedAt:    ord.PlacedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.changeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	customer := updated.Customer()
	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:          updated.ID().String(),
		OrderNumber: updated.OrderNumber(),
		Customer:    customer.FirstName + " " + customer.LastName,
		TotalAmount: updated.TotalAmount(),
		Status:      updated.Status().String(),
		PlacedAt:    updated.PlacedAt(),
	})
}

// ResendNotification handles POST /api/v1/notifications/resend.
func (s *Server) ResendNotification(ctx echo.Context) error {
	var req ResendNotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := commands.RecordKindFromString(req.Kind)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	recordID, err := kernel.UUIDFromString(req.RecordID)
	if err != nil {
		return badRequest(ctx, "Invalid record id")
	}

	cmd, err := commands.NewResendNotificationCommand(kind, recordID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	delivery, err := s.resendNotificationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil && !errors.Is(err, notifications.ErrDeliveryFailed) {
		return s.mapError(ctx, err)
	}

	response := ResendNotificationResponse{
		NotificationStatus: delivery.Status().String(),
		NotificationSentAt: delivery.SentAt(),
	}

	if err != nil {
		// The attempt ran and failed; report the recorded outcome.
		return ctx.JSON(http.StatusBadGateway, response)
	}

	return ctx.JSON(http.StatusOK, response)
}

func customizationResponse(updated *customization.Request) CustomizationResponse {
	var tailorID *string
	if id := updated.AssignedTailor(); id != nil {
		s := id.String()
		tailorID = &s
	}

	return CustomizationResponse{
		ID:                 updated.ID().String(),
		RequesterName:      updated.Details().RequesterName,
		RequesterEmail:     updated.Details().RequesterEmail,
		ProductType:        updated.Details().ProductType,
		Status:             updated.Status().String(),
		AssignedTailorID:   tailorID,
		NotificationStatus: updated.Delivery().Status().String(),
		NotificationSentAt: updated.Delivery().SentAt(),
	}
}

func (s *Server) mapError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &notFound):
		return respond(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrInvalidTransition):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, notification.ErrDeliveryInProgress):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, notification.ErrNotEligible):
		return respond(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, submission.ErrNotDeletable):
		return respond(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, customization.ErrTailorIsRequired):
		return respond(ctx, http.StatusBadRequest, err.Error())
	default:
		return internalError(ctx, "Request failed")
	}
}

func respond(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusBadRequest, message)
}

func internalError(ctx echo.Context, message string) error {
	return respond(ctx, http.StatusInternalServerError, message)
}

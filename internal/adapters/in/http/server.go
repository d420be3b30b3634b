package http

import (
	"errors"
	"net/http"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/inquiry"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/generated/servers"
	"manufacturing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	addQuotationHandler         commands.AddQuotationCommandHandler
	recordOrderMilestoneHandler commands.RecordOrderMilestoneCommandHandler
	createInquiryHandler        commands.CreateInquiryCommandHandler
	changeInquiryStatusHandler  commands.ChangeInquiryStatusCommandHandler

	// Query handlers
	getOrderStatusHandler       queries.GetOrderStatusQueryHandler
	getInquiryStatusHandler     queries.GetInquiryStatusQueryHandler
	getStatusHistoryHandler     queries.GetStatusHistoryQueryHandler
	getStatusTimelineHandler    queries.GetStatusTimelineQueryHandler
	getStatusStatisticsHandler  queries.GetStatusStatisticsQueryHandler
	getConsistencyReportHandler queries.GetConsistencyReportQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addQuotationHandler commands.AddQuotationCommandHandler,
	recordOrderMilestoneHandler commands.RecordOrderMilestoneCommandHandler,
	createInquiryHandler commands.CreateInquiryCommandHandler,
	changeInquiryStatusHandler commands.ChangeInquiryStatusCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getInquiryStatusHandler queries.GetInquiryStatusQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getStatusTimelineHandler queries.GetStatusTimelineQueryHandler,
	getStatusStatisticsHandler queries.GetStatusStatisticsQueryHandler,
	getConsistencyReportHandler queries.GetConsistencyReportQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		addQuotationHandler:         addQuotationHandler,
		recordOrderMilestoneHandler: recordOrderMilestoneHandler,
		createInquiryHandler:        createInquiryHandler,
		changeInquiryStatusHandler:  changeInquiryStatusHandler,
		getOrderStatusHandler:       getOrderStatusHandler,
		getInquiryStatusHandler:     getInquiryStatusHandler,
		getStatusHistoryHandler:     getStatusHistoryHandler,
		getStatusTimelineHandler:    getStatusTimelineHandler,
		getStatusStatisticsHandler:  getStatusStatisticsHandler,
		getConsistencyReportHandler: getConsistencyReportHandler,
	}
}

// CreateOrder handles POST /api/v1/orders - registers a manufacturing order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.OrderNumber)
	if err != nil {
		return writeError(ctx, http.StatusUnprocessableEntity, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// GetOrderStatus handles GET /api/v1/orders/{orderId}/status.
func (s *Server) GetOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	status, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderStatus{
		OrderId:         status.OrderID.Bytes(),
		OrderNumber:     status.OrderNumber,
		Status:          status.Status,
		ComputedAt:      status.ComputedAt,
		Factors:         optionalStrings(status.Factors),
		IsTerminal:      status.IsTerminal,
		CanTransitionTo: optionalStrings(status.CanTransitionTo),
		Problems:        optionalStrings(status.Problems),
	})
}

// AddQuotation handles POST /api/v1/orders/{orderId}/quotations.
func (s *Server) AddQuotation(ctx echo.Context, orderId openapi_types.UUID) error {
	var newQuotation servers.NewQuotation
	if err := ctx.Bind(&newQuotation); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	quotationID := kernel.NewUUID()
	cmd, err := commands.NewAddQuotationCommand(orderID, quotationID, newQuotation.ValidUntil)
	if err != nil {
		return writeError(ctx, http.StatusUnprocessableEntity, "Invalid quotation data: "+err.Error())
	}

	if err = s.addQuotationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: quotationID.Bytes()})
}

// RecordOrderMilestone handles POST /api/v1/orders/{orderId}/milestones.
func (s *Server) RecordOrderMilestone(ctx echo.Context, orderId openapi_types.UUID) error {
	var newMilestone servers.NewMilestone
	if err := ctx.Bind(&newMilestone); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	milestone, ok := order.MilestoneFromString(newMilestone.Milestone)
	if !ok {
		return writeError(ctx, http.StatusUnprocessableEntity,
			"Unknown milestone: "+newMilestone.Milestone)
	}

	var at time.Time
	if newMilestone.At != nil {
		at = *newMilestone.At
	}

	cmd, err := commands.NewRecordOrderMilestoneCommand(orderID, milestone, at,
		derefBool(newMilestone.Force), derefString(newMilestone.ChangedBy), derefString(newMilestone.Reason))
	if err != nil {
		return writeError(ctx, http.StatusUnprocessableEntity, "Invalid milestone data: "+err.Error())
	}

	if err = s.recordOrderMilestoneHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateInquiry handles POST /api/v1/inquiries - registers a customer inquiry.
func (s *Server) CreateInquiry(ctx echo.Context) error {
	inquiryID := kernel.NewUUID()
	cmd, err := commands.NewCreateInquiryCommand(inquiryID)
	if err != nil {
		return writeError(ctx, http.StatusUnprocessableEntity, "Invalid inquiry data: "+err.Error())
	}

	if err = s.createInquiryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: inquiryID.Bytes()})
}

// GetInquiryStatus handles GET /api/v1/inquiries/{inquiryId}/status.
func (s *Server) GetInquiryStatus(ctx echo.Context, inquiryId openapi_types.UUID) error {
	inquiryID, err := kernel.UUIDFromBytes(inquiryId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid inquiry id")
	}

	query, err := queries.NewGetInquiryStatusQuery(inquiryID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	status, err := s.getInquiryStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.InquiryStatus{
		InquiryId:       status.InquiryID.Bytes(),
		Status:          status.Status,
		StatusCode:      status.StatusCode,
		ComputedAt:      status.ComputedAt,
		Factors:         optionalStrings(status.Factors),
		IsTerminal:      status.IsTerminal,
		CanTransitionTo: optionalStrings(status.CanTransitionTo),
		Problems:        optionalStrings(status.Problems),
	})
}

// ChangeInquiryStatus handles PUT /api/v1/inquiries/{inquiryId}/status.
func (s *Server) ChangeInquiryStatus(ctx echo.Context, inquiryId openapi_types.UUID) error {
	var update servers.InquiryStatusUpdate
	if err := ctx.Bind(&update); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	inquiryID, err := kernel.UUIDFromBytes(inquiryId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid inquiry id")
	}

	target, ok := inquiry.StatusFromString(update.Status)
	if !ok {
		return writeError(ctx, http.StatusUnprocessableEntity, "Unknown status: "+update.Status)
	}

	cmd, err := commands.NewChangeInquiryStatusCommand(inquiryID, target,
		derefBool(update.Force), derefString(update.ChangedBy), derefString(update.Reason))
	if err != nil {
		return writeError(ctx, http.StatusUnprocessableEntity, "Invalid status data: "+err.Error())
	}

	if err = s.changeInquiryStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStatusHistory handles GET /api/v1/status-changes.
func (s *Server) GetStatusHistory(ctx echo.Context, params servers.GetStatusHistoryParams) error {
	var entityID *kernel.UUID
	if params.EntityId != nil {
		id, err := kernel.UUIDFromBytes((*params.EntityId)[:])
		if err != nil {
			return writeError(ctx, http.StatusBadRequest, "Invalid entity id")
		}
		entityID = &id
	}

	entityType := ""
	if params.EntityType != nil {
		entityType = string(*params.EntityType)
	}

	query, err := queries.NewGetStatusHistoryQuery(entityType, entityID,
		derefString(params.ChangedBy), params.From, params.To,
		derefInt(params.Page), derefInt(params.Limit))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	records, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]servers.StatusChange, len(records))
	for i, record := range records {
		response[i] = statusChangeResponse(record)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatusTimeline handles GET /api/v1/status-changes/{entityType}/{entityId}/timeline.
func (s *Server) GetStatusTimeline(
	ctx echo.Context, entityType servers.GetStatusTimelineParamsEntityType, entityId openapi_types.UUID,
) error {
	entityID, err := kernel.UUIDFromBytes(entityId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid entity id")
	}

	query, err := queries.NewGetStatusTimelineQuery(string(entityType), entityID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	timeline, err := s.getStatusTimelineHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := make([]servers.TimelineEntry, len(timeline))
	for i, entry := range timeline {
		change := statusChangeResponse(entry.StatusChangeResponse)
		response[i] = servers.TimelineEntry{
			Id:              change.Id,
			EntityType:      change.EntityType,
			EntityId:        change.EntityId,
			FromStatus:      change.FromStatus,
			ToStatus:        change.ToStatus,
			ChangedAt:       change.ChangedAt,
			ChangedBy:       change.ChangedBy,
			Reason:          change.Reason,
			Metadata:        change.Metadata,
			DurationSeconds: entry.Duration.Seconds(),
			IsActive:        entry.IsActive,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetStatusStatistics handles GET /api/v1/status-statistics.
func (s *Server) GetStatusStatistics(ctx echo.Context, params servers.GetStatusStatisticsParams) error {
	query, err := queries.NewGetStatusStatisticsQuery(
		string(params.EntityType), derefString(params.Status), params.From, params.To)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	stats, err := s.getStatusStatisticsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := servers.StatusStatistics{
		EntityType:   stats.EntityType,
		StatusCounts: stats.StatusCounts,
		GeneratedAt:  stats.GeneratedAt,
	}
	if stats.Status != "" {
		response.Status = &stats.Status
		seconds := stats.AverageDuration.Seconds()
		response.AverageDurationSeconds = &seconds
		response.HasSamples = &stats.HasSamples
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetConsistencyReport handles GET /api/v1/consistency-report.
func (s *Server) GetConsistencyReport(ctx echo.Context) error {
	query := queries.NewGetConsistencyReportQuery()

	report, err := s.getConsistencyReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.ConsistencyReport{
		IsConsistent:     report.IsConsistent,
		Errors:           report.Errors,
		Warnings:         report.Warnings,
		CheckedOrders:    report.CheckedOrders,
		CheckedInquiries: report.CheckedInquiries,
		GeneratedAt:      report.GeneratedAt,
	})
}

// writeDomainError maps application-layer failures to HTTP statuses: unknown
// ids to 404, rejected transitions to 409, validation failures to 422.
func writeDomainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, commands.ErrTransitionNotAllowed):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, err.Error())
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func statusChangeResponse(record queries.StatusChangeResponse) servers.StatusChange {
	change := servers.StatusChange{
		Id:         record.ID.Bytes(),
		EntityType: record.EntityType,
		EntityId:   record.EntityID.Bytes(),
		ToStatus:   record.ToStatus,
		ChangedAt:  record.ChangedAt,
	}
	if record.FromStatus != "" {
		change.FromStatus = &record.FromStatus
	}
	if record.ChangedBy != "" {
		change.ChangedBy = &record.ChangedBy
	}
	if record.Reason != "" {
		change.Reason = &record.Reason
	}
	if len(record.Metadata) > 0 {
		change.Metadata = &record.Metadata
	}
	return change
}

func optionalStrings(values []string) *[]string {
	if len(values) == 0 {
		return nil
	}
	return &values
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefBool(p *bool) bool {
	return p != nil && *p
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// Package http exposes the ledger over a REST surface. The caller identity
// arrives in the X-Caller-ID header; authenticating that identity is the
// perimeter's job, authorizing it is the domain's.
package http

import (
	"errors"
	"net/http"

	"trackledger/internal/core/application/usecases/commands"
	"trackledger/internal/core/application/usecases/queries"
	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// callerHeader carries the identity every write and role check acts as.
const callerHeader = "X-Caller-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	initializeDeliveryHandler commands.InitializeDeliveryCommandHandler
	trackDeliveryHandler      commands.TrackDeliveryCommandHandler
	failDeliveryHandler       commands.FailDeliveryCommandHandler
	assignRoleHandler         commands.AssignRoleCommandHandler
	removeRoleHandler         commands.RemoveRoleCommandHandler
	addOracleHandler          commands.AddOracleCommandHandler
	removeOracleHandler       commands.RemoveOracleCommandHandler
	setPauseHandler           commands.SetPauseCommandHandler

	// Query handlers
	getDeliveryDetailsHandler  queries.GetDeliveryDetailsQueryHandler
	getTrackingEventHandler    queries.GetTrackingEventQueryHandler
	getLatestSequenceHandler   queries.GetLatestSequenceQueryHandler
	isDeliveryCompletedHandler queries.IsDeliveryCompletedQueryHandler
	getOraclesHandler          queries.GetOraclesQueryHandler
	getLedgerControlHandler    queries.GetLedgerControlQueryHandler
	hasRoleHandler             queries.HasRoleQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	initializeDeliveryHandler commands.InitializeDeliveryCommandHandler,
	trackDeliveryHandler commands.TrackDeliveryCommandHandler,
	failDeliveryHandler commands.FailDeliveryCommandHandler,
	assignRoleHandler commands.AssignRoleCommandHandler,
	removeRoleHandler commands.RemoveRoleCommandHandler,
	addOracleHandler commands.AddOracleCommandHandler,
	removeOracleHandler commands.RemoveOracleCommandHandler,
	setPauseHandler commands.SetPauseCommandHandler,
	getDeliveryDetailsHandler queries.GetDeliveryDetailsQueryHandler,
	getTrackingEventHandler queries.GetTrackingEventQueryHandler,
	getLatestSequenceHandler queries.GetLatestSequenceQueryHandler,
	isDeliveryCompletedHandler queries.IsDeliveryCompletedQueryHandler,
	getOraclesHandler queries.GetOraclesQueryHandler,
	getLedgerControlHandler queries.GetLedgerControlQueryHandler,
	hasRoleHandler queries.HasRoleQueryHandler,
) *Server {
	return &Server{
		initializeDeliveryHandler:  initializeDeliveryHandler,
		trackDeliveryHandler:       trackDeliveryHandler,
		failDeliveryHandler:        failDeliveryHandler,
		assignRoleHandler:          assignRoleHandler,
		removeRoleHandler:          removeRoleHandler,
		addOracleHandler:           addOracleHandler,
		removeOracleHandler:        removeOracleHandler,
		setPauseHandler:            setPauseHandler,
		getDeliveryDetailsHandler:  getDeliveryDetailsHandler,
		getTrackingEventHandler:    getTrackingEventHandler,
		getLatestSequenceHandler:   getLatestSequenceHandler,
		isDeliveryCompletedHandler: isDeliveryCompletedHandler,
		getOraclesHandler:          getOraclesHandler,
		getLedgerControlHandler:    getLedgerControlHandler,
		hasRoleHandler:             hasRoleHandler,
	}
}

// RegisterRoutes binds every route onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/deliveries", s.InitializeDelivery)
	api.GET("/deliveries/:id", s.GetDelivery)
	api.POST("/deliveries/:id/events", s.TrackDelivery)
	api.GET("/deliveries/:id/events/:seq", s.GetTrackingEvent)
	api.GET("/deliveries/:id/sequence", s.GetLatestSequence)
	api.GET("/deliveries/:id/completed", s.IsDeliveryCompleted)
	api.POST("/deliveries/:id/failure", s.FailDelivery)

	api.POST("/deliveries/:id/roles", s.AssignRole)
	api.DELETE("/deliveries/:id/roles/:user/:role", s.RemoveRole)
	api.GET("/deliveries/:id/roles/:user/:role", s.HasRole)

	api.GET("/oracles", s.GetOracles)
	api.POST("/oracles", s.AddOracle)
	api.DELETE("/oracles/:id", s.RemoveOracle)

	api.GET("/control", s.GetLedgerControl)
	api.POST("/control/pause", s.Pause)
	api.POST("/control/unpause", s.Unpause)
}

// ErrorResponse is the error body of every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDeliveryRequest is the body of POST /api/v1/deliveries.
type NewDeliveryRequest struct {
	ID                 string `json:"id"`
	Operator           string `json:"operator"`
	Supplier           string `json:"supplier"`
	Recipient          string `json:"recipient"`
	ExpectedArrival    uint64 `json:"expectedArrival"`
	PayloadFingerprint string `json:"payloadFingerprint"`
}

// TrackingEventRequest is the body of POST /api/v1/deliveries/:id/events.
type TrackingEventRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Altitude  uint32 `json:"altitude"`
	Status    string `json:"status"`
	Note      string `json:"note"`
}

// FailureRequest is the body of POST /api/v1/deliveries/:id/failure.
type FailureRequest struct {
	Reason string `json:"reason"`
}

// RoleRequest is the body of POST /api/v1/deliveries/:id/roles.
type RoleRequest struct {
	User string `json:"user"`
	Role string `json:"role"`
}

// OracleRequest is the body of POST /api/v1/oracles.
type OracleRequest struct {
	ID string `json:"id"`
}

// DeliveryResponse is the read model of GET /api/v1/deliveries/:id.
type DeliveryResponse struct {
	ID                 string  `json:"id"`
	Operator           string  `json:"operator"`
	Supplier           string  `json:"supplier"`
	Recipient          string  `json:"recipient"`
	StartTime          uint64  `json:"startTime"`
	ExpectedArrival    uint64  `json:"expectedArrival"`
	ActualArrival      *uint64 `json:"actualArrival,omitempty"`
	PayloadFingerprint string  `json:"payloadFingerprint"`
	Sequence           uint32  `json:"sequence"`
	Status             string  `json:"status"`
	Completed          bool    `json:"completed"`
	FailureReason      *string `json:"failureReason,omitempty"`
}

// TrackingEventResponse is the read model of GET /api/v1/deliveries/:id/events/:seq.
type TrackingEventResponse struct {
	DeliveryID     string `json:"deliveryId"`
	Sequence       uint32 `json:"sequence"`
	RecordedAt     uint64 `json:"recordedAt"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	Altitude       uint32 `json:"altitude"`
	Status         string `json:"status"`
	Updater        string `json:"updater"`
	Note           string `json:"note"`
	OracleVerified bool   `json:"oracleVerified"`
}

// LedgerControlResponse is the read model of GET /api/v1/control.
type LedgerControlResponse struct {
	Owner  string `json:"owner"`
	Paused bool   `json:"paused"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// InitializeDelivery handles POST /api/v1/deliveries.
func (s *Server) InitializeDelivery(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body NewDeliveryRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	deliveryID, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return badRequest(ctx, err)
	}
	operator, err := kernel.UUIDFromString(body.Operator)
	if err != nil {
		return badRequest(ctx, err)
	}
	supplier, err := kernel.UUIDFromString(body.Supplier)
	if err != nil {
		return badRequest(ctx, err)
	}
	recipient, err := kernel.UUIDFromString(body.Recipient)
	if err != nil {
		return badRequest(ctx, err)
	}
	fingerprint, err := kernel.FingerprintFromHex(body.PayloadFingerprint)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewInitializeDeliveryCommand(
		caller, deliveryID, operator, supplier, recipient, body.ExpectedArrival, fingerprint)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.initializeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// TrackDelivery handles POST /api/v1/deliveries/:id/events.
func (s *Server) TrackDelivery(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body TrackingEventRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewTrackDeliveryCommand(
		caller, deliveryID, body.Latitude, body.Longitude, body.Altitude, body.Status, body.Note)
	if err != nil {
		return badRequest(ctx, err)
	}

	sequence, err := s.trackDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]uint32{"sequence": sequence})
}

// FailDelivery handles POST /api/v1/deliveries/:id/failure.
func (s *Server) FailDelivery(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body FailureRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	cmd, err := commands.NewFailDeliveryCommand(caller, deliveryID, body.Reason)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.failDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (s *Server) GetDelivery(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetDeliveryDetailsQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	details, err := s.getDeliveryDetailsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}
	if details == nil {
		return notFound(ctx, deliveryID.String())
	}

	return ctx.JSON(http.StatusOK, DeliveryResponse{
		ID:                 details.ID.String(),
		Operator:           details.Operator.String(),
		Supplier:           details.Supplier.String(),
		Recipient:          details.Recipient.String(),
		StartTime:          details.StartTime,
		ExpectedArrival:    details.ExpectedArrival,
		ActualArrival:      details.ActualArrival,
		PayloadFingerprint: details.PayloadFingerprint,
		Sequence:           details.Sequence,
		Status:             details.Status,
		Completed:          details.Completed,
		FailureReason:      details.FailureReason,
	})
}

// GetTrackingEvent handles GET /api/v1/deliveries/:id/events/:seq.
func (s *Server) GetTrackingEvent(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var sequence uint32
	if err = echo.PathParamsBinder(ctx).Uint32("seq", &sequence).BindError(); err != nil {
		return badRequest(ctx, errors.New("invalid sequence number"))
	}

	query, err := queries.NewGetTrackingEventQuery(deliveryID, sequence)
	if err != nil {
		return badRequest(ctx, err)
	}

	entry, err := s.getTrackingEventHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}
	if entry == nil {
		return notFound(ctx, deliveryID.String())
	}

	return ctx.JSON(http.StatusOK, TrackingEventResponse{
		DeliveryID:     entry.DeliveryID.String(),
		Sequence:       entry.Sequence,
		RecordedAt:     entry.RecordedAt,
		Latitude:       entry.Latitude,
		Longitude:      entry.Longitude,
		Altitude:       entry.Altitude,
		Status:         entry.Status,
		Updater:        entry.Updater.String(),
		Note:           entry.Note,
		OracleVerified: entry.OracleVerified,
	})
}

// GetLatestSequence handles GET /api/v1/deliveries/:id/sequence.
func (s *Server) GetLatestSequence(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetLatestSequenceQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	sequence, err := s.getLatestSequenceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]uint32{"sequence": sequence})
}

// IsDeliveryCompleted handles GET /api/v1/deliveries/:id/completed.
func (s *Server) IsDeliveryCompleted(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewIsDeliveryCompletedQuery(deliveryID)
	if err != nil {
		return badRequest(ctx, err)
	}

	completed, err := s.isDeliveryCompletedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"completed": completed})
}

// AssignRole handles POST /api/v1/deliveries/:id/roles.
func (s *Server) AssignRole(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var body RoleRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	user, err := kernel.UUIDFromString(body.User)
	if err != nil {
		return badRequest(ctx, err)
	}
	role, err := access.ParseRole(body.Role)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAssignRoleCommand(caller, user, deliveryID, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.assignRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveRole handles DELETE /api/v1/deliveries/:id/roles/:user/:role.
func (s *Server) RemoveRole(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	user, err := kernel.UUIDFromString(ctx.Param("user"))
	if err != nil {
		return badRequest(ctx, err)
	}
	role, err := access.ParseRole(ctx.Param("role"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveRoleCommand(caller, user, deliveryID, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.removeRoleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// HasRole handles GET /api/v1/deliveries/:id/roles/:user/:role.
func (s *Server) HasRole(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	user, err := kernel.UUIDFromString(ctx.Param("user"))
	if err != nil {
		return badRequest(ctx, err)
	}
	role, err := access.ParseRole(ctx.Param("role"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewHasRoleQuery(user, deliveryID, role)
	if err != nil {
		return badRequest(ctx, err)
	}

	hasRole, err := s.hasRoleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]bool{"hasRole": hasRole})
}

// GetOracles handles GET /api/v1/oracles.
func (s *Server) GetOracles(ctx echo.Context) error {
	oracles, err := s.getOraclesHandler.Handle(ctx.Request().Context(), queries.NewGetOraclesQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]string, len(oracles))
	for i, oracle := range oracles {
		response[i] = oracle.String()
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddOracle handles POST /api/v1/oracles.
func (s *Server) AddOracle(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var body OracleRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, errors.New("invalid request body"))
	}

	identity, err := kernel.UUIDFromString(body.ID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewAddOracleCommand(caller, identity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.addOracleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveOracle handles DELETE /api/v1/oracles/:id.
func (s *Server) RemoveOracle(ctx echo.Context) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	identity, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRemoveOracleCommand(caller, identity)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.removeOracleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetLedgerControl handles GET /api/v1/control.
func (s *Server) GetLedgerControl(ctx echo.Context) error {
	state, err := s.getLedgerControlHandler.Handle(ctx.Request().Context(), queries.NewGetLedgerControlQuery())
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LedgerControlResponse{
		Owner:  state.Owner.String(),
		Paused: state.Paused,
	})
}

// Pause handles POST /api/v1/control/pause.
func (s *Server) Pause(ctx echo.Context) error {
	return s.setPause(ctx, true)
}

// Unpause handles POST /api/v1/control/unpause.
func (s *Server) Unpause(ctx echo.Context) error {
	return s.setPause(ctx, false)
}

func (s *Server) setPause(ctx echo.Context, paused bool) error {
	caller, err := callerID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewSetPauseCommand(caller, paused)
	if err != nil {
		return badRequest(ctx, err)
	}

	if err = s.setPauseHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

func callerID(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(callerHeader)
	if header == "" {
		return kernel.UUID{}, errors.New("X-Caller-ID header is required")
	}
	return kernel.UUIDFromString(header)
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func notFound(ctx echo.Context, id string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: "not found: " + id,
	})
}

// domainError maps domain and application errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, control.ErrLedgerPaused):
		code = http.StatusLocked
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, delivery.ErrDeliveryCompleted),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrCapacityExceeded):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

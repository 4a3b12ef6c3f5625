// Package http exposes the parcel lifecycle over a REST API built on Echo.
// Handlers translate JSON payloads into commands and queries, and map
// domain errors to HTTP status codes.
package http

import (
	"net/http"
	"time"

	"smartdelivery/internal/core/application/usecases/commands"
	"smartdelivery/internal/core/application/usecases/queries"
	"smartdelivery/internal/core/domain/model/customer"
	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/core/domain/model/parcel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler   commands.CreateParcelCommandHandler
	assignParcelHandler   commands.AssignParcelCommandHandler
	deliverParcelHandler  commands.DeliverParcelCommandHandler
	createCourierHandler  commands.CreateCourierCommandHandler
	createCustomerHandler commands.CreateCustomerCommandHandler

	// Query handlers
	getParcelHandler      queries.GetParcelQueryHandler
	trackParcelHandler    queries.TrackParcelQueryHandler
	getUndeliveredHandler queries.GetUndeliveredParcelsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	assignParcelHandler commands.AssignParcelCommandHandler,
	deliverParcelHandler commands.DeliverParcelCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getUndeliveredHandler queries.GetUndeliveredParcelsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:   createParcelHandler,
		assignParcelHandler:   assignParcelHandler,
		deliverParcelHandler:  deliverParcelHandler,
		createCourierHandler:  createCourierHandler,
		createCustomerHandler: createCustomerHandler,
		getParcelHandler:      getParcelHandler,
		trackParcelHandler:    trackParcelHandler,
		getUndeliveredHandler: getUndeliveredHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
// The HTTP surface keeps the "packages" wording even though the domain
// aggregate is called Parcel, "package" being a reserved word in Go.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/packages", s.CreatePackage)
	api.GET("/packages/active", s.GetActivePackages)
	api.GET("/packages/track/:code", s.TrackPackage)
	api.GET("/packages/:id", s.GetPackage)
	api.POST("/packages/:id/assign", s.AssignPackage)
	api.POST("/packages/:id/deliver", s.DeliverPackage)

	api.POST("/couriers", s.CreateCourier)
	api.POST("/customers", s.CreateCustomer)
}

// NewPackage is the request body for package creation.
type NewPackage struct {
	SenderID        string   `json:"senderId"`
	PickupAddress   string   `json:"pickupAddress"`
	DeliveryAddress string   `json:"deliveryAddress"`
	WeightKg        *float64 `json:"weightKg,omitempty"`
	CourierID       *string  `json:"courierId,omitempty"`
}

// AssignRequest is the request body for courier assignment.
type AssignRequest struct {
	CourierID string `json:"courierId"`
}

// NewCourier is the request body for courier registration.
type NewCourier struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	ManagerID *string `json:"managerId,omitempty"`
}

// NewCustomer is the request body for customer registration.
type NewCustomer struct {
	Type                   string `json:"type"`
	Name                   string `json:"name"`
	Email                  string `json:"email,omitempty"`
	Phone                  string `json:"phone,omitempty"`
	ContactPerson          string `json:"contactPerson,omitempty"`
	DefaultPickupAddress   string `json:"defaultPickupAddress,omitempty"`
	DefaultDeliveryAddress string `json:"defaultDeliveryAddress,omitempty"`
}

// Package is the full representation of a parcel on the wire.
type Package struct {
	ID              string     `json:"id"`
	TrackingCode    string     `json:"trackingCode"`
	SenderID        string     `json:"senderId"`
	CourierID       *string    `json:"courierId,omitempty"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	WeightKg        *float64   `json:"weightKg,omitempty"`
	Status          string     `json:"status"`
	AssignedAt      *time.Time `json:"assignedAt,omitempty"`
	DeliveredAt     *time.Time `json:"deliveredAt,omitempty"`
}

// TrackingInfo is the public tracking view of a package.
type TrackingInfo struct {
	TrackingCode string     `json:"trackingCode"`
	Status       string     `json:"status"`
	AssignedAt   *time.Time `json:"assignedAt,omitempty"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
}

// ActivePackage is one element of the active packages listing.
type ActivePackage struct {
	ID           string  `json:"id"`
	TrackingCode string  `json:"trackingCode"`
	Status       string  `json:"status"`
	CourierID    *string `json:"courierId,omitempty"`
}

// Courier is the wire representation of a courier record.
type Courier struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	ManagerID *string `json:"managerId,omitempty"`
}

// Customer is the wire representation of a customer record.
type Customer struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePackage handles POST /api/v1/packages - registers a new package.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var body NewPackage
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	senderID, err := kernel.UUIDFromString(body.SenderID)
	if err != nil {
		return writeBadRequest(ctx, "invalid sender id")
	}

	var courierID *kernel.UUID
	if body.CourierID != nil {
		cID, idErr := kernel.UUIDFromString(*body.CourierID)
		if idErr != nil {
			return writeBadRequest(ctx, "invalid courier id")
		}
		courierID = &cID
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), senderID, body.PickupAddress, body.DeliveryAddress, body.WeightKg, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, packageFromDomain(created))
}

// GetPackage handles GET /api/v1/packages/:id - retrieves one package.
func (s *Server) GetPackage(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid package id")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	info, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	resp := Package{
		ID:              info.ID.String(),
		TrackingCode:    info.TrackingCode,
		SenderID:        info.SenderID.String(),
		PickupAddress:   info.PickupAddress,
		DeliveryAddress: info.DeliveryAddress,
		WeightKg:        info.WeightKg,
		Status:          info.Status,
		AssignedAt:      info.AssignedAt,
		DeliveredAt:     info.DeliveredAt,
	}
	if info.CourierID != nil {
		c := info.CourierID.String()
		resp.CourierID = &c
	}

	return ctx.JSON(http.StatusOK, resp)
}

// TrackPackage handles GET /api/v1/packages/track/:code - public tracking lookup.
func (s *Server) TrackPackage(ctx echo.Context) error {
	code, err := parcel.NewTrackingCode(ctx.Param("code"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewTrackParcelQuery(code)
	if err != nil {
		return respondError(ctx, err)
	}

	info, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackingInfo{
		TrackingCode: info.TrackingCode,
		Status:       info.Status,
		AssignedAt:   info.AssignedAt,
		DeliveredAt:  info.DeliveredAt,
	})
}

// AssignPackage handles POST /api/v1/packages/:id/assign - assigns a courier.
// Assigning an already assigned package silently moves it to the new courier.
func (s *Server) AssignPackage(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid package id")
	}

	var body AssignRequest
	if err = ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(body.CourierID)
	if err != nil {
		return writeBadRequest(ctx, "invalid courier id")
	}

	cmd, err := commands.NewAssignParcelCommand(parcelID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	assigned, err := s.assignParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageFromDomain(assigned))
}

// DeliverPackage handles POST /api/v1/packages/:id/deliver - confirms delivery.
func (s *Server) DeliverPackage(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeBadRequest(ctx, "invalid package id")
	}

	cmd, err := commands.NewDeliverParcelCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	delivered, err := s.deliverParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, packageFromDomain(delivered))
}

// GetActivePackages handles GET /api/v1/packages/active - lists undelivered packages.
func (s *Server) GetActivePackages(ctx echo.Context) error {
	parcels, err := s.getUndeliveredHandler.Handle(
		ctx.Request().Context(), queries.NewGetUndeliveredParcelsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ActivePackage, len(parcels))
	for i, p := range parcels {
		response[i] = ActivePackage{
			ID:           p.ID.String(),
			TrackingCode: p.TrackingCode,
			Status:       p.Status,
		}
		if p.CourierID != nil {
			c := p.CourierID.String()
			response[i].CourierID = &c
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	var managerID *kernel.UUID
	if body.ManagerID != nil {
		mID, err := kernel.UUIDFromString(*body.ManagerID)
		if err != nil {
			return writeBadRequest(ctx, "invalid manager id")
		}
		managerID = &mID
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, body.Email, managerID)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	resp := Courier{
		ID:    created.ID().String(),
		Name:  created.Name(),
		Email: created.Email(),
	}
	if created.Manager() != nil {
		m := created.Manager().String()
		resp.ManagerID = &m
	}

	return ctx.JSON(http.StatusCreated, resp)
}

// CreateCustomer handles POST /api/v1/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	customerType, err := customerTypeFromString(body.Type)
	if err != nil {
		return writeBadRequest(ctx, "invalid customer type")
	}

	cmd, err := commands.NewCreateCustomerCommand(customerType, body.Name, customer.Details{
		Email:                  body.Email,
		Phone:                  body.Phone,
		ContactPerson:          body.ContactPerson,
		DefaultPickupAddress:   body.DefaultPickupAddress,
		DefaultDeliveryAddress: body.DefaultDeliveryAddress,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Customer{
		ID:        created.ID().String(),
		Type:      created.Type().String(),
		Name:      created.Name(),
		CreatedAt: created.CreatedAt(),
	})
}

// packageFromDomain converts a parcel aggregate to its wire representation.
func packageFromDomain(p *parcel.Parcel) Package {
	resp := Package{
		ID:              p.ID().String(),
		TrackingCode:    p.TrackingCode().String(),
		SenderID:        p.SenderID().String(),
		PickupAddress:   p.PickupAddress(),
		DeliveryAddress: p.DeliveryAddress(),
		WeightKg:        p.WeightKg(),
		Status:          p.Status().String(),
		AssignedAt:      p.AssignedAt(),
		DeliveredAt:     p.DeliveredAt(),
	}
	if p.CourierID() != nil {
		c := p.CourierID().String()
		resp.CourierID = &c
	}
	return resp
}

// customerTypeFromString parses the wire-level customer type.
func customerTypeFromString(value string) (customer.CustomerType, error) {
	switch value {
	case customer.Person.String():
		return customer.Person, nil
	case customer.Company.String():
		return customer.Company, nil
	default:
		return customer.UnknownType, echo.ErrBadRequest
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

package commands

import (
	"context"

	"smartdelivery/internal/core/domain/model/courier"
	"smartdelivery/internal/core/domain/model/kernel"
	"smartdelivery/internal/pkg/errs"
)

// CreateCourierCommandHandler handles courier registration.
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewCreateCourierCommandHandler creates a handler for courier registration operations.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{uowFactory: uowFactory}
}

// Handle processes the courier registration command. When a manager is
// supplied it must already exist in the directory.
func (h CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	couriers := uow.CourierRepository()

	if cmd.ManagerID() != nil {
		managerExists, err := couriers.Exists(ctx, *cmd.ManagerID())
		if err != nil {
			return nil, err
		}
		if !managerExists {
			return nil, errs.NewObjectNotFoundError("manager", cmd.ManagerID().String())
		}
	}

	c, err := courier.NewCourier(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.ManagerID())
	if err != nil {
		return nil, err
	}

	if err = couriers.Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

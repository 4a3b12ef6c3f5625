package jobs

import (
	"context"
	"log/slog"

	"smartdelivery/internal/core/application/usecases/queries"
	"smartdelivery/internal/core/domain/model/parcel"

	"github.com/robfig/cron/v3"
)

// DeliveryMonitorJob periodically reports the in-transit workload.
// Runs every minute and logs how many parcels are still waiting for a
// courier and how many are out for delivery, giving operators a heartbeat
// of the lifecycle engine without querying the database by hand.
type DeliveryMonitorJob struct {
	handler queries.GetUndeliveredParcelsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDeliveryMonitorJob creates a new monitoring job over the undelivered parcels query.
func NewDeliveryMonitorJob(handler queries.GetUndeliveredParcelsQueryHandler, logger *slog.Logger) *DeliveryMonitorJob {
	return &DeliveryMonitorJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "delivery_monitor_job"),
	}
}

// Start begins the delivery monitor job to run every minute.
func (j *DeliveryMonitorJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		parcels, err := j.handler.Handle(ctx, queries.NewGetUndeliveredParcelsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Delivery monitor job failed", "error", err)
			return
		}

		var awaiting, inDelivery int
		for _, p := range parcels {
			switch p.Status {
			case parcel.New.String():
				awaiting++
			case parcel.Pending.String():
				inDelivery++
			}
		}

		j.logger.InfoContext(ctx, "In-transit parcels",
			"total", len(parcels),
			"awaiting_courier", awaiting,
			"out_for_delivery", inDelivery,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery monitor job started (running every minute)")
	return nil
}

// Stop stops the delivery monitor job.
func (j *DeliveryMonitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Delivery monitor job stopped")
}

package controller

import (
	"context"
	"time"

	"github.com/redhat-data-and-ai/coursenaut/internal/controller/periodicjobs"
	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
)

// PeriodicTasksController owns the background maintenance jobs. It is not
// request driven; Start delays, launches every job and returns.
type PeriodicTasksController struct {
	initialDelay time.Duration
	taskManager  *periodicjobs.PeriodicTaskManager
}

func NewPeriodicTasksController(cfg config.Jobs, dataStore store.StoreInterface) *PeriodicTasksController {
	taskManager := periodicjobs.NewPeriodicTaskManager()

	periodicjobs.NewBackRefRepairJob(dataStore, cfg.RepairInterval).AddToPeriodicTaskManager(taskManager)
	periodicjobs.NewEnrollmentAuditJob(dataStore, cfg.AuditInterval, cfg.PruneDanglingEnrollments).
		AddToPeriodicTaskManager(taskManager)

	return &PeriodicTasksController{
		initialDelay: cfg.InitialDelay,
		taskManager:  taskManager,
	}
}

func (ptc *PeriodicTasksController) Start(ctx context.Context) error {
	log := logger.Logger(ctx)
	log.Info("starting periodic tasks controller")

	select {
	case <-ctx.Done():
		log.Info("context canceled during initialization")
		return ctx.Err()
	case <-time.After(ptc.initialDelay):
	}

	if err := ptc.taskManager.RunAll(ctx); err != nil {
		log.WithError(err).Error("failed to start periodic tasks")
		return err
	}
	log.Info("all periodic tasks have been started")
	return nil
}

// Wait blocks until every job has stopped after ctx cancellation.
func (ptc *PeriodicTasksController) Wait() {
	ptc.taskManager.Wait()
}

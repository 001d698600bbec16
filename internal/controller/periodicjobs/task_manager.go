/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package periodicjobs provides scheduled background jobs that keep the
// course and user documents consistent.
package periodicjobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
)

// PeriodicTask is a job run once at start and then every GetInterval.
type PeriodicTask interface {
	GetName() string
	GetInterval() time.Duration
	Run(ctx context.Context) error
}

type PeriodicTaskManager struct {
	mu    sync.Mutex
	tasks []PeriodicTask
	wg    sync.WaitGroup
}

func NewPeriodicTaskManager() *PeriodicTaskManager {
	return &PeriodicTaskManager{}
}

func (m *PeriodicTaskManager) AddTask(task PeriodicTask) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
}

// RunAll starts every registered task in its own goroutine and returns. The
// tasks stop when ctx is cancelled; Wait blocks until they have.
func (m *PeriodicTaskManager) RunAll(ctx context.Context) error {
	m.mu.Lock()
	tasks := append([]PeriodicTask(nil), m.tasks...)
	m.mu.Unlock()

	var errs []error
	for _, task := range tasks {
		if task.GetInterval() <= 0 {
			errs = append(errs, fmt.Errorf("task %s has no interval", task.GetName()))
			continue
		}
		task := task
		m.wg.Add(1)
		go func() {
			defer m.wg.Done()
			m.loop(ctx, task)
		}()
	}
	return errors.Join(errs...)
}

func (m *PeriodicTaskManager) Wait() {
	m.wg.Wait()
}

func (m *PeriodicTaskManager) loop(ctx context.Context, task PeriodicTask) {
	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"task":     task.GetName(),
		"interval": task.GetInterval().String(),
	})
	ticker := time.NewTicker(task.GetInterval())
	defer ticker.Stop()

	for {
		start := time.Now()
		done := telemetry.GetJobMetrics().TaskStarted(ctx, task.GetName())
		err := task.Run(ctx)
		done(err)
		if err != nil {
			log.WithError(err).Error("periodic task failed")
		} else {
			log.WithField("duration", time.Since(start).String()).Debug("periodic task finished")
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

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

package periodicjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
)

const (
	BackRefRepairJobName            = "backref_repair"
	DefaultBackRefRepairJobInterval = time.Hour
)

// BackRefRepairJob rebuilds user-side course lists from the courses
// document, undoing drift left by failed back-reference writes.
type BackRefRepairJob struct {
	store    store.StoreInterface
	interval time.Duration
}

func NewBackRefRepairJob(s store.StoreInterface, interval time.Duration) *BackRefRepairJob {
	if interval <= 0 {
		interval = DefaultBackRefRepairJobInterval
	}
	return &BackRefRepairJob{store: s, interval: interval}
}

func (j *BackRefRepairJob) AddToPeriodicTaskManager(mgr *PeriodicTaskManager) {
	mgr.AddTask(j)
}

func (j *BackRefRepairJob) GetInterval() time.Duration { return j.interval }

func (j *BackRefRepairJob) GetName() string { return BackRefRepairJobName }

func (j *BackRefRepairJob) Run(ctx context.Context) error {
	report, err := j.store.RepairBackReferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to repair back-references: %w", err)
	}
	log := logger.Logger(ctx).WithFields(logrus.Fields{
		"instructors_updated": report.InstructorsUpdated,
		"students_updated":    report.StudentsUpdated,
	})
	if report.InstructorsUpdated+report.StudentsUpdated > 0 {
		log.Info("repaired drifted back-references")
	} else {
		log.Debug("back-references consistent")
	}
	return nil
}

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
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/pkg/logger"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
)

const (
	EnrollmentAuditJobName            = "enrollment_audit"
	DefaultEnrollmentAuditJobInterval = 24 * time.Hour
)

// EnrollmentAuditJob finds course enrollments whose student id is not
// numeric or does not name a student. With prune set those enrollments are
// removed from the course.
type EnrollmentAuditJob struct {
	store    store.StoreInterface
	interval time.Duration
	prune    bool
}

// AuditResult summarizes one audit run.
type AuditResult struct {
	CoursesScanned int
	Dangling       int
	Pruned         int
	Errors         []string
}

func NewEnrollmentAuditJob(s store.StoreInterface, interval time.Duration, prune bool) *EnrollmentAuditJob {
	if interval <= 0 {
		interval = DefaultEnrollmentAuditJobInterval
	}
	return &EnrollmentAuditJob{store: s, interval: interval, prune: prune}
}

func (j *EnrollmentAuditJob) AddToPeriodicTaskManager(mgr *PeriodicTaskManager) {
	mgr.AddTask(j)
}

func (j *EnrollmentAuditJob) GetInterval() time.Duration { return j.interval }

func (j *EnrollmentAuditJob) GetName() string { return EnrollmentAuditJobName }

func (j *EnrollmentAuditJob) Run(ctx context.Context) error {
	result := j.Audit(ctx)
	telemetry.GetJobMetrics().SetDanglingEnrollments(result.Dangling - result.Pruned)

	logger.Logger(ctx).WithFields(logrus.Fields{
		"courses":  result.CoursesScanned,
		"dangling": result.Dangling,
		"pruned":   result.Pruned,
		"errors":   len(result.Errors),
	}).Info("enrollment audit completed")

	if len(result.Errors) > 0 {
		return fmt.Errorf("enrollment audit completed with %d errors: %s", len(result.Errors), strings.Join(result.Errors, "; "))
	}
	return nil
}

func (j *EnrollmentAuditJob) Audit(ctx context.Context) AuditResult {
	var result AuditResult
	courses := j.store.GetCourseStore()

	for _, c := range courses.GetAllCourses(ctx) {
		result.CoursesScanned++
		for _, sid := range c.Students {
			if j.isStudent(ctx, sid) {
				continue
			}
			result.Dangling++
			log := logger.Logger(ctx).WithFields(logrus.Fields{"course_id": c.CourseID, "student_id": sid})
			if !j.prune {
				log.Warn("course has dangling enrollment")
				continue
			}
			if _, err := courses.UnenrollStudentFromCourse(ctx, c.CourseID, sid); err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("course %s student %s: %v", c.CourseID, sid, err))
				continue
			}
			log.Info("pruned dangling enrollment")
			result.Pruned++
		}
	}
	return result
}

func (j *EnrollmentAuditJob) isStudent(ctx context.Context, sid string) bool {
	id, ok := store.ParseRef(sid)
	if !ok {
		return false
	}
	_, found := j.store.GetUserStore().GetStudentByID(ctx, id)
	return found
}

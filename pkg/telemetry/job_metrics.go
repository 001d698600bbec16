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

package telemetry

import (
	"context"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

var (
	jobMetrics     *JobMetrics
	jobMetricsOnce sync.Once
)

// JobMetrics tracks the periodic maintenance jobs.
type JobMetrics struct {
	RunTotal            *Counter
	Running             *UpDownCounter
	DanglingEnrollments *Gauge

	dangling atomic.Int64
}

func InitJobMetrics(meter otelmetric.Meter) error {
	var initErr error
	jobMetricsOnce.Do(func() {
		jm := &JobMetrics{}

		runTotal, err := NewCounter(meter, MetricOptions{
			Name:        BuildMetricName("job_run", MetricNameSuffixTotal),
			Description: "periodic job runs by task and status",
			Unit:        "1",
		})
		if err != nil {
			initErr = err
			return
		}

		running, err := NewUpDownCounter(meter, MetricOptions{
			Name:        BuildMetricName("job_running", ""),
			Description: "periodic jobs currently executing",
			Unit:        "1",
		})
		if err != nil {
			initErr = err
			return
		}

		dangling, err := NewGauge(meter, MetricOptions{
			Name:        BuildMetricName("enrollments_dangling", ""),
			Description: "enrollments naming no student, as of the last audit",
			Unit:        "1",
		}, func(context.Context) (float64, []attribute.KeyValue) {
			return float64(jm.dangling.Load()), nil
		})
		if err != nil {
			initErr = err
			return
		}

		jm.RunTotal = runTotal
		jm.Running = running
		jm.DanglingEnrollments = dangling
		jobMetrics = jm
	})

	return initErr
}

// GetJobMetrics returns nil until InitJobMetrics succeeds. All methods
// accept a nil receiver.
func GetJobMetrics() *JobMetrics {
	return jobMetrics
}

// TaskStarted marks task as running and returns a func that records its end.
func (jm *JobMetrics) TaskStarted(ctx context.Context, task string) func(err error) {
	if jm == nil {
		return func(error) {}
	}
	jm.Running.Inc(ctx, WithOperation(task))
	return func(err error) {
		jm.Running.Dec(ctx, WithOperation(task))
		status := StatusSuccess
		if err != nil {
			status = StatusError
		}
		jm.RunTotal.Inc(ctx, WithOperation(task), WithStatus(status))
	}
}

func (jm *JobMetrics) SetDanglingEnrollments(n int) {
	if jm == nil {
		return
	}
	jm.dangling.Store(int64(n))
}

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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumOf(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "metric %s is not an int64 sum", m.Name)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func TestStoreMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	require.NoError(t, InitStoreMetrics(meter, WithBackend("memory")))
	sm := GetStoreMetrics()
	require.NotNil(t, sm)

	ctx := context.Background()
	sm.RecordMutation(ctx, "create_course", nil)
	sm.RecordMutation(ctx, "delete_course", errors.New("boom"))
	sm.RecordBackRef(ctx, "delete_course", "student", "skipped_no_user")
	sm.RecordPersist(ctx, "courses.json", time.Now(), nil)

	metrics := collect(t, reader)
	assert.Equal(t, int64(2), sumOf(t, metrics["coursenaut_store_mutation_total"]))
	assert.Equal(t, int64(1), sumOf(t, metrics["coursenaut_store_mutation_error_total"]))
	assert.Equal(t, int64(1), sumOf(t, metrics["coursenaut_store_backref_total"]))
	assert.Contains(t, metrics, "coursenaut_store_persist_duration_seconds")

	mutations := metrics["coursenaut_store_mutation_total"].Data.(metricdata.Sum[int64])
	for _, dp := range mutations.DataPoints {
		backend, ok := dp.Attributes.Value(AttrBackend)
		require.True(t, ok)
		assert.Equal(t, "memory", backend.AsString())
	}
}

func TestStoreMetrics_NilReceiver(t *testing.T) {
	var sm *StoreMetrics
	assert.NotPanics(t, func() {
		sm.RecordMutation(context.Background(), "op", nil)
		sm.RecordBackRef(context.Background(), "op", "instructor", "applied")
		sm.RecordPersist(context.Background(), "users.json", time.Now(), nil)
	})
}

func TestBuildMetricName(t *testing.T) {
	assert.Equal(t, "coursenaut_store_mutation_total", BuildMetricName("store_mutation", MetricNameSuffixTotal))
	assert.Equal(t, "coursenaut_up", BuildMetricName("up", ""))
}

func TestJobMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)).Meter("test")

	require.NoError(t, InitJobMetrics(meter))
	jm := GetJobMetrics()
	require.NotNil(t, jm)

	ctx := context.Background()
	done := jm.TaskStarted(ctx, "enrollment_audit")
	jm.SetDanglingEnrollments(3)

	metrics := collect(t, reader)
	assert.Equal(t, int64(1), sumOf(t, metrics["coursenaut_job_running"]))

	gauge, ok := metrics["coursenaut_enrollments_dangling"].Data.(metricdata.Gauge[float64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, float64(3), gauge.DataPoints[0].Value)

	done(errors.New("boom"))
	metrics = collect(t, reader)
	assert.Equal(t, int64(0), sumOf(t, metrics["coursenaut_job_running"]))
	assert.Equal(t, int64(1), sumOf(t, metrics["coursenaut_job_run_total"]))
}

func TestJobMetrics_NilReceiver(t *testing.T) {
	var jm *JobMetrics
	assert.NotPanics(t, func() {
		jm.TaskStarted(context.Background(), "backref_repair")(nil)
		jm.SetDanglingEnrollments(1)
	})
}

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
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

var (
	storeMetrics     *StoreMetrics
	storeMetricsOnce sync.Once
)

// persistBuckets spans a local file rewrite up to a slow redis round trip.
var persistBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// StoreMetrics counts store mutations and the outcome of every
// back-reference update made on behalf of a course operation.
type StoreMetrics struct {
	MutationTotal      *Counter
	MutationErrorTotal *Counter
	BackRefTotal       *Counter
	PersistDuration    *Histogram
}

// InitStoreMetrics registers the store instruments. attrs, typically the
// document backend, are attached to every measurement.
func InitStoreMetrics(meter otelmetric.Meter, attrs ...attribute.KeyValue) error {
	var initErr error
	storeMetricsOnce.Do(func() {
		mutationTotal, err := NewCounter(meter, MetricOptions{
			Name:        BuildMetricName("store_mutation", MetricNameSuffixTotal),
			Description: "total number of mutating store operations",
			Unit:        "1",
			Attributes:  attrs,
		})
		if err != nil {
			initErr = err
			return
		}

		mutationErrorTotal, err := NewCounter(meter, MetricOptions{
			Name: BuildMetricName("store_mutation_error", MetricNameSuffixTotal),
			Description: "total number of mutating store operations that returned an error. " +
				"error% = coursenaut_store_mutation_error_total / coursenaut_store_mutation_total",
			Unit:       "1",
			Attributes: attrs,
		})
		if err != nil {
			initErr = err
			return
		}

		backRefTotal, err := NewCounter(meter, MetricOptions{
			Name:        BuildMetricName("store_backref", MetricNameSuffixTotal),
			Description: "back-reference updates by relation and outcome",
			Unit:        "1",
			Attributes:  attrs,
		})
		if err != nil {
			initErr = err
			return
		}

		persistDuration, err := NewHistogram(meter, MetricOptions{
			Name:        BuildMetricName("store_persist", MetricNameSuffixDuration),
			Description: "time spent rewriting a whole document",
			Unit:        "s",
			Attributes:  attrs,
		}, persistBuckets...)
		if err != nil {
			initErr = err
			return
		}

		storeMetrics = &StoreMetrics{
			MutationTotal:      mutationTotal,
			MutationErrorTotal: mutationErrorTotal,
			BackRefTotal:       backRefTotal,
			PersistDuration:    persistDuration,
		}
	})

	return initErr
}

// GetStoreMetrics returns nil until InitStoreMetrics succeeds. All methods
// accept a nil receiver.
func GetStoreMetrics() *StoreMetrics {
	return storeMetrics
}

func (sm *StoreMetrics) RecordMutation(ctx context.Context, operation string, err error) {
	if sm == nil {
		return
	}
	sm.MutationTotal.Inc(ctx, WithOperation(operation))
	if err != nil {
		sm.MutationErrorTotal.Inc(ctx, WithOperation(operation))
	}
}

func (sm *StoreMetrics) RecordBackRef(ctx context.Context, operation, relation, outcome string) {
	if sm == nil {
		return
	}
	sm.BackRefTotal.Inc(ctx, WithOperation(operation), WithRelation(relation), WithOutcome(outcome))
}

func (sm *StoreMetrics) RecordPersist(ctx context.Context, document string, start time.Time, err error) {
	if sm == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	sm.PersistDuration.Record(ctx, time.Since(start).Seconds(), WithDocument(document), WithStatus(status))
}

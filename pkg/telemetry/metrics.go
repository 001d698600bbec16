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
	"slices"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// MetricOptions describes an instrument. Attributes are attached to every
// measurement the instrument records, ahead of any per-call attributes.
type MetricOptions struct {
	Name        string
	Description string
	Unit        string
	Attributes  []attribute.KeyValue
}

// constAttrs merges an instrument's fixed attributes with per-call ones.
type constAttrs []attribute.KeyValue

func (c constAttrs) with(attrs []attribute.KeyValue) otelmetric.MeasurementOption {
	if len(c) == 0 {
		return otelmetric.WithAttributes(attrs...)
	}
	return otelmetric.WithAttributes(append(slices.Clone(c), attrs...)...)
}

type Counter struct {
	counter otelmetric.Int64Counter
	attrs   constAttrs
}

func NewCounter(meter otelmetric.Meter, opts MetricOptions) (*Counter, error) {
	counter, err := meter.Int64Counter(opts.Name,
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit))
	if err != nil {
		return nil, err
	}
	return &Counter{counter: counter, attrs: opts.Attributes}, nil
}

func (c *Counter) Add(ctx context.Context, value int64, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, value, c.attrs.with(attrs))
}

func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.Add(ctx, 1, attrs...)
}

type Histogram struct {
	histogram otelmetric.Float64Histogram
	attrs     constAttrs
}

// NewHistogram uses explicit bucket boundaries when given, else the SDK
// defaults.
func NewHistogram(meter otelmetric.Meter, opts MetricOptions, buckets ...float64) (*Histogram, error) {
	histOpts := []otelmetric.Float64HistogramOption{
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit),
	}
	if len(buckets) > 0 {
		histOpts = append(histOpts, otelmetric.WithExplicitBucketBoundaries(buckets...))
	}
	histogram, err := meter.Float64Histogram(opts.Name, histOpts...)
	if err != nil {
		return nil, err
	}
	return &Histogram{histogram: histogram, attrs: opts.Attributes}, nil
}

func (h *Histogram) Record(ctx context.Context, value float64, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, value, h.attrs.with(attrs))
}

// GaugeCallback is polled on every collection.
type GaugeCallback func(context.Context) (float64, []attribute.KeyValue)

type Gauge struct {
	gauge otelmetric.Float64ObservableGauge
}

func NewGauge(meter otelmetric.Meter, opts MetricOptions, callback GaugeCallback) (*Gauge, error) {
	fixed := constAttrs(opts.Attributes)
	gauge, err := meter.Float64ObservableGauge(opts.Name,
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit),
		otelmetric.WithFloat64Callback(func(ctx context.Context, observer otelmetric.Float64Observer) error {
			value, attrs := callback(ctx)
			observer.Observe(value, fixed.with(attrs))
			return nil
		}))
	if err != nil {
		return nil, err
	}
	return &Gauge{gauge: gauge}, nil
}

type UpDownCounter struct {
	counter otelmetric.Int64UpDownCounter
	attrs   constAttrs
}

func NewUpDownCounter(meter otelmetric.Meter, opts MetricOptions) (*UpDownCounter, error) {
	counter, err := meter.Int64UpDownCounter(opts.Name,
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit))
	if err != nil {
		return nil, err
	}
	return &UpDownCounter{counter: counter, attrs: opts.Attributes}, nil
}

func (u *UpDownCounter) Add(ctx context.Context, value int64, attrs ...attribute.KeyValue) {
	u.counter.Add(ctx, value, u.attrs.with(attrs))
}

func (u *UpDownCounter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	u.Add(ctx, 1, attrs...)
}

func (u *UpDownCounter) Dec(ctx context.Context, attrs ...attribute.KeyValue) {
	u.Add(ctx, -1, attrs...)
}

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
	"fmt"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
)

var (
	meterProvider     *metric.MeterProvider
	meterProviderOnce sync.Once
	shutdownOnce      sync.Once
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	OTLPEndpoint   string
	Insecure       bool
	Enabled        bool
	// ExportInterval of zero keeps the SDK default.
	ExportInterval time.Duration
}

// ConfigFrom maps the application config onto telemetry settings.
func ConfigFrom(app config.App, t config.Telemetry) Config {
	return Config{
		ServiceName:    app.Name,
		ServiceVersion: app.Version,
		OTLPEndpoint:   t.OTLPEndpoint,
		Insecure:       t.Insecure,
		Enabled:        t.Enabled,
		ExportInterval: t.ExportInterval,
	}
}

func (c Config) validate() error {
	var errs []error
	if c.ServiceName == "" {
		errs = append(errs, errors.New("service name is required"))
	}
	if otlpHost(c.OTLPEndpoint) == "" {
		errs = append(errs, errors.New("OTLP endpoint is required"))
	}
	return errors.Join(errs...)
}

// Init installs the global meter provider once. With telemetry disabled the
// provider has no reader, so instruments work but nothing is exported.
func Init(ctx context.Context, cfg Config) error {
	var initErr error
	meterProviderOnce.Do(func() {
		if !cfg.Enabled {
			meterProvider = metric.NewMeterProvider()
			otel.SetMeterProvider(meterProvider)
			return
		}
		mp, err := newMeterProvider(ctx, cfg)
		if err != nil {
			initErr = err
			return
		}
		meterProvider = mp
		otel.SetMeterProvider(meterProvider)
	})
	return initErr
}

func newMeterProvider(ctx context.Context, cfg Config) (*metric.MeterProvider, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporterOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(otlpHost(cfg.OTLPEndpoint))}
	if cfg.Insecure {
		exporterOpts = append(exporterOpts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	var readerOpts []metric.PeriodicReaderOption
	if cfg.ExportInterval > 0 {
		readerOpts = append(readerOpts, metric.WithInterval(cfg.ExportInterval))
	}
	return metric.NewMeterProvider(
		metric.WithResource(res),
		metric.WithReader(metric.NewPeriodicReader(exporter, readerOpts...)),
	), nil
}

// otlpHost reduces an endpoint URL to the host[:port] the exporter expects.
func otlpHost(endpoint string) string {
	host := strings.ToLower(strings.TrimSpace(endpoint))
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	if idx := strings.IndexAny(host, "/?"); idx != -1 {
		host = host[:idx]
	}
	return host
}

func Shutdown(ctx context.Context) error {
	var shutdownErr error
	shutdownOnce.Do(func() {
		if meterProvider != nil {
			shutdownErr = meterProvider.Shutdown(ctx)
		}
	})
	return shutdownErr
}

func GetMeter(name string, opts ...otelmetric.MeterOption) otelmetric.Meter {
	return otel.Meter(name, opts...)
}

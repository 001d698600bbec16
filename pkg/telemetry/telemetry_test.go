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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTLPHost(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		want     string
	}{
		{name: "bare host", endpoint: "collector:4318", want: "collector:4318"},
		{name: "http scheme and path", endpoint: "http://collector:4318/v1/metrics", want: "collector:4318"},
		{name: "https scheme and query", endpoint: " HTTPS://Collector:4318?x=1 ", want: "collector:4318"},
		{name: "empty", endpoint: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, otlpHost(tt.endpoint))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	err := Config{OTLPEndpoint: "http://"}.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service name is required")
	assert.Contains(t, err.Error(), "OTLP endpoint is required")

	assert.NoError(t, Config{ServiceName: "coursenaut", OTLPEndpoint: "localhost:4318"}.validate())
}

func TestNewMeterProvider(t *testing.T) {
	ctx := context.Background()

	_, err := newMeterProvider(ctx, Config{ServiceName: "coursenaut"})
	require.Error(t, err)

	mp, err := newMeterProvider(ctx, Config{
		ServiceName:    "coursenaut",
		OTLPEndpoint:   "http://localhost:4318",
		Insecure:       true,
		ExportInterval: time.Minute,
	})
	require.NoError(t, err)
	require.NotNil(t, mp)
	// nothing is listening, so the final export is allowed to fail
	shutdownCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_ = mp.Shutdown(shutdownCtx)
}

func TestInitDisabled(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, Init(ctx, Config{Enabled: false}))
	assert.NotNil(t, GetMeter("coursenaut"))
	assert.NoError(t, Shutdown(ctx))
}

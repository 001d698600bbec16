package store

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore"
	"github.com/redhat-data-and-ai/coursenaut/pkg/telemetry"
)

// loadDocument reads name from backend and decodes it. Missing or blank
// documents decode as empty.
func loadDocument[K comparable, V any](ctx context.Context, backend docstore.Backend, name string,
	decode func(context.Context, []byte) (map[K]V, error)) (map[K]V, error) {
	data, found, err := backend.Read(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrPersistence, name, err)
	}
	if !found || len(bytes.TrimSpace(data)) == 0 {
		return make(map[K]V), nil
	}

	out, err := decode(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return out, nil
}

func writeDocument(ctx context.Context, backend docstore.Backend, name string, data []byte) error {
	start := time.Now()
	err := backend.Write(ctx, name, data)
	telemetry.GetStoreMetrics().RecordPersist(ctx, name, start, err)
	if err != nil {
		return persistenceError(name, err)
	}
	return nil
}

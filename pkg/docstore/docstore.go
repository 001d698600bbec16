package docstore

import (
	"context"
	"fmt"

	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/file"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/inmemory"
	"github.com/redhat-data-and-ai/coursenaut/pkg/docstore/redis"
)

// EmptyDocument is written for documents that do not exist yet.
var EmptyDocument = []byte("[]")

// Backend stores whole named documents. Every Write replaces the previous
// content of the document; there is no partial update.
type Backend interface {
	// Read returns found=false with a nil error when the document does not exist.
	Read(ctx context.Context, name string) (data []byte, found bool, err error)
	Write(ctx context.Context, name string, data []byte) error
	Close() error
}

// Compile-time interface compliance checks
var (
	_ Backend = (*file.Store)(nil)
	_ Backend = (*inmemory.Store)(nil)
	_ Backend = (*redis.Store)(nil)
)

// New builds the backend selected by cfg.Store.Backend.
func New(cfg *config.AppConfig) (Backend, error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		return file.New(cfg.Store.DataDir)
	case config.BackendInMemory:
		return inmemory.New(), nil
	case config.BackendRedis:
		return redis.New(&cfg.Redis)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}

// Ensure creates name with an empty sequence when it does not exist.
func Ensure(ctx context.Context, b Backend, name string) error {
	_, found, err := b.Read(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to check document %s: %w", name, err)
	}
	if found {
		return nil
	}
	if err := b.Write(ctx, name, EmptyDocument); err != nil {
		return fmt.Errorf("failed to create document %s: %w", name, err)
	}
	return nil
}

package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/droplogistics/internal/auth"
	"github.com/dmitrijs2005/droplogistics/internal/catalog"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
	"github.com/dmitrijs2005/droplogistics/internal/server/repositories/shipments"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

const testSecret = "secret"

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// failingRepo fails every call with err.
type failingRepo struct{ err error }

func (f failingRepo) FindByTrackingNumber(context.Context, string) (shipment.Shipment, error) {
	return shipment.Shipment{}, f.err
}

func (f failingRepo) ListByOwner(context.Context, string) ([]shipment.Shipment, error) {
	return nil, f.err
}

var errDB = errors.New("db error: connection reset")

func seededRepo() *shipments.MemoryRepository {
	repo := shipments.NewMemoryRepository(catalog.Shipments())
	repo.Put(shipment.Shipment{
		ID:             "own-1",
		UserID:         "user-42",
		CargoID:        "1",
		CargoName:      "ExpressAsia Cargo",
		TrackingNumber: "EA9999999999TJ",
		Status:         shipment.StatusPending,
		CreatedAt:      "2024-03-01",
	})
	return repo
}

// helper to build server
func newTestServer(repo shipments.Repository) *GRPCServer {
	s, _ := NewGRPCServer("127.0.0.1:0", nopLogger{}, repo, testSecret)
	return s
}

func mustToken(t *testing.T, userID string, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, userID+"@example.com", []byte(testSecret), ttl)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	return tok
}

package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/droplogistics/internal/client/client"
	"github.com/dmitrijs2005/droplogistics/internal/client/config"
	"github.com/dmitrijs2005/droplogistics/internal/client/storage"
	"github.com/dmitrijs2005/droplogistics/internal/i18n"
	"github.com/dmitrijs2005/droplogistics/internal/logging"
	"github.com/dmitrijs2005/droplogistics/internal/shipment"
)

// tr is the table of the language a fresh app starts with.
var tr = i18n.Table(i18n.DefaultLanguage)

// fakeClient реализует client.Client.
type fakeClient struct {
	pingErr error

	track    shipment.Shipment
	trackErr error

	list      []shipment.Shipment
	listErr   error
	lastToken string
}

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Track(context.Context, string) (shipment.Shipment, error) {
	return f.track, f.trackErr
}

func (f *fakeClient) ListShipments(_ context.Context, token string) ([]shipment.Shipment, error) {
	f.lastToken = token
	return f.list, f.listErr
}

func (f *fakeClient) Close() error { return nil }

// newTestApp builds an app over an in-memory store that reads its input
// from the given lines. Password prompts read from the same input.
func newTestApp(t *testing.T, tc client.Client, lines ...string) (*App, *bytes.Buffer, *storage.MemoryRepository) {
	t.Helper()
	stubTerminal(t, false, nil, nil)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	repo := storage.NewMemoryRepository()
	out := &bytes.Buffer{}
	a := newApp(cfg, logging.Nop(), repo, tc, strings.NewReader(strings.Join(lines, "\n")+"\n"), out)
	a.Load(context.Background())
	return a, out, repo
}

// run feeds the lines to a fresh REPL and returns everything it printed.
func run(t *testing.T, tc client.Client, lines ...string) (string, *App, *storage.MemoryRepository) {
	t.Helper()
	a, out, repo := newTestApp(t, tc, lines...)
	a.runREPL(context.Background())
	return out.String(), a, repo
}

// registerLines signs up a default user.
func registerLines() []string {
	return []string{"register", "Ali Karimov", "ali@example.com", "+992900000000", "secret1", "secret1"}
}

type nilReader struct{}

func (nilReader) Read([]byte) (int, error) { return 0, io.EOF }

func stringReader(s string) io.Reader { return strings.NewReader(s) }

func nopLogger() logging.Logger { return logging.Nop() }

package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"localpay-gateway/internal/core/ports"
	"localpay-gateway/pkg/clock"

	"github.com/oklog/ulid/v2"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// IDGeneratorImpl builds ids from the injected clock and entropy source.
type IDGeneratorImpl struct {
	clock clock.Clock

	mu      sync.Mutex
	entropy io.Reader
	raw     io.Reader
}

var _ ports.IDGenerator = (*IDGeneratorImpl)(nil)

// NewIDGenerator creates an id generator. A nil entropy source means crypto/rand.
func NewIDGenerator(c clock.Clock, entropy io.Reader) *IDGeneratorImpl {
	if entropy == nil {
		entropy = rand.Reader
	}
	return &IDGeneratorImpl{
		clock:   c,
		entropy: ulid.Monotonic(entropy, 0),
		raw:     entropy,
	}
}

// InvoiceID returns "INV-<ULID>". Ids sort by creation time.
func (g *IDGeneratorImpl) InvoiceID() string {
	return "INV-" + g.ulid()
}

func (g *IDGeneratorImpl) NotificationID() string {
	return g.ulid()
}

// Proof returns "<prefix>_<epoch ms>_<n base36 chars>".
func (g *IDGeneratorImpl) Proof(prefix string, n int) string {
	buf := make([]byte, n)

	g.mu.Lock()
	_, err := io.ReadFull(g.raw, buf)
	g.mu.Unlock()
	if err != nil {
		panic(fmt.Sprintf("idgen: entropy source failed: %v", err))
	}

	for i, b := range buf {
		buf[i] = base36[int(b)%len(base36)]
	}
	return fmt.Sprintf("%s_%d_%s", prefix, g.clock.Now().UnixMilli(), buf)
}

func (g *IDGeneratorImpl) ulid() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.clock.Now()), g.entropy).String()
}

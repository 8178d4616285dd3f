package service

import (
	"testing"
	"time"

	"localpay-gateway/pkg/clock"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGenerator_InvoiceID(t *testing.T) {
	clk := clock.NewFake(testStart)
	ids := newTestIDs(clk)

	id := ids.InvoiceID()
	require.Regexp(t, `^INV-`, id)

	parsed, err := ulid.Parse(id[len("INV-"):])
	require.NoError(t, err)
	assert.Equal(t, uint64(testStart.UnixMilli()), parsed.Time())
}

func TestIDGenerator_UniqueWithinSameMillisecond(t *testing.T) {
	ids := newTestIDs(clock.NewFake(testStart))

	seen := make(map[string]struct{}, 1000)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := ids.InvoiceID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate %s", id)
		seen[id] = struct{}{}
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestIDGenerator_Proof(t *testing.T) {
	clk := clock.NewFake(testStart)
	ids := newTestIDs(clk)

	tests := []struct {
		prefix string
		n      int
		want   string
	}{
		{"sim", 6, `^sim_1773480413000_[0-9a-z]{6}$`},
		{"tx", 4, `^tx_1773480413000_[0-9a-z]{4}$`},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			assert.Regexp(t, tt.want, ids.Proof(tt.prefix, tt.n))
		})
	}

	clk.Advance(5 * time.Millisecond)
	assert.Regexp(t, `^tx_1773480413005_`, ids.Proof("tx", 4))
}

func TestIDGenerator_DefaultEntropy(t *testing.T) {
	ids := NewIDGenerator(clock.Real{}, nil)
	assert.NotEqual(t, ids.NotificationID(), ids.NotificationID())
}

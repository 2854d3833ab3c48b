package journalbuffer_test

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"tracking/internal/adapters/out/memory/journalbuffer"
	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuffer(capacity int) *journalbuffer.Buffer {
	return journalbuffer.New(capacity, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newEntry(t *testing.T, id string) journal.Entry {
	t.Helper()

	entry, err := journal.NewEntry(shipment.OperationDelivered, shipment.NewRecord("1", id, "delivered"), time.Now())
	require.NoError(t, err)
	return entry
}

func shipmentIDs(entries []journal.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ShipmentID)
	}
	return ids
}

func TestBuffer_AppendAndDrain(t *testing.T) {
	ctx := t.Context()
	b := newBuffer(10)

	b.Append(ctx, newEntry(t, "A"))
	b.Append(ctx, newEntry(t, "B"))

	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"A", "B"}, shipmentIDs(b.Drain()))
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Drain())
}

func TestBuffer_DiscardsOldestWhenFull(t *testing.T) {
	ctx := t.Context()
	b := newBuffer(2)

	b.Append(ctx, newEntry(t, "A"))
	b.Append(ctx, newEntry(t, "B"))
	b.Append(ctx, newEntry(t, "C"))

	assert.Equal(t, []string{"B", "C"}, shipmentIDs(b.Drain()))
}

func TestBuffer_RestorePrependsEntries(t *testing.T) {
	ctx := t.Context()
	b := newBuffer(10)
	b.Append(ctx, newEntry(t, "A"))
	b.Append(ctx, newEntry(t, "B"))

	drained := b.Drain()
	b.Append(ctx, newEntry(t, "C"))
	b.Restore(drained)

	assert.Equal(t, []string{"A", "B", "C"}, shipmentIDs(b.Drain()))
}

func TestBuffer_RestoreRespectsCapacity(t *testing.T) {
	ctx := t.Context()
	b := newBuffer(2)
	b.Append(ctx, newEntry(t, "A"))
	b.Append(ctx, newEntry(t, "B"))

	drained := b.Drain()
	b.Append(ctx, newEntry(t, "C"))
	b.Restore(drained)

	assert.Equal(t, []string{"B", "C"}, shipmentIDs(b.Drain()))
}

func TestBuffer_ConcurrentAppend(t *testing.T) {
	ctx := t.Context()
	b := newBuffer(1000)

	var wg sync.WaitGroup
	for w := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 50 {
				entry, err := journal.NewEntry(shipment.OperationLost,
					shipment.NewRecord("1", fmt.Sprintf("S%d-%d", w, i), "lost"), time.Now())
				if err == nil {
					b.Append(ctx, entry)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500, b.Len())
}

func TestDiscard_Append(t *testing.T) {
	assert.NotPanics(t, func() {
		journalbuffer.Discard{}.Append(t.Context(), newEntry(t, "A"))
	})
}

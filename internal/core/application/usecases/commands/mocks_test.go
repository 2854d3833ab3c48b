package commands_test

import (
	"context"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockEventDispatcher struct{ mock.Mock }

func (m *MockEventDispatcher) Dispatch(ctx context.Context, r shipment.Record) (shipment.Operation, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(shipment.Operation), args.Error(1)
}

type MockShipmentNotifier struct{ mock.Mock }

func (m *MockShipmentNotifier) Broadcast(shipmentID string) { m.Called(shipmentID) }

type MockEventJournal struct{ mock.Mock }

func (m *MockEventJournal) Append(ctx context.Context, entry journal.Entry) { m.Called(ctx, entry) }

type MockTrackingMetrics struct{ mock.Mock }

func (m *MockTrackingMetrics) EventProcessed(operation, outcome string) { m.Called(operation, outcome) }
func (m *MockTrackingMetrics) BroadcastSent(delivered int)              { m.Called(delivered) }
func (m *MockTrackingMetrics) SubscriberDropped()                       { m.Called() }
func (m *MockTrackingMetrics) SubscribersActive(n int)                  { m.Called(n) }

type MockJournalSource struct{ mock.Mock }

func (m *MockJournalSource) Drain() []journal.Entry {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]journal.Entry)
}

func (m *MockJournalSource) Restore(entries []journal.Entry) { m.Called(entries) }

type MockJournalRepository struct{ mock.Mock }

func (m *MockJournalRepository) AddBatch(ctx context.Context, entries []journal.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type MockJournalUoW struct{ mock.Mock }

func (m *MockJournalUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockJournalUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockJournalUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockJournalUoW) JournalRepository() ports.JournalRepository {
	args := m.Called()
	return args.Get(0).(ports.JournalRepository)
}

type MockJournalUoWFactory struct{ mock.Mock }

func (m *MockJournalUoWFactory) Create() commands.JournalUoW {
	args := m.Called()
	return args.Get(0).(commands.JournalUoW)
}

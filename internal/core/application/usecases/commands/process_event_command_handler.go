package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// Outcome labels reported to TrackingMetrics.
const (
	OutcomeAccepted         = "accepted"
	OutcomeMalformed        = "malformed"
	OutcomeUnknownOperation = "unknown_operation"
	OutcomeUnknownCategory  = "unknown_category"
	OutcomeNotFound         = "not_found"
	OutcomeFailed           = "failed"
)

// ProcessEventResult describes an applied event record.
type ProcessEventResult struct {
	ShipmentID string
	Operation  shipment.Operation
	Raw        string
}

// ProcessEventCommandHandler is the single mutation entry point for event records.
//
// On success the shipment identifier is broadcast to observers and the record
// is appended to the event journal. A rejected record is never broadcast or
// journaled.
//
// Example:
//
//	handler := NewProcessEventCommandHandler(dispatcher, hub, journal, metrics, logger)
//	cmd, _ := NewProcessEventCommand("1690000000000,ABC123,delivered")
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%s applied to %s", result.Operation, result.ShipmentID)
type ProcessEventCommandHandler struct {
	dispatcher EventDispatcher
	notifier   ports.ShipmentNotifier
	journal    ports.EventJournal
	metrics    ports.TrackingMetrics
	logger     *slog.Logger
	now        func() time.Time
}

// NewProcessEventCommandHandler creates a handler. metrics may be nil.
func NewProcessEventCommandHandler(
	dispatcher EventDispatcher,
	notifier ports.ShipmentNotifier,
	journal ports.EventJournal,
	metrics ports.TrackingMetrics,
	logger *slog.Logger,
) ProcessEventCommandHandler {
	return ProcessEventCommandHandler{
		dispatcher: dispatcher,
		notifier:   notifier,
		journal:    journal,
		metrics:    metrics,
		logger:     logger.With("component", "process_event_handler"),
		now:        time.Now,
	}
}

// Handle parses, dispatches and publishes one event record.
func (h ProcessEventCommandHandler) Handle(ctx context.Context, cmd ProcessEventCommand) (ProcessEventResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessEventResult{}, err
	}

	record, err := shipment.ParseRecord(cmd.Raw())
	if err != nil {
		h.record(shipment.OperationUnknown, err)
		return ProcessEventResult{}, err
	}

	op, err := h.dispatcher.Dispatch(ctx, record)
	h.record(op, err)
	if err != nil {
		h.logger.DebugContext(ctx, "Event record rejected",
			"shipment_id", record.ShipmentID(), "tag", record.Tag(), "error", err)
		return ProcessEventResult{}, err
	}

	h.notifier.Broadcast(record.ShipmentID())

	entry, err := journal.NewEntry(op, record, h.now())
	if err != nil {
		// the record is already applied; a journal failure must not undo that
		h.logger.ErrorContext(ctx, "Failed to build journal entry", "shipment_id", record.ShipmentID(), "error", err)
	} else {
		h.journal.Append(ctx, entry)
	}

	return ProcessEventResult{
		ShipmentID: record.ShipmentID(),
		Operation:  op,
		Raw:        cmd.Raw(),
	}, nil
}

func (h ProcessEventCommandHandler) record(op shipment.Operation, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.EventProcessed(op.String(), Outcome(err))
}

// Outcome classifies a Handle error into a metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeAccepted
	case errors.Is(err, shipment.ErrMalformedRecord):
		return OutcomeMalformed
	case errors.Is(err, shipment.ErrUnknownOperation):
		return OutcomeUnknownOperation
	case errors.Is(err, shipment.ErrUnknownCategory):
		return OutcomeUnknownCategory
	case errors.Is(err, errs.ErrObjectNotFound):
		return OutcomeNotFound
	default:
		return OutcomeFailed
	}
}

package queries

import (
	"context"
	"database/sql"

	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryDetailsQueryHandler retrieves one delivery record from the
// database. Uses direct SQL for optimal read performance in the CQRS pattern.
type GetDeliveryDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryDetailsQueryHandler creates a handler for delivery detail queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryDetailsQueryHandler(db *gorm.DB) GetDeliveryDetailsQueryHandler {
	return GetDeliveryDetailsQueryHandler{db: db}
}

// Handle executes the query for one delivery record.
// Returns nil without error when the id has no record.
func (h GetDeliveryDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryDetailsQuery,
) (*GetDeliveryDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			operator_id,
			supplier_id,
			recipient_id,
			start_time,
			expected_arrival,
			actual_arrival,
			payload_fingerprint,
			sequence,
			status,
			completed,
			failure_reason
		FROM deliveries
		WHERE id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		id, operatorID, supplierID, recipientID uuid.UUID
		startTime, expectedArrival              int64
		actualArrival                           sql.NullInt64
		fingerprint                             []byte
		sequence                                uint32
		status                                  int
		completed                               bool
		failureReason                           sql.NullString
	)

	if err = rows.Scan(
		&id,
		&operatorID,
		&supplierID,
		&recipientID,
		&startTime,
		&expectedArrival,
		&actualArrival,
		&fingerprint,
		&sequence,
		&status,
		&completed,
		&failureReason,
	); err != nil {
		return nil, err
	}

	response := GetDeliveryDetailsQueryResponse{
		StartTime:       uint64(startTime),
		ExpectedArrival: uint64(expectedArrival),
		Sequence:        sequence,
		Status:          delivery.Status(status).String(),
		Completed:       completed,
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if response.Operator, err = kernel.UUIDFromBytes(operatorID[:]); err != nil {
		return nil, err
	}
	if response.Supplier, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
		return nil, err
	}
	if response.Recipient, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
		return nil, err
	}

	fp, err := kernel.FingerprintFromBytes(fingerprint)
	if err != nil {
		return nil, err
	}
	response.PayloadFingerprint = fp.String()

	if actualArrival.Valid {
		arrival := uint64(actualArrival.Int64)
		response.ActualArrival = &arrival
	}
	if failureReason.Valid {
		reason := failureReason.String
		response.FailureReason = &reason
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &response, nil
}

// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery record persistence. Implements the repository pattern for the
// delivery aggregate, converting between domain entities and database rows.
package deliveryrepo

import (
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// records. Indexed for the overdue sweep (completed, expected_arrival).
type DeliveryDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OperatorID         uuid.UUID `gorm:"type:uuid"`
	SupplierID         uuid.UUID `gorm:"type:uuid"`
	RecipientID        uuid.UUID `gorm:"type:uuid"`
	StartTime          int64
	ExpectedArrival    int64 `gorm:"index"`
	ActualArrival      *int64
	PayloadFingerprint []byte `gorm:"type:bytea"`
	Sequence           uint32
	Status             int
	Completed          bool `gorm:"index"`
	FailureReason      *string
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var actualArrival *int64
	if arrival := aggregate.ActualArrival(); arrival != nil {
		raw := int64(*arrival)
		actualArrival = &raw
	}

	return DeliveryDTO{
		ID:                 aggregate.ID().Bytes(),
		OperatorID:         aggregate.Operator().Bytes(),
		SupplierID:         aggregate.Supplier().Bytes(),
		RecipientID:        aggregate.Recipient().Bytes(),
		StartTime:          int64(aggregate.StartTime()),
		ExpectedArrival:    int64(aggregate.ExpectedArrival()),
		ActualArrival:      actualArrival,
		PayloadFingerprint: aggregate.PayloadFingerprint().Bytes(),
		Sequence:           aggregate.Sequence(),
		Status:             int(aggregate.Status()),
		Completed:          aggregate.IsCompleted(),
		FailureReason:      aggregate.FailureReason(),
	}
}

// toDomain converts a database DTO back into a delivery aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	operator, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	supplier, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	recipient, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	fingerprint, err := kernel.FingerprintFromBytes(dto.PayloadFingerprint)
	if err != nil {
		return nil, err
	}

	var actualArrival *uint64
	if dto.ActualArrival != nil {
		arrival := uint64(*dto.ActualArrival)
		actualArrival = &arrival
	}

	return delivery.RestoreDelivery(
		id,
		operator,
		supplier,
		recipient,
		uint64(dto.StartTime),
		uint64(dto.ExpectedArrival),
		actualArrival,
		fingerprint,
		dto.Sequence,
		delivery.Status(dto.Status),
		dto.Completed,
		dto.FailureReason,
	)
}

package commands

import (
	"errors"

	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/pkg/guard"
)

var ErrTrackDeliveryCommandIsNotConstructed = errors.New(
	"TrackDeliveryCommand must be created via NewTrackDeliveryCommand constructor",
)

// TrackDeliveryCommand represents a request to append one tracking event to a
// delivery's event log. The position, status, and note travel as raw wire
// values; the handler parses and bounds them after authorization, so an
// unauthorized caller never learns whether its payload was well-formed.
type TrackDeliveryCommand struct { //nolint:recvcheck //using for validation
	caller     kernel.UUID
	deliveryID kernel.UUID
	latitude   string
	longitude  string
	altitude   uint32
	status     string
	note       string

	guard guard.ConstructorGuard
}

// NewTrackDeliveryCommand creates a command to append a tracking event.
// Only the identities are validated here; payload validation belongs to the
// handler's check sequence.
func NewTrackDeliveryCommand(
	caller kernel.UUID,
	deliveryID kernel.UUID,
	latitude string,
	longitude string,
	altitude uint32,
	status string,
	note string,
) (TrackDeliveryCommand, error) {
	command := TrackDeliveryCommand{
		latitude:  latitude,
		longitude: longitude,
		altitude:  altitude,
		status:    status,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCaller(caller),
		command.setDeliveryID(deliveryID),
	); err != nil {
		return TrackDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c TrackDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrTrackDeliveryCommandIsNotConstructed)
}

// Caller returns the identity issuing the command.
func (c TrackDeliveryCommand) Caller() kernel.UUID {
	return c.caller
}

// DeliveryID returns the identifier of the tracked delivery.
func (c TrackDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Latitude returns the reported latitude string.
func (c TrackDeliveryCommand) Latitude() string {
	return c.latitude
}

// Longitude returns the reported longitude string.
func (c TrackDeliveryCommand) Longitude() string {
	return c.longitude
}

// Altitude returns the reported altitude.
func (c TrackDeliveryCommand) Altitude() uint32 {
	return c.altitude
}

// Status returns the raw wire status value.
func (c TrackDeliveryCommand) Status() string {
	return c.status
}

// Note returns the free-form note text.
func (c TrackDeliveryCommand) Note() string {
	return c.note
}

func (c *TrackDeliveryCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}

func (c *TrackDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

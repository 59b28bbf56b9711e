package commands_test

import (
	"bytes"
	"context"
	"testing"

	"trackledger/internal/core/application/usecases/commands"
	"trackledger/internal/core/domain/model/access"
	"trackledger/internal/core/domain/model/control"
	"trackledger/internal/core/domain/model/delivery"
	"trackledger/internal/core/domain/model/kernel"
	"trackledger/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) GetAllOverdue(ctx context.Context, asOf uint64) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockTrackingEventRepository struct{ mock.Mock }

func (m *MockTrackingEventRepository) Add(ctx context.Context, e *delivery.TrackingEvent) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockTrackingEventRepository) Get(
	ctx context.Context, deliveryID kernel.UUID, sequence uint32,
) (*delivery.TrackingEvent, error) {
	args := m.Called(ctx, deliveryID, sequence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.TrackingEvent), args.Error(1)
}

type MockRoleAssignmentRepository struct{ mock.Mock }

func (m *MockRoleAssignmentRepository) Add(ctx context.Context, a *access.RoleAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRoleAssignmentRepository) Update(ctx context.Context, a *access.RoleAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockRoleAssignmentRepository) Find(
	ctx context.Context, userID kernel.UUID, deliveryID kernel.UUID,
) (*access.RoleAssignment, error) {
	args := m.Called(ctx, userID, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.RoleAssignment), args.Error(1)
}

type MockControlRepository struct{ mock.Mock }

func (m *MockControlRepository) Get(ctx context.Context) (*control.Control, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*control.Control), args.Error(1)
}

func (m *MockControlRepository) GetForUpdate(ctx context.Context) (*control.Control, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*control.Control), args.Error(1)
}

func (m *MockControlRepository) Update(ctx context.Context, c *control.Control) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockControlRepository) Init(ctx context.Context, owner kernel.UUID) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

// MockUoW satisfies ControlUoW, RegistryUoW, and LedgerUoW at once, so each
// test wires only the repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) TrackingEventRepository() ports.TrackingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackingEventRepository)
}

func (m *MockUoW) RoleAssignmentRepository() ports.RoleAssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.RoleAssignmentRepository)
}

func (m *MockUoW) ControlRepository() ports.ControlRepository {
	args := m.Called()
	return args.Get(0).(ports.ControlRepository)
}

type MockControlUoWFactory struct{ mock.Mock }

func (m *MockControlUoWFactory) Create() commands.ControlUoW {
	args := m.Called()
	return args.Get(0).(commands.ControlUoW)
}

type MockRegistryUoWFactory struct{ mock.Mock }

func (m *MockRegistryUoWFactory) Create() commands.RegistryUoW {
	args := m.Called()
	return args.Get(0).(commands.RegistryUoW)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

// stubClock returns a fixed logical time.
type stubClock struct{ now uint64 }

func (c stubClock) Now() uint64 { return c.now }

func testFingerprint(t *testing.T) kernel.Fingerprint {
	t.Helper()
	fp, err := kernel.FingerprintFromBytes(bytes.Repeat([]byte{0xab}, kernel.FingerprintLength))
	require.NoError(t, err)
	return fp
}

func testControl(t *testing.T, owner kernel.UUID, oracles ...kernel.UUID) *control.Control {
	t.Helper()
	ctrl, err := control.RestoreControl(owner, false, oracles)
	require.NoError(t, err)
	return ctrl
}

func pausedControl(t *testing.T, owner kernel.UUID) *control.Control {
	t.Helper()
	ctrl, err := control.RestoreControl(owner, true, nil)
	require.NoError(t, err)
	return ctrl
}

func testDelivery(t *testing.T, id kernel.UUID, operator kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(
		id, operator, kernel.NewUUID(), kernel.NewUUID(), 2000, testFingerprint(t), 1000)
	require.NoError(t, err)
	return d
}

func operatorAssignment(t *testing.T, user kernel.UUID, deliveryID kernel.UUID) *access.RoleAssignment {
	t.Helper()
	a, err := access.NewRoleAssignment(user, deliveryID, access.RoleOperator)
	require.NoError(t, err)
	return a
}

func adminAssignment(t *testing.T, user kernel.UUID, deliveryID kernel.UUID) *access.RoleAssignment {
	t.Helper()
	a, err := access.NewRoleAssignment(user, deliveryID, access.RoleAdmin)
	require.NoError(t, err)
	return a
}

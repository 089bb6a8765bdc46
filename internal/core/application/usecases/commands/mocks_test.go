package commands_test

import (
	"context"
	"time"

	"relomarket/internal/core/application/usecases/commands"
	"relomarket/internal/core/domain/model/broadcast"
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/order"
	"relomarket/internal/core/domain/model/response"
	"relomarket/internal/core/domain/model/vendor"
	"relomarket/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Assign(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetAllMatching(
	ctx context.Context, filters ports.VendorFilters,
) ([]*vendor.Vendor, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vendor.Vendor), args.Error(1)
}

type MockBroadcastRepository struct{ mock.Mock }

func (m *MockBroadcastRepository) Add(ctx context.Context, aggregate *broadcast.Broadcast) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBroadcastRepository) Update(ctx context.Context, aggregate *broadcast.Broadcast) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockBroadcastRepository) Get(ctx context.Context, id kernel.UUID) (*broadcast.Broadcast, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*broadcast.Broadcast), args.Error(1)
}

func (m *MockBroadcastRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*broadcast.Broadcast, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*broadcast.Broadcast), args.Error(1)
}

func (m *MockBroadcastRepository) ExpireAllPending(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockResponseRepository struct{ mock.Mock }

func (m *MockResponseRepository) Add(ctx context.Context, aggregate *response.VendorResponse) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockResponseRepository) Update(ctx context.Context, aggregate *response.VendorResponse) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockResponseRepository) Get(ctx context.Context, id kernel.UUID) (*response.VendorResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.VendorResponse), args.Error(1)
}

func (m *MockResponseRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*response.VendorResponse, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*response.VendorResponse), args.Error(1)
}

// MockUoW implements every narrow unit of work interface the commands
// declare, so each test wires only the repositories its handler touches.
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

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) BroadcastRepository() ports.BroadcastRepository {
	args := m.Called()
	return args.Get(0).(ports.BroadcastRepository)
}

func (m *MockUoW) ResponseRepository() ports.ResponseRepository {
	args := m.Called()
	return args.Get(0).(ports.ResponseRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockBroadcastUoWFactory struct{ mock.Mock }

func (m *MockBroadcastUoWFactory) Create() commands.BroadcastUoW {
	args := m.Called()
	return args.Get(0).(commands.BroadcastUoW)
}

type MockNegotiationUoWFactory struct{ mock.Mock }

func (m *MockNegotiationUoWFactory) Create() commands.NegotiationUoW {
	args := m.Called()
	return args.Get(0).(commands.NegotiationUoW)
}

type MockSweepUoWFactory struct{ mock.Mock }

func (m *MockSweepUoWFactory) Create() commands.SweepUoW {
	args := m.Called()
	return args.Get(0).(commands.SweepUoW)
}

// Shared fixtures.

func testPrice(t testingT, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(amount)
	if err != nil {
		t.Fatalf("building test price: %v", err)
	}
	return price
}

func testQuotedOrder(t testingT) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "House Relocation")
	if err != nil {
		t.Fatalf("building test order: %v", err)
	}
	if err := o.SetApproxPrice(testPrice(t, 250000)); err != nil {
		t.Fatalf("quoting test order: %v", err)
	}
	return o
}

func testEligibleVendor(t testingT, name string, rating float64) *vendor.Vendor {
	t.Helper()
	v, err := vendor.RestoreVendor(kernel.NewUUID(), name, "Bengaluru", rating, vendor.Approved, true)
	if err != nil {
		t.Fatalf("building test vendor: %v", err)
	}
	return v
}

// testingT is the subset of *testing.T the fixtures need.
type testingT interface {
	Helper()
	Fatalf(format string, args ...any)
}

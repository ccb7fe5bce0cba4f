package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/pricing"
	"dispatch/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllEnRoute(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockZoneFeeRepository struct{ mock.Mock }

func (m *MockZoneFeeRepository) Upsert(ctx context.Context, entry pricing.ZoneFee) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockZoneFeeRepository) FeeForZone(ctx context.Context, zone string) (float64, bool, error) {
	args := m.Called(ctx, zone)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

func (m *MockZoneFeeRepository) GetAll(ctx context.Context) ([]pricing.ZoneFee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]pricing.ZoneFee), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockZoneFeeUoW struct{ mock.Mock }

func (m *MockZoneFeeUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockZoneFeeUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockZoneFeeUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockZoneFeeUoW) ZoneFeeRepository() ports.ZoneFeeRepository {
	args := m.Called()
	return args.Get(0).(ports.ZoneFeeRepository)
}

type MockZoneFeeUoWFactory struct{ mock.Mock }

func (m *MockZoneFeeUoWFactory) Create() commands.ZoneFeeUoW {
	args := m.Called()
	return args.Get(0).(commands.ZoneFeeUoW)
}

// StubGeocoder resolves every point to a fixed zone.
type StubGeocoder struct {
	Zone  string
	Found bool
	Err   error
}

func (s StubGeocoder) ResolveZone(_ context.Context, _ kernel.GeoPoint) (string, bool, error) {
	return s.Zone, s.Found, s.Err
}

// StubFeeTable prices every zone with a fixed fee.
type StubFeeTable struct {
	Fee   float64
	Found bool
	Err   error
}

func (s StubFeeTable) FeeForZone(_ context.Context, _ string) (float64, bool, error) {
	return s.Fee, s.Found, s.Err
}

func testItems(t *testing.T) []order.Item {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Cafe cubano", 2.50, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func testDestination(t *testing.T) kernel.GeoPoint {
	t.Helper()

	point, err := kernel.NewGeoPoint(23.1136, -82.3666)
	require.NoError(t, err)
	return point
}

func pendingOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(id, kernel.NewUUID(), "Ana", "+53 5555 5555",
		testItems(t), testDestination(t), "Plaza", 5.00, order.Cash, time.Now())
	require.NoError(t, err)
	return o
}

func enRouteOrder(t *testing.T, id kernel.UUID, courierID kernel.UUID) *order.Order {
	t.Helper()

	o := pendingOrder(t, id)
	require.NoError(t, o.Assign(courierID))
	require.NoError(t, o.StartDelivery(courierID))
	return o
}

package commands_test

import (
	"testing"

	"relomarket/internal/core/application/usecases/commands"
	"relomarket/internal/core/domain/model/kernel"
	"relomarket/internal/core/domain/model/order"
	"relomarket/internal/core/domain/model/vendor"
	"relomarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func directAssignCommand(t *testing.T, orderID, vendorID kernel.UUID) commands.DirectAssignCommand {
	t.Helper()
	cmd, err := commands.NewDirectAssignCommand(orderID, vendorID)
	require.NoError(t, err)
	return cmd
}

func TestNewDirectAssignCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewDirectAssignCommand(kernel.UUID{}, kernel.NewUUID())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewDirectAssignCommand(kernel.NewUUID(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDirectAssignCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := testQuotedOrder(t)
	testVendor := testEligibleVendor(t, "Swift Movers", 4.2)
	cmd := directAssignCommand(t, testOrder.ID(), testVendor.ID())

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		vendorRepo.On("Get", ctx, testVendor.ID()).Return(testVendor, nil).Once(),
		orderRepo.On("Assign", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDirectAssignCommandHandler(factory)
	assigned, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, assigned.Status())
	require.NotNil(t, assigned.AssignedVendor())
	assert.True(t, assigned.AssignedVendor().IsEqual(testVendor.ID()))

	orderRepo.AssertExpectations(t)
	vendorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDirectAssignCommandHandler_Handle_UnapprovedVendor(t *testing.T) {
	ctx := t.Context()
	testOrder := testQuotedOrder(t)
	pendingVendor, err := vendor.NewVendor(kernel.NewUUID(), "New Kid Movers", "Pune")
	require.NoError(t, err)
	cmd := directAssignCommand(t, testOrder.ID(), pendingVendor.ID())

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		vendorRepo.On("Get", ctx, pendingVendor.ID()).Return(pendingVendor, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDirectAssignCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	orderRepo.AssertNotCalled(t, "Assign", mock.Anything, mock.Anything)
	assert.Nil(t, testOrder.AssignedVendor())
}

func TestDirectAssignCommandHandler_Handle_AlreadyAssignedToOther(t *testing.T) {
	ctx := t.Context()
	testOrder := testQuotedOrder(t)
	require.NoError(t, testOrder.AssignVendor(kernel.NewUUID()))
	testVendor := testEligibleVendor(t, "Swift Movers", 4.2)
	cmd := directAssignCommand(t, testOrder.ID(), testVendor.ID())

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		vendorRepo.On("Get", ctx, testVendor.ID()).Return(testVendor, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDirectAssignCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
}

func TestDirectAssignCommandHandler_Handle_StoredRowClaimedConcurrently(t *testing.T) {
	ctx := t.Context()
	testOrder := testQuotedOrder(t)
	testVendor := testEligibleVendor(t, "Swift Movers", 4.2)
	cmd := directAssignCommand(t, testOrder.ID(), testVendor.ID())

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		vendorRepo.On("Get", ctx, testVendor.ID()).Return(testVendor, nil).Once(),
		orderRepo.On("Assign", ctx, mock.AnythingOfType("*order.Order")).
			Return(order.ErrAlreadyAssigned).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDirectAssignCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDirectAssignCommandHandler_Handle_VendorNotFound(t *testing.T) {
	ctx := t.Context()
	testOrder := testQuotedOrder(t)
	vendorID := kernel.NewUUID()
	cmd := directAssignCommand(t, testOrder.ID(), vendorID)

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("VendorRepository").Return(vendorRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		vendorRepo.On("Get", ctx, vendorID).
			Return(nil, errs.NewObjectNotFoundError("vendorId", vendorID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDirectAssignCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

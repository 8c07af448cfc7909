package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Ann Lee", "+1 555 0100", "12 Main St")
	require.NoError(t, err)
	return c
}

func validItems(t *testing.T) []order.Item {
	t.Helper()
	pizza, err := order.NewItem("Pizza", 2, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	soda, err := order.NewItem("Soda", 3, decimal.RequireFromString("1.99"))
	require.NoError(t, err)
	return []order.Item{pizza, soda}
}

func at(t *testing.T, s string) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", validCustomer(t), kernel.Downtown, validItems(t), at(t, "14:00"), createdAt)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates a pending order", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.NewOrder(id, " ORD-1001 ", validCustomer(t), kernel.Downtown, validItems(t), at(t, "14:00"), createdAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-1001", o.Number())
		assert.Equal(t, kernel.Downtown, o.Area())
		assert.Equal(t, order.Pending, o.Status())
		assert.True(t, o.IsPending())
		assert.Nil(t, o.Partner())
		assert.Equal(t, "14:00", o.ScheduledFor().String())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, createdAt, o.UpdatedAt())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("joins every validation error", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, "", order.Customer{}, kernel.AreaUnknown, nil, kernel.TimeOfDay{}, createdAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, kernel.ErrTimeOfDayIsNotConstructed)
		assert.Contains(t, err.Error(), "order number")
		assert.Contains(t, err.Error(), "customer")
		assert.Contains(t, err.Error(), "area")
		assert.Contains(t, err.Error(), "items")
	})

	t.Run("items are copied", func(t *testing.T) {
		items := validItems(t)
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", validCustomer(t), kernel.Uptown, items, at(t, "10:00"), createdAt)
		require.NoError(t, err)

		items[0], _ = order.NewItem("Other", 1, decimal.Zero)
		assert.Equal(t, "Pizza", o.Items()[0].Name())
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		var nilOrder *order.Order
		assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_TotalAmount(t *testing.T) {
	o := newPendingOrder(t)
	assert.True(t, decimal.RequireFromString("30.97").Equal(o.TotalAmount()), o.TotalAmount().String())
}

func TestOrder_Assign(t *testing.T) {
	t.Run("assigns a pending order", func(t *testing.T) {
		o := newPendingOrder(t)
		partnerID := kernel.NewUUID()
		later := createdAt.Add(3 * time.Minute)

		require.NoError(t, o.Assign(partnerID, later))

		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Partner())
		assert.True(t, o.Partner().IsEqual(partnerID))
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("cannot assign twice", func(t *testing.T) {
		o := newPendingOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Assign(first, createdAt))

		err := o.Assign(kernel.NewUUID(), createdAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.True(t, o.Partner().IsEqual(first))
	})

	t.Run("rejects invalid partner", func(t *testing.T) {
		o := newPendingOrder(t)
		require.Error(t, o.Assign(kernel.UUID{}, createdAt))
		assert.True(t, o.IsPending())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	o := newPendingOrder(t)
	require.Error(t, o.ChangeStatus(order.Assigned, createdAt))
	require.Error(t, o.ChangeStatus(order.Picked, createdAt))

	require.NoError(t, o.Assign(kernel.NewUUID(), createdAt))
	require.NoError(t, o.ChangeStatus(order.Picked, createdAt.Add(time.Minute)))
	require.NoError(t, o.ChangeStatus(order.Delivered, createdAt.Add(2*time.Minute)))

	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, createdAt.Add(2*time.Minute), o.UpdatedAt())
	require.Error(t, o.ChangeStatus(order.Delivered, createdAt))
}

func TestRestoreOrder(t *testing.T) {
	partnerID := kernel.NewUUID()

	t.Run("restores an assigned order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-7", validCustomer(t), kernel.Midtown, validItems(t),
			order.Assigned, &partnerID, at(t, "11:15"), createdAt, createdAt.Add(time.Hour))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Assigned, o.Status())
		assert.True(t, o.Partner().IsEqual(partnerID))
		assert.Equal(t, createdAt.Add(time.Hour), o.UpdatedAt())
	})

	t.Run("pending with partner is inconsistent", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "ORD-7", validCustomer(t), kernel.Midtown, validItems(t),
			order.Pending, &partnerID, at(t, "11:15"), createdAt, createdAt)
		require.Error(t, err)
	})

	t.Run("assigned without partner is inconsistent", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "ORD-7", validCustomer(t), kernel.Midtown, validItems(t),
			order.Assigned, nil, at(t, "11:15"), createdAt, createdAt)
		require.Error(t, err)
	})
}

func TestNewItem(t *testing.T) {
	item, err := order.NewItem(" Burger ", 2, decimal.RequireFromString("8.25"))
	require.NoError(t, err)
	assert.Equal(t, "Burger", item.Name())
	assert.Equal(t, 2, item.Quantity())
	assert.True(t, decimal.RequireFromString("16.50").Equal(item.Subtotal()))

	_, err = order.NewItem("", 0, decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item name")
	assert.Contains(t, err.Error(), "item quantity")
	assert.Contains(t, err.Error(), "item price")
}

func TestNewCustomer(t *testing.T) {
	c := validCustomer(t)
	assert.Equal(t, "Ann Lee", c.Name())
	assert.Equal(t, "+1 555 0100", c.Phone())
	assert.Equal(t, "12 Main St", c.Address())

	_, err := order.NewCustomer(" ", "", "x")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "customer name")
	assert.Contains(t, err.Error(), "customer phone")
	assert.NotContains(t, err.Error(), "customer address")
}

package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	items := []LineItem{{ServiceID: "s1", Quantity: 2, UnitPrice: decimal.NewFromInt(150)}}

	require.True(t, ComputeTotal(items, decimal.NewFromInt(50)).Equal(decimal.NewFromInt(250)))
	require.True(t, ComputeTotal(items, decimal.Zero).Equal(decimal.NewFromInt(300)))
	require.True(t, ComputeTotal(items, decimal.NewFromInt(300)).IsZero())
	require.True(t, ComputeTotal(items, decimal.NewFromInt(301)).IsZero())
}

func TestComputeTotal_SubtotalMinusDiscountProperty(t *testing.T) {
	for q := 1; q <= 5; q++ {
		for _, price := range []string{"0", "0.01", "99.90", "150", "1234.56"} {
			unit := decimal.RequireFromString(price)
			items := []LineItem{
				{ServiceID: "a", Quantity: q, UnitPrice: unit},
				{ServiceID: "b", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
			}
			subtotal := Subtotal(items)
			for _, d := range []string{"0", "5", "10.5", "10000"} {
				discount := decimal.RequireFromString(d)
				total := ComputeTotal(items, discount)
				if discount.LessThanOrEqual(subtotal) {
					require.True(t, total.Equal(subtotal.Sub(discount)), "q=%d price=%s discount=%s", q, price, d)
				} else {
					require.True(t, total.IsZero(), "q=%d price=%s discount=%s", q, price, d)
				}
			}
		}
	}
}

func TestWorkOrder_Reprice(t *testing.T) {
	o := WorkOrder{
		Items:    []LineItem{{ServiceID: "s1", Quantity: 3, UnitPrice: decimal.RequireFromString("80.50")}},
		Discount: decimal.RequireFromString("1.50"),
		Total:    decimal.NewFromInt(999),
	}
	o.Reprice()
	require.Equal(t, "240", o.Total.String())
}

func TestValidateItems(t *testing.T) {
	require.ErrorIs(t, ValidateItems(nil), ErrValidation)
	require.ErrorIs(t, ValidateItems([]LineItem{{ServiceID: "s", Quantity: 0}}), ErrValidation)
	require.ErrorIs(t, ValidateItems([]LineItem{{ServiceID: "s", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}}), ErrValidation)
	require.ErrorIs(t, ValidateItems([]LineItem{{Quantity: 1}}), ErrValidation)
	require.NoError(t, ValidateItems([]LineItem{{ServiceID: "s", Quantity: 1, UnitPrice: decimal.Zero}}))
	require.ErrorIs(t, ValidateDiscount(decimal.NewFromInt(-1)), ErrValidation)
}

func TestTransitionPolicies(t *testing.T) {
	permissive := PermissiveTransitions{}
	require.NoError(t, permissive.Allow(OrderStatusConcluida, OrderStatusAberta))
	require.NoError(t, permissive.Allow(OrderStatusCancelada, OrderStatusEmExecucao))
	require.ErrorIs(t, permissive.Allow(OrderStatusAberta, "finalizada"), ErrValidation)

	strict := StrictTransitions{}
	require.NoError(t, strict.Allow(OrderStatusAberta, OrderStatusEmExecucao))
	require.NoError(t, strict.Allow(OrderStatusEmExecucao, OrderStatusAguardandoRetirada))
	require.NoError(t, strict.Allow(OrderStatusAguardandoRetirada, OrderStatusConcluida))
	require.NoError(t, strict.Allow(OrderStatusEmExecucao, OrderStatusCancelada))
	require.NoError(t, strict.Allow(OrderStatusAberta, OrderStatusAberta))
	require.ErrorIs(t, strict.Allow(OrderStatusAberta, OrderStatusConcluida), ErrTransitionNotAllowed)
	require.ErrorIs(t, strict.Allow(OrderStatusConcluida, OrderStatusCancelada), ErrTransitionNotAllowed)
	require.ErrorIs(t, strict.Allow(OrderStatusCancelada, OrderStatusAberta), ErrValidation)

	p, err := NewTransitionPolicy("STRICT")
	require.NoError(t, err)
	require.IsType(t, StrictTransitions{}, p)
	p, err = NewTransitionPolicy("")
	require.NoError(t, err)
	require.IsType(t, PermissiveTransitions{}, p)
	_, err = NewTransitionPolicy("whatever")
	require.Error(t, err)
}

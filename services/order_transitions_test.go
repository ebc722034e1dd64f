package services

import (
	"errors"
	"testing"

	"bufood/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderIn(status entity.OrderStatus, orderType entity.OrderType) *entity.Order {
	return &entity.Order{Status: status, OrderType: orderType}
}

var allStatuses = []entity.OrderStatus{
	entity.StatusPending, entity.StatusAccepted, entity.StatusRejected,
	entity.StatusPreparing, entity.StatusReady, entity.StatusOutForDelivery,
	entity.StatusReadyForPickup, entity.StatusDelivered, entity.StatusCanceled,
}

// legalTransitions spells the whole table out independently so a table edit
// has to be made twice to slip through.
type legalTransition struct {
	from, to  entity.OrderStatus
	role      entity.ActorRole
	orderType entity.OrderType // "" = either
}

var legalTransitions = []legalTransition{
	{entity.StatusPending, entity.StatusAccepted, entity.RoleSeller, ""},
	{entity.StatusPending, entity.StatusRejected, entity.RoleSeller, ""},
	{entity.StatusPending, entity.StatusCanceled, entity.RoleCustomer, ""},
	{entity.StatusAccepted, entity.StatusCanceled, entity.RoleCustomer, ""},
	{entity.StatusAccepted, entity.StatusPreparing, entity.RoleSeller, ""},
	{entity.StatusPreparing, entity.StatusOutForDelivery, entity.RoleSeller, entity.OrderTypeDelivery},
	{entity.StatusPreparing, entity.StatusReady, entity.RoleSeller, entity.OrderTypePickup},
	{entity.StatusReady, entity.StatusReadyForPickup, entity.RoleSeller, entity.OrderTypePickup},
	{entity.StatusOutForDelivery, entity.StatusDelivered, entity.RoleSeller, ""},
	{entity.StatusReadyForPickup, entity.StatusDelivered, entity.RoleSeller, ""},
}

func isLegal(from, to entity.OrderStatus, role entity.ActorRole, ot entity.OrderType) bool {
	for _, lt := range legalTransitions {
		if lt.from == from && lt.to == to && lt.role == role &&
			(lt.orderType == "" || lt.orderType == ot) {
			return true
		}
	}
	return false
}

func TestValidateTransition_Exhaustive(t *testing.T) {
	for _, ot := range []entity.OrderType{entity.OrderTypePickup, entity.OrderTypeDelivery} {
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				for _, role := range []entity.ActorRole{entity.RoleCustomer, entity.RoleSeller} {
					_, err := ValidateTransition(orderIn(from, ot), to, role, "some reason")
					if isLegal(from, to, role, ot) {
						assert.NoError(t, err, "%s -> %s by %s (%s) should be legal", from, to, role, ot)
					} else {
						assert.ErrorIs(t, err, ErrInvalidTransition,
							"%s -> %s by %s (%s) should be rejected", from, to, role, ot)
					}
				}
			}
		}
	}
}

func TestValidateTransition_CarriesBothStatuses(t *testing.T) {
	_, err := ValidateTransition(orderIn(entity.StatusPreparing, entity.OrderTypeDelivery),
		entity.StatusDelivered, entity.RoleSeller, "")

	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, entity.StatusPreparing, ite.From)
	assert.Equal(t, entity.StatusDelivered, ite.To)
}

func TestValidateTransition_RequiresReason(t *testing.T) {
	tests := []struct {
		name  string
		to    entity.OrderStatus
		role  entity.ActorRole
		field string
	}{
		{"reject without reason", entity.StatusRejected, entity.RoleSeller, "reason"},
		{"cancel without reason", entity.StatusCanceled, entity.RoleCustomer, "cancellationReason"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTransition(orderIn(entity.StatusPending, entity.OrderTypeDelivery), tt.to, tt.role, "")
			require.ErrorIs(t, err, ErrMissingRequiredField)

			var mfe *MissingFieldError
			require.ErrorAs(t, err, &mfe)
			assert.Equal(t, tt.field, mfe.Field)
		})
	}
}

func TestValidateTransition_Effects(t *testing.T) {
	eff, err := ValidateTransition(orderIn(entity.StatusPending, entity.OrderTypeDelivery),
		entity.StatusAccepted, entity.RoleSeller, "")
	require.NoError(t, err)
	assert.True(t, eff.setAcceptedAt)
	assert.False(t, eff.setCanceledAt)
	assert.False(t, eff.setDeliveredAt)

	eff, err = ValidateTransition(orderIn(entity.StatusAccepted, entity.OrderTypeDelivery),
		entity.StatusCanceled, entity.RoleCustomer, "changed mind")
	require.NoError(t, err)
	assert.True(t, eff.setCanceledAt)
	assert.Equal(t, entity.RoleCustomer, eff.canceledBy)

	eff, err = ValidateTransition(orderIn(entity.StatusOutForDelivery, entity.OrderTypeDelivery),
		entity.StatusDelivered, entity.RoleSeller, "")
	require.NoError(t, err)
	assert.True(t, eff.setDeliveredAt)
}

func TestValidateTransition_TerminalStatesAreDeadEnds(t *testing.T) {
	for _, terminal := range []entity.OrderStatus{entity.StatusRejected, entity.StatusCanceled, entity.StatusDelivered} {
		require.True(t, terminal.IsTerminal())
		for _, to := range allStatuses {
			for _, role := range []entity.ActorRole{entity.RoleCustomer, entity.RoleSeller} {
				_, err := ValidateTransition(orderIn(terminal, entity.OrderTypeDelivery), to, role, "reason")
				assert.True(t, errors.Is(err, ErrInvalidTransition),
					"terminal %s must reject transition to %s", terminal, to)
			}
		}
	}
}

func TestAllowedTransitions(t *testing.T) {
	tests := []struct {
		name      string
		status    entity.OrderStatus
		orderType entity.OrderType
		role      entity.ActorRole
		want      []entity.OrderStatus
	}{
		{"seller on pending", entity.StatusPending, entity.OrderTypeDelivery, entity.RoleSeller,
			[]entity.OrderStatus{entity.StatusAccepted, entity.StatusRejected}},
		{"customer on pending", entity.StatusPending, entity.OrderTypeDelivery, entity.RoleCustomer,
			[]entity.OrderStatus{entity.StatusCanceled}},
		{"seller on preparing delivery", entity.StatusPreparing, entity.OrderTypeDelivery, entity.RoleSeller,
			[]entity.OrderStatus{entity.StatusOutForDelivery}},
		{"seller on preparing pickup", entity.StatusPreparing, entity.OrderTypePickup, entity.RoleSeller,
			[]entity.OrderStatus{entity.StatusReady}},
		{"customer on delivered", entity.StatusDelivered, entity.OrderTypeDelivery, entity.RoleCustomer, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllowedTransitions(orderIn(tt.status, tt.orderType), tt.role)
			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTransitionNotAllowed wraps the validation kind so handlers answer 400.
var ErrTransitionNotAllowed = fmt.Errorf("status transition not allowed: %w", ErrValidation)

// TransitionPolicy decides whether a work order may move between statuses.
type TransitionPolicy interface {
	Allow(from, to OrderStatus) error
}

// PermissiveTransitions accepts any valid status from any status, which is how
// the shop has always operated.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allow(_, to OrderStatus) error {
	if !to.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}
	return nil
}

// StrictTransitions follows aberta -> em_execucao -> aguardando_retirada ->
// concluida, with cancelada reachable from any non-terminal status.
type StrictTransitions struct{}

var strictNext = map[OrderStatus]OrderStatus{
	OrderStatusAberta:             OrderStatusEmExecucao,
	OrderStatusEmExecucao:         OrderStatusAguardandoRetirada,
	OrderStatusAguardandoRetirada: OrderStatusConcluida,
}

func (StrictTransitions) Allow(from, to OrderStatus) error {
	if !to.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown status %q", to))
	}
	if from == to {
		return nil
	}
	if from.IsTerminal() {
		return fmt.Errorf("%s -> %s: %w", from, to, ErrTransitionNotAllowed)
	}
	if to == OrderStatusCancelada || strictNext[from] == to {
		return nil
	}
	return fmt.Errorf("%s -> %s: %w", from, to, ErrTransitionNotAllowed)
}

// NewTransitionPolicy resolves a policy by its configured name.
func NewTransitionPolicy(name string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "permissive":
		return PermissiveTransitions{}, nil
	case "strict":
		return StrictTransitions{}, nil
	}
	return nil, errors.New("unknown order status policy: " + name)
}

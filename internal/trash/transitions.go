package trash

import (
	"fmt"

	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
)

// Kind selects which entity a trash operation applies to. Product and sale
// trash states are independent: no transition on one kind ever cascades to
// the other.
type Kind string

const (
	KindProduct Kind = "product"
	KindSale    Kind = "sale"
)

// ParseKind validates a kind coming off the wire.
func ParseKind(value string) (Kind, error) {
	switch Kind(value) {
	case KindProduct, KindSale:
		return Kind(value), nil
	default:
		return "", fmt.Errorf("unknown trash kind %q", value)
	}
}

func (k Kind) model() any {
	if k == KindSale {
		return &models.Sale{}
	}
	return &models.Product{}
}

// State is the lifecycle position of a record with respect to the trash.
type State string

const (
	StateActive  State = "active"
	StateTrashed State = "trashed"
)

// Op is a lifecycle transition request.
type Op string

const (
	OpSoftDelete Op = "soft-delete"
	OpRestore    Op = "restore"
	OpPurge      Op = "purge"
)

// sourceStates is the full {state} × {op} transition table. An op is legal
// only from its listed source state; everything else is denied. Purge in
// particular is reachable only from the trash, an active record can never be
// erased in one step.
var sourceStates = map[Op]State{
	OpSoftDelete: StateActive,
	OpRestore:    StateTrashed,
	OpPurge:      StateTrashed,
}

// Allowed reports whether op may fire from state.
func Allowed(state State, op Op) bool {
	source, ok := sourceStates[op]
	return ok && source == state
}

// sourceCondition returns the SQL guard matching the op's required source
// state. The guard rides in the WHERE clause of the transition statement, so
// the state check and the transition commit as one atomic write.
func sourceCondition(op Op) (string, error) {
	source, ok := sourceStates[op]
	if !ok {
		return "", fmt.Errorf("unknown trash op %q", op)
	}
	if source == StateTrashed {
		return "deleted_at IS NOT NULL", nil
	}
	return "deleted_at IS NULL", nil
}

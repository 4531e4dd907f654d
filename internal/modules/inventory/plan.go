package inventory

import (
	"errors"
	"sort"
)

// ErrInvalidQuantity is returned when an allocation is requested for a
// non-positive quantity.
var ErrInvalidQuantity = errors.New("requested quantity must be positive")

// PlanAllocation builds a FIFO allocation plan over the given batches. It is
// a pure function: batches are not mutated, and the same input always yields
// the same plan. Eligible batches (not soft-deleted, quantity > 0) are
// consumed oldest-received first, ties broken by batch id, taking
// min(remaining, batch quantity) from each. The returned leftover is the
// portion of the request that could not be covered; callers must only apply
// the plan when leftover is zero.
func PlanAllocation(batches []*Batch, requested int) ([]Allocation, int, error) {
	if requested <= 0 {
		return nil, 0, ErrInvalidQuantity
	}

	eligible := make([]*Batch, 0, len(batches))
	for _, b := range batches {
		if b.DeletedAt != nil || b.QuantityOnHand <= 0 {
			continue
		}
		eligible = append(eligible, b)
	}
	sort.Slice(eligible, func(i, j int) bool {
		if !eligible[i].ReceivedAt.Equal(eligible[j].ReceivedAt) {
			return eligible[i].ReceivedAt.Before(eligible[j].ReceivedAt)
		}
		return eligible[i].ID.String() < eligible[j].ID.String()
	})

	var plan []Allocation
	remaining := requested
	for _, b := range eligible {
		if remaining == 0 {
			break
		}
		take := remaining
		if take > b.QuantityOnHand {
			take = b.QuantityOnHand
		}
		plan = append(plan, Allocation{BatchID: b.ID, Quantity: take})
		remaining -= take
	}
	if remaining > 0 {
		return nil, remaining, nil
	}
	return plan, 0, nil
}

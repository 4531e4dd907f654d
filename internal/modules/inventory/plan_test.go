package inventory

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

var (
	batchA = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	batchB = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	batchC = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func day(n int) time.Time {
	return time.Date(2026, time.March, n, 0, 0, 0, 0, time.UTC)
}

func TestPlanAllocationFIFO(t *testing.T) {
	batches := []*Batch{
		{ID: batchB, ReceivedAt: day(2), QuantityOnHand: 5},
		{ID: batchA, ReceivedAt: day(1), QuantityOnHand: 5},
	}

	plan, leftover, err := PlanAllocation(batches, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leftover != 0 {
		t.Fatalf("leftover = %d, want 0", leftover)
	}
	want := []Allocation{
		{BatchID: batchA, Quantity: 5},
		{BatchID: batchB, Quantity: 2},
	}
	if len(plan) != len(want) {
		t.Fatalf("plan has %d steps, want %d", len(plan), len(want))
	}
	for i := range want {
		if plan[i] != want[i] {
			t.Errorf("plan[%d] = %+v, want %+v", i, plan[i], want[i])
		}
	}
}

func TestPlanAllocationTieBreaksByID(t *testing.T) {
	received := day(1)
	batches := []*Batch{
		{ID: batchC, ReceivedAt: received, QuantityOnHand: 3},
		{ID: batchA, ReceivedAt: received, QuantityOnHand: 3},
		{ID: batchB, ReceivedAt: received, QuantityOnHand: 3},
	}

	plan, leftover, err := PlanAllocation(batches, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leftover != 0 {
		t.Fatalf("leftover = %d, want 0", leftover)
	}
	wantOrder := []uuid.UUID{batchA, batchB, batchC}
	for i, id := range wantOrder {
		if plan[i].BatchID != id {
			t.Errorf("plan[%d].BatchID = %s, want %s", i, plan[i].BatchID, id)
		}
	}
	if plan[2].Quantity != 2 {
		t.Errorf("plan[2].Quantity = %d, want 2", plan[2].Quantity)
	}
}

func TestPlanAllocationSkipsDeletedAndEmptyBatches(t *testing.T) {
	deleted := day(5)
	batches := []*Batch{
		{ID: batchA, ReceivedAt: day(1), QuantityOnHand: 4, DeletedAt: &deleted},
		{ID: batchB, ReceivedAt: day(2), QuantityOnHand: 0},
		{ID: batchC, ReceivedAt: day(3), QuantityOnHand: 6},
	}

	plan, leftover, err := PlanAllocation(batches, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leftover != 0 {
		t.Fatalf("leftover = %d, want 0", leftover)
	}
	if len(plan) != 1 || plan[0].BatchID != batchC || plan[0].Quantity != 6 {
		t.Fatalf("plan = %+v, want single step taking 6 from %s", plan, batchC)
	}
}

func TestPlanAllocationInsufficient(t *testing.T) {
	batches := []*Batch{
		{ID: batchA, ReceivedAt: day(1), QuantityOnHand: 5},
		{ID: batchB, ReceivedAt: day(2), QuantityOnHand: 5},
	}

	plan, leftover, err := PlanAllocation(batches, 11)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != nil {
		t.Errorf("plan = %+v, want nil when request cannot be covered", plan)
	}
	if leftover != 1 {
		t.Errorf("leftover = %d, want 1", leftover)
	}
}

func TestPlanAllocationNoEligibleBatches(t *testing.T) {
	plan, leftover, err := PlanAllocation(nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != nil || leftover != 3 {
		t.Fatalf("plan=%+v leftover=%d, want nil plan and leftover 3", plan, leftover)
	}
}

func TestPlanAllocationRejectsNonPositiveRequest(t *testing.T) {
	for _, requested := range []int{0, -4} {
		if _, _, err := PlanAllocation(nil, requested); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("PlanAllocation(nil, %d) err = %v, want ErrInvalidQuantity", requested, err)
		}
	}
}

func TestPlanAllocationDoesNotMutateBatches(t *testing.T) {
	batches := []*Batch{
		{ID: batchA, ReceivedAt: day(1), QuantityOnHand: 5},
		{ID: batchB, ReceivedAt: day(2), QuantityOnHand: 5},
	}

	if _, _, err := PlanAllocation(batches, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if batches[0].QuantityOnHand != 5 || batches[1].QuantityOnHand != 5 {
		t.Errorf("planner mutated batch quantities: %d, %d",
			batches[0].QuantityOnHand, batches[1].QuantityOnHand)
	}
}

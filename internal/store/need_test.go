package store

import (
	"errors"
	"testing"

	"reliefledger/pkg/types"
)

const (
	requester = types.Principal("ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
	otherUser = types.Principal("ST2PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM")
)

func miamiWater() types.NewNeed {
	return types.NewNeed{
		ResourceType: types.ResourceTypeWater,
		Quantity:     500,
		Location:     "Miami",
		Priority:     types.PriorityHigh,
		Description:  "Urgent need for clean water after hurricane",
	}
}

func TestRegisterNeed(t *testing.T) {
	r := NewNeedsRegistry()
	call := types.Call{Caller: requester, Height: 100}

	id, err := r.RegisterNeed(call, miamiWater())
	if err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 need, got %d", r.Len())
	}

	need, ok := r.Need(1)
	if !ok {
		t.Fatal("expected need 1 to exist")
	}
	if need.Requester != requester {
		t.Errorf("expected requester %q, got %q", requester, need.Requester)
	}
	if need.ResourceType != types.ResourceTypeWater {
		t.Errorf("expected Water, got %s", need.ResourceType)
	}
	if need.Quantity != 500 {
		t.Errorf("expected quantity 500, got %d", need.Quantity)
	}
	if need.Location != "Miami" {
		t.Errorf("expected location Miami, got %q", need.Location)
	}
	if need.Priority != types.PriorityHigh {
		t.Errorf("expected High, got %s", need.Priority)
	}
	if need.Status != types.NeedStatusOpen {
		t.Errorf("expected Open, got %s", need.Status)
	}
	if need.Description != "Urgent need for clean water after hurricane" {
		t.Errorf("unexpected description %q", need.Description)
	}
	if need.CreatedAt != 100 || need.LastUpdated != 100 {
		t.Errorf("expected createdAt=lastUpdated=100, got %d/%d", need.CreatedAt, need.LastUpdated)
	}
}

func TestRegisterNeedSequentialIDs(t *testing.T) {
	r := NewNeedsRegistry()
	call := types.Call{Caller: requester, Height: 1}

	for want := uint64(1); want <= 5; want++ {
		id, err := r.RegisterNeed(call, miamiWater())
		if err != nil {
			t.Fatalf("RegisterNeed: %v", err)
		}
		if id != want {
			t.Fatalf("expected id %d, got %d", want, id)
		}
	}
}

func TestRegisterNeedValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.NewNeed)
		want   error
	}{
		{"resource type zero", func(n *types.NewNeed) { n.ResourceType = 0 }, types.ErrInvalidResourceType},
		{"resource type six", func(n *types.NewNeed) { n.ResourceType = 6 }, types.ErrInvalidResourceType},
		{"zero quantity", func(n *types.NewNeed) { n.Quantity = 0 }, types.ErrInvalidQuantity},
		{"negative quantity", func(n *types.NewNeed) { n.Quantity = -3 }, types.ErrInvalidQuantity},
		{"priority zero", func(n *types.NewNeed) { n.Priority = 0 }, types.ErrInvalidPriority},
		{"priority five", func(n *types.NewNeed) { n.Priority = 5 }, types.ErrInvalidPriority},
		// Resource type is checked before quantity, quantity before priority.
		{"type before quantity", func(n *types.NewNeed) { n.ResourceType = 0; n.Quantity = 0 }, types.ErrInvalidResourceType},
		{"quantity before priority", func(n *types.NewNeed) { n.Quantity = 0; n.Priority = 9 }, types.ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewNeedsRegistry()
			in := miamiWater()
			tt.mutate(&in)

			_, err := r.RegisterNeed(types.Call{Caller: requester, Height: 100}, in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if r.Len() != 0 {
				t.Errorf("expected empty registry, got %d needs", r.Len())
			}
		})
	}
}

func TestRegisterNeedFailureConsumesNoID(t *testing.T) {
	r := NewNeedsRegistry()
	call := types.Call{Caller: requester, Height: 100}

	bad := miamiWater()
	bad.Quantity = 0
	if _, err := r.RegisterNeed(call, bad); err == nil {
		t.Fatal("expected error for zero quantity")
	}

	id, err := r.RegisterNeed(call, miamiWater())
	if err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}
	if id != 1 {
		t.Errorf("expected id 1 after failed registration, got %d", id)
	}
}

func TestUpdateNeedStatus(t *testing.T) {
	r := NewNeedsRegistry()
	if _, err := r.RegisterNeed(types.Call{Caller: requester, Height: 100}, miamiWater()); err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}

	if err := r.UpdateNeedStatus(types.Call{Caller: requester, Height: 105}, 1, types.NeedStatusInProgress); err != nil {
		t.Fatalf("UpdateNeedStatus: %v", err)
	}

	need, _ := r.Need(1)
	if need.Status != types.NeedStatusInProgress {
		t.Errorf("expected InProgress, got %s", need.Status)
	}
	if need.LastUpdated != 105 {
		t.Errorf("expected lastUpdated 105, got %d", need.LastUpdated)
	}
	if need.CreatedAt != 100 {
		t.Errorf("expected createdAt to stay 100, got %d", need.CreatedAt)
	}
}

func TestUpdateNeedStatusNoTransitionGraph(t *testing.T) {
	r := NewNeedsRegistry()
	call := types.Call{Caller: requester, Height: 100}
	if _, err := r.RegisterNeed(call, miamiWater()); err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}

	for _, status := range []types.NeedStatus{types.NeedStatusFulfilled, types.NeedStatusOpen, types.NeedStatusCancelled, types.NeedStatusInProgress} {
		if err := r.UpdateNeedStatus(call, 1, status); err != nil {
			t.Fatalf("UpdateNeedStatus(%s): %v", status, err)
		}
		need, _ := r.Need(1)
		if need.Status != status {
			t.Fatalf("expected %s, got %s", status, need.Status)
		}
	}
}

func TestUpdateNeedStatusNotFound(t *testing.T) {
	r := NewNeedsRegistry()

	err := r.UpdateNeedStatus(types.Call{Caller: requester, Height: 100}, 999, types.NeedStatusInProgress)
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateNeedStatusUnauthorized(t *testing.T) {
	r := NewNeedsRegistry()
	if _, err := r.RegisterNeed(types.Call{Caller: requester, Height: 100}, miamiWater()); err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}

	err := r.UpdateNeedStatus(types.Call{Caller: otherUser, Height: 101}, 1, types.NeedStatusInProgress)
	if !errors.Is(err, types.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	need, _ := r.Need(1)
	if need.Status != types.NeedStatusOpen {
		t.Errorf("expected status to remain Open, got %s", need.Status)
	}
	if need.LastUpdated != 100 {
		t.Errorf("expected lastUpdated to remain 100, got %d", need.LastUpdated)
	}
}

func TestUpdateNeedStatusAuthorizationBeforeRange(t *testing.T) {
	r := NewNeedsRegistry()
	if _, err := r.RegisterNeed(types.Call{Caller: requester, Height: 100}, miamiWater()); err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}

	err := r.UpdateNeedStatus(types.Call{Caller: otherUser, Height: 101}, 1, 9)
	if !errors.Is(err, types.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	err = r.UpdateNeedStatus(types.Call{Caller: requester, Height: 101}, 1, 9)
	if !errors.Is(err, types.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateNeedPriority(t *testing.T) {
	r := NewNeedsRegistry()
	if _, err := r.RegisterNeed(types.Call{Caller: requester, Height: 100}, miamiWater()); err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}

	if err := r.UpdateNeedPriority(types.Call{Caller: requester, Height: 110}, 1, types.PriorityCritical); err != nil {
		t.Fatalf("UpdateNeedPriority: %v", err)
	}

	need, _ := r.Need(1)
	if need.Priority != types.PriorityCritical {
		t.Errorf("expected Critical, got %s", need.Priority)
	}
	if need.LastUpdated != 110 {
		t.Errorf("expected lastUpdated 110, got %d", need.LastUpdated)
	}
}

func TestUpdateNeedPriorityErrors(t *testing.T) {
	r := NewNeedsRegistry()
	if _, err := r.RegisterNeed(types.Call{Caller: requester, Height: 100}, miamiWater()); err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}

	tests := []struct {
		name     string
		caller   types.Principal
		id       uint64
		priority types.Priority
		want     error
	}{
		{"unknown id", requester, 2, types.PriorityLow, types.ErrNotFound},
		{"not requester", otherUser, 1, types.PriorityLow, types.ErrUnauthorized},
		{"not requester with bad priority", otherUser, 1, 0, types.ErrUnauthorized},
		{"priority zero", requester, 1, 0, types.ErrInvalidPriority},
		{"priority five", requester, 1, 5, types.ErrInvalidPriority},
	}

	for _, tt := range tests {
		err := r.UpdateNeedPriority(types.Call{Caller: tt.caller, Height: 120}, tt.id, tt.priority)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}

	need, _ := r.Need(1)
	if need.Priority != types.PriorityHigh || need.LastUpdated != 100 {
		t.Errorf("expected need untouched, got priority %s at %d", need.Priority, need.LastUpdated)
	}
}

func TestNeedUnknown(t *testing.T) {
	r := NewNeedsRegistry()

	need, ok := r.Need(999)
	if ok || need != nil {
		t.Errorf("expected no need, got %+v", need)
	}
}

func TestNeedReturnsCopy(t *testing.T) {
	r := NewNeedsRegistry()
	if _, err := r.RegisterNeed(types.Call{Caller: requester, Height: 100}, miamiWater()); err != nil {
		t.Fatalf("RegisterNeed: %v", err)
	}

	need, _ := r.Need(1)
	need.Requester = otherUser
	need.Quantity = -1

	stored, _ := r.Need(1)
	if stored.Requester != requester || stored.Quantity != 500 {
		t.Errorf("stored need was modified through returned copy: %+v", stored)
	}
}

func TestNeedsOrdered(t *testing.T) {
	r := NewNeedsRegistry()
	call := types.Call{Caller: requester, Height: 100}
	for range 10 {
		if _, err := r.RegisterNeed(call, miamiWater()); err != nil {
			t.Fatalf("RegisterNeed: %v", err)
		}
	}

	needs := r.Needs()
	if len(needs) != 10 {
		t.Fatalf("expected 10 needs, got %d", len(needs))
	}
	for i, need := range needs {
		if need.ID != uint64(i+1) {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, need.ID)
		}
	}
}

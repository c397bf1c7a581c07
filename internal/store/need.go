package store

import (
	"fmt"
	"sort"

	"reliefledger/pkg/types"
)

// NeedsRegistry records relief needs posted by requesters. It holds no lock:
// callers execute one call at a time.
type NeedsRegistry struct {
	needs  map[uint64]*types.Need
	lastID uint64
}

func NewNeedsRegistry() *NeedsRegistry {
	return &NeedsRegistry{needs: make(map[uint64]*types.Need)}
}

func (r *NeedsRegistry) RegisterNeed(call types.Call, in types.NewNeed) (uint64, error) {
	if !in.ResourceType.Valid() {
		return 0, types.ErrInvalidResourceType
	}
	if in.Quantity <= 0 {
		return 0, types.ErrInvalidQuantity
	}
	if !in.Priority.Valid() {
		return 0, types.ErrInvalidPriority
	}

	r.lastID++
	r.needs[r.lastID] = &types.Need{
		ID:           r.lastID,
		Requester:    call.Caller,
		ResourceType: in.ResourceType,
		Quantity:     in.Quantity,
		Location:     in.Location,
		Priority:     in.Priority,
		Status:       types.NeedStatusOpen,
		Description:  in.Description,
		CreatedAt:    call.Height,
		LastUpdated:  call.Height,
	}

	return r.lastID, nil
}

func (r *NeedsRegistry) UpdateNeedStatus(call types.Call, needID uint64, status types.NeedStatus) error {
	need, err := r.ownedNeed(call, needID)
	if err != nil {
		return err
	}

	if !status.Valid() {
		return types.ErrInvalidStatus
	}

	need.Status = status
	need.LastUpdated = call.Height
	return nil
}

func (r *NeedsRegistry) UpdateNeedPriority(call types.Call, needID uint64, priority types.Priority) error {
	need, err := r.ownedNeed(call, needID)
	if err != nil {
		return err
	}

	if !priority.Valid() {
		return types.ErrInvalidPriorityUpdate
	}

	need.Priority = priority
	need.LastUpdated = call.Height
	return nil
}

// ownedNeed resolves needID and checks the caller is its requester. Range
// checks on the new value happen after this.
func (r *NeedsRegistry) ownedNeed(call types.Call, needID uint64) (*types.Need, error) {
	need, ok := r.needs[needID]
	if !ok {
		return nil, fmt.Errorf("need %d: %w", needID, types.ErrNotFound)
	}

	if need.Requester != call.Caller {
		return nil, fmt.Errorf("need %d: %w", needID, types.ErrUnauthorized)
	}

	return need, nil
}

// Need returns a copy of the stored need. Unknown ids report false.
func (r *NeedsRegistry) Need(needID uint64) (*types.Need, bool) {
	need, ok := r.needs[needID]
	if !ok {
		return nil, false
	}

	out := *need
	return &out, true
}

func (r *NeedsRegistry) Len() int {
	return len(r.needs)
}

// Needs returns copies of every need ordered by id.
func (r *NeedsRegistry) Needs() []*types.Need {
	out := make([]*types.Need, 0, len(r.needs))
	for _, need := range r.needs {
		n := *need
		out = append(out, &n)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

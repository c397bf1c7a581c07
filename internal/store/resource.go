package store

import (
	"fmt"
	"sort"

	"reliefledger/pkg/types"
)

// ResourceRegistry records relief supplies offered by their owners.
type ResourceRegistry struct {
	resources map[uint64]*types.Resource
	lastID    uint64
}

func NewResourceRegistry() *ResourceRegistry {
	return &ResourceRegistry{resources: make(map[uint64]*types.Resource)}
}

func (r *ResourceRegistry) RegisterResource(call types.Call, in types.NewResource) (uint64, error) {
	if !in.ResourceType.Valid() {
		return 0, types.ErrInvalidResourceType
	}
	if in.Quantity <= 0 {
		return 0, types.ErrInvalidQuantity
	}

	r.lastID++
	r.resources[r.lastID] = &types.Resource{
		ID:           r.lastID,
		Owner:        call.Caller,
		ResourceType: in.ResourceType,
		Quantity:     in.Quantity,
		Location:     in.Location,
		Status:       types.ResourceStatusAvailable,
		LastUpdated:  call.Height,
	}

	return r.lastID, nil
}

func (r *ResourceRegistry) UpdateQuantity(call types.Call, resourceID uint64, quantity int64) error {
	resource, err := r.ownedResource(call, resourceID)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return types.ErrInvalidQuantity
	}

	resource.Quantity = quantity
	resource.LastUpdated = call.Height
	return nil
}

func (r *ResourceRegistry) UpdateStatus(call types.Call, resourceID uint64, status types.ResourceStatus) error {
	resource, err := r.ownedResource(call, resourceID)
	if err != nil {
		return err
	}

	if !status.Valid() {
		return types.ErrInvalidStatus
	}

	resource.Status = status
	resource.LastUpdated = call.Height
	return nil
}

func (r *ResourceRegistry) ownedResource(call types.Call, resourceID uint64) (*types.Resource, error) {
	resource, ok := r.resources[resourceID]
	if !ok {
		return nil, fmt.Errorf("resource %d: %w", resourceID, types.ErrNotFound)
	}

	if resource.Owner != call.Caller {
		return nil, fmt.Errorf("resource %d: %w", resourceID, types.ErrUnauthorized)
	}

	return resource, nil
}

func (r *ResourceRegistry) Resource(resourceID uint64) (*types.Resource, bool) {
	resource, ok := r.resources[resourceID]
	if !ok {
		return nil, false
	}

	out := *resource
	return &out, true
}

func (r *ResourceRegistry) Len() int {
	return len(r.resources)
}

func (r *ResourceRegistry) Resources() []*types.Resource {
	out := make([]*types.Resource, 0, len(r.resources))
	for _, resource := range r.resources {
		res := *resource
		out = append(out, &res)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

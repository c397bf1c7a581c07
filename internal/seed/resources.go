package seed

import (
	"fmt"
	"math/rand"

	"reliefledger/internal/ledger"
	"reliefledger/pkg/types"
)

type weightedResourceStatus struct {
	Status types.ResourceStatus
	Weight int
}

var weightedResourceStatuses = []weightedResourceStatus{
	{Status: types.ResourceStatusAvailable, Weight: 60},
	{Status: types.ResourceStatusReserved, Weight: 25},
	{Status: types.ResourceStatusDeployed, Weight: 15},
}

func Resources(l *ledger.Ledger, count int, rng *rand.Rand) (int, error) {
	created := 0
	for i := 0; i < count; i++ {
		owner := fakePrincipals[rng.Intn(len(fakePrincipals))].Principal

		in := types.NewResource{
			ResourceType: types.ResourceType(rng.Intn(5) + 1),
			Quantity:     int64(rng.Intn(4900) + 100),
			Location:     fakeLocations[rng.Intn(len(fakeLocations))],
		}

		resourceID, err := registeredID(l.RegisterResource(owner, in))
		if err != nil {
			return created, fmt.Errorf("failed to register fake resource %d: %w", i+1, err)
		}

		status := pickWeightedResourceStatus(rng)
		if status != types.ResourceStatusAvailable {
			if err := resultErr(l.UpdateStatus(owner, resourceID, status)); err != nil {
				return created, fmt.Errorf("failed to move fake resource %d to %s: %w", resourceID, status, err)
			}
		}

		created++
	}

	return created, nil
}

func pickWeightedResourceStatus(rng *rand.Rand) types.ResourceStatus {
	total := 0
	for _, item := range weightedResourceStatuses {
		total += item.Weight
	}

	roll := rng.Intn(total)
	running := 0
	for _, item := range weightedResourceStatuses {
		running += item.Weight
		if roll < running {
			return item.Status
		}
	}

	return types.ResourceStatusAvailable
}

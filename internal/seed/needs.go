package seed

import (
	"fmt"
	"math/rand"

	"reliefledger/internal/ledger"
	"reliefledger/pkg/types"
)

var fakeNeedDescriptions = []string{
	"Urgent need for clean water after hurricane",
	"Shelter families displaced by river flooding",
	"Insulin and wound care supplies for field clinic",
	"Hot meals for volunteers clearing debris",
	"Generators to keep the community center powered",
	"Blankets and cots for the evacuation center",
	"Water purification tablets for rural wells",
	"Tarps to cover roofs damaged by the storm",
	"Infant formula and diapers for the relief camp",
	"Chainsaws and safety gear for road clearing",
}

var fakeLocations = []string{
	"Miami", "New York", "Houston", "New Orleans", "Tampa",
	"San Juan", "Asheville", "Fort Myers", "Lake Charles", "Paradise",
}

type weightedNeedStatus struct {
	Status types.NeedStatus
	Weight int
}

var weightedNeedStatuses = []weightedNeedStatus{
	{Status: types.NeedStatusOpen, Weight: 45},
	{Status: types.NeedStatusInProgress, Weight: 30},
	{Status: types.NeedStatusFulfilled, Weight: 17},
	{Status: types.NeedStatusCancelled, Weight: 8},
}

// Needs registers count fake needs from the fake requester pool, then moves
// each to a weighted status as its requester.
func Needs(l *ledger.Ledger, count int, rng *rand.Rand) (int, error) {
	created := 0
	for i := 0; i < count; i++ {
		requester := fakePrincipals[rng.Intn(len(fakePrincipals))].Principal

		in := types.NewNeed{
			ResourceType: types.ResourceType(rng.Intn(5) + 1),
			Quantity:     int64(rng.Intn(990) + 10),
			Location:     fakeLocations[rng.Intn(len(fakeLocations))],
			Priority:     types.Priority(rng.Intn(4) + 1),
			Description:  fakeNeedDescriptions[rng.Intn(len(fakeNeedDescriptions))],
		}

		needID, err := registeredID(l.RegisterNeed(requester, in))
		if err != nil {
			return created, fmt.Errorf("failed to register fake need %d: %w", i+1, err)
		}

		status := pickWeightedNeedStatus(rng)
		if status != types.NeedStatusOpen {
			if err := resultErr(l.UpdateNeedStatus(requester, needID, status)); err != nil {
				return created, fmt.Errorf("failed to move fake need %d to %s: %w", needID, status, err)
			}
		}

		created++
	}

	return created, nil
}

func pickWeightedNeedStatus(rng *rand.Rand) types.NeedStatus {
	total := 0
	for _, item := range weightedNeedStatuses {
		total += item.Weight
	}

	if total == 0 {
		return types.NeedStatusOpen
	}

	roll := rng.Intn(total)
	running := 0
	for _, item := range weightedNeedStatuses {
		running += item.Weight
		if roll < running {
			return item.Status
		}
	}

	return types.NeedStatusOpen
}

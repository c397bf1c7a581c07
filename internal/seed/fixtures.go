package seed

import (
	"fmt"
	"os"

	"reliefledger/internal/ledger"
	"reliefledger/pkg/types"

	"gopkg.in/yaml.v3"
)

// Fixtures is a hand-written set of records, registered in file order.
//
//	needs:
//	  - requester: ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM
//	    resource_type: 1
//	    quantity: 500
//	    location: Miami
//	    priority: 3
//	    description: Urgent need for clean water after hurricane
//	    status: 2
//	resources:
//	  - owner: ST2PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM
//	    resource_type: 1
//	    quantity: 100
//	    location: New York
type Fixtures struct {
	Needs     []NeedFixture     `yaml:"needs"`
	Resources []ResourceFixture `yaml:"resources"`
}

type NeedFixture struct {
	types.NewNeed `yaml:",inline"`

	Requester types.Principal `yaml:"requester"`
	// Status is applied after registration when set.
	Status types.NeedStatus `yaml:"status"`
}

type ResourceFixture struct {
	types.NewResource `yaml:",inline"`

	Owner  types.Principal      `yaml:"owner"`
	Status types.ResourceStatus `yaml:"status"`
}

func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}

	var fx Fixtures
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}

	for i, n := range fx.Needs {
		if n.Requester == "" {
			return nil, fmt.Errorf("need fixture %d: requester is required", i+1)
		}
	}
	for i, r := range fx.Resources {
		if r.Owner == "" {
			return nil, fmt.Errorf("resource fixture %d: owner is required", i+1)
		}
	}

	return &fx, nil
}

// ApplyFixtures registers every fixture through the ledger and stops at the
// first rejected call.
func ApplyFixtures(l *ledger.Ledger, fx *Fixtures) (needs int, resources int, err error) {
	for i, n := range fx.Needs {
		needID, err := registeredID(l.RegisterNeed(n.Requester, n.NewNeed))
		if err != nil {
			return needs, resources, fmt.Errorf("need fixture %d: %w", i+1, err)
		}

		if n.Status != 0 && n.Status != types.NeedStatusOpen {
			if err := resultErr(l.UpdateNeedStatus(n.Requester, needID, n.Status)); err != nil {
				return needs, resources, fmt.Errorf("need fixture %d status: %w", i+1, err)
			}
		}
		needs++
	}

	for i, r := range fx.Resources {
		resourceID, err := registeredID(l.RegisterResource(r.Owner, r.NewResource))
		if err != nil {
			return needs, resources, fmt.Errorf("resource fixture %d: %w", i+1, err)
		}

		if r.Status != 0 && r.Status != types.ResourceStatusAvailable {
			if err := resultErr(l.UpdateStatus(r.Owner, resourceID, r.Status)); err != nil {
				return needs, resources, fmt.Errorf("resource fixture %d status: %w", i+1, err)
			}
		}
		resources++
	}

	return needs, resources, nil
}

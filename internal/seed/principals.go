package seed

import (
	"fmt"

	"reliefledger/pkg/types"
)

type fakePrincipalSeed struct {
	Principal types.Principal
	Name      string
}

var fakePrincipals = []fakePrincipalSeed{
	{Principal: "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM", Name: "Gulf Coast Red Cross"},
	{Principal: "ST2PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM", Name: "Miami-Dade Emergency Management"},
	{Principal: "ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG", Name: "Houston Food Bank"},
	{Principal: "ST2JHG361ZXG51QTKY2NQCVBPPRRE2KZB1HR05NNC", Name: "Team Rubicon Southeast"},
	{Principal: "ST2NEB84ASENDXKYGJPQW86YXQCEFEX2ZQPG87ND", Name: "Direct Relief Field Office"},
	{Principal: "ST2REHHS5J3CERCRBEPMGH7921Q6PYKAADT7JP2VB", Name: "Asheville Mutual Aid"},
	{Principal: "ST3AM1A56AK2C1XAFJ4115ZSV26EB49BVQ10MGCS0", Name: "Puerto Rico Relief Network"},
	{Principal: "ST3NBRSFKX28FQ2ZJ1MAKX58HKHSDGNV5N7R21XCP", Name: "Louisiana Shelter Coalition"},
}

// registeredID unwraps the id returned by a successful register call.
func registeredID(result types.Result) (uint64, error) {
	if err := resultErr(result); err != nil {
		return 0, err
	}

	id, ok := result.Value.(uint64)
	if !ok {
		return 0, fmt.Errorf("unexpected register result %T", result.Value)
	}
	return id, nil
}

func resultErr(result types.Result) error {
	if result.Error != nil {
		return fmt.Errorf("call rejected with code %d", *result.Error)
	}
	return nil
}

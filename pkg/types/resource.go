package types

type ResourceType int

const (
	ResourceTypeWater     ResourceType = 1
	ResourceTypeFood      ResourceType = 2
	ResourceTypeShelter   ResourceType = 3
	ResourceTypeMedical   ResourceType = 4
	ResourceTypeEquipment ResourceType = 5
)

func (t ResourceType) Valid() bool {
	return t >= ResourceTypeWater && t <= ResourceTypeEquipment
}

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeWater:
		return "Water"
	case ResourceTypeFood:
		return "Food"
	case ResourceTypeShelter:
		return "Shelter"
	case ResourceTypeMedical:
		return "Medical"
	case ResourceTypeEquipment:
		return "Equipment"
	}
	return "Unknown"
}

type ResourceStatus int

const (
	ResourceStatusAvailable ResourceStatus = 1
	ResourceStatusReserved  ResourceStatus = 2
	ResourceStatusDeployed  ResourceStatus = 3
)

func (s ResourceStatus) Valid() bool {
	return s >= ResourceStatusAvailable && s <= ResourceStatusDeployed
}

func (s ResourceStatus) String() string {
	switch s {
	case ResourceStatusAvailable:
		return "Available"
	case ResourceStatusReserved:
		return "Reserved"
	case ResourceStatusDeployed:
		return "Deployed"
	}
	return "Unknown"
}

// Resource is a stock of relief supplies registered by its owner.
type Resource struct {
	ID           uint64         `json:"id"`
	Owner        Principal      `json:"owner"`
	ResourceType ResourceType   `json:"resourceType"`
	Quantity     int64          `json:"quantity"`
	Location     string         `json:"location"`
	Status       ResourceStatus `json:"status"`
	LastUpdated  BlockHeight    `json:"lastUpdated"`
}

// NewResource carries the caller supplied fields of a resource registration.
type NewResource struct {
	ResourceType ResourceType `form:"resource_type" yaml:"resource_type"`
	Quantity     int64        `form:"quantity" yaml:"quantity"`
	Location     string       `form:"location" yaml:"location"`
}

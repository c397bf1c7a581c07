package types

type Priority int

const (
	PriorityLow      Priority = 1
	PriorityMedium   Priority = 2
	PriorityHigh     Priority = 3
	PriorityCritical Priority = 4
)

func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityCritical
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityCritical:
		return "Critical"
	}
	return "Unknown"
}

type NeedStatus int

const (
	NeedStatusOpen       NeedStatus = 1
	NeedStatusInProgress NeedStatus = 2
	NeedStatusFulfilled  NeedStatus = 3
	NeedStatusCancelled  NeedStatus = 4
)

func (s NeedStatus) Valid() bool {
	return s >= NeedStatusOpen && s <= NeedStatusCancelled
}

func (s NeedStatus) String() string {
	switch s {
	case NeedStatusOpen:
		return "Open"
	case NeedStatusInProgress:
		return "InProgress"
	case NeedStatusFulfilled:
		return "Fulfilled"
	case NeedStatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

type Need struct {
	ID           uint64       `json:"id"`
	Requester    Principal    `json:"requester"`
	ResourceType ResourceType `json:"resourceType"`
	Quantity     int64        `json:"quantity"`
	Location     string       `json:"location"`
	Priority     Priority     `json:"priority"`
	Status       NeedStatus   `json:"status"`
	Description  string       `json:"description"`
	CreatedAt    BlockHeight  `json:"createdAt"`
	LastUpdated  BlockHeight  `json:"lastUpdated"`
}

// NewNeed carries the caller supplied fields of a need registration.
type NewNeed struct {
	ResourceType ResourceType `form:"resource_type" yaml:"resource_type"`
	Quantity     int64        `form:"quantity" yaml:"quantity"`
	Location     string       `form:"location" yaml:"location"`
	Priority     Priority     `form:"priority" yaml:"priority"`
	Description  string       `form:"description" yaml:"description"`
}

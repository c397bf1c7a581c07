package ledger

import (
	"sync"

	"reliefledger/internal/store"
	"reliefledger/pkg/types"

	"github.com/sirupsen/logrus"
)

// codeInternal is reported for failures outside the registry error taxonomy.
const codeInternal = 500

// Ledger executes registry calls one at a time. Every mutating call is
// stamped with the next block height; reads leave the clock alone.
type Ledger struct {
	mu     sync.Mutex
	height types.BlockHeight
	logger logrus.FieldLogger

	needs     *store.NeedsRegistry
	resources *store.ResourceRegistry
}

func New(genesis types.BlockHeight, logger logrus.FieldLogger) *Ledger {
	return &Ledger{
		height:    genesis,
		logger:    logger,
		needs:     store.NewNeedsRegistry(),
		resources: store.NewResourceRegistry(),
	}
}

func (l *Ledger) Height() types.BlockHeight {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.height
}

// transact runs fn with the next block height. The height is consumed even
// when fn fails, like a mined transaction that aborted.
func (l *Ledger) transact(method string, caller types.Principal, fn func(call types.Call) (any, error)) types.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.height++
	call := types.Call{Caller: caller, Height: l.height}

	value, err := fn(call)

	entry := l.logger.WithFields(logrus.Fields{
		"method": method,
		"caller": caller,
		"height": call.Height,
	})
	if err != nil {
		entry.WithError(err).Debug("call rejected")
		return types.Fail(err, codeInternal)
	}

	entry.Debug("call applied")
	return types.Ok(value)
}

func (l *Ledger) RegisterNeed(caller types.Principal, in types.NewNeed) types.Result {
	return l.transact("register-need", caller, func(call types.Call) (any, error) {
		return l.needs.RegisterNeed(call, in)
	})
}

func (l *Ledger) UpdateNeedStatus(caller types.Principal, needID uint64, status types.NeedStatus) types.Result {
	return l.transact("update-need-status", caller, func(call types.Call) (any, error) {
		return true, l.needs.UpdateNeedStatus(call, needID, status)
	})
}

func (l *Ledger) UpdateNeedPriority(caller types.Principal, needID uint64, priority types.Priority) types.Result {
	return l.transact("update-need-priority", caller, func(call types.Call) (any, error) {
		return true, l.needs.UpdateNeedPriority(call, needID, priority)
	})
}

// GetNeed returns {value: need} or {value: null} for unknown ids.
func (l *Ledger) GetNeed(needID uint64) types.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	need, ok := l.needs.Need(needID)
	if !ok {
		return types.Ok(nil)
	}
	return types.Ok(need)
}

func (l *Ledger) RegisterResource(caller types.Principal, in types.NewResource) types.Result {
	return l.transact("register-resource", caller, func(call types.Call) (any, error) {
		return l.resources.RegisterResource(call, in)
	})
}

func (l *Ledger) UpdateQuantity(caller types.Principal, resourceID uint64, quantity int64) types.Result {
	return l.transact("update-quantity", caller, func(call types.Call) (any, error) {
		return true, l.resources.UpdateQuantity(call, resourceID, quantity)
	})
}

func (l *Ledger) UpdateStatus(caller types.Principal, resourceID uint64, status types.ResourceStatus) types.Result {
	return l.transact("update-status", caller, func(call types.Call) (any, error) {
		return true, l.resources.UpdateStatus(call, resourceID, status)
	})
}

func (l *Ledger) GetResource(resourceID uint64) types.Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	resource, ok := l.resources.Resource(resourceID)
	if !ok {
		return types.Ok(nil)
	}
	return types.Ok(resource)
}

// Snapshot returns copies of every stored record ordered by id.
func (l *Ledger) Snapshot() ([]*types.Need, []*types.Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.needs.Needs(), l.resources.Resources()
}

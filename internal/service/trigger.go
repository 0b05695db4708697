package service

// TriggerSource names the event that requested a drain pass.
type TriggerSource string

const (
	// TriggerConnectivity fires on an offline-to-online transition.
	TriggerConnectivity TriggerSource = "connectivity"
	// TriggerManual fires on an explicit user "force sync" action.
	TriggerManual TriggerSource = "manual"
	// TriggerBackground fires on a host background-execution wake-up.
	TriggerBackground TriggerSource = "background"
	// TriggerTimer fires from the coarse periodic fallback.
	TriggerTimer TriggerSource = "timer"
)

// TriggerBus collapses concurrent drain requests into a single logical
// pass: the channel holds one slot, and a notify while a trigger is already
// pending is dropped. Combined with the engine's single-pass gate this
// guarantees that simultaneous trigger sources cannot double-apply an item.
type TriggerBus struct {
	ch chan TriggerSource
}

func NewTriggerBus() *TriggerBus {
	return &TriggerBus{ch: make(chan TriggerSource, 1)}
}

// Notify requests a drain. Never blocks.
func (b *TriggerBus) Notify(source TriggerSource) {
	select {
	case b.ch <- source:
	default:
	}
}

// C is the channel the sync engine consumes.
func (b *TriggerBus) C() <-chan TriggerSource {
	return b.ch
}

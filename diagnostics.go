package aprsroute

import "strings"

// ActionType classifies one diagnostic mutation (spec.md §3/§4.G).
type ActionType int

const (
	ActionInsert ActionType = iota
	ActionRemove
	ActionReplace
	ActionDecrement
	ActionSet
	ActionUnset
	ActionWarn
)

func (t ActionType) String() string {
	switch t {
	case ActionInsert:
		return "insert"
	case ActionRemove:
		return "remove"
	case ActionReplace:
		return "replace"
	case ActionDecrement:
		return "decrement"
	case ActionSet:
		return "set"
	case ActionUnset:
		return "unset"
	case ActionWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Target names the packet field an action applies to. Path is the only
// value produced today; it exists as a field so a future diagnostic
// covering, say, the data payload doesn't need a new action shape.
type Target int

const (
	TargetPath Target = iota
)

func (t Target) String() string {
	return "path"
}

// RoutingAction is one entry in a routing diagnostic trace: a single
// edit to the canonical packet string, expressed as a half-open byte
// range [Start, End) to replace and the replacement content.
//
// Offsets are always relative to the canonical string as it exists
// immediately before this action is applied — i.e. after every action
// that precedes it in the trace has already been applied, and not this
// one. Replaying actions in order, each as
// buf = buf[:Start] + replacement(action) + buf[End:]
// (see Replay) reconstructs the routed canonical string from the
// original one; this is the reconstructability invariant spec.md §8
// requires.
type RoutingAction struct {
	Start   int
	End     int
	Index   int // address index this action concerns
	Type    ActionType
	Target  Target
	Address string // the token text carried by this action; meaning depends on Type
	Message string // set only for ActionWarn
}

// replacement returns the text that replaces [Start, End) in the buffer
// to apply this action, per the Replay contract.
func (a RoutingAction) replacement() string {
	switch a.Type {
	case ActionInsert:
		return "," + a.Address
	case ActionRemove:
		return ""
	case ActionReplace, ActionDecrement:
		return a.Address
	case ActionSet:
		return a.Address
	case ActionUnset:
		return a.Address
	default: // ActionWarn mutates nothing
		return ""
	}
}

// Replay applies actions, in order, to original as a sequence of
// text-range replacements, and returns the resulting string. For a
// correctly produced trace, Replay(original, result.Actions) equals the
// canonical string of the routed packet.
func Replay(original string, actions []RoutingAction) string {
	buf := original
	for _, a := range actions {
		if a.Type == ActionWarn {
			continue
		}
		buf = buf[:a.Start] + a.replacement() + buf[a.End:]
	}
	return buf
}

// tracer accumulates RoutingActions while the routing engines mutate a
// working address slice. A nil *tracer is valid and simply drops every
// emitted action cheaply, so the engines never need to branch on whether
// diagnostics are enabled.
type tracer struct {
	from, to string
	actions  []RoutingAction
}

func newTracer(enabled bool, from, to string) *tracer {
	if !enabled {
		return nil
	}
	return &tracer{from: from, to: to}
}

// headerLen is the byte length of "from>to" preceding the first address
// separator.
func (t *tracer) headerLen() int {
	return len(t.from) + 1 + len(t.to)
}

// slotOffsets returns, for every address in addrs, the byte offset of its
// leading separator comma and the byte length of its canonical text
// (excluding the comma). Offsets are computed fresh from addrs every
// call; with at most 8 addresses this is constant-cost, so there is no
// incremental offset patching to get wrong (spec.md §9).
func (t *tracer) slotOffsets(addrs []Address) (commaOffset []int, textLen []int) {
	commaOffset = make([]int, len(addrs))
	textLen = make([]int, len(addrs))
	pos := t.headerLen()
	for i, a := range addrs {
		commaOffset[i] = pos
		text := a.CanonicalText()
		textLen[i] = len(text)
		pos += 1 + len(text)
	}
	return
}

// insertionPoint returns the comma offset a new address inserted at index
// idx (into the pre-insertion addrs) would occupy, or the end-of-path
// offset if idx == len(addrs).
func (t *tracer) insertionPoint(addrs []Address, idx int) int {
	commaOffset, textLen := t.slotOffsets(addrs)
	if idx < len(addrs) {
		return commaOffset[idx]
	}
	if len(addrs) == 0 {
		return t.headerLen()
	}
	last := len(addrs) - 1
	return commaOffset[last] + 1 + textLen[last]
}

func (t *tracer) emitInsert(addrs []Address, idx int, newAddr Address) {
	if t == nil {
		return
	}
	pos := t.insertionPoint(addrs, idx)
	t.actions = append(t.actions, RoutingAction{
		Start: pos, End: pos, Index: idx, Type: ActionInsert, Target: TargetPath,
		Address: newAddr.CanonicalText(),
	})
}

func (t *tracer) emitRemove(addrs []Address, idx int) {
	if t == nil {
		return
	}
	commaOffset, textLen := t.slotOffsets(addrs)
	start := commaOffset[idx]
	end := start + 1 + textLen[idx]
	t.actions = append(t.actions, RoutingAction{
		Start: start, End: end, Index: idx, Type: ActionRemove, Target: TargetPath,
		Address: addrs[idx].CanonicalText(),
	})
}

// emitReplace records a text substitution at idx; newText is the address's
// canonical form after the change (but before Used is toggled by a
// separate emitSet/emitUnset call, if any).
func (t *tracer) emitReplace(addrs []Address, idx int, newText string) {
	if t == nil {
		return
	}
	commaOffset, textLen := t.slotOffsets(addrs)
	start := commaOffset[idx] + 1
	end := start + textLen[idx]
	t.actions = append(t.actions, RoutingAction{
		Start: start, End: end, Index: idx, Type: ActionReplace, Target: TargetPath,
		Address: newText,
	})
}

func (t *tracer) emitDecrement(addrs []Address, idx int, newToken string) {
	if t == nil {
		return
	}
	commaOffset, textLen := t.slotOffsets(addrs)
	start := commaOffset[idx] + 1
	end := start + textLen[idx]
	t.actions = append(t.actions, RoutingAction{
		Start: start, End: end, Index: idx, Type: ActionDecrement, Target: TargetPath,
		Address: newToken,
	})
}

// emitSet marks addrs[idx] used, clearing every other used-mark first
// unless exclusive is false (the preempt_mark strategy leaves other
// marks untouched). It emits one ActionUnset per mark it clears and
// exactly one ActionSet for idx.
//
// Each ActionUnset shortens the replayed string by removing a '*'; by
// the time Replay reaches the ActionSet, every preceding unset in this
// call has already been applied. The set action's own offsets must
// therefore be computed against a snapshot with those clears already
// folded in, not against the pre-clear addrs — otherwise a set at an
// index past a cleared mark targets a stale, too-high offset.
func (t *tracer) emitSet(addrs []Address, idx int, exclusive bool) {
	if t == nil {
		return
	}
	working := addrs
	if exclusive {
		cleared := append([]Address(nil), addrs...)
		for i := range cleared {
			if i != idx && cleared[i].Used {
				t.emitUnset(cleared, i)
				cleared[i].Used = false
			}
		}
		working = cleared
	}
	commaOffset, textLen := t.slotOffsets(working)
	start := commaOffset[idx] + 1
	end := start + textLen[idx]
	marked := strings.TrimSuffix(working[idx].CanonicalText(), "*") + "*"
	t.actions = append(t.actions, RoutingAction{
		Start: start, End: end, Index: idx, Type: ActionSet, Target: TargetPath,
		Address: marked,
	})
}

func (t *tracer) emitUnset(addrs []Address, idx int) {
	if t == nil {
		return
	}
	commaOffset, textLen := t.slotOffsets(addrs)
	start := commaOffset[idx] + 1
	end := start + textLen[idx]
	unmarked := strings.TrimSuffix(addrs[idx].CanonicalText(), "*")
	t.actions = append(t.actions, RoutingAction{
		Start: start, End: end, Index: idx, Type: ActionUnset, Target: TargetPath,
		Address: unmarked,
	})
}

func (t *tracer) emitWarn(addrs []Address, idx int, message string) {
	if t == nil {
		return
	}
	commaOffset, textLen := t.slotOffsets(addrs)
	start := commaOffset[idx] + 1
	end := start + textLen[idx]
	t.actions = append(t.actions, RoutingAction{
		Start: start, End: end, Index: idx, Type: ActionWarn, Target: TargetPath,
		Address: addrs[idx].CanonicalText(), Message: message,
	})
}

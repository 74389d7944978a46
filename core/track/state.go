// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package track implements the automatic resource-state tracker (C3): the
// bitmask-based usage vocabulary, per-device and per-command-buffer scopes,
// and the merge algorithm that turns a scope's recorded usages into the
// barriers a command buffer must emit before it runs.
package track

// ResourceState is the tracked state of one buffer or texture sub-resource.
// The bit values are the engine's own; the native backend translates them
// bit by bit (internal/dx12's resourceStateToD3D12) when it records a
// transition barrier.
type ResourceState uint32

const (
	StateCommon                   ResourceState = 0
	StateVertexAndConstantBuffer  ResourceState = 1 << 0
	StateIndexBuffer               ResourceState = 1 << 1
	StateRenderTarget              ResourceState = 1 << 2
	StateUnorderedAccess           ResourceState = 1 << 3
	StateDepthWrite                ResourceState = 1 << 4
	StateDepthRead                 ResourceState = 1 << 5
	StateNonPixelShaderResource    ResourceState = 1 << 6
	StatePixelShaderResource       ResourceState = 1 << 7
	StateIndirectArgument          ResourceState = 1 << 8
	StateCopyDest                  ResourceState = 1 << 9
	StateCopySource                ResourceState = 1 << 10
	StatePresent                   ResourceState = 1 << 11
	StateResolveDest               ResourceState = 1 << 12
	StateResolveSource             ResourceState = 1 << 13
)

// readOnlyStates is the subset of states that never write through the
// resource; any combination of these may coexist without a barrier.
const readOnlyStates = StateVertexAndConstantBuffer | StateIndexBuffer |
	StateDepthRead | StateNonPixelShaderResource | StatePixelShaderResource |
	StateIndirectArgument | StateCopySource | StateResolveSource

// IsReadOnly reports whether s contains no write-capable state.
func (s ResourceState) IsReadOnly() bool {
	return s&^readOnlyStates == 0
}

// IsEmpty reports whether no state bit is set (the resource has never been
// used, or was just created).
func (s ResourceState) IsEmpty() bool { return s == StateCommon }

// Contains reports whether every bit in other is also set in s.
func (s ResourceState) Contains(other ResourceState) bool { return s&other == other }

// IsCompatible reports whether two recorded states can coexist in the same
// usage scope without forcing a split (a write state is only compatible
// with an identical write state; any two read-only states are compatible).
func (s ResourceState) IsCompatible(other ResourceState) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return true
	}
	if s.IsReadOnly() && other.IsReadOnly() {
		return true
	}
	return s == other
}

// state holds the tracked state for a single index.
type state struct {
	usage ResourceState
}

// Tracker tracks the device-wide last-known state of every index in one
// resource kind's tracker-index space (buffers, or texture sub-resources).
// The device keeps one Tracker for buffers and one for texture
// sub-resources; the per-command-buffer Scope of the same kind merges into
// it at submit time.
type Tracker struct {
	states   []state
	metadata ResourceMetadata
}

// NewTracker creates an empty device-wide tracker.
func NewTracker() *Tracker {
	return &Tracker{
		states:   make([]state, 0, 64),
		metadata: NewResourceMetadata(),
	}
}

// InsertSingle begins tracking index with an initial state: right after
// resource creation, the usage-derived default state (the present state
// for a swapchain back buffer).
func (t *Tracker) InsertSingle(index TrackerIndex, usage ResourceState) {
	t.ensureSize(int(index) + 1)
	t.states[index] = state{usage: usage}
	t.metadata.SetOwned(index, true)
}

// Remove stops tracking index, called when the owning resource is finally
// released by the deferred-destruction sweep.
func (t *Tracker) Remove(index TrackerIndex) {
	if int(index) < len(t.states) {
		t.states[index] = state{}
		t.metadata.SetOwned(index, false)
	}
}

// GetUsage returns the last-known state of index, or StateCommon if it is
// not tracked.
func (t *Tracker) GetUsage(index TrackerIndex) ResourceState {
	if int(index) < len(t.states) && t.metadata.IsOwned(index) {
		return t.states[index].usage
	}
	return StateCommon
}

// SetUsage force-sets the tracked state of an already-tracked index
// without going through Merge.
func (t *Tracker) SetUsage(index TrackerIndex, usage ResourceState) {
	if int(index) < len(t.states) && t.metadata.IsOwned(index) {
		t.states[index].usage = usage
	}
}

// IsTracked reports whether index currently has an entry.
func (t *Tracker) IsTracked(index TrackerIndex) bool {
	return int(index) < len(t.states) && t.metadata.IsOwned(index)
}

// Size returns the number of tracked indices.
func (t *Tracker) Size() int { return t.metadata.Count() }

func (t *Tracker) ensureSize(size int) {
	for len(t.states) < size {
		t.states = append(t.states, state{})
	}
}

// Merge folds a command buffer's recorded Scope into the device tracker,
// returning the barrier-worthy transitions a command buffer must emit
// before its first use of each index. Called once per command buffer,
// before closing its native command list.
func (t *Tracker) Merge(scope *Scope) []PendingTransition {
	var transitions []PendingTransition

	for i := range scope.states {
		index := TrackerIndex(i)
		if !scope.metadata.IsOwned(index) {
			continue
		}

		newUsage := scope.states[i].usage
		oldUsage := t.GetUsage(index)

		if !t.IsTracked(index) {
			t.InsertSingle(index, newUsage)
			continue
		}

		if !oldUsage.IsCompatible(newUsage) || oldUsage != newUsage {
			transitions = append(transitions, PendingTransition{
				Index: index,
				Usage: StateTransition{From: oldUsage, To: newUsage},
			})
			t.states[index].usage = newUsage
		}
	}

	return transitions
}

// Scope tracks the states a single command buffer (or one pass within it)
// touches an index with, before the states are folded into the device
// Tracker at submit time. Every command buffer owns two Scopes (buffers
// and texture sub-resources), reset with Clear when the command buffer is
// acquired again from the available pool.
type Scope struct {
	states   []state
	metadata ResourceMetadata
}

// NewScope creates an empty per-command-buffer scope.
func NewScope() *Scope {
	return &Scope{
		states:   make([]state, 0, 32),
		metadata: NewResourceMetadata(),
	}
}

// SetUsage records that this scope uses index with usage, merging with any
// usage already recorded this scope. Returns UsageConflictError if the
// combination is not IsCompatible (e.g. the same sub-resource bound both
// as a render target and a shader-resource view in one pass).
func (s *Scope) SetUsage(index TrackerIndex, usage ResourceState) error {
	s.ensureSize(int(index) + 1)

	if s.metadata.IsOwned(index) {
		existing := s.states[index].usage
		if !existing.IsCompatible(usage) {
			return &UsageConflictError{Index: index, Existing: existing, New: usage}
		}
		s.states[index].usage = existing | usage
	} else {
		s.states[index] = state{usage: usage}
		s.metadata.SetOwned(index, true)
	}

	return nil
}

// GetUsage returns the state recorded for index in this scope.
func (s *Scope) GetUsage(index TrackerIndex) ResourceState {
	if int(index) < len(s.states) && s.metadata.IsOwned(index) {
		return s.states[index].usage
	}
	return StateCommon
}

// IsUsed reports whether index has any recorded usage in this scope.
func (s *Scope) IsUsed(index TrackerIndex) bool {
	return int(index) < len(s.states) && s.metadata.IsOwned(index)
}

// Clear empties the scope for reuse by the next command buffer acquisition.
func (s *Scope) Clear() {
	s.states = s.states[:0]
	s.metadata.Clear()
}

func (s *Scope) ensureSize(size int) {
	for len(s.states) < size {
		s.states = append(s.states, state{})
	}
}

// PendingTransition is one barrier-worthy index/state change discovered by
// Tracker.Merge.
type PendingTransition struct {
	Index TrackerIndex
	Usage StateTransition
}

// StateTransition is a from/to pair of resource states.
type StateTransition struct {
	From ResourceState
	To   ResourceState
}

// NeedsBarrier reports whether this transition requires the backend to
// emit a transition barrier (identical states, or two read-only states,
// never need one).
func (t StateTransition) NeedsBarrier() bool {
	if t.From == t.To {
		return false
	}
	if t.From.IsReadOnly() && t.To.IsReadOnly() {
		return false
	}
	return true
}

// UsageConflictError reports that a single pass recorded two incompatible
// uses of the same index (§4.3's "write-write or write-read hazard within
// one pass" case, which the tracker refuses rather than silently ordering).
type UsageConflictError struct {
	Index    TrackerIndex
	Existing ResourceState
	New      ResourceState
}

func (e *UsageConflictError) Error() string {
	return "frameengine/core/track: usage conflict: incompatible states recorded in the same scope"
}

// ResourceMetadata tracks which tracker indices currently have a live entry,
// independent of what that entry's state is. Shared by Tracker and Scope.
type ResourceMetadata struct {
	owned []bool
	count int
}

// NewResourceMetadata creates empty metadata.
func NewResourceMetadata() ResourceMetadata {
	return ResourceMetadata{owned: make([]bool, 0, 64)}
}

// SetOwned marks index as present or absent.
func (m *ResourceMetadata) SetOwned(index TrackerIndex, owned bool) {
	for int(index) >= len(m.owned) {
		m.owned = append(m.owned, false)
	}
	was := m.owned[index]
	m.owned[index] = owned
	if owned && !was {
		m.count++
	} else if !owned && was {
		m.count--
	}
}

// IsOwned reports whether index is currently present.
func (m *ResourceMetadata) IsOwned(index TrackerIndex) bool {
	if int(index) >= len(m.owned) {
		return false
	}
	return m.owned[index]
}

// Count returns the number of present indices.
func (m *ResourceMetadata) Count() int { return m.count }

// Clear marks every index absent without releasing the backing slice.
func (m *ResourceMetadata) Clear() {
	for i := range m.owned {
		m.owned[i] = false
	}
	m.count = 0
}

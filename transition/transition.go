package transition

// Package transition implements item transitions (crafting): definitions
// turning input items into output items over time, gated by stat
// conditions, plus batch progress bookkeeping. Consuming and producing
// items against an inventory goes through Adapter.

import "github.com/gravitas-015/gamekit/stat"

// UseModeKind selects how an input item is used by a transition.
type UseModeKind int

const (
	// Consume removes the input quantity outright.
	Consume UseModeKind = iota
	// UseOnce wears the input by a fixed durability amount once.
	UseOnce
	// UsePerSecond wears the input continuously while the transition
	// runs.
	UsePerSecond
)

// String returns a human-readable representation of the use mode kind.
func (k UseModeKind) String() string {
	switch k {
	case Consume:
		return "Consume"
	case UseOnce:
		return "UseOnce"
	case UsePerSecond:
		return "UsePerSecond"
	default:
		return "Unknown"
	}
}

// UseMode configures how one input requirement uses its items.
type UseMode struct {
	Kind UseModeKind `json:"kind"`
	// Durability is the wear applied under UseOnce.
	Durability float64 `json:"durability,omitempty"`
	// Rate is the wear per second under UsePerSecond.
	Rate float64 `json:"rate,omitempty"`
}

// ConsumeMode returns the plain consuming use mode.
func ConsumeMode() UseMode { return UseMode{Kind: Consume} }

// UseOnceMode returns a tool-style use mode wearing the item once.
func UseOnceMode(durability float64) UseMode {
	return UseMode{Kind: UseOnce, Durability: durability}
}

// UsePerSecondMode returns a continuous-wear use mode.
func UsePerSecondMode(rate float64) UseMode {
	return UseMode{Kind: UsePerSecond, Rate: rate}
}

// Input is one item requirement of a transition.
type Input[I comparable] struct {
	Item     I       `json:"item"`
	Quantity int     `json:"quantity"`
	Mode     UseMode `json:"mode"`
}

// Output is one item yield of a transition.
type Output[I comparable] struct {
	Item     I   `json:"item"`
	Quantity int `json:"quantity"`
}

// ConditionLostReaction selects what happens to a running transition when
// its stat conditions stop holding.
type ConditionLostReaction int

const (
	// ReactionNone lets the transition keep running.
	ReactionNone ConditionLostReaction = iota
	// ReactionPause suspends progress until the conditions hold again.
	ReactionPause
	// ReactionCancel aborts the transition.
	ReactionCancel
)

// String returns a human-readable representation of the reaction.
func (r ConditionLostReaction) String() string {
	switch r {
	case ReactionNone:
		return "None"
	case ReactionPause:
		return "Pause"
	case ReactionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Definition describes an item transition.
//   - K: transition key
//   - I: item key
//   - E: effector key applied while the transition runs
//   - S: stat key of the conditions
type Definition[K comparable, I comparable, E comparable, S comparable] struct {
	Key          K      `json:"key"`
	Name         string `json:"name"`
	FriendlyName string `json:"friendlyName,omitempty"`
	IconPath     string `json:"iconPath,omitempty"`
	// Inputs required to run the transition.
	Inputs []Input[I] `json:"inputs"`
	// Conditions that must hold on the crafter's stats.
	Conditions []stat.Condition[S] `json:"conditions,omitempty"`
	// Effectors applied to the crafter while the transition runs.
	Effectors []E `json:"effectors,omitempty"`
	// Outputs produced on completion.
	Outputs []Output[I] `json:"outputs"`
	// OnConditionLost selects the reaction when Conditions stop holding.
	OnConditionLost ConditionLostReaction `json:"onConditionLost"`
	// TimeToComplete is the duration of one completion, in seconds.
	TimeToComplete float64 `json:"timeToComplete"`
	// ConsumeInputImmediate consumes inputs at start instead of at
	// completion.
	ConsumeInputImmediate bool `json:"consumeInputImmediate"`
	// AutoTrigger restarts the transition while inputs remain.
	AutoTrigger bool `json:"autoTrigger"`
}

// Batch tracks the progress of a repeated transition.
type Batch[K comparable] struct {
	// Transition is the definition key being run.
	Transition K `json:"transition"`
	// Remaining is the number of completions left.
	Remaining int `json:"remaining"`
	// NextCompletionRemaining is the time in seconds until the next
	// completion.
	NextCompletionRemaining float64 `json:"nextCompletionRemaining"`
}

// NewBatch starts a batch of the provided size.
func NewBatch[K comparable](transition K, count int, timeToComplete float64) *Batch[K] {
	return &Batch[K]{
		Transition:              transition,
		Remaining:               count,
		NextCompletionRemaining: timeToComplete,
	}
}

// Done reports whether every completion has happened.
func (b *Batch[K]) Done() bool { return b.Remaining <= 0 }

// Update advances the batch by the elapsed seconds and returns the number
// of completions that occurred during that span.
func (b *Batch[K]) Update(deltaSeconds float64, timeToComplete float64) int {
	if b.Done() {
		return 0
	}
	completed := 0
	b.NextCompletionRemaining -= deltaSeconds
	for b.NextCompletionRemaining <= 0 && b.Remaining > 0 {
		completed++
		b.Remaining--
		b.NextCompletionRemaining += timeToComplete
	}
	if b.Done() {
		b.NextCompletionRemaining = 0
	}
	return completed
}

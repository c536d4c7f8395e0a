package staticfsm

import "github.com/amp-labs/staticfsm/optional"

// OverflowPolicy decides what Put does when the single mailbox slot is
// already occupied.
type OverflowPolicy int

const (
	// OverflowOverwrite replaces the buffered message with the new one.
	// This is the zero-value default: for most routes the latest message is
	// the interesting one.
	OverflowOverwrite OverflowPolicy = iota
	// OverflowReject keeps the buffered message and fails the Put with
	// ErrMailboxFull.
	OverflowReject
)

// Mailbox is a single-slot, non-blocking message buffer. States embed one
// per message route they serve; because states live by value inside the
// generated machine holder, the buffer's lifetime is scoped to the machine —
// there is no process-wide message state.
//
// The zero Mailbox is ready to use with the OverflowOverwrite policy.
// Mailbox is not safe for concurrent use; the machine contract already
// requires external serialization.
type Mailbox[M any] struct {
	slot   optional.Value[M]
	policy OverflowPolicy
}

// NewMailbox creates a mailbox with an explicit overflow policy.
func NewMailbox[M any](policy OverflowPolicy) Mailbox[M] {
	return Mailbox[M]{policy: policy}
}

// Put buffers msg. With OverflowReject and an occupied slot it returns
// ErrMailboxFull and leaves the buffered message in place.
func (b *Mailbox[M]) Put(msg M) error {
	if b.slot.NonEmpty() && b.policy == OverflowReject {
		return ErrMailboxFull
	}

	b.slot = optional.Some(msg)

	return nil
}

// Take returns the buffered message and clears the slot. It returns None
// when nothing is buffered; a buffered message is yielded exactly once.
func (b *Mailbox[M]) Take() optional.Value[M] {
	msg := b.slot
	b.slot = optional.None[M]()

	return msg
}

// Occupied reports whether a message is buffered.
func (b *Mailbox[M]) Occupied() bool {
	return b.slot.NonEmpty()
}

package staticfsm

// TransitGuard is the result of a transition guard: whether the machine
// should leave the current state this step or remain in it. It converts
// directly from bool, so guards can end in a comparison:
//
//	func (g *Grounded) GuardMoveUp() staticfsm.TransitGuard {
//		return staticfsm.TransitGuard(g.checksDone >= g.checksNeeded)
//	}
type TransitGuard bool

const (
	// Remain keeps the machine in the current state.
	Remain TransitGuard = false
	// Transit consumes the current state and moves to the edge's target.
	Transit TransitGuard = true
)

// State is the capability contract every declared state satisfies.
//
// Generated machines never hold this interface — they call the hooks on the
// concrete state types. It exists for documentation and for compile-time
// assertions in user code:
//
//	var _ staticfsm.State = (*Grounded)(nil)
//
// OnEntry runs exactly once when the state becomes current, OnExit exactly
// once before the state is consumed by a firing transition (or by Stop), and
// Execute at most once per Step while the state is current, before guard
// evaluation. None of the hooks return errors: a state whose work can fail
// encodes that in its own data and surfaces it through its message routes.
type State interface {
	OnEntry()
	Execute()
	OnExit()
}

// NopState provides empty OnEntry, Execute and OnExit hooks. Embed it in
// states that only need some of the three.
type NopState struct{}

func (NopState) OnEntry() {}

func (NopState) Execute() {}

func (NopState) OnExit() {}

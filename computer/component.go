package computer

// The four-phase clock discipline. Every simulated clock period runs, in
// strict order over the whole component list:
//
//  1. decode  - the control unit publishes the control bus (control.go).
//  2. drive   - components assert values onto the data bus.
//  3. compute - internal state changes: increments, arithmetic, direct
//     register-to-register moves, flag recomputation.
//  4. latch   - components capture the data bus into their own storage.
//
// The component set is closed and known at construction. Instead of a
// single interface with empty default methods, each phase has its own
// interface, and a component implements only the phases where it has
// behavior. The scheduler checks the phase interface per component.

// driver acts during the drive phase (component -> bus).
type driver interface {
	drive()
}

// ticker acts during the compute phase.
type ticker interface {
	tick()
}

// latcher acts during the latch phase (bus -> component).
type latcher interface {
	latch()
}

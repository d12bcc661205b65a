package sim

// System is one phase of a simulation tick. Systems may keep their own
// state in fields; it persists between ticks.
type System interface {
	Execute(frame *Frame)
}

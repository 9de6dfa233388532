package types

// Mode classifies the machine a run targets.
type Mode string

const (
	// ModePersonal applies the full directive set.
	ModePersonal Mode = "personal"

	// ModeWork skips directives whose targets are owned by another system
	// on managed machines.
	ModeWork Mode = "work"
)

// IsWork reports whether m is ModeWork.
func (m Mode) IsWork() bool {
	return m == ModeWork
}

package config

const (
	WindowWidth  = 800
	WindowHeight = 600

	// Button dimensions
	ButtonWidth  = 80
	ButtonHeight = 40

	// Evasion parameters
	RunAwayRadius = 100
	MoveStep      = 32
	BounceNudge   = 24
)

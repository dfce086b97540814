package config

const (
	WindowWidth  = 1280
	WindowHeight = 800
	TPS          = 60

	// Below this width the header collapses into the hamburger menu
	MobileBreakpoint = 768

	HeaderHeight  = 70
	ScrollStep    = 60
	ScrolledAfter = 10

	// Dot field
	DotSpacing           = 25.0
	DotOpacityMin        = 0.40
	DotOpacityMax        = 0.50
	DotBaseRadius        = 1.0
	DotInteractionRadius = 150.0
	DotOpacityBoost      = 0.6
	DotRadiusBoost       = 2.5
	CanvasOpacity        = 0.8

	// Brand colour for terminal output
	PrimaryHex = "#0CF2A0"
)

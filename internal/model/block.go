package model

import "time"

// BlockInstruction is emitted when a visit pushes a site over its limit.
type BlockInstruction struct {
	Pattern        string
	VisitCount     int
	VisitLimit     int
	TimeInterval   TimeInterval
	TimeUntilReset string
	ResetAt        time.Time
}

// Redirect tells the extension to send a tab to another URL.
type Redirect struct {
	TabID int64
	URL   string
}

package parameter

import "time"

// EngineTickInterval is the fixed simulation step of the host loop
const EngineTickInterval = 16 * time.Millisecond

// EngineLogDir and EngineLogFile locate the debug log written by commands
const (
	EngineLogDir  = "logs"
	EngineLogFile = "gunplay.log"
)

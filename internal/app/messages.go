package app

import "time"

// FrameMsg runs the pending frame callback.
type FrameMsg time.Time

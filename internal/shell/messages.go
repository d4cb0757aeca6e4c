package shell

import "time"

// HeartbeatMsg is the 1-second tick driving idle, night shift and the
// countdown in one deterministic pass.
type HeartbeatMsg time.Time

// FrameMsg triggers a frame update for animation.
type FrameMsg time.Time

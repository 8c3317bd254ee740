package app

import (
	"time"

	"ble-trails.klederson.com/internal/strip"
)

// FrameMsg carries a completed frame from the render loop.
type FrameMsg strip.Frame

// TickMsg triggers a stats and beacon panel refresh.
type TickMsg time.Time

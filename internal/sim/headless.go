package sim

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/satellite/internal/logger"
)

// HeadlessDelta is the frame time reported to handlers in headless runs.
const HeadlessDelta = time.Second / 60

// RunHeadless steps w for frames frames without a window and logs where the
// hub ended up.
func RunHeadless(w *World, frames int) {
	log := logger.Named("headless")
	log.Info("simulating", zap.Int("frames", frames))

	for i := 0; i < frames; i++ {
		w.Step(HeadlessDelta)
	}

	hub := w.Rig.Hub.World().Translation()
	log.Info("simulation finished",
		zap.Uint64("frames", w.Frame()),
		zap.Uint64("tick", w.Animator.Tick()),
		zap.Stringer("state", w.Animator.State()),
		zap.Float32s("hub_position", []float32{hub.X, hub.Y, hub.Z}),
	)
}

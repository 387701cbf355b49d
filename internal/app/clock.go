package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rbright/suno/internal/config"
	"github.com/rbright/suno/internal/rtc"
)

// withClock opens the configured clock for the duration of fn.
func (r Runner) withClock(cfg config.RTCConfig, fn func(rtc.Clock) int) int {
	clock, closeClock, err := openClock(cfg)
	if err != nil {
		return r.fail(exitError, "%v", err)
	}
	defer func() { _ = closeClock() }()
	return fn(clock)
}

func (r Runner) commandClock(cfg config.RTCConfig) int {
	return r.withClock(cfg, func(clock rtc.Clock) int {
		reading, err := clock.Now()
		if err != nil {
			return r.fail(exitError, "read clock: %v", err)
		}
		if err := reading.Validate(); err != nil {
			return r.fail(exitError, "%v", err)
		}
		fmt.Fprintln(r.Stdout, reading.String())
		return exitOK
	})
}

// commandClockSet writes the current system time to a settable backend.
func (r Runner) commandClockSet(cfg config.RTCConfig, logger *slog.Logger) int {
	return r.withClock(cfg, func(clock rtc.Clock) int {
		setter, ok := clock.(rtc.Setter)
		if !ok {
			return r.fail(exitError, "rtc backend %q cannot be set", cfg.Backend)
		}
		reading := rtc.FromTime(time.Now())
		if err := setter.Set(reading); err != nil {
			return r.fail(exitError, "set clock: %v", err)
		}
		logger.Info("clock set", "reading", reading.String())
		fmt.Fprintln(r.Stdout, reading.String())
		return exitOK
	})
}

// Package settings defines the deathswap settings record.
//
// Game settings live in the primary document (config.yml) and player-facing
// message text lives in the override document (messages.yml). Keys in both
// documents are the field names listed in Schema.
package settings

import (
	"sync"
	"time"

	"github.com/deathswap/deathswap/pkg/config"
)

// Settings is the deathswap settings record.
type Settings struct {
	// SwapInterval is the number of seconds between swaps.
	SwapInterval int

	// WarningTime is how many seconds before a swap players are warned.
	WarningTime int

	// RandomizeInterval varies each interval around SwapInterval.
	RandomizeInterval bool

	// SwapDelay is the grace period after a swap before damage applies.
	SwapDelay time.Duration

	// DisabledWorlds lists worlds players are never swapped into.
	DisabledWorlds []string

	StartMessage   string
	SwapMessage    string
	WarningMessage string
	WinMessage     string
	StopMessage    string
}

// New returns settings at their default values.
func New() *Settings {
	return &Settings{
		SwapInterval:      500,
		WarningTime:       10,
		RandomizeInterval: false,
		SwapDelay:         5 * time.Second,
		DisabledWorlds:    []string{"world_nether", "world_the_end"},
		StartMessage:      "The Deathswap has begun!",
		SwapMessage:       "Swapping!",
		WarningMessage:    "Swapping in %d seconds!",
		WinMessage:        "Game Over",
		StopMessage:       "The Deathswap has been stopped.",
	}
}

// Schema returns the field descriptors of Settings in declaration order.
func Schema() config.Schema[Settings] {
	return config.Schema[Settings]{
		New: New,
		Fields: []config.Field[Settings]{
			config.Int("swapInterval", config.Primary, func(s *Settings) *int { return &s.SwapInterval }),
			config.Int("warningTime", config.Primary, func(s *Settings) *int { return &s.WarningTime }),
			config.Bool("randomizeInterval", config.Primary, func(s *Settings) *bool { return &s.RandomizeInterval }),
			config.Duration("swapDelay", config.Primary, func(s *Settings) *time.Duration { return &s.SwapDelay }),
			config.StringSlice("disabledWorlds", config.Primary, func(s *Settings) *[]string { return &s.DisabledWorlds }),

			config.String("startMessage", config.Override, func(s *Settings) *string { return &s.StartMessage }),
			config.String("swapMessage", config.Override, func(s *Settings) *string { return &s.SwapMessage }),
			config.String("warningMessage", config.Override, func(s *Settings) *string { return &s.WarningMessage }),
			config.String("winMessage", config.Override, func(s *Settings) *string { return &s.WinMessage }),
			config.String("stopMessage", config.Override, func(s *Settings) *string { return &s.StopMessage }),
		},
	}
}

// Clone returns a deep copy of s.
func (s *Settings) Clone() *Settings {
	c := *s
	if s.DisabledWorlds != nil {
		c.DisabledWorlds = append([]string(nil), s.DisabledWorlds...)
	}
	return &c
}

// Live holds the settings currently in effect.
type Live struct {
	current *Settings
	mu      sync.RWMutex
}

// NewLive creates a holder with s in effect. A nil s means defaults.
func NewLive(s *Settings) *Live {
	if s == nil {
		s = New()
	}
	return &Live{current: s}
}

// Get returns a copy of the settings in effect.
func (l *Live) Get() *Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current.Clone()
}

// Set puts s into effect.
func (l *Live) Set(s *Settings) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.current = s.Clone()
}

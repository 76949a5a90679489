package vterm

import "time"

// Default resource bounds from the data-model invariants.
const (
	MaxParams          = 32
	MaxParamValue      = 9999
	MaxOSCLen          = 2048
	DefaultScrollback  = 10000
	CursorStackLimit   = 100
	DefaultTabWidth    = 8
)

// Config is shared, immutable configuration passed by pointer into a
// Grid at construction. There is no file-format parsing here (out of
// scope); callers build Config values directly or via the With* options
// below, matching the functional-options idiom used throughout the
// pack's library-shaped repos.
type Config struct {
	ScrollbackLimit   int
	BoldIsBright      bool
	TabWidth          int
	ResizeMinInterval time.Duration
}

// Option configures a Config.
type Option func(*Config)

// WithScrollbackLimit sets the maximum retained scrollback rows.
func WithScrollbackLimit(n int) Option {
	return func(c *Config) { c.ScrollbackLimit = n }
}

// WithBoldIsBright enables the legacy rule promoting palette[0..7] to
// palette[8..15] when bold is enabled.
func WithBoldIsBright(b bool) Option {
	return func(c *Config) { c.BoldIsBright = b }
}

// WithTabWidth sets Config.TabWidth. No component reads it: Buffer places
// tab stops every 8 columns and the parser expands TAB to four spaces.
func WithTabWidth(n int) Option {
	return func(c *Config) { c.TabWidth = n }
}

// WithResizeMinInterval overrides the coordinator's resize rate limit.
func WithResizeMinInterval(d time.Duration) Option {
	return func(c *Config) { c.ResizeMinInterval = d }
}

// NewConfig returns a Config with sensible defaults, customized by opts.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		ScrollbackLimit:   DefaultScrollback,
		BoldIsBright:      false,
		TabWidth:          DefaultTabWidth,
		ResizeMinInterval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

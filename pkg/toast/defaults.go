package toast

import "sync"

// DefaultDuration is the initial auto-dismiss delay in milliseconds.
const DefaultDuration = 4000

// Defaults is the process-wide toast configuration.
type Defaults struct {
	// Duration is the auto-dismiss delay in milliseconds. 0 disables
	// auto-dismiss.
	Duration int `json:"duration" yaml:"duration" toml:"duration"`

	// Style maps CSS property names to values applied inline to every toast.
	Style map[string]string `json:"style" yaml:"style" toml:"style"`
}

// Partial is a partial update for SetDefaults. Nil fields are left
// unchanged.
type Partial struct {
	Duration *int              `json:"duration,omitempty" yaml:"duration,omitempty" toml:"duration,omitempty"`
	Style    map[string]string `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

// Store holds Defaults behind a lock so readers always observe a fully
// merged value.
type Store struct {
	mu sync.RWMutex
	d  Defaults
}

// NewStore creates a Store with Duration 4000 and an empty Style.
func NewStore() *Store {
	return &Store{
		d: Defaults{
			Duration: DefaultDuration,
			Style:    map[string]string{},
		},
	}
}

// Set merges p into the stored defaults. Duration is overwritten when set
// and non-negative; Style is merged key by key.
func (s *Store) Set(p Partial) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Duration != nil && *p.Duration >= 0 {
		s.d.Duration = *p.Duration
	}
	if len(p.Style) > 0 {
		style := make(map[string]string, len(s.d.Style)+len(p.Style))
		for k, v := range s.d.Style {
			style[k] = v
		}
		for k, v := range p.Style {
			style[k] = v
		}
		s.d.Style = style
	}
}

// Get returns a detached copy of the stored defaults.
func (s *Store) Get() Defaults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.d.clone()
}

func (d Defaults) clone() Defaults {
	style := make(map[string]string, len(d.Style))
	for k, v := range d.Style {
		style[k] = v
	}
	return Defaults{Duration: d.Duration, Style: style}
}

var defaultStore = NewStore()

// SetDefaults merges p into the process-wide defaults.
func SetDefaults(p Partial) {
	defaultStore.Set(p)
}

// GetDefaults returns a detached copy of the process-wide defaults.
func GetDefaults() Defaults {
	return defaultStore.Get()
}

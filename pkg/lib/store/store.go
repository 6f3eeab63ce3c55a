// Package store keeps the inventory of registered hands: which sides exist,
// what arm/hand hardware each carries, and the control command that drives
// it. At most one hand per side may be registered.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib"
)

var (
	ErrDuplicateSide = errors.New("hand already registered for side")
	ErrHandNotFound  = errors.New("hand not found")
)

// Side identifies which hand of the robot a definition refers to.
type Side int

const (
	SideUnspecified Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "LEFT"
	case SideRight:
		return "RIGHT"
	default:
		return "UNSPECIFIED"
	}
}

// ArmType is the arm hardware family.
type ArmType int

const (
	ArmUnspecified ArmType = iota
	ArmPiper
	ArmNova
)

func (a ArmType) String() string {
	switch a {
	case ArmPiper:
		return "PIPER"
	case ArmNova:
		return "NOVA"
	default:
		return "UNSPECIFIED"
	}
}

// HandType is the hand hardware family.
type HandType int

const (
	HandUnspecified HandType = iota
	HandInspire
	HandDH
)

func (h HandType) String() string {
	switch h {
	case HandInspire:
		return "INSPIRE"
	case HandDH:
		return "DH"
	default:
		return "UNSPECIFIED"
	}
}

// Config is the caller-supplied definition of a hand.
type Config struct {
	Side    Side
	Arm     ArmType
	Hand    HandType
	Command lib.Command
}

// Hand is a registered hand. Name doubles as the session ResourceKey, e.g.
// "LEFT_PIPER_INSPIRE".
type Hand struct {
	ID        string
	Name      string
	Config    Config
	CreatedAt time.Time
}

// Key returns the hand's name as a session resource key.
func (h *Hand) Key() lib.ResourceKey {
	return lib.ResourceKey(h.Name)
}

// Store is a concurrency-safe in-memory hand inventory.
type Store struct {
	mu     sync.RWMutex
	bySide map[Side]*Hand
}

func New() *Store {
	return &Store{bySide: make(map[Side]*Hand)}
}

func deriveName(cfg Config) string {
	return fmt.Sprintf("%s_%s_%s", cfg.Side, cfg.Arm, cfg.Hand)
}

// Register adds a hand. Side, arm type and hand type must all be specified;
// a second hand on an occupied side is rejected with ErrDuplicateSide.
func (s *Store) Register(cfg Config) (*Hand, error) {
	if cfg.Side == SideUnspecified {
		return nil, fmt.Errorf("%w: side must be specified", lib.ErrInvalidArgument)
	}
	if cfg.Arm == ArmUnspecified {
		return nil, fmt.Errorf("%w: arm type must be specified", lib.ErrInvalidArgument)
	}
	if cfg.Hand == HandUnspecified {
		return nil, fmt.Errorf("%w: hand type must be specified", lib.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.bySide[cfg.Side]; ok {
		return nil, fmt.Errorf("%w %s: %s", ErrDuplicateSide, cfg.Side, existing.Name)
	}

	hand := &Hand{
		ID:        lib.NewID(),
		Name:      deriveName(cfg),
		Config:    cfg,
		CreatedAt: time.Now(),
	}
	s.bySide[cfg.Side] = hand
	return hand, nil
}

// List returns all hands ordered by side.
func (s *Store) List() []*Hand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hands := make([]*Hand, 0, len(s.bySide))
	for _, h := range s.bySide {
		hands = append(hands, h)
	}
	sort.Slice(hands, func(i, j int) bool { return hands[i].Config.Side < hands[j].Config.Side })
	return hands
}

// GetByName looks a hand up by its derived name.
func (s *Store) GetByName(name string) (*Hand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, h := range s.bySide {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrHandNotFound, name)
}

// GetBySide returns the hand registered for the side, if any.
func (s *Store) GetBySide(side Side) (*Hand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if h, ok := s.bySide[side]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("%w: side %s", ErrHandNotFound, side)
}

// Remove deletes the hand with the given name.
func (s *Store) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for side, h := range s.bySide {
		if h.Name == name {
			delete(s.bySide, side)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrHandNotFound, name)
}

// CommandFor resolves the control command configured for a resource key.
// The second return is false when no hand with that name exists or the hand
// has no command configured.
func (s *Store) CommandFor(key lib.ResourceKey) (lib.Command, bool) {
	h, err := s.GetByName(string(key))
	if err != nil || h.Config.Command.Command == "" {
		return lib.Command{}, false
	}
	return h.Config.Command, true
}

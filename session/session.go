// Package session persists the working stack that CLI commands, scripts and the console share between runs.
package session

import (
	"fmt"
	"time"

	"github.com/gotw-cli/gotw/filesystem"
	"github.com/gotw-cli/gotw/key"
	"github.com/gotw-cli/gotw/log"
	"github.com/gotw-cli/gotw/stack"
	"github.com/gotw-cli/gotw/util"
	"github.com/gotw-cli/gotw/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Snapshot is the persisted form of a session stack. Items run from bottom to top.
type Snapshot struct {
	Capacity  int       `json:"capacity"`
	Items     []string  `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

var cacher = gache.New[*Snapshot](
	&gache.Options{
		Path:       where.Session(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Allocator returns the allocator session stacks draw from, bounded by stack.max_slots when set.
func Allocator() stack.Allocator {
	if limit := viper.GetInt(key.StackMaxSlots); limit > 0 {
		return stack.NewBudget(limit)
	}
	return stack.Heap{}
}

// New returns an empty session stack with stack.initial_capacity slots reserved.
func New() (*stack.Stack[string], error) {
	s := stack.New[string](stack.WithAllocator(Allocator()))
	if err := s.Reserve(util.Max(0, viper.GetInt(key.StackInitialCapacity))); err != nil {
		return nil, fmt.Errorf("reserve initial capacity: %w", err)
	}
	return s, nil
}

// Load rebuilds the persisted session stack, restoring its capacity exactly.
// Without a snapshot, or with session.persist off, it returns New().
func Load() (*stack.Stack[string], error) {
	if !viper.GetBool(key.SessionPersist) {
		return New()
	}

	snapshot, expired, err := cacher.Get()
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if expired || snapshot == nil {
		return New()
	}

	s := stack.New[string](stack.WithAllocator(Allocator()))
	if err := s.Reserve(util.Max(snapshot.Capacity, len(snapshot.Items))); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	for _, item := range snapshot.Items {
		if err := s.Push(item); err != nil {
			s.Destroy()
			return nil, fmt.Errorf("restore session: %w", err)
		}
	}

	log.WithFields(logrus.Fields{"size": s.Size(), "capacity": s.Capacity()}).Debug("session loaded")
	return s, nil
}

// Save persists s. It is a no-op when session.persist is off.
func Save(s *stack.Stack[string]) error {
	if !viper.GetBool(key.SessionPersist) {
		return nil
	}

	snapshot := &Snapshot{
		Capacity:  s.Capacity(),
		Items:     Items(s),
		UpdatedAt: time.Now(),
	}

	if err := cacher.Set(snapshot); err != nil {
		return fmt.Errorf("write session: %w", err)
	}

	log.WithFields(logrus.Fields{"size": s.Size(), "capacity": s.Capacity()}).Debug("session saved")
	return nil
}

// Drop forgets the persisted session.
func Drop() error {
	return cacher.Set(nil)
}

// Items lists the elements of s from bottom to top.
// s is drained and refilled in place; popping keeps the capacity, so refilling never allocates.
func Items(s *stack.Stack[string]) []string {
	items := make([]string, s.Size())
	for i := len(items) - 1; i >= 0; i-- {
		items[i] = lo.Must(s.Pop())
	}

	for _, item := range items {
		lo.Must0(s.Push(item))
	}

	return items
}

// Package demo implements the state-simulation engine behind the alumni
// network demo: a single state container holding every domain collection,
// mutated only through its action methods. A subset of actions schedules
// delayed follow-up mutations to emulate backend asynchrony (group application
// approval, mentor request resolution, message delivery); each deferred
// callback re-verifies its precondition before acting, so stale timers left
// over from a reset or a superseding action degrade to no-ops.
package demo

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/koprumezun/mezunhub/internal/app/models"
)

// Reference timing and probability constants. All of them are configurable
// through Config; these are the defaults the demo ships with.
const (
	DefaultApprovalDelay      = 2000 * time.Millisecond
	DefaultMentorResolveDelay = 1500 * time.Millisecond
	DefaultAcceptProbability  = 0.8

	DefaultMessageDeliverDelay = 600 * time.Millisecond
	DefaultMessageSeenDelay    = 1800 * time.Millisecond
)

const (
	matchInitialProgress = 25
	flashSessionLead     = time.Hour
	flashSessionMinutes  = 10
	defaultEventCapacity = 150
	maxRecommendedAlumni = 3
)

// Sink receives the persisted subset after every state change.
type Sink interface {
	Save(state PersistedState) error
}

// Config carries the store's injectable collaborators. Zero values fall back
// to the system clock, the global math/rand source, and the reference
// constants above.
type Config struct {
	Clock     Clock
	Scheduler Scheduler
	// Rand returns a uniform float in [0,1). Injected in tests for
	// deterministic mentor resolution and resume scoring.
	Rand func() float64
	// NewID mints entity identifiers. Defaults to random UUIDs.
	NewID func() string

	AcceptProbability   float64
	ApprovalDelay       time.Duration
	MentorResolveDelay  time.Duration
	MessageDeliverDelay time.Duration
	MessageSeenDelay    time.Duration

	Sink   Sink
	Logger zerolog.Logger
}

// Store is the single source of truth for all demo domain data. Entries are
// treated as immutable: updates replace the element rather than mutating it
// in place, so snapshots handed to readers stay stable.
type Store struct {
	mu    sync.RWMutex
	state Snapshot

	clock     Clock
	scheduler Scheduler
	randFloat func() float64
	newID     func() string

	acceptProbability   float64
	approvalDelay       time.Duration
	mentorResolveDelay  time.Duration
	messageDeliverDelay time.Duration
	messageSeenDelay    time.Duration

	sink   Sink
	logger zerolog.Logger

	listenersMu sync.RWMutex
	listeners   []func(ChangeEvent)
}

// NewStore builds a store with an empty default state.
func NewStore(cfg Config) *Store {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = SystemClock{}
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.Float64
	}
	if cfg.NewID == nil {
		cfg.NewID = newEntityID
	}
	if cfg.AcceptProbability <= 0 {
		cfg.AcceptProbability = DefaultAcceptProbability
	}
	if cfg.ApprovalDelay <= 0 {
		cfg.ApprovalDelay = DefaultApprovalDelay
	}
	if cfg.MentorResolveDelay <= 0 {
		cfg.MentorResolveDelay = DefaultMentorResolveDelay
	}
	if cfg.MessageDeliverDelay <= 0 {
		cfg.MessageDeliverDelay = DefaultMessageDeliverDelay
	}
	if cfg.MessageSeenDelay <= 0 {
		cfg.MessageSeenDelay = DefaultMessageSeenDelay
	}

	return &Store{
		state:               defaultSnapshot(),
		clock:               cfg.Clock,
		scheduler:           cfg.Scheduler,
		randFloat:           cfg.Rand,
		newID:               cfg.NewID,
		acceptProbability:   cfg.AcceptProbability,
		approvalDelay:       cfg.ApprovalDelay,
		mentorResolveDelay:  cfg.MentorResolveDelay,
		messageDeliverDelay: cfg.MessageDeliverDelay,
		messageSeenDelay:    cfg.MessageSeenDelay,
		sink:                cfg.Sink,
		logger:              cfg.Logger,
	}
}

// Subscribe registers a listener invoked after every completed mutation.
func (s *Store) Subscribe(fn func(ChangeEvent)) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// afterChange persists the subset and notifies listeners. Called after the
// state lock has been released.
func (s *Store) afterChange(action, entityID string) {
	s.mu.RLock()
	persisted := persistedFrom(s.state)
	now := s.clock.Now()
	s.mu.RUnlock()

	if s.sink != nil {
		if err := s.sink.Save(persisted); err != nil {
			s.logger.Error().Err(err).Str("action", action).Msg("Failed to persist demo state")
		}
	}

	event := ChangeEvent{Action: action, EntityID: entityID, At: now}
	s.listenersMu.RLock()
	listeners := make([]func(ChangeEvent), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.RUnlock()
	for _, fn := range listeners {
		fn(event)
	}
}

// Snapshot returns a copy of the full state. The collection headers are
// copies; the entries behind them are never mutated in place.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ViewerID returns the current viewer identity, empty when nothing useful has
// been restored or hydrated yet.
func (s *Store) ViewerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ViewerID
}

// Viewer resolves the viewer's profile. The second return is false when the
// viewer id is unset or points at a profile missing from the current view.
func (s *Store) Viewer() (models.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.state.Users {
		if user.ID == s.state.ViewerID && s.state.ViewerID != "" {
			return user, true
		}
	}
	return models.UserProfile{}, false
}

// Hydrate shallow-merges a partial snapshot into the current state. Fields
// absent from the partial keep their prior values. Used once at bootstrap.
func (s *Store) Hydrate(partial Snapshot) {
	s.mu.Lock()
	s.state = merged(s.state, partial)
	s.mu.Unlock()
	s.afterChange("store.hydrated", "")
}

// Reset replaces the entire state with defaults merged with an optional
// override. Timers scheduled against discarded entities are not cancelled;
// their callbacks re-check preconditions by id and become no-ops.
func (s *Store) Reset(override *Snapshot) {
	s.mu.Lock()
	s.state = defaultSnapshot()
	if override != nil {
		s.state = merged(s.state, *override)
	}
	s.mu.Unlock()
	s.afterChange("store.reset", "")
}

// ExportUserData serializes the entire store state to a JSON blob. The export
// is a full snapshot, not scoped to the viewer's own records; see DESIGN.md.
func (s *Store) ExportUserData() ([]byte, error) {
	s.mu.RLock()
	state := s.state
	s.mu.RUnlock()
	return json.MarshalIndent(state, "", "  ")
}

// DeleteDemoUser anonymizes the viewer's profile in place. Nothing is
// physically removed; deletion is modeled as anonymization.
func (s *Store) DeleteDemoUser() (models.UserProfile, bool) {
	s.mu.Lock()
	var anonymized models.UserProfile
	found := false
	users := make([]models.UserProfile, len(s.state.Users))
	for i, user := range s.state.Users {
		if user.ID == s.state.ViewerID && s.state.ViewerID != "" {
			user.Name = "Demo User"
			user.Title = "Community Member"
			user.Bio = "Reset for demo"
			anonymized = user
			found = true
		}
		users[i] = user
	}
	if !found {
		s.mu.Unlock()
		return models.UserProfile{}, false
	}
	s.state.Users = users
	s.mu.Unlock()
	s.afterChange("profile.anonymized", anonymized.ID)
	return anonymized, true
}

// ViewerPatch carries the updatable profile fields; nil pointers are left
// untouched.
type ViewerPatch struct {
	Name         *string
	Title        *string
	Organization *string
	Avatar       *string
	Bio          *string
	Location     *string
	Industry     *string
	Headline     *string
	Skills       *[]string
	Interests    *[]string
	MentorStatus *models.MentorStatus
}

// UpdateViewer merges the patch into the profile matching viewerId. No-op
// when the viewer is not found.
func (s *Store) UpdateViewer(patch ViewerPatch) (models.UserProfile, bool) {
	s.mu.Lock()
	var updated models.UserProfile
	found := false
	users := make([]models.UserProfile, len(s.state.Users))
	for i, user := range s.state.Users {
		if user.ID == s.state.ViewerID && s.state.ViewerID != "" {
			applyViewerPatch(&user, patch)
			updated = user
			found = true
		}
		users[i] = user
	}
	if !found {
		s.mu.Unlock()
		return models.UserProfile{}, false
	}
	s.state.Users = users
	s.mu.Unlock()
	s.afterChange("profile.updated", updated.ID)
	return updated, true
}

func applyViewerPatch(user *models.UserProfile, patch ViewerPatch) {
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Title != nil {
		user.Title = *patch.Title
	}
	if patch.Organization != nil {
		user.Organization = *patch.Organization
	}
	if patch.Avatar != nil {
		user.Avatar = *patch.Avatar
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.Location != nil {
		user.Location = *patch.Location
	}
	if patch.Industry != nil {
		user.Industry = *patch.Industry
	}
	if patch.Headline != nil {
		user.Headline = *patch.Headline
	}
	if patch.Skills != nil {
		user.Skills = *patch.Skills
	}
	if patch.Interests != nil {
		user.Interests = *patch.Interests
	}
	if patch.MentorStatus != nil {
		user.MentorStatus = *patch.MentorStatus
	}
}

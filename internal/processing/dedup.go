package processing

import "sync"

// DedupStore is the process-wide memory of what has already been pushed to
// Discord: which ban IDs have been posted, and the last display name applied
// to the status category. It is rebuilt empty on every start; nothing is
// persisted.
//
// The seen-ban set only grows for the life of the process. The last display
// name is the single source of truth for whether a rename is necessary.
type DedupStore struct {
	mu              sync.Mutex
	seenBans        map[string]struct{}
	lastDisplayName string
	hasDisplayName  bool
}

func NewDedupStore() *DedupStore {
	return &DedupStore{
		seenBans: make(map[string]struct{}),
	}
}

// HasSeenBan reports whether a ban ID has already been posted
func (s *DedupStore) HasSeenBan(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seenBans[id]
	return ok
}

// MarkBanSeen records a ban ID as posted. Idempotent.
func (s *DedupStore) MarkBanSeen(id string) {
	s.mu.Lock()
	s.seenBans[id] = struct{}{}
	s.mu.Unlock()
}

// SeenBanCount returns the number of distinct bans posted so far
func (s *DedupStore) SeenBanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seenBans)
}

// LastDisplayName returns the last successfully applied display name. The
// second return is false until the first successful rename.
func (s *DedupStore) LastDisplayName() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastDisplayName, s.hasDisplayName
}

// SetLastDisplayName records a successfully applied display name
func (s *DedupStore) SetLastDisplayName(name string) {
	s.mu.Lock()
	s.lastDisplayName = name
	s.hasDisplayName = true
	s.mu.Unlock()
}

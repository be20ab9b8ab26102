package domain

// Snapshot is the whole persisted game state: every player and every
// channel boss. Handlers operate on one Snapshot at a time inside the
// store's critical section; there is no per-record locking.
type Snapshot struct {
	Players map[string]*Player      `json:"players"`
	Bosses  map[string]*ChannelBoss `json:"bosses"`
}

// NewSnapshot returns an empty, valid snapshot shape.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Players: make(map[string]*Player),
		Bosses:  make(map[string]*ChannelBoss),
	}
}

// NewPlayer returns the default record for a first-time (channel, user).
func NewPlayer(channel, user string) *Player {
	return &Player{
		User:      user,
		Channel:   channel,
		Level:     1,
		HP:        DefaultMaxHP,
		MaxHP:     DefaultMaxHP,
		Inventory: []Item{},
	}
}

// Player returns the record for (channel, user), creating a fresh one on
// first access. Callers must pass already-lowercased identifiers.
func (s *Snapshot) Player(channel, user string) *Player {
	key := PlayerKey(channel, user)
	p, ok := s.Players[key]
	if !ok {
		p = NewPlayer(channel, user)
		s.Players[key] = p
	}
	return p
}

// Boss returns the channel's boss record, creating an inactive one on
// first access.
func (s *Snapshot) Boss(channel string) *ChannelBoss {
	b, ok := s.Bosses[channel]
	if !ok {
		b = &ChannelBoss{Channel: channel}
		s.Bosses[channel] = b
	}
	return b
}

// ChannelPlayers returns every player belonging to the channel.
func (s *Snapshot) ChannelPlayers(channel string) []*Player {
	var out []*Player
	for _, p := range s.Players {
		if p.Channel == channel {
			out = append(out, p)
		}
	}
	return out
}

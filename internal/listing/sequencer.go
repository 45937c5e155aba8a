package listing

import "sync/atomic"

// Token identifies one render request.
type Token uint64

// Sequencer hands out increasing tokens; only the newest one is current.
type Sequencer struct {
	latest atomic.Uint64
}

func (s *Sequencer) Next() Token {
	return Token(s.latest.Add(1))
}

func (s *Sequencer) IsCurrent(t Token) bool {
	return Token(s.latest.Load()) == t
}

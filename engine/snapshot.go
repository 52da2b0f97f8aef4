package engine

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Snapshots serialize the complete data model and nothing else: every Game
// field is plain data, deferred effects included, so a restored session
// resumes exactly where the original stood.

// MarshalSnapshot serializes the session to JSON.
func (g *Game) MarshalSnapshot() ([]byte, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// UnmarshalSnapshot rebuilds a session from MarshalSnapshot output. The
// restored session uses the default logger until SetLogger is called.
func UnmarshalSnapshot(data []byte) (*Game, error) {
	g := &Game{log: logrus.StandardLogger()}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if g.Passed == nil {
		g.Passed = make(map[PlayerID]bool)
	}
	return g, nil
}

// Clone deep-copies the session through the snapshot codec, sharing nothing
// with the original.
func (g *Game) Clone() (*Game, error) {
	data, err := g.MarshalSnapshot()
	if err != nil {
		return nil, err
	}
	return UnmarshalSnapshot(data)
}

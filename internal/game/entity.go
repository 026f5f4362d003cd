package game

// EntityID is a handle to an entity in one of the session collections.
// Handles are never reused within a session, so a stale handle simply
// fails the existence check instead of aliasing a newer entity.
type EntityID uint64

// NoEntity is the zero handle.
const NoEntity EntityID = 0

type mortal interface {
	alive() bool
}

// compact drops dead entities in place. Order of survivors is preserved.
func compact[T mortal](s []T) []T {
	active := s[:0]
	for _, e := range s {
		if e.alive() {
			active = append(active, e)
		}
	}
	var zero T
	for i := len(active); i < len(s); i++ {
		s[i] = zero
	}
	return active
}

type idGen struct {
	last EntityID
}

func (g *idGen) next() EntityID {
	g.last++
	return g.last
}

package hashring

// Member is a physical node on the ring. Implementations must return a
// stable, unique identifier. The ring holds the member handle as given
// and never copies, compares, or mutates anything beyond the ID.
type Member interface {
	ID() string
}

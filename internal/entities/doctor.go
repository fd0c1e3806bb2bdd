package entities

// Doctor is a registered practitioner. Records are immutable after
// registration and never deleted. On the wire doctors are keyed by id, so
// the id itself is not repeated inside the object.
type Doctor struct {
	ID    string `json:"-"`
	First string `json:"first"`
	Last  string `json:"last"`
}

package textsync

//go:generate go tool go-enum --marshal --names

// Which side of the bridge is authoritative.
// ENUM(ModelAuthoritative, TextAuthoritative)
type State int

package model

// Scope identifies the board a request operates on. Each UI session owns
// exactly one board.
type Scope struct {
	SessionID string
}

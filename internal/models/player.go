package models

// Player represents a registered tournament entrant
type Player struct {
	// ID is assigned by the store when the player registers
	ID int64 `json:"id"`

	// Name is the display name of the player, not required to be unique
	Name string `json:"name"`
}

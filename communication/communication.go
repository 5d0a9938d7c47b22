package communication

import "weiqi/game"

// FindMoveRequest asks an agent for the move of the colour to play.
type FindMoveRequest struct {
	Position game.Position `json:"position"`
}

type FindMoveResponse struct {
	Move   game.Point `json:"move"`
	NoMove bool       `json:"no_move"`
	Value  float64    `json:"value"`
	Nodes  int        `json:"nodes"`
}

// Update is one played ply as seen by spectators.
type Update struct {
	GameID   string         `json:"game_id"`
	Step     int            `json:"step"`
	Player   string         `json:"player"`
	Move     *game.Point    `json:"move,omitempty"` // nil on a pass
	Position game.Position  `json:"position"`
	Hash     game.StateHash `json:"hash"`
	Board    string         `json:"board"`
	GameOver bool           `json:"game_over"`
}

// meta/meta.go
package meta

// BOARD_SIZE defines the width and height of the board.
const BOARD_SIZE = 5

// MAX_MOVES defines the last ply index; a position with more moves is terminal.
const MAX_MOVES = 24

// HANDICAP defines the stones credited to the second colour by the evaluator.
const HANDICAP = 6

// DEFAULT_DEPTH defines the search depth when none is given.
const DEFAULT_DEPTH = 3

// AGENT_ADDR defines the listen address of the agent server.
const AGENT_ADDR = ":8080"

// WATCH_ADDR defines the listen address of the spectator server.
const WATCH_ADDR = ":8081"

package web

import "github.com/vovakirdan/gridsnake/internal/games/snake"

// Protocol uses single-character JSON keys. Cells are [col,row] pairs.
//
// Message type constants (value of "t" field):
//
//	Client -> Server:
//	  "d" = direction {"t":"d","d":"left"}
//	  "k" = key code  {"t":"k","k":37}    (37 left, 38 up, 39 right, 40 down)
//	  "r" = restart   {"t":"r"}           (after game over)
//	Server -> Client:
//	  "w" = welcome   {"t":"w","i":"id","w":40,"h":40,"c":10}  (grid size, cell px)
//	  "s" = state     {"t":"s","s":[[7,5],...],"a":[10,10],"p":0,"o":"moved"}
//	  "o" = game over {"t":"o","p":3}
const (
	MsgDirection = "d"
	MsgKey       = "k"
	MsgRestart   = "r"
	MsgWelcome   = "w"
	MsgState     = "s"
	MsgOver      = "o"
)

// ClientMessage is any message sent by the browser.
type ClientMessage struct {
	Type      string `json:"t"`
	Direction string `json:"d,omitempty"`
	Key       int    `json:"k,omitempty"`
}

// direction resolves a direction request by name or key code.
func (m ClientMessage) direction() (snake.Direction, bool) {
	switch m.Type {
	case MsgDirection:
		return snake.ParseDirection(m.Direction)
	case MsgKey:
		return snake.DirectionFromKeyCode(m.Key)
	}
	return 0, false
}

// WelcomeMsg is sent once after the socket opens.
type WelcomeMsg struct {
	Type   string `json:"t"`
	ID     string `json:"i"`
	Width  int    `json:"w"`
	Height int    `json:"h"`
	CellPx int    `json:"c"`
}

// StateMsg carries the board after a tick.
type StateMsg struct {
	Type    string   `json:"t"`
	Snake   [][2]int `json:"s"`
	Apple   [2]int   `json:"a"`
	Score   int      `json:"p"`
	Outcome string   `json:"o,omitempty"`
}

// OverMsg is sent once when the snake collides.
type OverMsg struct {
	Type  string `json:"t"`
	Score int    `json:"p"`
}

func cellPair(c snake.Cell) [2]int {
	return [2]int{c.Col, c.Row}
}

// newStateMsg builds a state message. outcome is empty for the board sent
// before the first tick.
func newStateMsg(snap snake.Snapshot, outcome string) StateMsg {
	segs := make([][2]int, len(snap.Segments))
	for i, c := range snap.Segments {
		segs[i] = cellPair(c)
	}
	return StateMsg{
		Type:    MsgState,
		Snake:   segs,
		Apple:   cellPair(snap.Apple),
		Score:   snap.Score,
		Outcome: outcome,
	}
}

package web

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func TestClientMessageDirection(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   snake.Direction
		wantOK bool
	}{
		{"name left", `{"t":"d","d":"left"}`, snake.DirLeft, true},
		{"name upper case", `{"t":"d","d":"UP"}`, snake.DirUp, true},
		{"key 37", `{"t":"k","k":37}`, snake.DirLeft, true},
		{"key 38", `{"t":"k","k":38}`, snake.DirUp, true},
		{"key 39", `{"t":"k","k":39}`, snake.DirRight, true},
		{"key 40", `{"t":"k","k":40}`, snake.DirDown, true},
		{"unknown name", `{"t":"d","d":"sideways"}`, 0, false},
		{"unknown key", `{"t":"k","k":65}`, 0, false},
		{"restart", `{"t":"r"}`, 0, false},
		{"unknown type", `{"t":"x","d":"left"}`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg ClientMessage
			if err := json.Unmarshal([]byte(tt.raw), &msg); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			got, ok := msg.direction()
			if ok != tt.wantOK {
				t.Fatalf("direction() ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("direction() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestStateMsgWireFormat(t *testing.T) {
	grid, err := snake.NewGrid(40, 40, 10)
	if err != nil {
		t.Fatal(err)
	}
	s, err := snake.NewSession(grid, 1)
	if err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(newStateMsg(s.Snapshot(), snake.Moved.String()))
	if err != nil {
		t.Fatal(err)
	}

	want := `{"t":"s","s":[[7,5],[6,5],[5,5]],"a":[10,10],"p":0,"o":"moved"}`
	if string(data) != want {
		t.Errorf("state = %s\nexpected %s", data, want)
	}

	// The starting board carries no outcome
	data, _ = json.Marshal(newStateMsg(s.Snapshot(), ""))
	want = `{"t":"s","s":[[7,5],[6,5],[5,5]],"a":[10,10],"p":0}`
	if string(data) != want {
		t.Errorf("initial state = %s\nexpected %s", data, want)
	}
}

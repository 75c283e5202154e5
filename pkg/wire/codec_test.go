package wire

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/pervaizahmed26/snake-game/pkg/game"
)

func sampleState() ServerMessage {
	g := game.NewGame(game.Config{Width: 10, Height: 10, Mode: game.ModeSurvival, Seed: 5})
	out := g.Step()
	events := append(out.Events, game.Event{Kind: game.EventPowerUpCollected, PowerUp: game.GhostMode})
	return StateMessage(g.GetGameStateSnapshot(), events, false)
}

// TestCodecsAgree decodes the same frame from both codecs
func TestCodecsAgree(t *testing.T) {
	msg := sampleState()
	for _, name := range []string{"json", "msgpack"} {
		t.Run(name, func(t *testing.T) {
			c, err := CodecFor(name)
			if err != nil {
				t.Fatal(err)
			}
			data, err := c.Marshal(msg)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var got ServerMessage
			if err := c.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got.Type != TypeState || got.State == nil {
				t.Fatalf("Lost the state: %+v", got)
			}
			if got.State.Mode != game.ModeSurvival || len(got.State.Obstacles) != len(msg.State.Obstacles) {
				t.Errorf("State differs: %+v", got.State)
			}
			last := got.Events[len(got.Events)-1]
			if last.Kind != game.EventPowerUpCollected || last.PowerUp != game.GhostMode {
				t.Errorf("Event differs: %+v", last)
			}
		})
	}

	if _, err := CodecFor("xml"); err == nil {
		t.Error("Unknown codec should fail")
	}
}

// TestJSONFieldNames keeps the names the browser client reads
func TestJSONFieldNames(t *testing.T) {
	data, err := JSONCodec{}.Marshal(ScoresMessage(game.ModeTimeAttack, []int{30, 20}))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"scores","mode":"time_attack","scores":[30,20]}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}

// TestWriteRead sends frames over a real websocket
func TestWriteRead(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		var cmd ClientMessage
		if err := Read(conn, &cmd); err != nil {
			return
		}
		Write(conn, MsgpackCodec{}, ErrorMessage("unknown action "+cmd.Action))
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if err := Write(conn, JSONCodec{}, ClientMessage{Action: "jump"}); err != nil {
		t.Fatal(err)
	}
	var reply ServerMessage
	if err := Read(conn, &reply); err != nil {
		t.Fatalf("Read: %v", err)
	}
	if reply.Type != TypeError || reply.Error != "unknown action jump" {
		t.Errorf("Unexpected reply: %+v", reply)
	}
}

package wire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes frames for one websocket message type
type Codec interface {
	Name() string
	MessageType() int
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec sends text frames
type JSONCodec struct{}

func (JSONCodec) Name() string     { return "json" }
func (JSONCodec) MessageType() int { return websocket.TextMessage }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MsgpackCodec sends binary frames. Field names follow the json tags so
// both codecs produce the same shape.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string     { return "msgpack" }
func (MsgpackCodec) MessageType() int { return websocket.BinaryMessage }

func (MsgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (MsgpackCodec) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// CodecFor picks a codec by name; the empty name selects JSON
func CodecFor(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "msgpack":
		return MsgpackCodec{}, nil
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}

// Write encodes v and sends it as one frame
func Write(conn *websocket.Conn, c Codec, v any) error {
	data, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", c.Name(), err)
	}
	return conn.WriteMessage(c.MessageType(), data)
}

// Read receives one frame and decodes it with the codec matching its type
func Read(conn *websocket.Conn, v any) error {
	mt, data, err := conn.ReadMessage()
	if err != nil {
		return err
	}
	var c Codec = JSONCodec{}
	if mt == websocket.BinaryMessage {
		c = MsgpackCodec{}
	}
	if err := c.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s frame: %w", c.Name(), err)
	}
	return nil
}

package models

import (
	"encoding/json"
	"time"
)

// ActionLog records a single action taken while handling an input.
type ActionLog struct {
	Action    string    `json:"action"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// InputLog records an input and the actions it produced, in order.
type InputLog struct {
	Input     string      `json:"input"`
	Status    Status      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Actions   []ActionLog `json:"actions"`
}

// MarshalJSON encodes a nil Actions slice as an empty array.
func (l InputLog) MarshalJSON() ([]byte, error) {
	type plain InputLog
	if l.Actions == nil {
		l.Actions = []ActionLog{}
	}
	return json.Marshal(plain(l))
}

// LocalMessage is a line of output relayed from a locally launched client.
type LocalMessage struct {
	Message string `json:"message"`
}

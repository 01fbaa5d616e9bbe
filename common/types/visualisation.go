package types

import (
	"github.com/botarena/botarena/common/utils/vector"
)

// FrameMessage is the JSON snapshot of an arena after one step.
type FrameMessage struct {
	RunID   string         `json:"runId"`
	Tick    uint32         `json:"tick"`
	Objects []FrameObject  `json:"objects"`
	Teams   map[string]int `json:"teams"`
}

type FrameObject struct {
	Id          string          `json:"id"`
	Type        string          `json:"type"`
	Team        string          `json:"team,omitempty"`
	Position    vector.Vector2  `json:"position"`
	Orientation float64         `json:"orientation"`
	Health      float64         `json:"health,omitempty"`
	Ammo        int             `json:"ammo,omitempty"`
	Target      string          `json:"target,omitempty"`
	Firing      bool            `json:"firing,omitempty"`
	BeamEnd     *vector.Vector2 `json:"beamEnd,omitempty"`
}

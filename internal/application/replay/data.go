package replay

// Version is the current replay file format
const Version = "2.0"

// FrameInput records input state for a single presentation tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	JP bool `json:"jp,omitempty"` // JumpPressed
	B  bool `json:"b,omitempty"`  // SpawnBox
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	SessionID string       `json:"sessionId"`
	Seed      int64        `json:"seed"`
	World     string       `json:"world"`
	TPS       int          `json:"tps"` // presentation ticks per second while recording
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

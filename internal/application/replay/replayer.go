package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Left        bool
	Right       bool
	JumpPressed bool
	SpawnBox    bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, Version)
	}
	if _, err := uuid.Parse(data.SessionID); err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", data.SessionID, err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Left:        fi.L,
		Right:       fi.R,
		JumpPressed: fi.JP,
		SpawnBox:    fi.B,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewReplayData creates an empty recording header with a fresh session id
func NewReplayData(seed int64, world string, tps int) ReplayData {
	return ReplayData{
		Version:   Version,
		SessionID: uuid.NewString(),
		Seed:      seed,
		World:     world,
		TPS:       tps,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
	}
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int) ReplayData {
	data := NewReplayData(12345, "test", 60)
	for i := 0; i < frames; i++ {
		data.Frames = append(data.Frames, FrameInput{F: i})
	}
	return data
}

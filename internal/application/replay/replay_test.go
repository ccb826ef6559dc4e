package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReplay(t *testing.T, data ReplayData) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.json")
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestFrameInput_OmitsIdleKeys(t *testing.T) {
	raw, err := json.Marshal(FrameInput{F: 3, JP: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f": 3, "jp": true}`, string(raw))
}

func TestNewReplayData(t *testing.T) {
	a := NewReplayData(7, "default", 60)
	b := NewReplayData(7, "default", 60)

	assert.Equal(t, Version, a.Version)
	assert.Equal(t, int64(7), a.Seed)
	assert.Equal(t, "default", a.World)
	assert.Equal(t, 60, a.TPS)
	assert.Empty(t, a.Frames)

	_, err := uuid.Parse(a.SessionID)
	assert.NoError(t, err)
	assert.NotEqual(t, a.SessionID, b.SessionID, "every recording gets its own session")
}

func TestReplayer_GetInput(t *testing.T) {
	data := CreateTestReplayData(0)
	data.Frames = []FrameInput{
		{F: 0, L: true},
		{F: 1, R: true, JP: true},
		{F: 2, B: true},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.JumpPressed)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.SpawnBox)
	assert.Equal(t, 3, replayer.CurrentFrame())

	// End of replay
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5))

	for i := 0; i < 3; i++ {
		replayer.GetInput()
	}
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.Equal(t, int64(12345), replayer.Seed())
}

func TestLoadReplay(t *testing.T) {
	data := CreateTestReplayData(10)
	loaded, err := LoadReplay(writeReplay(t, data))
	require.NoError(t, err)

	assert.Equal(t, data.SessionID, loaded.SessionID)
	assert.Equal(t, data.World, loaded.World)
	assert.Len(t, loaded.Frames, 10)
}

func TestLoadReplay_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})

	t.Run("old version", func(t *testing.T) {
		data := CreateTestReplayData(1)
		data.Version = "1.0"
		_, err := LoadReplay(writeReplay(t, data))
		assert.ErrorContains(t, err, "unsupported replay version")
	})

	t.Run("bad session id", func(t *testing.T) {
		data := CreateTestReplayData(1)
		data.SessionID = "not-a-uuid"
		_, err := LoadReplay(writeReplay(t, data))
		assert.ErrorContains(t, err, "invalid session id")
	})
}

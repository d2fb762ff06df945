package replay

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"go-terra/internal/app"
	"go-terra/internal/component"
	"go-terra/internal/config"
	"go-terra/internal/defs"
	"go-terra/internal/input"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func liveRun(t *testing.T, catalog *defs.Catalog, frames int) (*app.Game, *Recording) {
	t.Helper()
	g, err := app.NewGame(app.Options{Seed: 99, Weapon: "starter_sword", Catalog: catalog})
	require.NoError(t, err)
	rec := ForGame(g, config.FixedDeltaTime)

	for i := 0; i < frames; i++ {
		in := input.Snapshot{Choice: 1}
		if g.Phase() == component.PhasePlaying {
			a := float64(i) / 45
			in = input.Snapshot{MoveX: math.Cos(a), MoveY: math.Sin(a), Attack: i%20 == 0}
			in = in.WithTarget(g.Player().Position().Add(g.Player().LastDirection))
		}
		rec.Record(in)
		g.Update(config.FixedDeltaTime, in)
	}
	return g, rec.Recording()
}

func TestReplayReproducesRun(t *testing.T) {
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)
	live, rec := liveRun(t, catalog, 60*20)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, rec))
	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.RunID, decoded.RunID)
	require.Len(t, decoded.Frames, len(rec.Frames))

	replayed, err := Play(decoded, catalog)
	require.NoError(t, err)

	assert.Equal(t, live.Frame(), replayed.Frame())
	assert.Equal(t, live.Phase(), replayed.Phase())
	assert.Equal(t, live.Player().Position(), replayed.Player().Position())
	assert.Equal(t, live.Player().Health, replayed.Player().Health)
	assert.Equal(t, live.PlayerSystem.Kills, replayed.PlayerSystem.Kills)
	assert.Equal(t, len(live.World.Enemies()), len(replayed.World.Enemies()))
}

func TestSaveLoadFile(t *testing.T) {
	r := NewRecorder(5, "pistol", "", config.FixedDeltaTime)
	r.Record(input.Snapshot{Choice: 1})
	r.Record(input.Snapshot{MoveX: 1, Attack: true, TargetX: 10, TargetY: -3})
	path := filepath.Join(t.TempDir(), "run.replay")

	require.NoError(t, Save(path, r.Recording()))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, r.Recording(), loaded)
	_, err = uuid.Parse(loaded.RunID)
	assert.NoError(t, err)
}

func TestDecodeRejectsBadRecordings(t *testing.T) {
	tests := []struct {
		name string
		rec  Recording
		want error
	}{
		{"future version", Recording{Version: 2, RunID: uuid.NewString(), DeltaTime: 0.1}, ErrUnsupportedVersion},
		{"bad run id", Recording{Version: FormatVersion, RunID: "nope", DeltaTime: 0.1}, ErrInvalidRecording},
		{"zero dt", Recording{Version: FormatVersion, RunID: uuid.NewString()}, ErrInvalidRecording},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := msgpack.Marshal(&tt.rec)
			require.NoError(t, err)
			_, err = Decode(bytes.NewReader(raw))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Decode(bytes.NewReader([]byte{0xc1}))
	assert.Error(t, err)
}

func TestPlayerStepsThroughFrames(t *testing.T) {
	r := NewRecorder(1, "pistol", "", config.FixedDeltaTime)
	r.Record(input.Snapshot{MoveX: 1})
	r.Record(input.Snapshot{MoveY: 1})
	p := NewPlayer(r.Recording())

	in, ok := p.Next()
	require.True(t, ok)
	assert.Equal(t, 1.0, in.MoveX)
	assert.Equal(t, 0.5, p.Progress())
	_, ok = p.Next()
	require.True(t, ok)
	_, ok = p.Next()
	assert.False(t, ok)
	assert.True(t, p.Done())
}

func TestPlayUnknownWeapon(t *testing.T) {
	catalog, err := defs.LoadDefault()
	require.NoError(t, err)
	rec := NewRecorder(1, "bazooka", "", config.FixedDeltaTime).Recording()
	_, err = Play(rec, catalog)
	assert.ErrorIs(t, err, defs.ErrUnknownWeapon)
}

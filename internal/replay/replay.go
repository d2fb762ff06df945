// internal/replay/replay.go
package replay

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"go-terra/internal/app"
	"go-terra/internal/defs"
	"go-terra/internal/input"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// FormatVersion — версия формата файла записи.
const FormatVersion = 1

var (
	ErrUnsupportedVersion = errors.New("unsupported replay version")
	ErrInvalidRecording   = errors.New("invalid replay")
)

// Recording — всё, что нужно, чтобы повторить забег: сид, оружие и ввод по кадрам.
type Recording struct {
	Version   int              `msgpack:"v"`
	RunID     string           `msgpack:"id"`
	Seed      int64            `msgpack:"seed"`
	Weapon    string           `msgpack:"weapon"`
	EnemyID   string           `msgpack:"enemy,omitempty"`
	DeltaTime float64          `msgpack:"dt"`
	Frames    []input.Snapshot `msgpack:"frames"`
}

func (r *Recording) validate() error {
	if r.Version != FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	if _, err := uuid.Parse(r.RunID); err != nil {
		return fmt.Errorf("%w: run id: %v", ErrInvalidRecording, err)
	}
	if r.DeltaTime <= 0 {
		return fmt.Errorf("%w: non-positive dt %v", ErrInvalidRecording, r.DeltaTime)
	}
	return nil
}

// Recorder накапливает снимки ввода текущего забега.
type Recorder struct {
	rec Recording
}

// NewRecorder начинает запись забега с новым идентификатором.
func NewRecorder(seed int64, weapon, enemyID string, deltaTime float64) *Recorder {
	return &Recorder{rec: Recording{
		Version:   FormatVersion,
		RunID:     uuid.NewString(),
		Seed:      seed,
		Weapon:    weapon,
		EnemyID:   enemyID,
		DeltaTime: deltaTime,
	}}
}

// ForGame начинает запись для уже созданного забега.
func ForGame(g *app.Game, deltaTime float64) *Recorder {
	return NewRecorder(g.Seed(), g.WeaponID(), g.EnemyID(), deltaTime)
}

func (r *Recorder) Record(in input.Snapshot) {
	r.rec.Frames = append(r.rec.Frames, in)
}

func (r *Recorder) Len() int {
	return len(r.rec.Frames)
}

// Recording возвращает накопленную запись. Кадры не копируются.
func (r *Recorder) Recording() *Recording {
	return &r.rec
}

// Encode пишет запись в w в формате msgpack.
func Encode(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode читает и проверяет запись.
func Decode(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := rec.validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Save записывает запись в файл.
func Save(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create replay file: %w", err)
	}
	if err := Encode(f, rec); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close replay file: %w", err)
	}
	log.Printf("Replay %s saved to %s (%d frames)", rec.RunID, path, len(rec.Frames))
	return nil
}

// Load читает запись из файла.
func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// NewGame создаёт забег с параметрами записи.
func NewGame(rec *Recording, catalog *defs.Catalog) (*app.Game, error) {
	g, err := app.NewGame(app.Options{
		Seed:    rec.Seed,
		Weapon:  rec.Weapon,
		EnemyID: rec.EnemyID,
		Catalog: catalog,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start replay %s: %w", rec.RunID, err)
	}
	return g, nil
}

// Play проигрывает запись целиком без рендера и возвращает итоговое состояние.
func Play(rec *Recording, catalog *defs.Catalog) (*app.Game, error) {
	g, err := NewGame(rec, catalog)
	if err != nil {
		return nil, err
	}
	for _, in := range rec.Frames {
		g.Update(rec.DeltaTime, in)
	}
	return g, nil
}

// Player выдаёт кадры записи по одному для проигрывания в окне.
type Player struct {
	rec  *Recording
	next int
}

func NewPlayer(rec *Recording) *Player {
	return &Player{rec: rec}
}

// Next возвращает следующий снимок; false, когда запись закончилась.
func (p *Player) Next() (input.Snapshot, bool) {
	if p.next >= len(p.rec.Frames) {
		return input.Snapshot{}, false
	}
	in := p.rec.Frames[p.next]
	p.next++
	return in, true
}

func (p *Player) Done() bool {
	return p.next >= len(p.rec.Frames)
}

// Progress — доля проигранных кадров.
func (p *Player) Progress() float64 {
	if len(p.rec.Frames) == 0 {
		return 1
	}
	return float64(p.next) / float64(len(p.rec.Frames))
}

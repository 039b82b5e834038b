package shooter_test

import (
	"math"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter/mocks"
)

func step(g *shooter.Game, actions ...core.Action) {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	g.Step(in)
}

func newSilentSpawnGame(snd shooter.Sounds) *shooter.Game {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.SpawnRate = math.MaxInt32
	g := shooter.NewWithConfig(cfg)
	g.SetSounds(snd)
	g.Reset(core.RuntimeConfig{Seed: 7})
	return g
}

func TestAudioCues(t *testing.T) {
	ctrl := gomock.NewController(t)
	snd := mocks.NewMockSounds(ctrl)

	gomock.InOrder(
		snd.EXPECT().StartMusic(),
		snd.EXPECT().Play(shooter.SoundShoot),
		snd.EXPECT().Play(shooter.SoundHit),
		snd.EXPECT().StopMusic(),
	)

	g := newSilentSpawnGame(snd)
	step(g, core.ActionConfirm)

	step(g, core.ActionShoot)
	step(g, core.ActionShoot) // still cooling down, no sound

	p := g.Player()
	shooter.PlaceEnemy(g, shooter.KindStandard, p.X, p.Y-5)
	step(g)

	step(g, core.ActionQuit)
}

func TestNilSoundsIsSilent(t *testing.T) {
	g := newSilentSpawnGame(nil)
	step(g, core.ActionConfirm)
	step(g, core.ActionShoot)

	if len(g.Bullets()) != 1 {
		t.Errorf("expected a bullet, got %d", len(g.Bullets()))
	}
}

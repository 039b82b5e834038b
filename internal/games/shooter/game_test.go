package shooter

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// quietConfig disables random spawns so tests control every enemy.
func quietConfig() config.ShooterConfig {
	cfg := config.DefaultShooterConfig()
	cfg.Enemies.SpawnRate = math.MaxInt32
	return cfg
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// newPlayingGame returns a game that already left the menu.
func newPlayingGame(t *testing.T, cfg config.ShooterConfig) *Game {
	t.Helper()
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{Seed: 42, ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.Mode() != ModeMenu {
		t.Fatalf("new game should start in the menu, got %v", g.Mode())
	}
	g.Step(press(core.ActionConfirm))
	if g.Mode() != ModePlaying {
		t.Fatalf("Start Game should enter play, got %v", g.Mode())
	}
	return g
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	rc := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}

	g1 := NewWithConfig(cfg)
	g1.Reset(rc)
	g2 := NewWithConfig(cfg)
	g2.Reset(rc)

	for i := 0; i < 1200; i++ {
		in := core.NewInputFrame()
		switch {
		case i == 0:
			in.Set(core.ActionConfirm)
		case i%7 == 0:
			in.Set(core.ActionShoot)
		}
		if (i/90)%2 == 0 {
			in.Hold(core.ActionLeft)
		} else {
			in.Hold(core.ActionRight)
		}

		g1.Step(in)
		g2.Step(in)

		if g1.Hash() != g2.Hash() {
			t.Fatalf("tick %d: hash mismatch\n%+v\n%+v", i, g1.Snapshot(), g2.Snapshot())
		}
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshot mismatch: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestBulletDamageIsReadAtImpact(t *testing.T) {
	g := newPlayingGame(t, quietConfig())

	g.Step(press(core.ActionShoot))
	if len(g.Bullets()) != 1 {
		t.Fatalf("expected one bullet in flight, got %d", len(g.Bullets()))
	}
	if g.Weapon().Damage != 2 {
		t.Fatalf("initial damage = %d, expected 2", g.Weapon().Damage)
	}

	// Upgrade while the bullet is already in flight.
	g.OpenShop()
	SetCoins(g, 50)
	if !g.Purchase(config.ItemPowerBullet) {
		t.Fatalf("power upgrade should succeed: %s", g.Feedback())
	}
	g.CloseShop()

	bx := g.Bullets()[0].X
	tank := PlaceEnemy(g, KindTank, bx-20, 100)
	if tank.HP != 10 {
		t.Fatalf("tank hp = %d, expected 10", tank.HP)
	}

	var hits []Event
	for i := 0; i < 100 && len(g.Bullets()) > 0; i++ {
		g.Step(core.NewInputFrame())
		for _, e := range g.Events() {
			if e.Kind == EventBulletHit {
				hits = append(hits, e)
			}
		}
	}

	if len(hits) != 1 {
		t.Fatalf("expected exactly one hit, got %d", len(hits))
	}
	if hits[0].Amount != 3 {
		t.Errorf("hit dealt %d damage, expected the upgraded 3", hits[0].Amount)
	}
	if len(g.Enemies()) != 1 || g.Enemies()[0].HP != 7 {
		t.Errorf("tank should survive with 7 hp, enemies = %+v", g.Enemies())
	}
}

func TestPurchaseRejectedWithoutCoins(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	g.OpenShop()
	SetCoins(g, 10)

	before := g.Player()
	if g.Purchase(config.ItemHealthUpgrade) {
		t.Fatal("purchase with 10 coins for a 25 coin item should fail")
	}
	if g.Coins() != 10 {
		t.Errorf("balance = %d, expected 10", g.Coins())
	}
	after := g.Player()
	if after.MaxHP != before.MaxHP || after.HP != before.HP {
		t.Errorf("effect applied on failed purchase: %+v", after)
	}
	if g.Feedback() != MsgNoCoins {
		t.Errorf("feedback = %q, expected %q", g.Feedback(), MsgNoCoins)
	}
	if countEvents(g.Events(), EventPurchaseRejected) != 1 {
		t.Errorf("expected a rejected purchase event, got %+v", g.Events())
	}
}

func TestPurchaseSpeedUpgrade(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	g.OpenShop()
	SetCoins(g, 30)

	if !g.Purchase(config.ItemSpeedUpgrade) {
		t.Fatalf("purchase should succeed: %s", g.Feedback())
	}
	if g.Coins() != 0 {
		t.Errorf("balance = %d, expected 0", g.Coins())
	}
	if g.Player().Speed != 6 {
		t.Errorf("speed = %d, expected 6", g.Player().Speed)
	}
	if g.Feedback() != MsgPurchaseOK {
		t.Errorf("feedback = %q, expected %q", g.Feedback(), MsgPurchaseOK)
	}
}

func TestPurchaseEffects(t *testing.T) {
	tests := []struct {
		item  string
		check func(t *testing.T, g *Game)
	}{
		{config.ItemHealthUpgrade, func(t *testing.T, g *Game) {
			if p := g.Player(); p.MaxHP != 120 || p.HP != 120 {
				t.Errorf("hp = %d/%d, expected 120/120", p.HP, p.MaxHP)
			}
		}},
		{config.ItemPowerBullet, func(t *testing.T, g *Game) {
			if g.Weapon().Damage != 3 {
				t.Errorf("damage = %d, expected 3", g.Weapon().Damage)
			}
		}},
		{config.ItemRapidFire, func(t *testing.T, g *Game) {
			if g.Player().ShootDelay != 10 {
				t.Errorf("shoot delay = %d, expected 10", g.Player().ShootDelay)
			}
		}},
		{config.ItemSpeedUpgrade, func(t *testing.T, g *Game) {
			if g.Player().Speed != 6 {
				t.Errorf("speed = %d, expected 6", g.Player().Speed)
			}
		}},
	}

	for _, tc := range tests {
		t.Run(tc.item, func(t *testing.T) {
			g := newPlayingGame(t, quietConfig())
			g.OpenShop()
			SetCoins(g, 100)

			it, ok := g.shop.Item(tc.item)
			if !ok {
				t.Fatalf("item %q missing", tc.item)
			}
			if !g.Purchase(tc.item) {
				t.Fatalf("purchase failed: %s", g.Feedback())
			}
			if g.Coins() != 100-it.Cost {
				t.Errorf("balance = %d, expected %d", g.Coins(), 100-it.Cost)
			}
			tc.check(t, g)
		})
	}
}

func TestRapidFireHasNoFloor(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	g.OpenShop()
	SetCoins(g, 75*4)

	for i := 0; i < 4; i++ {
		if !g.Purchase(config.ItemRapidFire) {
			t.Fatalf("purchase %d failed", i)
		}
	}
	p := g.Player()
	if p.ShootDelay != -5 {
		t.Errorf("shoot delay = %d, expected -5", p.ShootDelay)
	}
	if !p.CanShoot(g.Tick()) {
		t.Error("a negative delay should never block shooting")
	}
}

func TestPurchaseOnlyWhileShopOpen(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	SetCoins(g, 100)

	if g.Purchase(config.ItemSpeedUpgrade) {
		t.Error("purchase outside the shop should be refused")
	}
	if g.Coins() != 100 {
		t.Errorf("balance changed to %d", g.Coins())
	}
}

func TestShopPurchaseErrors(t *testing.T) {
	shop := NewShop(config.DefaultShooterConfig().Shop)
	l := &Loadout{
		Player: NewPlayer(config.DefaultShooterConfig().Player, config.DefaultShooterConfig().World),
		Weapon: &Weapon{Damage: 2},
		Coins:  10,
	}

	err := shop.Purchase(config.ItemHealthUpgrade, l)
	if !errors.Is(err, ErrInsufficientCoins) {
		t.Errorf("expected ErrInsufficientCoins, got %v", err)
	}
	err = shop.Purchase("laser_cannon", l)
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}
	if l.Coins != 10 {
		t.Errorf("balance = %d after failed purchases, expected 10", l.Coins)
	}
}

func TestShopMenuFlow(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	SetCoins(g, 30)

	g.Step(press(core.ActionShop))
	if g.Mode() != ModeShop {
		t.Fatalf("shop key should open the shop, got %v", g.Mode())
	}

	// Cursor: health, power, rapid, speed.
	for i := 0; i < 3; i++ {
		g.Step(press(core.ActionDown))
	}
	g.Step(press(core.ActionConfirm))
	if g.Player().Speed != 6 || g.Coins() != 0 {
		t.Errorf("confirm on speed upgrade: speed %d coins %d", g.Player().Speed, g.Coins())
	}

	g.Step(press(core.ActionBack))
	if g.Mode() != ModePlaying {
		t.Errorf("back should close the shop, got %v", g.Mode())
	}

	// The last entry exits the game.
	g.Step(press(core.ActionShop))
	g.Step(press(core.ActionUp))
	g.Step(press(core.ActionConfirm))
	if !g.State().Exit {
		t.Error("Exit Game entry should request exit")
	}
}

func TestShopIsModal(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	PlaceEnemy(g, KindStandard, 100, 100)
	PlaceBullet(g, 700, 300)

	g.Step(press(core.ActionShop))
	tick := g.Tick()
	for i := 0; i < 30; i++ {
		g.Step(hold(core.ActionLeft))
	}

	if g.Enemies()[0].Y != 100 || g.Bullets()[0].Y != 300 {
		t.Errorf("entities moved while the shop was open")
	}
	if g.Tick() != tick {
		t.Errorf("tick advanced from %d to %d in the shop", tick, g.Tick())
	}
	if !g.State().Paused {
		t.Error("state should report paused in the shop")
	}
}

// placeKill sets up a one-hit standard enemy with a bullet that meets it this tick.
func placeKill(g *Game) {
	e := PlaceEnemy(g, KindStandard, 100, 200)
	e.HP = 1
	PlaceBullet(g, 110, 215)
}

func TestBossSpawnsOncePerTenKills(t *testing.T) {
	g := newPlayingGame(t, quietConfig())

	bosses := 0
	for i := 0; i < 10; i++ {
		placeKill(g)
		g.Step(core.NewInputFrame())
		if countEvents(g.Events(), EventEnemyDestroyed) != 1 {
			t.Fatalf("kill %d: expected one destroyed enemy, events %+v", i, g.Events())
		}
		for _, e := range g.Events() {
			if e.Kind == EventEnemySpawned && e.Enemy == KindBoss {
				bosses++
			}
		}
	}
	if g.KillsSinceBoss() != 10 {
		t.Fatalf("kills since boss = %d, expected 10", g.KillsSinceBoss())
	}

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
		for _, e := range g.Events() {
			if e.Kind == EventEnemySpawned && e.Enemy == KindBoss {
				bosses++
			}
		}
	}

	if bosses != 1 {
		t.Errorf("expected exactly one boss, got %d", bosses)
	}
	if g.KillsSinceBoss() != 0 {
		t.Errorf("counter should reset after the boss, got %d", g.KillsSinceBoss())
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}
}

func TestBossArrivesTickAfterThresholdKill(t *testing.T) {
	cfg := quietConfig()
	cfg.Enemies.BossEvery = 1
	g := newPlayingGame(t, cfg)

	placeKill(g)
	g.Step(core.NewInputFrame())
	if countEvents(g.Events(), EventEnemyDestroyed) != 1 {
		t.Fatalf("expected the kill to land, events %+v", g.Events())
	}
	if hasBossSpawn(g.Events()) {
		t.Fatal("boss must not spawn on the tick of the threshold kill")
	}

	g.Step(core.NewInputFrame())
	if !hasBossSpawn(g.Events()) {
		t.Errorf("boss should spawn on the following tick, events %+v", g.Events())
	}
}

func hasBossSpawn(events []Event) bool {
	for _, e := range events {
		if e.Kind == EventEnemySpawned && e.Enemy == KindBoss {
			return true
		}
	}
	return false
}

func TestBossKillDoesNotFeedCounter(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	boss := PlaceEnemy(g, KindBoss, 100, 100)
	boss.HP = 1
	PlaceBullet(g, 150, 190)

	g.Step(core.NewInputFrame())
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	if g.KillsSinceBoss() != 0 {
		t.Errorf("boss kill counted toward the next boss: %d", g.KillsSinceBoss())
	}
	if len(g.Drops()) != 1 {
		t.Errorf("boss should drop a coin, drops = %d", len(g.Drops()))
	}
}

func TestBulletConsumedByFirstEnemy(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	PlaceEnemy(g, KindTank, 100, 200)
	PlaceEnemy(g, KindTank, 100, 200)
	PlaceBullet(g, 110, 215)

	g.Step(core.NewInputFrame())

	if countEvents(g.Events(), EventBulletHit) != 1 {
		t.Fatalf("one bullet should hit once, events %+v", g.Events())
	}
	total := 0
	for _, e := range g.Enemies() {
		total += e.MaxHP - e.HP
	}
	if total != 2 {
		t.Errorf("total damage dealt = %d, expected 2", total)
	}
	if len(g.Bullets()) != 0 {
		t.Errorf("bullet should be consumed")
	}
}

func TestRemovalAtWorldEdges(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	PlaceBullet(g, 10, 5)
	PlaceEnemy(g, KindSpeedy, 10, 598)
	PlaceCoin(g, 10, 599)

	g.Step(core.NewInputFrame())

	for _, kind := range []EventKind{EventBulletExpired, EventEnemyEscaped, EventCoinLost} {
		if countEvents(g.Events(), kind) != 1 {
			t.Errorf("expected one %v event, got %+v", kind, g.Events())
		}
	}
	if len(g.Bullets())+len(g.Enemies())+len(g.Drops()) != 0 {
		t.Error("all entities should be gone")
	}
}

func TestCoinCollected(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	p := g.Player()
	PlaceCoin(g, p.X+10, p.Y)

	g.Step(core.NewInputFrame())

	if g.Coins() != 1 {
		t.Errorf("balance = %d, expected 1", g.Coins())
	}
	if countEvents(g.Events(), EventCoinCollected) != 1 {
		t.Errorf("expected a collected event, got %+v", g.Events())
	}
}

func TestShootCooldown(t *testing.T) {
	g := newPlayingGame(t, quietConfig())

	fired := 0
	for i := 0; i < 30; i++ {
		g.Step(press(core.ActionShoot))
		fired += countEvents(g.Events(), EventBulletFired)
	}
	// Delay 15: ticks 1 and 16.
	if fired != 2 {
		t.Errorf("fired %d bullets in 30 ticks, expected 2", fired)
	}
}

func TestPlayerMovementClamp(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	for i := 0; i < 200; i++ {
		g.Step(hold(core.ActionLeft))
	}
	if g.Player().X != 0 {
		t.Errorf("clamped X = %d, expected 0", g.Player().X)
	}
	for i := 0; i < 200; i++ {
		g.Step(hold(core.ActionRight))
	}
	if want := 800 - 50; g.Player().X != want {
		t.Errorf("clamped X = %d, expected %d", g.Player().X, want)
	}

	cfg := quietConfig()
	cfg.Player.ClampToWorld = false
	g = newPlayingGame(t, cfg)
	for i := 0; i < 100; i++ {
		g.Step(hold(core.ActionLeft))
	}
	if g.Player().X >= 0 {
		t.Errorf("unclamped ship should drift off-screen, X = %d", g.Player().X)
	}
}

func TestGameOverFiresOnce(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	g.loadout.Player.HP = 5
	p := g.Player()
	PlaceEnemy(g, KindStandard, p.X, p.Y-10)

	gameOvers := 0
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
		gameOvers += countEvents(g.Events(), EventGameOver)
		if hp := g.Player().HP; hp != 0 && i > 0 {
			t.Fatalf("tick %d: hp = %d, expected to stay at 0", i, hp)
		}
	}

	if gameOvers != 1 {
		t.Errorf("game over fired %d times, expected 1", gameOvers)
	}
	if !g.State().GameOver {
		t.Error("state should report game over")
	}
}

func TestRestartKeepsUpgrades(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	g.OpenShop()
	SetCoins(g, 80)
	g.Purchase(config.ItemSpeedUpgrade)
	g.Purchase(config.ItemPowerBullet)
	g.CloseShop()

	placeKill(g)
	g.Step(core.NewInputFrame())
	PlaceEnemy(g, KindTank, 10, 10)
	PlaceBullet(g, 700, 300)

	g.loadout.Player.TakeDamage(1000)
	g.Step(core.NewInputFrame())
	if g.Mode() != ModeGameOver {
		t.Fatalf("expected game over, got %v", g.Mode())
	}

	g.Step(press(core.ActionRestart))
	if g.Mode() != ModePlaying {
		t.Fatalf("restart should resume play, got %v", g.Mode())
	}

	p := g.Player()
	if p.Speed != 6 {
		t.Errorf("speed = %d, expected upgrade to survive", p.Speed)
	}
	if g.Weapon().Damage != 3 {
		t.Errorf("damage = %d, expected upgrade to survive", g.Weapon().Damage)
	}
	if p.HP != p.MaxHP {
		t.Errorf("hp = %d, expected full %d", p.HP, p.MaxHP)
	}
	if g.Score() != 0 || g.Coins() != 0 || g.KillsSinceBoss() != 0 {
		t.Errorf("score %d coins %d kills %d, expected zeros", g.Score(), g.Coins(), g.KillsSinceBoss())
	}
	if len(g.Bullets())+len(g.Enemies())+len(g.Drops()) != 0 {
		t.Error("collections should be empty after restart")
	}
	if g.RunTicks() != 0 || g.Tick() == 0 {
		t.Errorf("run ticks %d (total %d), expected a fresh run clock", g.RunTicks(), g.Tick())
	}
}

func TestMenuQuit(t *testing.T) {
	g := NewWithConfig(quietConfig())
	g.Reset(core.DefaultConfig())

	g.Step(press(core.ActionDown))
	g.Step(press(core.ActionConfirm))

	if g.Mode() != ModeExit || !g.State().Exit {
		t.Errorf("Quit should exit, mode %v", g.Mode())
	}
}

func TestQuitFromAnyMode(t *testing.T) {
	g := newPlayingGame(t, quietConfig())
	g.Step(press(core.ActionQuit))
	if !g.State().Exit {
		t.Error("quit while playing should exit")
	}
	if countEvents(g.Events(), EventExit) != 1 {
		t.Errorf("expected an exit event, got %+v", g.Events())
	}
}

func TestRegistryFactoryUsesCLISettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("enemies:\n  spawn_rate: 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})

	cfg := g.Config()
	if cfg.Enemies.SpawnRate != 40 {
		t.Errorf("spawn rate = %d, want 40 from the custom file", cfg.Enemies.SpawnRate)
	}
	if cfg.Player.HP != 75 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset not applied: hp %d, progression %v", cfg.Player.HP, cfg.Difficulty.Enabled)
	}
	if g.Player().HP != 75 {
		t.Errorf("player HP = %d, want 75", g.Player().HP)
	}
}

func TestUnknownPresetFallsBackToConfig(t *testing.T) {
	SetDifficultyPreset("nightmare")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	if g.Config().Player.HP != config.DefaultShooterConfig().Player.HP {
		t.Errorf("unknown preset changed HP to %d", g.Config().Player.HP)
	}
}

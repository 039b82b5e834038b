// Package shooter implements a vertical space shooter.
// The player steers a ship along the bottom of the field, shoots descending
// enemies, picks up the coins they drop and spends them on upgrades in a shop.
// Every tenth regular kill summons a boss.
//
// The simulation runs in a fixed 800x600 world space; Render projects it onto
// whatever terminal size the platform provides.
package shooter

import (
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "shooter"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// Game implements the shooter session and its mode state machine.
type Game struct {
	pinned *config.ShooterConfig // nil loads from configPath on every Reset
	cfg    config.ShooterConfig

	variants   Variants
	shop       *Shop
	difficulty *config.DifficultyManager
	sounds     Sounds
	rng        *rand.Rand

	mode       Mode
	menuCursor int
	shopCursor int
	feedback   string

	loadout        Loadout
	bullets        []Bullet
	enemies        []Enemy
	drops          []Coin
	score          int
	killsSinceBoss int
	tick           int
	runStart       int // tick at which the current run began

	events []Event
}

// New creates a game that loads its configuration on Reset using the
// path and preset set via SetConfigPath and SetDifficultyPreset.
func New() *Game {
	return &Game{sounds: silent{}}
}

// SetSounds attaches the audio collaborator. nil silences the game.
func (g *Game) SetSounds(s Sounds) {
	if s == nil {
		s = silent{}
	}
	g.sounds = s
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Shooter"
}

// loadConfig resolves the configuration for a new session.
func (g *Game) loadConfig() config.ShooterConfig {
	if g.pinned != nil {
		return *g.pinned
	}
	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		cfg = config.DefaultShooterConfig()
	}
	config.ApplyShooterPreset(&cfg, difficultyPreset)
	return cfg
}

// Reset starts a brand new session at the main menu. Upgrades are discarded;
// use the game-over restart to keep them.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg := g.loadConfig()
	g.cfg = cfg
	g.variants = VariantsFromConfig(cfg.Enemies)
	g.shop = NewShop(cfg.Shop)
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	seed := uint64(rc.Seed)
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	g.loadout = Loadout{
		Player: NewPlayer(cfg.Player, cfg.World),
		Weapon: &Weapon{Damage: cfg.Bullet.Damage},
	}
	g.clearField()
	g.tick = 0
	g.runStart = 0
	g.mode = ModeMenu
	g.menuCursor = 0
	g.shopCursor = 0
	g.feedback = ""
	g.events = nil
}

// clearField empties the entity collections and per-run counters.
func (g *Game) clearField() {
	g.bullets = nil
	g.enemies = nil
	g.drops = nil
	g.score = 0
	g.loadout.Coins = 0
	g.killsSinceBoss = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionQuit) && g.mode != ModeExit {
		g.exit()
		return core.StepResult{State: g.State()}
	}

	switch g.mode {
	case ModeMenu:
		g.stepMenu(in)
	case ModePlaying:
		g.stepPlaying(in)
	case ModeShop:
		g.stepShop(in)
	case ModeGameOver:
		g.stepGameOver(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.menuCursor = wrap(g.menuCursor-1, len(menuOptions))
	case in.Has(core.ActionDown):
		g.menuCursor = wrap(g.menuCursor+1, len(menuOptions))
	case in.Has(core.ActionConfirm):
		switch menuOptions[g.menuCursor] {
		case MenuStart:
			g.mode = ModePlaying
			g.runStart = g.tick
			g.sounds.StartMusic()
			g.emit(Event{Kind: EventGameStarted})
		case MenuQuit:
			g.exit()
		}
	}
}

// stepPlaying runs one simulation tick. The order of the phases is fixed.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.tick++
	p := g.loadout.Player

	if in.Has(core.ActionShoot) {
		g.shoot()
	}
	if in.Has(core.ActionShop) {
		g.OpenShop()
		return
	}

	p.Update(in)
	if !p.Alive() {
		g.mode = ModeGameOver
		g.emit(Event{Kind: EventGameOver, Amount: g.score})
		return
	}

	g.updateBullets()
	g.spawnEnemies()
	g.updateEnemies()
	g.resolveBulletHits()
	g.resolveRams()
	g.updateDrops()
	g.compact()
}

func (g *Game) stepShop(in core.InputFrame) {
	entries := len(g.shop.Items()) + 1
	switch {
	case in.Has(core.ActionShop), in.Has(core.ActionBack):
		g.CloseShop()
	case in.Has(core.ActionUp):
		g.shopCursor = wrap(g.shopCursor-1, entries)
	case in.Has(core.ActionDown):
		g.shopCursor = wrap(g.shopCursor+1, entries)
	case in.Has(core.ActionConfirm):
		if g.shopCursor == len(g.shop.Items()) {
			g.exit()
			return
		}
		g.Purchase(g.shop.Items()[g.shopCursor].ID)
	}
}

func (g *Game) stepGameOver(in core.InputFrame) {
	if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
		g.restart()
	}
}

// restart begins a new run after game over. Purchased upgrades are kept.
func (g *Game) restart() {
	g.loadout.Player.Reset()
	g.clearField()
	g.feedback = ""
	g.mode = ModePlaying
	g.runStart = g.tick
	g.emit(Event{Kind: EventRestart})
}

func (g *Game) exit() {
	g.sounds.StopMusic()
	g.mode = ModeExit
	g.emit(Event{Kind: EventExit})
}

// OpenShop pauses play and shows the shop. It only works while playing.
func (g *Game) OpenShop() {
	if g.mode != ModePlaying {
		return
	}
	g.mode = ModeShop
	g.shopCursor = 0
	g.feedback = ""
	g.emit(Event{Kind: EventShopOpened})
}

// CloseShop resumes play.
func (g *Game) CloseShop() {
	if g.mode != ModeShop {
		return
	}
	g.mode = ModePlaying
	g.emit(Event{Kind: EventShopClosed})
}

// Purchase buys an upgrade while the shop is open and reports success.
// The outcome is also left in Feedback for the shop screen.
func (g *Game) Purchase(id string) bool {
	if g.mode != ModeShop {
		return false
	}
	if err := g.shop.Purchase(id, &g.loadout); err != nil {
		if errors.Is(err, ErrInsufficientCoins) {
			g.feedback = MsgNoCoins
		} else {
			g.feedback = err.Error()
		}
		g.emit(Event{Kind: EventPurchaseRejected, Item: id})
		return false
	}
	it, _ := g.shop.Item(id)
	g.feedback = MsgPurchaseOK
	g.emit(Event{Kind: EventPurchase, Item: id, Amount: it.Cost})
	return true
}

func (g *Game) shoot() {
	p := g.loadout.Player
	if !p.CanShoot(g.tick) {
		return
	}
	x, y := p.Muzzle()
	g.bullets = append(g.bullets, Bullet{
		X:     x,
		Y:     y,
		W:     g.cfg.Bullet.Width,
		H:     g.cfg.Bullet.Height,
		Speed: g.cfg.Bullet.Speed,
	})
	p.markShot(g.tick)
	g.sounds.Play(SoundShoot)
	g.emit(Event{Kind: EventBulletFired})
}

func (g *Game) updateBullets() {
	for i := range g.bullets {
		b := &g.bullets[i]
		b.Update()
		if b.OffScreen() {
			b.dead = true
			g.emit(Event{Kind: EventBulletExpired})
		}
	}
}

func (g *Game) updateEnemies() {
	for i := range g.enemies {
		e := &g.enemies[i]
		e.Update()
		if e.Y > g.cfg.World.Height {
			e.dead = true
			g.emit(Event{Kind: EventEnemyEscaped, Enemy: e.Kind})
		}
	}
}

// compact drops every entity marked dead during this tick.
func (g *Game) compact() {
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool { return b.dead })
	g.enemies = slices.DeleteFunc(g.enemies, func(e Enemy) bool { return e.dead })
	g.drops = slices.DeleteFunc(g.drops, func(c Coin) bool { return c.dead })
}

func (g *Game) emit(e Event) {
	e.Tick = g.tick
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.mode == ModeGameOver,
		Paused:   g.mode == ModeShop || g.mode == ModeMenu,
		Exit:     g.mode == ModeExit,
	}
}

// Mode returns the current screen.
func (g *Game) Mode() Mode { return g.mode }

// Events returns what happened during the last Step, in order.
// The slice is replaced on the next Step.
func (g *Game) Events() []Event { return g.events }

// Player returns a copy of the ship.
func (g *Game) Player() Player { return *g.loadout.Player }

// Weapon returns the current weapon configuration.
func (g *Game) Weapon() Weapon { return *g.loadout.Weapon }

// Coins returns the coin balance.
func (g *Game) Coins() int { return g.loadout.Coins }

// Score returns the number of enemies destroyed this run.
func (g *Game) Score() int { return g.score }

// KillsSinceBoss returns regular kills counted toward the next boss.
func (g *Game) KillsSinceBoss() int { return g.killsSinceBoss }

// Tick returns the number of simulated ticks since Reset.
func (g *Game) Tick() int { return g.tick }

// RunTicks returns the ticks simulated in the current run only.
func (g *Game) RunTicks() int { return g.tick - g.runStart }

// Bullets returns the live bullets. Callers must not modify the slice.
func (g *Game) Bullets() []Bullet { return g.bullets }

// Enemies returns the live enemies. Callers must not modify the slice.
func (g *Game) Enemies() []Enemy { return g.enemies }

// Drops returns the falling coins. Callers must not modify the slice.
func (g *Game) Drops() []Coin { return g.drops }

// ShopItems returns the shop catalogue.
func (g *Game) ShopItems() []Item { return g.shop.Items() }

// Feedback returns the last shop message.
func (g *Game) Feedback() string { return g.feedback }

// Config returns the configuration of the current session.
func (g *Game) Config() config.ShooterConfig { return g.cfg }

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

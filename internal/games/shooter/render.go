package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Minimum terminal size for a playable view.
const (
	MinScreenW = 40
	MinScreenH = 14
)

const hudHeight = 2 // status row + separator

// Visual characters for rendering
const (
	ShipChar   = '█'
	NoseChar   = '▲'
	BulletChar = '│'
	EnemyChar  = '▓'
	BossChar   = '█'
	CoinChar   = '●'
	HPFull     = '█'
	HPEmpty    = '░'
)

// projection maps world rectangles onto a block of screen cells.
type projection struct {
	field          core.Rect
	worldW, worldH int
}

// rect scales a world rect to cells, keeps at least one cell per axis and
// clips the result to the field.
func (p projection) rect(r core.Rect) core.Rect {
	x0 := core.FloorDiv(r.X*p.field.W, p.worldW)
	x1 := max(core.CeilDiv(r.Right()*p.field.W, p.worldW), x0+1)
	y0 := core.FloorDiv(r.Y*p.field.H, p.worldH)
	y1 := max(core.CeilDiv(r.Bottom()*p.field.H, p.worldH), y0+1)

	x0, x1 = max(x0, 0), min(x1, p.field.W)
	y0, y1 = max(y0, 0), min(y1, p.field.H)
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(p.field.X+x0, p.field.Y+y0, x1-x0, y1-y0)
}

// Render draws the current mode to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		renderTooSmall(dst)
		return
	}

	switch g.mode {
	case ModeMenu, ModeExit:
		g.renderMenu(dst)
	case ModeShop:
		g.renderShop(dst)
	case ModePlaying:
		g.renderField(dst)
	case ModeGameOver:
		g.renderField(dst)
		g.renderGameOver(dst)
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorGray)
}

// renderField draws the HUD and every entity.
func (g *Game) renderField(dst *core.Screen) {
	g.renderHUD(dst)

	proj := projection{
		field:  core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight),
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
	}

	for i := range g.drops {
		dst.FillRect(proj.rect(g.drops[i].Rect()), CoinChar, core.ColorYellow)
	}
	for i := range g.enemies {
		e := &g.enemies[i]
		ch := EnemyChar
		if e.IsBoss() {
			ch = BossChar
		}
		dst.FillRect(proj.rect(e.Rect()), ch, e.Color)
	}
	for i := range g.bullets {
		dst.FillRect(proj.rect(g.bullets[i].Rect()), BulletChar, core.ColorYellow)
	}

	ship := proj.rect(g.loadout.Player.Rect())
	if ship.W > 0 {
		dst.FillRect(ship, ShipChar, core.ColorGreen)
		cx, _ := ship.Center()
		dst.SetColored(cx, ship.Y, NoseChar, core.ColorGreen)
	}
}

// renderHUD draws the health bar, score and balance.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.loadout.Player

	const barW = 10
	filled := 0
	if p.MaxHP > 0 {
		filled = core.Clamp(core.CeilDiv(p.HP*barW, p.MaxHP), 0, barW)
	}
	dst.DrawHLine(1, 0, barW, HPEmpty, core.ColorRed)
	dst.DrawHLine(1, 0, filled, HPFull, core.ColorGreen)
	dst.DrawTextColored(barW+2, 0, fmt.Sprintf("HP: %d", p.HP), core.ColorWhite)

	right := fmt.Sprintf("Score: %d  Coins: %d", g.score, g.loadout.Coins)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorWhite)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

func (g *Game) renderMenu(dst *core.Screen) {
	top := dst.Height()/2 - 4
	dst.DrawTextCentered(top, "S P A C E   S H O O T E R", core.ColorCyan)

	for i, opt := range menuOptions {
		label, color := "  "+opt+"  ", core.ColorWhite
		if i == g.menuCursor {
			label, color = "> "+opt+" <", core.ColorYellow
		}
		dst.DrawTextCentered(top+3+i*2, label, color)
	}

	dst.DrawTextCentered(dst.Height()-2, "↑/↓ select · enter confirm · q quit", core.ColorGray)
}

func (g *Game) renderShop(dst *core.Screen) {
	dst.DrawTextCentered(1, fmt.Sprintf("Total Coins: %d", g.loadout.Coins), core.ColorYellow)

	items := g.shop.Items()
	y := 3
	for i, it := range items {
		g.drawShopEntry(dst, y, it.Label(), i == g.shopCursor, core.ColorWhite)
		y += 2
	}
	g.drawShopEntry(dst, y+1, ShopExitLabel, g.shopCursor == len(items), core.ColorRed)

	p := g.loadout.Player
	stats := fmt.Sprintf("HP %d/%d · Damage %d · Speed %d · Delay %d",
		p.HP, p.MaxHP, g.loadout.Weapon.Damage, p.Speed, p.ShootDelay)
	dst.DrawTextCentered(y+3, stats, core.ColorGray)

	if g.feedback != "" {
		dst.DrawTextCentered(dst.Height()-3, g.feedback, core.ColorRed)
	}
	dst.DrawTextCentered(dst.Height()-1, "↑/↓ select · enter buy · esc back", core.ColorGray)
}

func (g *Game) drawShopEntry(dst *core.Screen, y int, label string, selected bool, c core.Color) {
	x := 4
	if selected {
		dst.DrawTextColored(x-2, y, ">", core.ColorYellow)
		c = core.ColorYellow
	}
	dst.DrawTextColored(x, y, label, c)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	title := fmt.Sprintf("Game Over! Your score is %d", g.score)
	hint := "Press R to restart · Q to quit"

	boxW := max(len(title), len([]rune(hint))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, hint, core.ColorGray)
}

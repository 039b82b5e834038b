package shooter

// Mode is the top-level screen the session is in.
//
//	Menu -> Playing <-> Shop
//	Playing -> GameOver -> Playing
//	Menu, Shop -> Exit
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeShop
	ModeGameOver
	ModeExit
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeShop:
		return "shop"
	case ModeGameOver:
		return "game_over"
	case ModeExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Menu entries.
const (
	MenuStart = "Start Game"
	MenuQuit  = "Quit"
)

var menuOptions = [...]string{MenuStart, MenuQuit}

// ShopExitLabel is the extra shop entry that quits the game.
const ShopExitLabel = "Exit Game"

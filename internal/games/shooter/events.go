package shooter

import "fmt"

// EventKind classifies what happened during a tick.
type EventKind int

const (
	EventBulletFired EventKind = iota
	EventBulletExpired
	EventBulletHit
	EventEnemySpawned
	EventEnemyEscaped
	EventEnemyDestroyed
	EventEnemyRammed
	EventCoinDropped
	EventCoinCollected
	EventCoinLost
	EventPurchase
	EventPurchaseRejected
	EventShopOpened
	EventShopClosed
	EventGameStarted
	EventGameOver
	EventRestart
	EventExit
)

var eventNames = [...]string{
	EventBulletFired:      "bullet_fired",
	EventBulletExpired:    "bullet_expired",
	EventBulletHit:        "bullet_hit",
	EventEnemySpawned:     "enemy_spawned",
	EventEnemyEscaped:     "enemy_escaped",
	EventEnemyDestroyed:   "enemy_destroyed",
	EventEnemyRammed:      "enemy_rammed",
	EventCoinDropped:      "coin_dropped",
	EventCoinCollected:    "coin_collected",
	EventCoinLost:         "coin_lost",
	EventPurchase:         "purchase",
	EventPurchaseRejected: "purchase_rejected",
	EventShopOpened:       "shop_opened",
	EventShopClosed:       "shop_closed",
	EventGameStarted:      "game_started",
	EventGameOver:         "game_over",
	EventRestart:          "restart",
	EventExit:             "exit",
}

func (k EventKind) String() string {
	if k >= 0 && int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event records one state change. Only the fields relevant to Kind are set.
type Event struct {
	Tick   int
	Kind   EventKind
	Enemy  EnemyKind // enemy events
	Item   string    // purchase events
	Amount int       // damage dealt, coins gained or spent, final score
}

// Removal reports whether the event removed an entity from a collection.
func (e Event) Removal() bool {
	switch e.Kind {
	case EventBulletExpired, EventBulletHit,
		EventEnemyEscaped, EventEnemyDestroyed, EventEnemyRammed,
		EventCoinCollected, EventCoinLost:
		return true
	}
	return false
}

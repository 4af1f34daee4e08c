package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Item is something the shop sells.
type Item int

const (
	ItemBullets Item = iota
	ItemRemoveEnemies
	ItemScoreBoost
)

func (i Item) String() string {
	switch i {
	case ItemBullets:
		return "bullets"
	case ItemRemoveEnemies:
		return "remove-enemies"
	case ItemScoreBoost:
		return "score-boost"
	default:
		return "unknown"
	}
}

// ShopEntry describes an item for display in a menu.
type ShopEntry struct {
	Item        Item
	Key         string
	Description string
	Cost        int
}

// ShopItems lists what the shop offers with the configured amounts.
func (g *Game) ShopItems() []ShopEntry {
	cost := g.cfg.Shop.ItemCost
	return []ShopEntry{
		{ItemBullets, "1", fmt.Sprintf("+%d bullets", g.cfg.Shop.BulletsBonus), cost},
		{ItemRemoveEnemies, "2", fmt.Sprintf("remove %d enemies", g.cfg.Shop.RemoveEnemies), cost},
		{ItemScoreBoost, "3", fmt.Sprintf("%.0f%% chance to double score, else lose it", g.cfg.Shop.ScoreBoostChance*100), cost},
	}
}

// Buy purchases item if the score covers its cost. Returns false when the
// purchase was ignored.
func (g *Game) Buy(item Item) bool {
	if !g.acceptsShopping() || g.score < g.cfg.Shop.ItemCost {
		return false
	}

	switch item {
	case ItemBullets:
		g.score -= g.cfg.Shop.ItemCost
		g.bulletsLimit += g.cfg.Shop.BulletsBonus
	case ItemRemoveEnemies:
		g.score -= g.cfg.Shop.ItemCost
		n := min(g.cfg.Shop.RemoveEnemies, len(g.enemies))
		g.enemies = g.enemies[:len(g.enemies)-n]
	case ItemScoreBoost:
		g.score -= g.cfg.Shop.ItemCost
		if g.rng.Float64() < g.cfg.Shop.ScoreBoostChance {
			g.score *= 2
		} else {
			g.score = 0
		}
	default:
		return false
	}

	g.emit(core.EventPurchase, g.score, item.String())
	return true
}

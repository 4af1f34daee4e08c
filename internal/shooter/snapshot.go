package shooter

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick         uint64
	Player       core.Rect
	Enemies      []core.Rect
	Bullets      []core.Rect
	Coins        []core.Rect
	Score        int
	Level        int
	Ammo         int // Remaining shots for the level
	OnScreen     int // Live bullets
	Phase        Phase
	Lost         bool
	LevelCleared bool
}

// Snapshot returns the current world as rectangles and counters.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Player:       g.playerRect(),
		Enemies:      make([]core.Rect, len(g.enemies)),
		Bullets:      make([]core.Rect, len(g.bullets)),
		Coins:        make([]core.Rect, len(g.coins)),
		Score:        g.score,
		Level:        g.level,
		Ammo:         g.bulletsLimit,
		OnScreen:     g.bulletsOnScreen,
		Phase:        g.phase,
		Lost:         g.Lost(),
		LevelCleared: g.LevelCleared(),
	}
	for i, e := range g.enemies {
		snap.Enemies[i] = g.enemyRect(e)
	}
	for i, b := range g.bullets {
		snap.Bullets[i] = g.bulletRect(b)
	}
	for i, c := range g.coins {
		snap.Coins[i] = g.coinRect(c)
	}
	return snap
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	putRect := func(r core.Rect) {
		put(math.Float64bits(r.X))
		put(math.Float64bits(r.Y))
	}

	put(snap.Tick)
	put(uint64(snap.Score)) //#nosec G115 -- hash computation
	put(uint64(snap.Level)) //#nosec G115 -- hash computation
	put(uint64(snap.Ammo))  //#nosec G115 -- hash computation
	put(uint64(snap.Phase)) //#nosec G115 -- hash computation
	putRect(snap.Player)
	for _, group := range [][]core.Rect{snap.Enemies, snap.Bullets, snap.Coins} {
		put(uint64(len(group)))
		for _, r := range group {
			putRect(r)
		}
	}
	return h.Sum64()
}

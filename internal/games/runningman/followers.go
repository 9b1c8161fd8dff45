package runningman

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/treasure-arcade/internal/config"
	"github.com/vovakirdan/treasure-arcade/internal/core"
)

// Kind is what collecting a follower does to the crowd.
type Kind int

const (
	KindNormal   Kind = iota // +1
	KindPlus                 // +value
	KindMultiply             // ×value
	KindEnemy                // -value
)

func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindPlus:
		return "plus"
	case KindMultiply:
		return "multiply"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Follower is a pickup standing on the bridge. Once collected it trails
// the player.
type Follower struct {
	Pos       core.Vec2 // X across the bridge, Y along it
	Kind      Kind
	Value     int
	Collected bool
}

// Label is the text shown above the follower.
func (f Follower) Label() string {
	switch f.Kind {
	case KindPlus:
		return fmt.Sprintf("+%d", f.Value)
	case KindMultiply:
		return fmt.Sprintf("x%d", f.Value)
	case KindEnemy:
		return fmt.Sprintf("-%d", f.Value)
	default:
		return ""
	}
}

// Color returns the follower's body color.
func (f Follower) Color() core.Color {
	switch f.Kind {
	case KindPlus:
		return core.ColorBrightBlue
	case KindMultiply:
		return core.ColorOrange
	case KindEnemy:
		return core.ColorBrightRed
	default:
		return core.ColorBrightGreen
	}
}

// Apply returns the crowd size and score after collecting f.
// The crowd never drops below one.
func (f Follower) Apply(followers, score int) (int, int) {
	switch f.Kind {
	case KindNormal, KindPlus:
		followers += f.Value
		score += f.Value
	case KindMultiply:
		followers *= f.Value
		score *= f.Value
	case KindEnemy:
		followers -= f.Value
		score -= f.Value
	}
	return max(followers, 1), score
}

// FollowerField places, collects and moves the followers of one run.
type FollowerField struct {
	followers  []Follower
	rng        *rand.Rand
	cfg        *config.RunningManFollowers
	difficulty *config.DifficultyManager
}

// NewFollowerField creates a field with its own RNG. Every Spawn draws
// from the same stream, so a seed fixes the layout of every run in order.
func NewFollowerField(seed int64, cfg *config.RunningManFollowers, diff *config.DifficultyManager) *FollowerField {
	return &FollowerField{
		followers:  make([]Follower, 0, cfg.Count),
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
		difficulty: diff,
	}
}

// Spawn discards the current followers and places a fresh set.
func (ff *FollowerField) Spawn() {
	ff.followers = ff.followers[:0]
	for i := 0; i < ff.cfg.Count; i++ {
		x := ff.cfg.MinX + ff.rng.Float64()*(ff.cfg.MaxX-ff.cfg.MinX)
		d := ff.cfg.MinDistance + ff.rng.Float64()*(ff.cfg.MaxDistance-ff.cfg.MinDistance)
		kind := ff.rollKind(d)

		ff.followers = append(ff.followers, Follower{
			Pos:   core.Vec2{X: x, Y: d},
			Kind:  kind,
			Value: ff.rollValue(kind),
		})
	}
}

// rollKind picks a kind. The enemy share grows with distance; the other
// kinds split the rest in proportion to their base chances.
func (ff *FollowerField) rollKind(distance float64) Kind {
	c := ff.cfg.Chances
	enemy := ff.difficulty.Chance(c.Enemy, distance)

	friendly := c.Normal + c.Plus + c.Multiply
	if friendly <= 0 {
		return KindEnemy
	}
	scale := (1 - enemy) / friendly

	r := ff.rng.Float64()
	switch {
	case r < c.Normal*scale:
		return KindNormal
	case r < (c.Normal+c.Plus)*scale:
		return KindPlus
	case r < friendly*scale:
		return KindMultiply
	default:
		return KindEnemy
	}
}

func (ff *FollowerField) rollValue(k Kind) int {
	switch k {
	case KindPlus:
		return 2 + ff.rng.Intn(3) // 2-4
	case KindMultiply:
		return 2 + ff.rng.Intn(2) // 2-3
	case KindEnemy:
		return 1 + ff.rng.Intn(3) // 1-3
	default:
		return 1
	}
}

// Collect marks every follower within the collect radius of pos and
// returns them in placement order.
func (ff *FollowerField) Collect(pos core.Vec2) []Follower {
	var got []Follower
	for i := range ff.followers {
		f := &ff.followers[i]
		if f.Collected || f.Pos.Dist(pos) >= ff.cfg.CollectRadius {
			continue
		}
		f.Collected = true
		got = append(got, *f)
	}
	return got
}

// Update moves collected followers toward the leader until they are
// within the trail gap.
func (ff *FollowerField) Update(leader core.Vec2, dt float64) {
	step := ff.cfg.TrailSpeed * dt
	for i := range ff.followers {
		f := &ff.followers[i]
		if !f.Collected {
			continue
		}
		dir := leader.Sub(f.Pos)
		d := dir.Len()
		if d <= ff.cfg.TrailGap {
			continue
		}
		f.Pos = f.Pos.Add(dir.Scale(step / d))
	}
}

// Followers returns the current followers.
func (ff *FollowerField) Followers() []Follower {
	return ff.followers
}

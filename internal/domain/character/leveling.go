package character

import "math"

const (
	levelUpMaxHP = 5
	levelUpMaxMP = 2
)

// ExperienceForLevel is the cumulative experience needed to leave level n
func ExperienceForLevel(n int) int {
	if n < 1 {
		n = 1
	}
	return int(math.Floor(100 * math.Pow(1.5, float64(n-1))))
}

// ExperienceForNextLevel is the experience threshold for the current level
func (p *Player) ExperienceForNextLevel() int {
	return ExperienceForLevel(p.Level)
}

// GainExperience adds experience and reports whether the player leveled up.
// At most one level is gained per call even when the gain crosses several
// thresholds; the next call catches up.
func (p *Player) GainExperience(n int) bool {
	if n > 0 {
		p.Experience += n
	}

	if p.Experience < p.ExperienceForNextLevel() {
		return false
	}

	p.levelUp()
	return true
}

func (p *Player) levelUp() {
	p.Level++
	p.MaxHP += levelUpMaxHP
	p.HP = p.MaxHP
	p.MaxMP += levelUpMaxMP
	p.MP = p.MaxMP
}

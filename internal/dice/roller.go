package dice

// Roller is the single source of randomness for the game. Every random draw
// (die faces, room weighting, monster picks, attack values, rewards, shuffles)
// goes through a Roller so tests can script it.
type Roller interface {
	// Roll returns a uniformly distributed value in [1, sides]
	Roll(sides int) int
}

// Between returns a uniform value in [minValue, maxValue] inclusive
func Between(r Roller, minValue, maxValue int) int {
	if maxValue <= minValue {
		return minValue
	}
	return minValue + r.Roll(maxValue-minValue+1) - 1
}

// Index returns a uniform index in [0, n)
func Index(r Roller, n int) int {
	if n <= 1 {
		return 0
	}
	return r.Roll(n) - 1
}

// Percent returns a uniform value in [0, 100)
func Percent(r Roller) int {
	return r.Roll(100) - 1
}

// Shuffle permutes n elements in place with Fisher-Yates, calling swap for each exchange
func Shuffle(r Roller, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := Index(r, i+1)
		swap(i, j)
	}
}

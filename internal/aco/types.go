package aco

// Config is the Ant System's tunable parameters. The zero value is
// invalid; use DefaultConfig.
type Config struct {
	NumAnts       int
	NumIterations int
	Alpha         float64 // pheromone importance
	Beta          float64 // heuristic importance
	Evaporation   float64 // rho
	Q             float64 // deposit constant
	NumBest       int     // elite ants
}

// DefaultConfig matches the reference Ant System's parameters.
func DefaultConfig() Config {
	return Config{
		NumAnts:       20,
		NumIterations: 50,
		Alpha:         1.0,
		Beta:          2.0,
		Evaporation:   0.5,
		Q:             100.0,
		NumBest:       5,
	}
}

// Result is one colony run: the best tour found (a permutation of
// city indices 0..n-1) and its length, plus the best-length history
// per iteration for observability.
type Result struct {
	BestTour    []int
	BestLength  float64
	History     []float64
}

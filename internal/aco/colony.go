package aco

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvlath/matrix"
)

// Point is a 2-D coordinate the colony measures Euclidean distance
// between (lat/lon treated as a flat plane, which is adequate for the
// short intra-day distances this package reorders).
type Point struct {
	X, Y float64
}

// Colony runs the Ant System over a fixed set of cities.
type Colony struct {
	cfg       Config
	distances matrix.Matrix
	heuristic matrix.Matrix
	n         int
}

// New builds a Colony over cities using Euclidean distance.
func New(cities []Point, cfg Config) (*Colony, error) {
	n := len(cities)
	dist, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	heur, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			d := euclidean(cities[i], cities[j])
			_ = dist.Set(i, j, d)
			h := 0.0
			if d > 0 {
				h = 1.0 / d
			}
			_ = heur.Set(i, j, h)
		}
	}
	return &Colony{cfg: cfg, distances: dist, heuristic: heur, n: n}, nil
}

func euclidean(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Run executes NumIterations rounds of construction + elitist
// pheromone update and returns the best tour found.
func (c *Colony) Run(rng *rand.Rand) Result {
	if c.n <= 2 {
		tour := make([]int, c.n)
		for i := range tour {
			tour[i] = i
		}
		return Result{BestTour: tour, BestLength: c.tourLength(tour)}
	}

	pheromone := make([][]float64, c.n)
	for i := range pheromone {
		pheromone[i] = make([]float64, c.n)
		for j := range pheromone[i] {
			pheromone[i][j] = 1.0
		}
	}

	var best []int
	bestLen := math.Inf(1)
	var history []float64

	type solution struct {
		tour   []int
		length float64
	}

	for iter := 0; iter < c.cfg.NumIterations; iter++ {
		solutions := make([]solution, c.cfg.NumAnts)
		for a := 0; a < c.cfg.NumAnts; a++ {
			start := rng.Intn(c.n)
			tour := c.constructTour(pheromone, start, rng)
			solutions[a] = solution{tour: tour, length: c.tourLength(tour)}
			if solutions[a].length < bestLen {
				bestLen = solutions[a].length
				best = append([]int{}, tour...)
			}
		}

		for i := range pheromone {
			for j := range pheromone[i] {
				pheromone[i][j] *= 1 - c.cfg.Evaporation
			}
		}

		sort.Slice(solutions, func(i, j int) bool { return solutions[i].length < solutions[j].length })
		numBest := c.cfg.NumBest
		if numBest > len(solutions) {
			numBest = len(solutions)
		}
		for _, sol := range solutions[:numBest] {
			deposit := c.cfg.Q / sol.length
			depositTour(pheromone, sol.tour, deposit)
		}
		if best != nil {
			depositTour(pheromone, best, 2*c.cfg.Q/bestLen)
		}

		history = append(history, bestLen)
	}

	return Result{BestTour: best, BestLength: bestLen, History: history}
}

func depositTour(pheromone [][]float64, tour []int, deposit float64) {
	for i := 0; i < len(tour); i++ {
		j := (i + 1) % len(tour)
		a, b := tour[i], tour[j]
		pheromone[a][b] += deposit
		pheromone[b][a] += deposit
	}
}

func (c *Colony) constructTour(pheromone [][]float64, start int, rng *rand.Rand) []int {
	visited := make([]bool, c.n)
	tour := make([]int, 0, c.n)
	tour = append(tour, start)
	visited[start] = true
	current := start

	for len(tour) < c.n {
		probs := make([]float64, c.n)
		total := 0.0
		for j := 0; j < c.n; j++ {
			if visited[j] {
				continue
			}
			h, _ := c.heuristic.At(current, j)
			p := math.Pow(pheromone[current][j], c.cfg.Alpha) * math.Pow(h, c.cfg.Beta)
			probs[j] = p
			total += p
		}
		next := -1
		if total <= 0 {
			for j := 0; j < c.n; j++ {
				if !visited[j] {
					next = j
					break
				}
			}
		} else {
			r := rng.Float64() * total
			cum := 0.0
			for j := 0; j < c.n; j++ {
				if visited[j] {
					continue
				}
				cum += probs[j]
				if r <= cum {
					next = j
					break
				}
			}
			if next == -1 {
				for j := 0; j < c.n; j++ {
					if !visited[j] {
						next = j
					}
				}
			}
		}
		tour = append(tour, next)
		visited[next] = true
		current = next
	}
	return tour
}

func (c *Colony) tourLength(tour []int) float64 {
	total := 0.0
	for i := 0; i < len(tour); i++ {
		j := (i + 1) % len(tour)
		d, _ := c.distances.At(tour[i], tour[j])
		total += d
	}
	return total
}

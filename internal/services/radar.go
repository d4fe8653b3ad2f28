package services

import (
	"math/rand"
	"sync"
)

// RadarPoint is one competency axis with its score, consumed directly by the
// caller's radar chart.
type RadarPoint struct {
	Skill string `json:"skill"`
	Score int    `json:"score"`
}

var radarAxes = []string{"Coding", "Communication", "Problem Solving", "Tools", "Teamwork"}

type RadarGenerator interface {
	Generate(skills []string, recommendedJob string) []RadarPoint
}

type radarGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRadarGenerator takes an explicit random source so tests can assert exact
// output for a fixed seed. Production supplies a time-seeded source.
func NewRadarGenerator(rng *rand.Rand) RadarGenerator {
	return &radarGenerator{rng: rng}
}

func (r *radarGenerator) Generate(skills []string, _ string) []RadarPoint {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([]RadarPoint, 0, len(radarAxes))
	for _, axis := range radarAxes {
		score := 50

		if axis == "Coding" && len(skills) > 5 {
			score += 30
		}
		if axis == "Tools" && len(skills) > 8 {
			score += 30
		}

		score += r.rng.Intn(21) // jitter in [0,20]

		if score > 100 {
			score = 100
		}

		points = append(points, RadarPoint{Skill: axis, Score: score})
	}

	return points
}

// ZeroRadarData is the error-shaped radar payload: every axis present with a
// zero score, so the response contract holds even on failure.
func ZeroRadarData() []RadarPoint {
	points := make([]RadarPoint, 0, len(radarAxes))
	for _, axis := range radarAxes {
		points = append(points, RadarPoint{Skill: axis, Score: 0})
	}
	return points
}

package wheel

import (
	"crypto/rand"
	"math/big"

	"eaglehub/internal/domain"
)

// Segment is a single slot on the reward wheel.
type Segment struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
	// Card is the tier flag this outcome awards; empty for no-effect slots.
	Card string `json:"card,omitempty"`
}

// Segments returns the fixed 8-slot wheel. "bad" appears twice, so it
// lands with 2/8 weight while every other outcome has 1/8.
func Segments() []Segment {
	return []Segment{
		{ID: 1, Label: "premium", Color: "#f1c40f", Card: domain.CardPremium},
		{ID: 2, Label: "platinum", Color: "#bdc3c7", Card: domain.CardPlatinum},
		{ID: 3, Label: "gold", Color: "#e67e22", Card: domain.CardGold},
		{ID: 4, Label: "3more", Color: "#2ecc71"},
		{ID: 5, Label: "try", Color: "#3498db"},
		{ID: 6, Label: "bad", Color: "#4a4a4a"},
		{ID: 7, Label: "mystery", Color: "#9b59b6"},
		{ID: 8, Label: "bad", Color: "#4a4a4a"},
	}
}

// Result is one finished spin.
type Result struct {
	Segment Segment `json:"segment"`
	// Angle is the final rotation for the frontend animation: several full
	// turns plus the landing slot's offset.
	Angle float64 `json:"angle"`
}

// Spin picks a slot uniformly at random.
func Spin() Result {
	segments := Segments()
	idx := randomBelow(int64(len(segments)))
	seg := segments[idx]

	segmentAngle := 360.0 / float64(len(segments))
	baseAngle := float64(seg.ID-1) * segmentAngle
	offset := float64(randomBelow(int64(segmentAngle*100))) / 100.0

	const rotations = 5
	return Result{
		Segment: seg,
		Angle:   float64(rotations*360) + baseAngle + offset,
	}
}

func randomBelow(max int64) int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0
	}
	return n.Int64()
}

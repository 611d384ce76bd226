package aura

import (
	"errors"
	"fmt"
)

// ErrConfiguration indicates table/schema drift: a lookup that must be
// complete at build time is missing an entry. It is a programming error,
// not bad input, and callers should surface it rather than recover.
var ErrConfiguration = errors.New("aura: configuration error")

// RecommendationSet is the ordered category and product suggestions for a
// mood. The table below is static and immutable at runtime.
type RecommendationSet struct {
	Categories []string `json:"categories"`
	Products   []string `json:"products"`
}

var recommendationTable = map[Label]RecommendationSet{
	LabelBalanced: {
		Categories: []string{"Home Essentials", "Healthy Foods", "Education"},
		Products:   []string{"Organic Quinoa", "Bluetooth Speaker", "Bamboo Toothbrush", "Reusable Water Bottle"},
	},
	LabelStressed: {
		Categories: []string{"Wellness", "Relaxation", "Comfort"},
		Products:   []string{"Aromatherapy oils", "Herbal tea", "Stress ball", "Meditation cushion"},
	},
	LabelEnergetic: {
		Categories: []string{"Fitness", "Sports", "Adventure"},
		Products:   []string{"Protein powder", "Workout gear", "Energy drinks", "Sports equipment"},
	},
	LabelCozy: {
		Categories: []string{"Comfort", "Indoor", "Warmth"},
		Products:   []string{"Blankets", "Hot beverages", "Candles", "Indoor plants"},
	},
	LabelVibrant: {
		Categories: []string{"Outdoor", "Active", "Social"},
		Products:   []string{"Outdoor gear", "Party supplies", "Bright clothing", "Social games"},
	},
	LabelRestful: {
		Categories: []string{"Sleep", "Relaxation", "Night"},
		Products:   []string{"Sleep masks", "Pillows", "Night tea", "Meditation apps"},
	},
	LabelCalm: {
		Categories: []string{"Books", "Art", "Music"},
		Products:   []string{"Books", "Art supplies", "Classical music", "Puzzles"},
	},
}

// RecommendationsFor returns the suggestion set for a mood label. A label
// without a table entry means the enum and the table have drifted apart;
// that returns ErrConfiguration instead of a silently empty set.
func RecommendationsFor(l Label) (RecommendationSet, error) {
	set, ok := recommendationTable[l]
	if !ok {
		return RecommendationSet{}, fmt.Errorf("%w: no recommendations for label %q", ErrConfiguration, l)
	}
	return set, nil
}

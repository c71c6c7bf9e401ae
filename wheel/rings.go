package wheel

import (
	"strings"

	"github.com/tidewave-io/yearwheel/lib/color"
)

const (
	// MaxRings caps how many concentric category rings a wheel draws.
	MaxRings = 5

	outerRingFrac = 0.82
	ringStep      = 0.07
)

// Ring is a derived concentric track for one normalized category.
type Ring struct {
	Key    string
	Name   string
	Index  int
	Radius float64
	Color  string
}

// RingSet resolves activities to rings. Unknown and empty categories resolve
// to the first ring so every activity is always placeable.
type RingSet struct {
	rings []*Ring
	byKey map[string]*Ring
}

// normalizeCategory dedupes case- and whitespace-insensitively.
func normalizeCategory(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// BuildRings derives the ring model from the supplied category list followed by
// the categories encountered on activities, order-preserving, capped at
// MaxRings. Radius decreases from 0.82×outer to 0.54×outer.
func BuildRings(outer float64, activities []*Activity, categories []Category) *RingSet {
	rs := &RingSet{byKey: make(map[string]*Ring)}

	add := func(name, colorOverride string) {
		key := normalizeCategory(name)
		if key == "" {
			return
		}
		if _, ok := rs.byKey[key]; ok {
			return
		}
		if len(rs.rings) >= MaxRings {
			return
		}
		i := len(rs.rings)
		c := color.RingPalette[i%len(color.RingPalette)]
		if colorOverride != "" {
			if hex, err := color.Normalize(colorOverride); err == nil {
				c = hex
			}
		}
		r := &Ring{
			Key:    key,
			Name:   strings.TrimSpace(name),
			Index:  i,
			Radius: (outerRingFrac - ringStep*float64(i)) * outer,
			Color:  c,
		}
		rs.rings = append(rs.rings, r)
		rs.byKey[key] = r
	}

	for _, c := range categories {
		add(c.Name, c.Color)
	}
	for _, a := range activities {
		add(a.Category, "")
	}
	if len(rs.rings) == 0 && len(activities) > 0 {
		add("general", "")
	}
	return rs
}

func (rs *RingSet) Rings() []*Ring {
	return rs.rings
}

func (rs *RingSet) Len() int {
	return len(rs.rings)
}

// RingFor never fails: activities with unrecognized or missing categories land
// on the default (first) ring.
func (rs *RingSet) RingFor(a *Activity) *Ring {
	if r, ok := rs.byKey[normalizeCategory(a.Category)]; ok {
		return r
	}
	if len(rs.rings) == 0 {
		return nil
	}
	return rs.rings[0]
}

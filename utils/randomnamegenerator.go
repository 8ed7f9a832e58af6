package utils

import (
	"math/rand"
	"time"

	"github.com/Pallinder/go-randomdata"
)

// RandomNameGenerator hands out unique placeholder names for armatures
// that were described without one.
type RandomNameGenerator map[string]struct{}

func (rng *RandomNameGenerator) RandomName() string {
	if *rng == nil {
		*rng = make(map[string]struct{})
		randomdata.CustomRand(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	for {
		name := randomdata.SillyName()
		if _, exists := (*rng)[name]; !exists {
			(*rng)[name] = struct{}{}
			return name
		}
	}
}

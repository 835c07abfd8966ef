package strategy

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"hog/game"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

var registry = map[string]game.Strategy{
	"always_roll_5":  AlwaysRoll(5),
	"always_roll_8":  AlwaysRoll(8),
	"bacon_strategy": BaconDefault,
	"swap_strategy":  SwapDefault,
	"final_strategy": Final,
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (game.Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
	return s, nil
}

// Names lists the registered strategies in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

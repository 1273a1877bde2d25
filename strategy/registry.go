package strategy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"hog/game"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

const alwaysRollPrefix = "always_roll("

var named = map[string]game.Strategy{
	"hefty_hogs": HeftyHogs(DefaultThreshold, DefaultNumRolls),
	"hog_pile":   HogPile(DefaultThreshold, DefaultNumRolls),
}

// Parse returns the strategy registered under name. Constant strategies are
// named always_roll(n) for n in [0, 10].
func Parse(name string) (game.Strategy, error) {
	name = strings.TrimSpace(name)
	if s, ok := named[name]; ok {
		return s, nil
	}
	if arg, ok := strings.CutPrefix(name, alwaysRollPrefix); ok {
		if arg, ok = strings.CutSuffix(arg, ")"); ok {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrUnknownStrategy, name, err)
			}
			if n < 0 || n > game.MaxRolls {
				return nil, fmt.Errorf("%w: %q rolls %d dice, want [0, %d]", ErrUnknownStrategy, name, n, game.MaxRolls)
			}
			return AlwaysRoll(n), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Names lists the strategy names Parse accepts.
func Names() []string {
	return []string{"always_roll(n)", "hefty_hogs", "hog_pile"}
}

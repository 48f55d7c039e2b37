package tables

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-encounters/internal/errors"
	"github.com/KirkDiggler/rpg-encounters/internal/pkg/random"
)

var (
	// "2d6", "1d3"
	diceCountRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)
	// "2-5"
	rangeCountRegex = regexp.MustCompile(`^(\d+)-(\d+)$`)
	// "3"
	fixedCountRegex = regexp.MustCompile(`^\d+$`)
)

// Count is how many monsters one instruction builds. It is either a fixed
// number, a sum of dice ("2d4") or a uniform inclusive range ("2-5").
type Count struct {
	Dice  int
	Sides int
	Min   int
	Max   int
}

// Fixed returns a count that always yields n
func Fixed(n int) Count {
	return Count{Min: n, Max: n}
}

// Between returns a count drawn uniformly from [lo, hi]
func Between(lo, hi int) Count {
	return Count{Min: lo, Max: hi}
}

// Dice returns a count that sums n rolls of a die with the given sides
func Dice(n, sides int) Count {
	return Count{Dice: n, Sides: sides, Min: n, Max: n * sides}
}

// ParseCount parses "3", "1d6" or "2-5"
func ParseCount(notation string) (Count, error) {
	s := strings.ToLower(strings.TrimSpace(notation))

	if fixedCountRegex.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Count{}, errors.InvalidArgumentf("invalid count: %s", notation)
		}
		return Fixed(n), nil
	}

	if matches := diceCountRegex.FindStringSubmatch(s); len(matches) == 3 {
		n, errN := strconv.Atoi(matches[1])
		sides, errS := strconv.Atoi(matches[2])
		if errN != nil || errS != nil || n <= 0 || sides <= 0 {
			return Count{}, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
		}
		return Dice(n, sides), nil
	}

	if matches := rangeCountRegex.FindStringSubmatch(s); len(matches) == 3 {
		lo, errLo := strconv.Atoi(matches[1])
		hi, errHi := strconv.Atoi(matches[2])
		if errLo != nil || errHi != nil || lo > hi {
			return Count{}, errors.InvalidArgumentf("invalid count range: %s", notation)
		}
		return Between(lo, hi), nil
	}

	return Count{}, errors.InvalidArgumentf("invalid count: %s (expected N, XdY or A-B)", notation)
}

// Roll draws a value. Every call draws fresh; two instructions never share a draw.
func (c Count) Roll(p random.Provider) int {
	if c.Dice > 0 {
		total := 0
		for i := 0; i < c.Dice; i++ {
			total += p.NextInt(1, c.Sides)
		}
		return total
	}
	if c.Min == c.Max {
		return c.Min
	}
	return p.NextInt(c.Min, c.Max)
}

// String renders the count in the notation ParseCount accepts
func (c Count) String() string {
	switch {
	case c.Dice > 0:
		return fmt.Sprintf("%dd%d", c.Dice, c.Sides)
	case c.Min == c.Max:
		return strconv.Itoa(c.Min)
	default:
		return fmt.Sprintf("%d-%d", c.Min, c.Max)
	}
}

// UnmarshalYAML accepts a bare integer or a notation string
func (c *Count) UnmarshalYAML(node *yaml.Node) error {
	var notation string
	if err := node.Decode(&notation); err != nil {
		return err
	}
	parsed, err := ParseCount(notation)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalYAML writes the notation form
func (c Count) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

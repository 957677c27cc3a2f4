package blockstate

import (
	"fmt"
	"slices"
	"strconv"
)

// Property is a finite block state axis.
type Property struct {
	Name   string
	Values []string
	format func(v any) (string, bool)
}

// BoolProperty declares a true/false axis.
func BoolProperty(name string) Property {
	return Property{
		Name:   name,
		Values: []string{"false", "true"},
		format: func(v any) (string, bool) {
			b, ok := v.(bool)
			if !ok {
				return "", false
			}
			return strconv.FormatBool(b), true
		},
	}
}

// IntProperty declares an integer axis covering min..max inclusive.
func IntProperty(name string, min, max int) Property {
	if min > max {
		panic(fmt.Sprintf("blockstate: property %s has empty range %d..%d", name, min, max))
	}
	values := make([]string, 0, max-min+1)
	for i := min; i <= max; i++ {
		values = append(values, strconv.Itoa(i))
	}
	return Property{
		Name:   name,
		Values: values,
		format: func(v any) (string, bool) {
			n, ok := v.(int)
			if !ok || n < min || n > max {
				return "", false
			}
			return strconv.Itoa(n), true
		},
	}
}

// Format renders v as one of the property's values.
func (p Property) Format(v any) (string, error) {
	if p.format != nil {
		if s, ok := p.format(v); ok {
			return s, nil
		}
		return "", fmt.Errorf("value %v is not valid for property %s", v, p.Name)
	}
	s := fmt.Sprint(v)
	if !slices.Contains(p.Values, s) {
		return "", fmt.Errorf("value %v is not valid for property %s", v, p.Name)
	}
	return s, nil
}

// Standard block state properties.
var (
	Candles = IntProperty("candles", 1, 4)
	Lit     = BoolProperty("lit")
	North   = BoolProperty("north")
	East    = BoolProperty("east")
	South   = BoolProperty("south")
	West    = BoolProperty("west")
)

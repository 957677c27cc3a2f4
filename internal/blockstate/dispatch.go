package blockstate

import (
	"errors"
	"fmt"
	"strings"
)

// IncompleteDispatchError lists the combinations a dispatch table never
// selected.
type IncompleteDispatchError struct {
	Axes    []string
	Missing []string
}

func (e *IncompleteDispatchError) Error() string {
	return fmt.Sprintf("dispatch over [%s] is missing %d combination(s): %s",
		strings.Join(e.Axes, ","), len(e.Missing), strings.Join(e.Missing, "; "))
}

// Dispatch maps every combination of its axes to a variant. Selections are
// recorded in a builder style and validated by Build.
type Dispatch struct {
	axes     []Property
	selected map[string]Variant
	errs     []error
}

// NewDispatch declares a table over the given axes, in order.
func NewDispatch(axes ...Property) *Dispatch {
	if len(axes) == 0 {
		panic("blockstate: dispatch needs at least one axis")
	}
	return &Dispatch{
		axes:     axes,
		selected: make(map[string]Variant),
	}
}

// Select binds one combination of axis values, given in axis order, to a
// variant.
func (d *Dispatch) Select(variant Variant, values ...any) *Dispatch {
	if len(values) != len(d.axes) {
		d.errs = append(d.errs, fmt.Errorf("selection %v has %d value(s), dispatch has %d axes", values, len(values), len(d.axes)))
		return d
	}

	formatted := make([]string, len(values))
	for i, v := range values {
		s, err := d.axes[i].Format(v)
		if err != nil {
			d.errs = append(d.errs, err)
			return d
		}
		formatted[i] = s
	}

	key := d.key(formatted)
	if _, exists := d.selected[key]; exists {
		d.errs = append(d.errs, fmt.Errorf("combination %s selected twice", key))
		return d
	}
	d.selected[key] = variant
	return d
}

// Build validates the table and returns the variants keyed by their state
// string, e.g. `candles=2,lit=true`.
func (d *Dispatch) Build() (map[string]Variant, error) {
	if len(d.errs) > 0 {
		return nil, errors.Join(d.errs...)
	}

	var missing []string
	for _, combo := range d.combinations() {
		key := d.key(combo)
		if _, ok := d.selected[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		names := make([]string, len(d.axes))
		for i, axis := range d.axes {
			names[i] = axis.Name
		}
		return nil, &IncompleteDispatchError{Axes: names, Missing: missing}
	}

	out := make(map[string]Variant, len(d.selected))
	for key, variant := range d.selected {
		out[key] = variant
	}
	return out, nil
}

func (d *Dispatch) key(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = d.axes[i].Name + "=" + v
	}
	return strings.Join(parts, ",")
}

// combinations enumerates the cartesian product of the axis domains.
func (d *Dispatch) combinations() [][]string {
	combos := [][]string{{}}
	for _, axis := range d.axes {
		next := make([][]string, 0, len(combos)*len(axis.Values))
		for _, prefix := range combos {
			for _, v := range axis.Values {
				combo := make([]string, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, v))
			}
		}
		combos = next
	}
	return combos
}

// BooleanDispatch is the common one-axis table choosing between two models.
func BooleanDispatch(prop Property, whenTrue, whenFalse Variant) *Dispatch {
	return NewDispatch(prop).
		Select(whenTrue, true).
		Select(whenFalse, false)
}

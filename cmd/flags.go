package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gomech/internal/units"
)

// quantityFlag parses a flag value such as "1000 lbf". Bare numbers take
// the fallback unit so that "--pitch-dia 300" still reads as millimetres
// where a command documents it. Explicit units, dimensionless ones such as
// "%" included, are kept as given.
func quantityFlag(name, value, fallback string) (units.Quantity, error) {
	q, err := catalog.ParseQuantity(value)
	if err != nil {
		return units.Quantity{}, fmt.Errorf("--%s: %w", name, err)
	}
	if q.Unit().Symbol == units.One.Symbol && fallback != "" {
		return catalog.Quantity(q.Magnitude(), fallback)
	}
	return q, nil
}

// display converts q to the unit expression u for printing, falling back
// to q's own unit when u is empty.
func display(q units.Quantity, u string, prec int) string {
	if u == "" {
		return q.Format(prec)
	}
	unit, err := catalog.Parse(u)
	if err != nil {
		return q.Format(prec)
	}
	c, err := q.To(unit)
	if err != nil {
		return q.Format(prec)
	}
	return c.Format(prec)
}

package units

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

var exprReplacer = strings.NewReplacer(
	"**", "^",
	"·", "*",
	"⋅", "*",
	"²", "^2",
	"³", "^3",
	"⁴", "^4",
)

// Parse resolves a unit expression such as "lbf/in^2", "kg/m^3", "N*m" or
// "in^(1/2)". Products and quotients associate left to right; parentheses
// group. Single symbols and aliases resolve directly.
func (c *Catalog) Parse(expr string) (Unit, error) {
	norm := strings.Join(strings.Fields(exprReplacer.Replace(expr)), "")
	if norm == "" {
		return Unit{}, &UnknownUnitError{Symbol: expr, Expr: expr}
	}
	if u, ok := c.units[norm]; ok {
		return u, nil
	}
	p := &exprParser{cat: c, src: []rune(norm), expr: expr}
	u, err := p.product()
	if err != nil {
		return Unit{}, err
	}
	if p.pos != len(p.src) {
		return Unit{}, p.fail(fmt.Sprintf("unexpected %q", string(p.src[p.pos])))
	}
	u.Symbol = norm
	return u, nil
}

type exprParser struct {
	cat  *Catalog
	src  []rune
	pos  int
	expr string
}

func (p *exprParser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) fail(msg string) error {
	return fmt.Errorf("parse unit %q at %d: %s: %w", p.expr, p.pos, msg, ErrUnknownUnit)
}

func (p *exprParser) product() (Unit, error) {
	u, err := p.power()
	if err != nil {
		return Unit{}, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			r, err := p.power()
			if err != nil {
				return Unit{}, err
			}
			u = u.Mul(r)
		case '/':
			p.pos++
			r, err := p.power()
			if err != nil {
				return Unit{}, err
			}
			u = u.Div(r)
		default:
			return u, nil
		}
	}
}

func (p *exprParser) power() (Unit, error) {
	u, err := p.atom()
	if err != nil {
		return Unit{}, err
	}
	if p.peek() != '^' {
		return u, nil
	}
	p.pos++
	num, den, err := p.exponent()
	if err != nil {
		return Unit{}, err
	}
	return u.PowRat(num, den), nil
}

func (p *exprParser) atom() (Unit, error) {
	if p.peek() == '(' {
		p.pos++
		u, err := p.product()
		if err != nil {
			return Unit{}, err
		}
		if p.peek() != ')' {
			return Unit{}, p.fail("missing ')'")
		}
		p.pos++
		return u, nil
	}
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("*/^()", p.src[p.pos]) {
		p.pos++
	}
	sym := string(p.src[start:p.pos])
	if sym == "" {
		return Unit{}, p.fail("expected unit symbol")
	}
	u, ok := p.cat.units[sym]
	if !ok {
		return Unit{}, &UnknownUnitError{Symbol: sym, Expr: p.expr}
	}
	return u, nil
}

// exponent reads "2", "-1" or "(1/2)".
func (p *exprParser) exponent() (int64, int64, error) {
	if p.peek() != '(' {
		n, err := p.integer()
		return n, 1, err
	}
	p.pos++
	num, err := p.integer()
	if err != nil {
		return 0, 0, err
	}
	den := int64(1)
	if p.peek() == '/' {
		p.pos++
		if den, err = p.integer(); err != nil {
			return 0, 0, err
		}
		if den == 0 {
			return 0, 0, p.fail("zero denominator")
		}
	}
	if p.peek() != ')' {
		return 0, 0, p.fail("missing ')' in exponent")
	}
	p.pos++
	return num, den, nil
}

func (p *exprParser) integer() (int64, error) {
	start := p.pos
	if p.peek() == '-' || p.peek() == '+' {
		p.pos++
	}
	for p.pos < len(p.src) && unicode.IsDigit(p.src[p.pos]) {
		p.pos++
	}
	n, err := strconv.ParseInt(string(p.src[start:p.pos]), 10, 64)
	if err != nil {
		return 0, p.fail("bad exponent")
	}
	return n, nil
}

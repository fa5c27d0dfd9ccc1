// Package interpolate estimates a price at a grade that a price table may not list.
package interpolate

import "coinvalue/internal/coin"

// Estimate is the outcome of Interpolate. Below and Above are the nearest
// listed grades on either side and are only set when Exact is false.
type Estimate struct {
	Price coin.Cents
	Exact bool
	Below *coin.GradePrice
	Above *coin.GradePrice
}

// Resolved reports whether a usable price was found.
func (e Estimate) Resolved() bool { return e.Price != 0 }

// Interpolate returns the listed price at grade, or an estimate from the
// nearest listed grades. Between two priced grades the estimate sits one
// third of the way from the lower price to the higher one; past either end
// of the table the nearest price is used as is. Zero prices are treated as
// missing.
func Interpolate(prices []coin.GradePrice, grade int) Estimate {
	var below, above *coin.GradePrice
	for i := range prices {
		p := prices[i]
		switch {
		case p.Grade == grade:
			return Estimate{Price: p.Price, Exact: true}
		case p.Grade < grade:
			if below == nil || p.Grade > below.Grade {
				below = &p
			}
		default:
			if above == nil || p.Grade < above.Grade {
				above = &p
			}
		}
	}

	est := Estimate{Below: below, Above: above}
	lo := below != nil && below.Price != 0
	hi := above != nil && above.Price != 0
	switch {
	case lo && hi:
		est.Price = below.Price + floorDiv(above.Price-below.Price, 3)
	case lo:
		est.Price = below.Price
	case hi:
		est.Price = above.Price
	}
	return est
}

// floorDiv divides rounding toward negative infinity, so a table whose
// prices fall with grade still rounds down.
func floorDiv(a, b coin.Cents) coin.Cents {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

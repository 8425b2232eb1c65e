package unitgo

import "fmt"

// Ratio is an exact rational number used as a dimensional exponent.
// A Ratio is always kept in canonical form: reduced to lowest terms with a
// positive denominator, so two equal exponents compare equal with ==.
//
// The zero value is treated as the exponent 0 and canonicalizes to 0/1.
type Ratio struct {
	Num int
	Den int
}

// R returns the Ratio num/1.
func R(num int) Ratio {
	return Ratio{Num: num, Den: 1}
}

// RQ returns the Ratio num/den in canonical form.
// A zero denominator is treated as 1 so that the zero value stays usable.
func RQ(num, den int) Ratio {
	return Ratio{Num: num, Den: den}.reduce()
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce returns r in canonical form.
func (r Ratio) reduce() Ratio {
	if r.Den == 0 {
		r.Den = 1
	}
	if r.Num == 0 {
		return Ratio{Num: 0, Den: 1}
	}
	if r.Den < 0 {
		r.Num, r.Den = -r.Num, -r.Den
	}
	if g := gcd(r.Num, r.Den); g > 1 {
		r.Num /= g
		r.Den /= g
	}
	return r
}

// IsZero reports whether r is the exponent 0.
func (r Ratio) IsZero() bool {
	return r.Num == 0
}

// Add returns r + o in canonical form.
func (r Ratio) Add(o Ratio) Ratio {
	r, o = r.reduce(), o.reduce()
	return Ratio{Num: r.Num*o.Den + o.Num*r.Den, Den: r.Den * o.Den}.reduce()
}

// Sub returns r - o in canonical form.
func (r Ratio) Sub(o Ratio) Ratio {
	o = o.reduce()
	return r.Add(Ratio{Num: -o.Num, Den: o.Den})
}

// Mul returns r * o in canonical form.
func (r Ratio) Mul(o Ratio) Ratio {
	r, o = r.reduce(), o.reduce()
	return Ratio{Num: r.Num * o.Num, Den: r.Den * o.Den}.reduce()
}

// Div returns r / o in canonical form. Dividing by the zero exponent yields
// a zero denominator before canonicalization and is the caller's bug; it is
// normalized to 0/1 rather than guarded.
func (r Ratio) Div(o Ratio) Ratio {
	o = o.reduce()
	return r.Mul(Ratio{Num: o.Den, Den: o.Num})
}

// Float returns the ratio as a float64.
func (r Ratio) Float() float64 {
	r = r.reduce()
	return float64(r.Num) / float64(r.Den)
}

// String renders the ratio as "num" or "num/den".
func (r Ratio) String() string {
	r = r.reduce()
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

package reedsolomon

// Poly represents a polynomial whose coefficients are field elements.
// Coefficients are ordered from highest degree to lowest. Instances are
// immutable.
type Poly struct {
	coefficients []byte
}

var (
	zeroPoly = &Poly{coefficients: []byte{0}}
	onePoly  = &Poly{coefficients: []byte{1}}
)

// NewPoly creates a polynomial, dropping leading zero coefficients.
func NewPoly(coefficients ...byte) *Poly {
	if len(coefficients) == 0 {
		panic("reedsolomon: empty coefficients")
	}
	first := 0
	for first < len(coefficients)-1 && coefficients[first] == 0 {
		first++
	}
	c := make([]byte, len(coefficients)-first)
	copy(c, coefficients[first:])
	return &Poly{coefficients: c}
}

// Monomial returns coefficient * x^degree.
func Monomial(degree int, coefficient byte) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return zeroPoly
	}
	c := make([]byte, degree+1)
	c[0] = coefficient
	return &Poly{coefficients: c}
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (p *Poly) Coefficients() []byte {
	c := make([]byte, len(p.coefficients))
	copy(c, p.coefficients)
	return c
}

// Degree returns the degree of the polynomial.
func (p *Poly) Degree() int {
	return len(p.coefficients) - 1
}

// IsZero reports whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.coefficients[0] == 0
}

// Coefficient returns the coefficient of x^degree.
func (p *Poly) Coefficient(degree int) byte {
	return p.coefficients[len(p.coefficients)-1-degree]
}

// EvaluateAt evaluates the polynomial at a.
func (p *Poly) EvaluateAt(a byte) byte {
	if a == 0 {
		return p.Coefficient(0)
	}
	if a == 1 {
		var result byte
		for _, c := range p.coefficients {
			result ^= c
		}
		return result
	}
	result := p.coefficients[0]
	for _, c := range p.coefficients[1:] {
		result = Multiply(a, result) ^ c
	}
	return result
}

// Add adds (or subtracts) another polynomial.
func (p *Poly) Add(other *Poly) *Poly {
	if p.IsZero() {
		return other
	}
	if other.IsZero() {
		return p
	}
	smaller, larger := p.coefficients, other.coefficients
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}
	sum := make([]byte, len(larger))
	diff := len(larger) - len(smaller)
	copy(sum, larger[:diff])
	for i := diff; i < len(larger); i++ {
		sum[i] = smaller[i-diff] ^ larger[i]
	}
	return NewPoly(sum...)
}

// Multiply multiplies by another polynomial.
func (p *Poly) Multiply(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return zeroPoly
	}
	product := make([]byte, len(p.coefficients)+len(other.coefficients)-1)
	for i, a := range p.coefficients {
		for j, b := range other.coefficients {
			product[i+j] ^= Multiply(a, b)
		}
	}
	return NewPoly(product...)
}

// MultiplyScalar multiplies every coefficient by scalar.
func (p *Poly) MultiplyScalar(scalar byte) *Poly {
	switch scalar {
	case 0:
		return zeroPoly
	case 1:
		return p
	}
	product := make([]byte, len(p.coefficients))
	for i, c := range p.coefficients {
		product[i] = Multiply(c, scalar)
	}
	return NewPoly(product...)
}

// MultiplyByMonomial multiplies by coefficient * x^degree.
func (p *Poly) MultiplyByMonomial(degree int, coefficient byte) *Poly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return zeroPoly
	}
	product := make([]byte, len(p.coefficients)+degree)
	for i, c := range p.coefficients {
		product[i] = Multiply(c, coefficient)
	}
	return NewPoly(product...)
}

// Divide divides by other and returns the quotient and remainder.
func (p *Poly) Divide(other *Poly) (quotient, remainder *Poly) {
	if other.IsZero() {
		panic("reedsolomon: divide by zero")
	}
	quotient = zeroPoly
	remainder = p
	inverseLeading := Inverse(other.Coefficient(other.Degree()))
	for remainder.Degree() >= other.Degree() && !remainder.IsZero() {
		degreeDiff := remainder.Degree() - other.Degree()
		scale := Multiply(remainder.Coefficient(remainder.Degree()), inverseLeading)
		quotient = quotient.Add(Monomial(degreeDiff, scale))
		remainder = remainder.Add(other.MultiplyByMonomial(degreeDiff, scale))
	}
	return quotient, remainder
}

package reedsolomon

import "errors"

// ErrReedSolomon indicates a Reed-Solomon decoding failure.
var ErrReedSolomon = errors.New("reedsolomon: decoding error")

// Decode corrects errors in received in place and returns the number of
// errors corrected. twoS is the number of error correction codewords at the
// end of received.
func Decode(received []byte, twoS int) (int, error) {
	poly := NewPoly(received...)
	syndromes := make([]byte, twoS)
	noError := true
	for i := 0; i < twoS; i++ {
		eval := poly.EvaluateAt(Exp(i + 1))
		syndromes[twoS-1-i] = eval
		if eval != 0 {
			noError = false
		}
	}
	if noError {
		return 0, nil
	}

	sigma, omega, err := runEuclideanAlgorithm(Monomial(twoS, 1), NewPoly(syndromes...), twoS)
	if err != nil {
		return 0, err
	}
	locations, err := findErrorLocations(sigma)
	if err != nil {
		return 0, err
	}
	magnitudes := findErrorMagnitudes(omega, locations)
	for i, loc := range locations {
		position := len(received) - 1 - Log(loc)
		if position < 0 {
			return 0, ErrReedSolomon
		}
		received[position] ^= magnitudes[i]
	}
	return len(locations), nil
}

func runEuclideanAlgorithm(a, b *Poly, R int) (sigma, omega *Poly, err error) {
	if a.Degree() < b.Degree() {
		a, b = b, a
	}

	rLast, r := a, b
	tLast, t := zeroPoly, onePoly

	for 2*r.Degree() >= R {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = r, t

		if rLast.IsZero() {
			return nil, nil, ErrReedSolomon
		}
		r = rLastLast
		q := zeroPoly
		dltInverse := Inverse(rLast.Coefficient(rLast.Degree()))
		for r.Degree() >= rLast.Degree() && !r.IsZero() {
			degreeDiff := r.Degree() - rLast.Degree()
			scale := Multiply(r.Coefficient(r.Degree()), dltInverse)
			q = q.Add(Monomial(degreeDiff, scale))
			r = r.Add(rLast.MultiplyByMonomial(degreeDiff, scale))
		}

		t = q.Multiply(tLast).Add(tLastLast)

		if r.Degree() >= rLast.Degree() {
			return nil, nil, ErrReedSolomon
		}
	}

	sigmaTildeAtZero := t.Coefficient(0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, ErrReedSolomon
	}
	inverse := Inverse(sigmaTildeAtZero)
	return t.MultiplyScalar(inverse), r.MultiplyScalar(inverse), nil
}

func findErrorLocations(errorLocator *Poly) ([]byte, error) {
	numErrors := errorLocator.Degree()
	if numErrors == 1 {
		return []byte{errorLocator.Coefficient(1)}, nil
	}
	result := make([]byte, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if errorLocator.EvaluateAt(byte(i)) == 0 {
			result = append(result, Inverse(byte(i)))
		}
	}
	if len(result) != numErrors {
		return nil, ErrReedSolomon
	}
	return result, nil
}

func findErrorMagnitudes(errorEvaluator *Poly, locations []byte) []byte {
	s := len(locations)
	result := make([]byte, s)
	for i := 0; i < s; i++ {
		xiInverse := Inverse(locations[i])
		denominator := byte(1)
		for j := 0; j < s; j++ {
			if i != j {
				// 1 + X_j/X_i, addition being XOR on the low bit
				term := Multiply(locations[j], xiInverse)
				denominator = Multiply(denominator, term^1)
			}
		}
		result[i] = Multiply(errorEvaluator.EvaluateAt(xiInverse), Inverse(denominator))
		// generator base is 1
		result[i] = Multiply(result[i], xiInverse)
	}
	return result
}

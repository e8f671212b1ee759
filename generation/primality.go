package generation

import (
	"math/big"
)

// trialDivisionLimit is the largest value tested by exhaustive trial division.
// Above it, a Baillie-PSW + Miller-Rabin test is used instead.
const trialDivisionLimit = 1_000_000_000_000

// probablePrimeRounds is the number of Miller-Rabin rounds for large values
const probablePrimeRounds = 20

// IsPrime reports whether n is prime
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.IsUint64() && n.Uint64() <= trialDivisionLimit {
		return isPrimeTrialDivision(n.Uint64())
	}
	return n.ProbablyPrime(probablePrimeRounds)
}

// isPrimeTrialDivision uses the 6k±1 optimization
func isPrimeTrialDivision(n uint64) bool {
	if n <= 3 {
		return n > 1
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

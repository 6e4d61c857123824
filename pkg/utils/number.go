package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide num por den, retornando 0 quando o denominador é 0.
// Nenhuma métrica do dashboard pode valer NaN ou Inf.
func SafeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// SafePercentage retorna num/den em pontos percentuais, 0 quando den é 0
func SafePercentage(num, den float64) float64 {
	return RoundWithTwoDecimalPlace(SafeRatio(num, den) * 100)
}

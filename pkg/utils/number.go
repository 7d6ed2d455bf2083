package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithSixDecimalPlace arredonda valores monetários acumulados para evitar
// deriva de ponto flutuante nos totais reportados
func RoundWithSixDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1e6) / 1e6
}

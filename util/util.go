package util

import (
	"math"
	"os"
)

// RoundToTwoDecimals rounds half to even, so 0.125 becomes 0.12.
func RoundToTwoDecimals(in float64) float64 {
	return math.RoundToEven(in*100) / 100
}

func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

package nutrition

import "math"

// Vector holds the per-serving nutrition values for a recipe.
// Calories is in kcal, all other fields are grams.
type Vector struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
	Salt     float64 `json:"salt"`
}

// Round rounds x to the given number of decimal digits, half away from zero.
func Round(x float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(x*shift) / shift
}

// Scale multiplies every field of v by ratio and rounds the results to two
// decimal digits, enough to keep halved salt values like 0.75 intact. The
// ratio is applied as-is: a negative or non-finite ratio propagates into the
// result without any guarding.
func Scale(v Vector, ratio float64) Vector {
	return Vector{
		Calories: Round(v.Calories*ratio, 2),
		Protein:  Round(v.Protein*ratio, 2),
		Fat:      Round(v.Fat*ratio, 2),
		Carbs:    Round(v.Carbs*ratio, 2),
		Fiber:    Round(v.Fiber*ratio, 2),
		Salt:     Round(v.Salt*ratio, 2),
	}
}

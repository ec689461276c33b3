package restaurant

import (
	"math"
	"strconv"
	"strings"
)

// The parsers below never fail: malformed input yields the documented
// fallback together with a *Warning.

// ParsePrice reads a decimal price. NaN and infinities count as malformed.
// Fallback 0.
func ParsePrice(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &Warning{Field: "price", Input: trimmed, Fallback: "0"}
	}
	return v, nil
}

// ParseAge reads an age in 0..255. Fallback 0.
func ParseAge(raw string) (uint8, error) {
	trimmed := strings.TrimSpace(raw)
	v, err := strconv.ParseUint(trimmed, 10, 8)
	if err != nil {
		return 0, &Warning{Field: "age", Input: trimmed, Fallback: "0"}
	}
	return uint8(v), nil
}

// ParseFoodType accepts "veg" or "nonveg". Fallback Veg.
func ParseFoodType(raw string) (FoodType, error) {
	switch normalizeToken(raw) {
	case "veg":
		return Veg, nil
	case "nonveg":
		return NonVeg, nil
	default:
		return Veg, &Warning{Field: "food type", Input: strings.TrimSpace(raw), Fallback: Veg.String()}
	}
}

// ParseFoodCategory accepts "appetizer", "maincourse" or "dessert".
// Fallback Appetizer.
func ParseFoodCategory(raw string) (FoodCategory, error) {
	switch normalizeToken(raw) {
	case "appetizer":
		return Appetizer, nil
	case "maincourse":
		return MainCourse, nil
	case "dessert":
		return Dessert, nil
	default:
		return Appetizer, &Warning{Field: "food category", Input: strings.TrimSpace(raw), Fallback: Appetizer.String()}
	}
}

// ParseVegFlag accepts "y" or "n". Fallback true.
func ParseVegFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return true, &Warning{Field: "veg flag", Input: strings.TrimSpace(raw), Fallback: "veg"}
	}
}

// ParsePaymentMode accepts cash, card, upi or wallet. Malformed input yields
// fallback.
func ParsePaymentMode(raw string, fallback PaymentMode) (PaymentMode, error) {
	token := normalizeToken(raw)
	for _, mode := range PaymentModes {
		if token == strings.ToLower(mode.String()) {
			return mode, nil
		}
	}
	return fallback, &Warning{Field: "payment mode", Input: strings.TrimSpace(raw), Fallback: fallback.String()}
}

// normalizeToken lowercases and drops separators so "Main Course" and
// "main_course" read as "maincourse".
func normalizeToken(raw string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "_", "")
	return replacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
}

package aggregate

// CTR is clicks/impressions×100.
func CTR(clicks, impressions int64) float64 {
	return percent(clicks, impressions)
}

// ConversionRate is conversions/clicks×100.
func ConversionRate(conversions, clicks int64) float64 {
	return percent(conversions, clicks)
}

// ROAS is revenue/spend, or 0 without spend.
func ROAS(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return revenue / spend
}

func percent(num, den int64) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

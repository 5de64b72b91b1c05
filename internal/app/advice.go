package app

// Advice is a single general health tip.
type Advice struct {
	Text string `json:"text"`
}

var generalAdvice = []Advice{
	{Text: "Sleep 7-8 hours every night."},
	{Text: "Drink at least 2000 ml of water a day."},
	{Text: "Exercise 3-4 times a week, 30 minutes or more each time."},
	{Text: "Eat a varied diet and keep carbohydrates in check."},
}

// GeneralAdvice returns the static list of general tips.
func GeneralAdvice() []Advice {
	out := make([]Advice, len(generalAdvice))
	copy(out, generalAdvice)
	return out
}

package normalize

// CategoryOther is the fallback category for merchants with no qualifying
// keyword match.
const CategoryOther = "other"

// CategoryRule binds one category key to its ordered match keywords.
// Rules form a slice rather than a map: equal fuzzy scores keep the first
// qualifying keyword in declaration order, so iteration order is part of
// the matching contract.
type CategoryRule struct {
	Category string   `mapstructure:"category"`
	Keywords []string `mapstructure:"keywords"`
}

// DefaultRules returns the built-in merchant knowledge base. The returned
// slice is a fresh copy; callers may not mutate rules shared with a running
// normalizer.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Category: "uber", Keywords: []string{"uber", "uber trip", "uber eats", "uber technologies"}},
		{Category: "amazon", Keywords: []string{"amazon", "amzn", "amazon prime", "amazon mktplace"}},
		{Category: "starbucks", Keywords: []string{"starbucks", "sbux", "starbucks coffee"}},
		{Category: "target", Keywords: []string{"target", "tgt"}},
		{Category: "mcdonalds", Keywords: []string{"mcdonald", "mcd"}},
		{Category: "gas_station", Keywords: []string{"shell", "chevron", "bp", "exxon", "exxonmobil"}},
		{Category: "grocery", Keywords: []string{"whole foods", "trader joe", "safeway", "trader joes"}},
		{Category: "restaurant", Keywords: []string{"chipotle", "panera", "in-n-out", "in n out"}},
		{Category: "utility", Keywords: []string{"pg&e", "pge", "pacific gas", "comcast", "at&t", "att"}},
		{Category: "entertainment", Keywords: []string{"netflix", "spotify", "amc"}},
	}
}

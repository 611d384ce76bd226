package predict

import "time"

// seasonalNeeds maps a calendar month to its stock "predicted need"
// statements, nearest-first. The table is static and exercised by the
// generator ahead of the per-context heuristics.
var seasonalNeeds = map[time.Month][]string{
	time.January:   {"Fitness equipment for new year goals", "Organization tools", "Winter gear"},
	time.February:  {"Valentine's gifts", "Indoor activities", "Heart health products"},
	time.March:     {"Spring cleaning supplies", "Garden supplies", "Allergy relief"},
	time.April:     {"Spring fashion", "Outdoor gear", "Fresh produce"},
	time.May:       {"Summer prep and sunscreen", "BBQ supplies", "Mother's Day gifts"},
	time.June:      {"Summer clothes", "Travel gear", "Father's Day gifts"},
	time.July:      {"Vacation items", "Swimwear", "Cooling products"},
	time.August:    {"Back to school supplies", "Summer clearance finds", "Fall fashion preview"},
	time.September: {"Fall fashion", "School supplies", "Warm beverages"},
	time.October:   {"Halloween items", "Autumn decor", "Comfort foods"},
	time.November:  {"Thanksgiving prep", "Winter prep", "Holiday planning"},
	time.December:  {"Winter clothes", "Holiday gifts", "Comfort food"},
}

func seasonalCandidates(month time.Month) []candidate {
	statements := seasonalNeeds[month]
	out := make([]candidate, 0, len(statements))
	for _, s := range statements {
		out = append(out, candidate{statement: s, basis: "seasonal"})
	}
	return out
}

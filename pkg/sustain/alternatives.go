package sustain

import (
	"fmt"
	"strings"
)

var ecoAlternatives = map[string]string{
	"plastic bottle":      "Reusable stainless steel bottle",
	"paper towels":        "Reusable cloth towels",
	"regular detergent":   "Eco-friendly detergent",
	"disposable bags":     "Reusable shopping bags",
	"incandescent bulbs":  "LED bulbs",
	"plastic containers":  "Glass storage containers",
	"fast fashion":        "Sustainable clothing brands",
	"conventional produce": "Organic produce",
	"single-use items":    "Reusable alternatives",
	"synthetic materials": "Natural materials",
}

// AlternativeFor suggests a greener substitute for a product name. Unknown
// products get a generic eco-friendly framing rather than no answer.
func AlternativeFor(product string) string {
	if alt, ok := ecoAlternatives[strings.ToLower(product)]; ok {
		return alt
	}
	return fmt.Sprintf("Eco-friendly %s", product)
}

// Annual single-use units avoided per sustainable choice.
var wasteReductionUnits = map[string]int{
	"reusable_bags":   365,
	"water_bottle":    156,
	"food_containers": 200,
	"cloth_towels":    52,
	"led_bulbs":       10,
}

// WasteReductionItem pairs a sustainable choice with the single-use units it
// avoids per year.
type WasteReductionItem struct {
	Name         string
	UnitsPerYear int
}

// WasteReductionItems lists every known sustainable choice in a stable order.
func WasteReductionItems() []WasteReductionItem {
	return []WasteReductionItem{
		{Name: "reusable_bags", UnitsPerYear: wasteReductionUnits["reusable_bags"]},
		{Name: "water_bottle", UnitsPerYear: wasteReductionUnits["water_bottle"]},
		{Name: "food_containers", UnitsPerYear: wasteReductionUnits["food_containers"]},
		{Name: "cloth_towels", UnitsPerYear: wasteReductionUnits["cloth_towels"]},
		{Name: "led_bulbs", UnitsPerYear: wasteReductionUnits["led_bulbs"]},
	}
}

// WasteReduction totals the estimated yearly single-use items avoided by a
// set of sustainable choices. Unknown choices contribute nothing.
func WasteReduction(choices []string) int {
	total := 0
	for _, choice := range choices {
		total += wasteReductionUnits[choice]
	}
	return total
}

// Tips are the standing sustainability recommendations rendered alongside a
// report.
func Tips() []string {
	return []string{
		"Choose organic products when possible",
		"Use reusable bags and containers",
		"Buy local produce to reduce transport emissions",
		"Select energy-efficient appliances",
		"Reduce single-use plastic items",
		"Consider second-hand or refurbished items",
	}
}

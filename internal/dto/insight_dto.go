// FILE: internal/dto/insight_dto.go
package dto

type AuraResponse struct {
	Aura       string   `json:"aura"`
	Color      string   `json:"color"`
	Categories []string `json:"categories"`
	Products   []string `json:"products"`
}

type PredictionResponse struct {
	Statement  string  `json:"statement"`
	DaysAhead  int     `json:"days_ahead"`
	Confidence float64 `json:"confidence"`
	Basis      string  `json:"basis"`
}

type WasteReductionResponse struct {
	Item       string `json:"item"`
	UnitsPerYr int    `json:"units_saved_per_year"`
}

type SustainabilityResponse struct {
	EcoScore          int                      `json:"eco_score"`
	CarbonFootprintKg float64                  `json:"carbon_footprint_kg"`
	EcoGrade          string                   `json:"eco_grade"`
	Alternatives      map[string]string        `json:"alternatives"`
	WasteReduction    []WasteReductionResponse `json:"waste_reduction"`
	Tips              []string                 `json:"tips"`
}

type ActivityResponse struct {
	EventType   string `json:"event_type"`
	ProductName string `json:"product_name,omitempty"`
	OccurredAt  string `json:"occurred_at"`
}

type DashboardResponse struct {
	Aura            AuraResponse           `json:"aura"`
	Predictions     []PredictionResponse   `json:"predictions"`
	Sustainability  SustainabilityResponse `json:"sustainability"`
	CommunityTrends []string               `json:"community_trends"`
	RecentActivity  []ActivityResponse     `json:"recent_activity"`
	TotalSpent      float64                `json:"total_spent"`
	TotalCarbonKg   float64                `json:"total_carbon_kg"`
	PurchaseCount   int64                  `json:"purchase_count"`
}

package domain

// BreweryStats is the per-registry entry of the stats endpoint. The JSON key
// names are an operator-facing contract; do not rename them.
type BreweryStats struct {
	InstanceCount int `json:"instance_count"`
	HealthyCount  int `json:"healthy_count"`
}

// SelectorStats counts bridge selection outcomes since start.
type SelectorStats struct {
	SelectCount int `json:"select_count"`
	MissCount   int `json:"miss_count"`
}

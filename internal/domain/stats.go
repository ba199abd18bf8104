package domain

// NetworkStats are fabricated "live" mining figures shown in progress
// and statistics screens. Purely cosmetic.
type NetworkStats struct {
	CPM        float64
	Hashrate   int
	Efficiency float64
	Timestamp  string
}

// AdNetworkStats are fabricated ad network performance figures.
type AdNetworkStats struct {
	CPM          float64
	FillRate     int
	Viewability  int
	QualityScore int
}

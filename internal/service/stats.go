package service

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/set-night/cryptominer/internal/domain"
)

// GenerateNetworkStats fabricates plausible "live" mining figures for
// the statistics and progress screens.
func GenerateNetworkStats() domain.NetworkStats {
	return domain.NetworkStats{
		CPM:        roundTo(3.0+rand.Float64()*7.0, 2),
		Hashrate:   500 + rand.IntN(1501),
		Efficiency: roundTo(0.8+rand.Float64()*0.4, 2),
		Timestamp:  time.Now().UTC().Format("15:04:05"),
	}
}

// GenerateAdStats fabricates ad network performance figures.
func GenerateAdStats() domain.AdNetworkStats {
	return domain.AdNetworkStats{
		CPM:          roundTo(3.0+rand.Float64()*5.0, 2),
		FillRate:     92 + rand.IntN(7),
		Viewability:  88 + rand.IntN(8),
		QualityScore: 8 + rand.IntN(3),
	}
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}

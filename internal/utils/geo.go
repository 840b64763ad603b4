package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances
const EarthRadiusKm = 6371.0

// DefaultGeohashPrecision gives cells of roughly 150 m
const DefaultGeohashPrecision uint = 7

// CalculateDistance returns the great-circle distance in kilometers between
// two coordinates using the Haversine formula
func CalculateDistance(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// WithinRadius reports whether b lies within radiusKm of a (inclusive)
func WithinRadius(a, b models.Coordinates, radiusKm float64) bool {
	return CalculateDistance(a, b) <= radiusKm
}

// EncodeLocation converts coordinates to a geohash string
func EncodeLocation(c models.Coordinates, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}

// DecodeGeohash returns the centre of a geohash cell
func DecodeGeohash(hash string) models.Coordinates {
	lat, lng := geohash.DecodeCenter(hash)
	return models.Coordinates{Latitude: lat, Longitude: lng}
}

// CoarsenLocation snaps coordinates to the centre of their geohash cell
func CoarsenLocation(c models.Coordinates, precision uint) models.Coordinates {
	return DecodeGeohash(EncodeLocation(c, precision))
}

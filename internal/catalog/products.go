// Package catalog holds the static copy of the landing page.
package catalog

import (
	"strconv"
	"strings"
)

type Feature struct {
	Title       string
	Description string
	Icon        string
}

type Spec struct {
	Name  string
	Value string
}

type Product struct {
	Name        string
	ImageURL    string
	Price       int
	Description string
	Features    []Feature
	Specs       []Spec
}

// Highlights returns the features shown on the product card.
func (p Product) Highlights() []Feature {
	if len(p.Features) <= 4 {
		return p.Features
	}
	return p.Features[:4]
}

// Reversed reports whether the i-th product puts its image on the right.
func Reversed(i int) bool { return i%2 != 0 }

// FormatPrice renders whole dollars with thousands separators.
func FormatPrice(dollars int) string {
	sign := ""
	if dollars < 0 {
		sign = "-"
		dollars = -dollars
	}
	digits := strconv.Itoa(dollars)

	var b strings.Builder
	b.WriteString(sign + "$")
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Products returns a fresh copy of the collection.
func Products() []Product {
	return []Product{
		{
			Name:        "ErgoSense Pro",
			ImageURL:    "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Price:       1499,
			Description: "Our flagship AI-powered chair with advanced posture correction, body temperature adaptation, and complete IoT integration for the modern smart home.",
			Features: []Feature{
				{"AI Posture Analysis", "Real-time posture monitoring with gentle corrections", "📊"},
				{"Thermal Adaptation", "Adjusts seat temperature based on body heat", "🌡️"},
				{"Voice Control", "Hands-free adjustment using voice commands", "🎤"},
				{"Health Analytics", "Tracks sitting habits and provides recommendations", "💓"},
				{"Smart Home Integration", "Works with all major smart home platforms", "🏠"},
			},
			Specs: []Spec{
				{"Weight Capacity", "350 lbs"},
				{"Battery Life", "14 days"},
				{"Sensors", "16 pressure + 4 thermal"},
				{"Connectivity", "Wi-Fi, Bluetooth 5.0"},
				{"Material", "Premium Memory Foam"},
			},
		},
		{
			Name:        "NexusComfort Elite",
			ImageURL:    "https://images.unsplash.com/photo-1561729955-89357c733091?ixlib=rb-4.0.3&auto=format&fit=crop&w=1000&q=80",
			Price:       1299,
			Description: "The perfect balance of comfort and technology, featuring adaptive cushioning, massage functionality, and comprehensive health monitoring.",
			Features: []Feature{
				{"Dynamic Support", "Automatically adjusts firmness based on posture", "🛋️"},
				{"4D Massage", "Multiple massage programs with varying intensities", "👐"},
				{"Pressure Mapping", "Identifies and relieves pressure points", "🗺️"},
				{"Activity Recognition", "Detects work, relaxation, and gaming modes", "🎮"},
				{"App Control", "Full customization through smartphone app", "📱"},
			},
			Specs: []Spec{
				{"Weight Capacity", "300 lbs"},
				{"Battery Life", "10 days"},
				{"Sensors", "12 pressure + 2 thermal"},
				{"Connectivity", "Wi-Fi, Bluetooth 5.0"},
				{"Material", "Hybrid Foam + Mesh"},
			},
		},
	}
}

package models

// Geo is a location attached to a message.
type Geo struct {
	Type        string          `json:"type,omitempty"`
	Coordinates *GeoCoordinates `json:"coordinates,omitempty"`
	Place       *GeoPlace       `json:"place,omitempty"`
	Showmap     int32           `json:"showmap,omitempty"`
}

type GeoCoordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type GeoPlace struct {
	ID        int32   `json:"id,omitempty"`
	Title     string  `json:"title,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Created   int32   `json:"created,omitempty"`
	Icon      string  `json:"icon,omitempty"`
	Country   string  `json:"country,omitempty"`
	City      string  `json:"city,omitempty"`
}

package domain

// GeoPoint is a GeoJSON Point. Coordinates are [lng, lat] in EPSG:4326.
type GeoPoint struct {
	Type        string     `json:"type" validate:"required,eq=Point"`
	Coordinates [2]float64 `json:"coordinates"`
}

func NewPoint(lng, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

func (p GeoPoint) Lng() float64 { return p.Coordinates[0] }
func (p GeoPoint) Lat() float64 { return p.Coordinates[1] }

func (p GeoPoint) Valid() bool {
	return p.Type == "Point" &&
		p.Lng() >= -180 && p.Lng() <= 180 &&
		p.Lat() >= -90 && p.Lat() <= 90
}

package types

// Place is a canonical search result produced from a single geocoder record.
type Place struct {
	Name        string  `json:"name" doc:"Canonical place name"`
	Country     string  `json:"country" doc:"Country name, empty when unknown"`
	State       string  `json:"state" doc:"State, region or province, empty when unknown"`
	Lat         float64 `json:"lat" doc:"Latitude in decimal degrees"`
	Lon         float64 `json:"lon" doc:"Longitude in decimal degrees"`
	DisplayName string  `json:"displayName" doc:"Name shown to the user"`
}

func (p Place) Coords() Coords {
	return NewCoords(p.Lat, p.Lon)
}

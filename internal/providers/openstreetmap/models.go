package openstreetmap

// SearchResult is one record of a Nominatim /search response. Numeric fields
// that Nominatim may omit are pointers so "missing" is not confused with 0.
type SearchResult struct {
	PlaceId     int      `json:"place_id"`
	Licence     string   `json:"licence"`
	OsmType     string   `json:"osm_type"`
	OsmId       int      `json:"osm_id"`
	Lat         string   `json:"lat"`
	Lon         string   `json:"lon"`
	Class       string   `json:"class"`
	Type        string   `json:"type"`
	PlaceRank   *int     `json:"place_rank"`
	Importance  *float64 `json:"importance"`
	Addresstype string   `json:"addresstype"`
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Address     Address  `json:"address"`
	Boundingbox []string `json:"boundingbox"`
}

type Address struct {
	City           string `json:"city"`
	Town           string `json:"town"`
	Village        string `json:"village"`
	Municipality   string `json:"municipality"`
	Administrative string `json:"administrative"`
	County         string `json:"county"`
	StateDistrict  string `json:"state_district"`
	State          string `json:"state"`
	Region         string `json:"region"`
	Province       string `json:"province"`
	ISO31662Lvl4   string `json:"ISO3166-2-lvl4"`
	Country        string `json:"country"`
	CountryCode    string `json:"country_code"`
}

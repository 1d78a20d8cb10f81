package response_models

// Place is the client-facing shape of a nearby point of interest.
type Place struct {
	Lat         float64           `json:"lat"`
	Lon         float64           `json:"lon"`
	DisplayName string            `json:"display_name"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Class       string            `json:"class"`
	Tags        map[string]string `json:"tags"`
}

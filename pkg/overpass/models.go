package overpass

import "math"

// Element is a single entry of an Overpass "elements" array. Nodes carry
// lat/lon directly; ways and relations queried with "out center" carry a
// Center instead. Every field is optional upstream.
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    *float64          `json:"lat,omitempty"`
	Lon    *float64          `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags,omitempty"`
}

type Center struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

// Coordinates resolves the element position. Direct lat/lon win over the
// center point; ok is false when neither pair is complete and finite.
func (e Element) Coordinates() (lat, lon float64, ok bool) {
	if lat, lon, ok = pair(e.Lat, e.Lon); ok {
		return lat, lon, true
	}
	if e.Center != nil {
		return pair(e.Center.Lat, e.Center.Lon)
	}
	return 0, 0, false
}

// Tag returns the tag value or "" when the tag is absent.
func (e Element) Tag(key string) string {
	if e.Tags == nil {
		return ""
	}
	return e.Tags[key]
}

func pair(lat, lon *float64) (float64, float64, bool) {
	if lat == nil || lon == nil || !finite(*lat) || !finite(*lon) {
		return 0, 0, false
	}
	return *lat, *lon, true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Result is the decoded interpreter response. Total counts the raw entries
// of the elements array, including ones that failed to decode.
type Result struct {
	Elements []Element
	Total    int
}

package overpass

import (
	"fmt"
	"strconv"
	"strings"
)

// Selector is one tag filter of an Overpass union, e.g. node["tourism"="museum"].
type Selector struct {
	Element string
	Key     string
	Value   string
}

// AttractionSelectors is the curated allow-list of sightseeing features.
// Generic commercial POIs (hotels, shops) are intentionally absent.
var AttractionSelectors = []Selector{
	{"node", "tourism", "museum"},
	{"node", "tourism", "attraction"},
	{"node", "tourism", "artwork"},
	{"node", "tourism", "viewpoint"},
	{"node", "tourism", "gallery"},
	{"node", "historic", "monument"},
	{"node", "historic", "memorial"},
	{"node", "historic", "castle"},
	{"node", "historic", "ruins"},
	{"node", "historic", "archaeological_site"},
	{"node", "historic", "fort"},
	{"node", "historic", "tower"},
	{"node", "amenity", "place_of_worship"},
	{"node", "man_made", "lighthouse"},
	{"way", "tourism", "museum"},
	{"way", "tourism", "attraction"},
	{"way", "historic", "monument"},
	{"way", "historic", "memorial"},
	{"way", "historic", "castle"},
	{"way", "historic", "ruins"},
	{"way", "amenity", "place_of_worship"},
}

// BuildAroundQuery renders an Overpass QL union of selectors restricted to a
// circle of radius meters around lat/lon. Ways are returned with their center.
func BuildAroundQuery(selectors []Selector, lat, lon float64, radius, timeoutSeconds int) string {
	around := fmt.Sprintf("(around:%d,%s,%s)", radius, formatCoord(lat), formatCoord(lon))

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];\n(\n", timeoutSeconds)
	for _, s := range selectors {
		fmt.Fprintf(&b, "  %s[%q=%q]%s;\n", s.Element, s.Key, s.Value, around)
	}
	b.WriteString(");\nout center;\n")
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

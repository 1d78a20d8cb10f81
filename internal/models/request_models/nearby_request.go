package request_models

// NearbyRequest is the raw query string of GET /api/nearby. Values stay
// strings so the service can tell "absent" from "unparseable".
type NearbyRequest struct {
	Lat    string `form:"lat"`
	Lon    string `form:"lon"`
	Radius string `form:"radius"`
}

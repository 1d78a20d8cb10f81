package request_models

type ExplainRequest struct {
	Name     string   `json:"name" binding:"required"`
	Type     string   `json:"type"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
	Detailed bool     `json:"detailed"`
	Language string   `json:"language"`
}

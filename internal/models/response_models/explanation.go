package response_models

type Explanation struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Explanation string `json:"explanation"`
	Detailed    bool   `json:"detailed"`
}

package stories

// editorial content attached to a product page
type Story struct {
	ID       string `json:"id"`
	Handle   string `json:"handle"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// list payload for story reads
type ListResponse struct {
	Stories []Story `json:"stories"`
	Count   int     `json:"count"`
}

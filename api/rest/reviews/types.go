package reviews

import "time"

// a product review; Approved reviews are the only ones served publicly
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Author    string    `json:"author"`
	Email     string    `json:"-"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	Approved  bool      `json:"approved"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}

// incoming review submission; Website is the hidden honeypot field
type SubmitRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Website   string `json:"website"`
	FormToken string `json:"formToken"`
}

// list payload for review reads
type ListResponse struct {
	Reviews []*Review `json:"reviews"`
	Count   int       `json:"count"`
}

package api

import "time"

// Post is the wire representation of a blog post.
type Post struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	Category  string    `json:"category"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePostRequest is the strict create payload. Identity and creation
// timestamp are never accepted from the client.
type CreatePostRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Excerpt   string `json:"excerpt"`
	ImageURL  string `json:"imageUrl"`
	Category  string `json:"category"`
	Published *bool  `json:"published"`
}

// UpdatePostRequest is the partial update payload; absent fields are left
// untouched.
type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	ImageURL  *string `json:"imageUrl"`
	Category  *string `json:"category"`
	Published *bool   `json:"published"`
}

// DeletePostResponse confirms a delete with the removed post.
type DeletePostResponse struct {
	Success bool `json:"success"`
	Deleted Post `json:"deleted"`
}

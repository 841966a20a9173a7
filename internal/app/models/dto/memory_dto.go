package dto

// CreateMemoryRequest represents a new gallery memory submission
type CreateMemoryRequest struct {
	URL       string `json:"url" binding:"required,url"`
	Thumbnail string `json:"thumbnail"`
	Semester  string `json:"semester" binding:"required"`
}

// ReactRequest represents an emoji reaction on a memory
type ReactRequest struct {
	Emoji string `json:"emoji" binding:"required"`
}

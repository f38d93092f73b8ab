package types

type PaginationRequest struct {
	Page uint `schema:"page"`
}

type PaginationResponse struct {
	NumPages    uint `json:"num_pages"`
	CurrentPage uint `json:"current_page"`
	NextPage    uint `json:"next_page"`
}

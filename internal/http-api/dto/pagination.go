package dto

// PaginateResponse is the envelope every paginated listing returns.
// Pages are 1-indexed.
type PaginateResponse[T any] struct {
	Datas       []T `json:"datas"`
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
}

// NewPaginateResponse computes the page count from the total row count.
func NewPaginateResponse[T any](datas []T, total int64, page, pageSize int) *PaginateResponse[T] {
	totalPage := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPage++
	}

	return &PaginateResponse[T]{
		Datas:       datas,
		CurrentPage: page,
		TotalPage:   totalPage,
	}
}

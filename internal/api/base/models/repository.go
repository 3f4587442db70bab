// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang, đếm).
package models

// PaginateResult đại diện cho kết quả phân trang ở tầng service
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}

// Pagination là metadata phân trang trả về cho client
type Pagination struct {
	CurrentPage  int64 `json:"currentPage"`  // Trang hiện tại
	TotalPages   int64 `json:"totalPages"`   // Tổng số trang (tối thiểu 1 kể cả khi không có dữ liệu)
	TotalItems   int64 `json:"totalItems"`   // Tổng số bản ghi khớp filter
	ItemsPerPage int64 `json:"itemsPerPage"` // Số bản ghi mỗi trang
	HasNextPage  bool  `json:"hasNextPage"`  // Còn trang sau hay không
	HasPrevPage  bool  `json:"hasPrevPage"`  // Còn trang trước hay không
}

// NewPagination tính metadata phân trang từ tổng số bản ghi.
// TotalPages không bao giờ nhỏ hơn 1: tập rỗng vẫn được coi là có một trang rỗng.
func NewPagination(page, limit, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}

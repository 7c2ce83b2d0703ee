package request

// ByIDParams is a common struct for endpoints that take a numeric ID path parameter.
type ByIDParams struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// ListParams holds shared pagination query parameters.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}

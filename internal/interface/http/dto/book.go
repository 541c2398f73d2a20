package dto

// PublishBookRequest HTTP上架请求(管理员)
// validator tag说明:
// - required: 必填字段
// - min/max: 数值范围校验
// ISBN格式(10位或13位)由领域服务校验
type PublishBookRequest struct {
	ISBN        string `json:"isbn" binding:"required" example:"9787115428028"`
	Title       string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author      string `json:"author" binding:"required,max=100" example:"威廉·肯尼迪"`
	Price       int64  `json:"price" binding:"required,min=1,max=99999999" example:"5900"` // 价格(分),59.00元
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500" example:"https://example.com/cover.jpg"`
	Description string `json:"description" binding:"max=5000" example:"这是一本关于Go语言的实战书籍"`
	CategoryIDs []uint `json:"category_ids" binding:"omitempty,dive,min=1"`
}

// UpdateBookRequest HTTP更新请求(管理员)
// 业务规则：ISBN是图书的自然标识，创建后不可修改，因此这里没有isbn字段
// price为0表示不修改价格；category_ids为null表示不修改分类，空数组表示清空分类
type UpdateBookRequest struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Author      string `json:"author" binding:"omitempty,max=100"`
	Price       int64  `json:"price" binding:"omitempty,min=1,max=99999999"`
	CoverURL    string `json:"cover_url" binding:"omitempty,url,max=500"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	CategoryIDs []uint `json:"category_ids" binding:"omitempty,dive,min=1"`
}

// ListBooksRequest HTTP图书列表请求
type ListBooksRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100" example:"20"`
	SortBy   string `form:"sort_by" binding:"omitempty,oneof=price_asc price_desc created_at_desc" example:"created_at_desc"`
}

// SearchBooksRequest HTTP图书搜索请求
// 同名参数可重复出现：?title=a&title=b&author=c
// 同一字段的多个值为"或"，不同字段之间为"且"；未给出的字段不参与过滤
type SearchBooksRequest struct {
	Titles   []string `form:"title" binding:"omitempty,dive,max=200"`
	Authors  []string `form:"author" binding:"omitempty,dive,max=100"`
	Page     int      `form:"page" binding:"omitempty,min=1"`
	PageSize int      `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// Package dto - DTO cho domain catalog (danh mục và sản phẩm).
package dto

// SubcategoryInput là một subcategory khi tạo/cập nhật danh mục.
// Products luôn bắt đầu rỗng, thêm qua endpoint sản phẩm.
type SubcategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// CategoryCreateInput dữ liệu tạo danh mục mới.
type CategoryCreateInput struct {
	Title         string             `json:"title" validate:"required,no_xss"`
	HeaderImage   string             `json:"headerImage,omitempty"`
	Subcategories []SubcategoryInput `json:"subcategories,omitempty" validate:"omitempty,dive"`
}

// CategoryUpdateInput dữ liệu cập nhật danh mục (chỉ metadata,
// không đụng tới mảng subcategories/products).
type CategoryUpdateInput struct {
	Title       string `json:"title,omitempty" validate:"omitempty,no_xss"`
	HeaderImage string `json:"headerImage,omitempty"`
}

// ProductCreateInput dữ liệu tạo sản phẩm mới trong một subcategory.
type ProductCreateInput struct {
	CategoryTitle   string `json:"categoryTitle" validate:"required"`
	SubcategoryName string `json:"subcategoryName" validate:"required"`

	Name     string `json:"name" validate:"required,no_xss"`
	Image    string `json:"image,omitempty"`
	Overview string `json:"overview,omitempty"`

	TableSpecs     map[string]interface{}   `json:"tableSpecs,omitempty"`
	Specifications map[string]interface{}   `json:"specifications,omitempty"`
	Library        []map[string]interface{} `json:"library,omitempty"`
}

// ProductUpdateInput dữ liệu cập nhật một phần sản phẩm.
// Field không gửi lên giữ nguyên giá trị cũ.
type ProductUpdateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Image    string `json:"image,omitempty"`
	Overview string `json:"overview,omitempty"`

	TableSpecs     map[string]interface{}   `json:"tableSpecs,omitempty"`
	Specifications map[string]interface{}   `json:"specifications,omitempty"`
	Library        []map[string]interface{} `json:"library,omitempty"`
}

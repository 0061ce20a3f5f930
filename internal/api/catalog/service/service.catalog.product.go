package catalogsvc

import (
	"context"
	"errors"
	"strings"

	catalogmodels "rf_commerce/internal/api/catalog/models"
	"rf_commerce/internal/common"
	"rf_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductFields là dữ liệu sản phẩm khi tạo mới
type ProductFields struct {
	Name           string
	Image          string
	Overview       string
	TableSpecs     map[string]interface{}
	Specifications map[string]interface{}
	Library        []map[string]interface{}
}

// ProductPatch là dữ liệu cập nhật một phần: chỉ field khác zero được áp dụng,
// field không gửi lên giữ nguyên giá trị cũ.
type ProductPatch struct {
	Name           string
	Image          string
	Overview       string
	TableSpecs     map[string]interface{}
	Specifications map[string]interface{}
	Library        []map[string]interface{}
}

// ProductService thực hiện mutation sản phẩm trên cấu trúc lồng
// category → subcategory → products qua CategoryStore.
// Mỗi thao tác là một chu trình đọc-sửa-ghi nguyên cả CategoryDocument.
type ProductService struct {
	store CategoryStore
}

// NewProductService tạo mới ProductService trên collection Categories
func NewProductService() (*ProductService, error) {
	categoryService, err := NewCategoryService()
	if err != nil {
		return nil, err
	}
	return NewProductServiceWithStore(categoryService), nil
}

// NewProductServiceWithStore tạo ProductService với store được inject (dùng trong test)
func NewProductServiceWithStore(store CategoryStore) *ProductService {
	return &ProductService{store: store}
}

// isNotFound kiểm tra lỗi từ store có phải không-tìm-thấy không
func isNotFound(err error) bool {
	var customErr *common.Error
	return errors.As(err, &customErr) && customErr.StatusCode == common.StatusNotFound
}

// CreateProduct thêm sản phẩm mới vào subcategory của một danh mục.
//
// Thứ tự kiểm tra: input bắt buộc → danh mục tồn tại → subcategory tồn tại →
// tên sản phẩm chưa trùng trong subcategory (không phân biệt hoa thường).
// Chỉ khi tất cả kiểm tra qua mới ghi; không có ghi một phần.
func (s *ProductService) CreateProduct(ctx context.Context, categoryTitle string, subcategoryName string, fields ProductFields) (catalogmodels.ProductRecord, error) {
	var empty catalogmodels.ProductRecord

	if strings.TrimSpace(categoryTitle) == "" {
		return empty, common.NewError(common.ErrCodeValidationInput, "Tên danh mục không được để trống", common.StatusBadRequest, nil)
	}
	if strings.TrimSpace(subcategoryName) == "" {
		return empty, common.NewError(common.ErrCodeValidationInput, "Tên subcategory không được để trống", common.StatusBadRequest, nil)
	}
	if strings.TrimSpace(fields.Name) == "" {
		return empty, common.NewError(common.ErrCodeValidationInput, "Tên sản phẩm không được để trống", common.StatusBadRequest, nil)
	}

	doc, err := s.store.FindByTitle(ctx, categoryTitle)
	if err != nil {
		if isNotFound(err) {
			return empty, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy danh mục: "+categoryTitle, common.StatusNotFound, err)
		}
		return empty, err
	}

	subIdx := -1
	for i := range doc.Subcategories {
		if doc.Subcategories[i].Name == subcategoryName {
			subIdx = i
			break
		}
	}
	if subIdx < 0 {
		return empty, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy subcategory: "+subcategoryName, common.StatusNotFound, nil)
	}

	// Tên sản phẩm phải duy nhất trong subcategory, so sánh không phân biệt hoa thường
	for i := range doc.Subcategories[subIdx].Products {
		if strings.EqualFold(doc.Subcategories[subIdx].Products[i].Name, fields.Name) {
			return empty, common.NewError(
				common.ErrCodeDatabaseQuery,
				"Sản phẩm '"+fields.Name+"' đã tồn tại trong subcategory '"+subcategoryName+"'",
				common.StatusConflict,
				nil,
			)
		}
	}

	record := catalogmodels.ProductRecord{
		ID:             primitive.NewObjectID().Hex(),
		Name:           fields.Name,
		Image:          fields.Image,
		Overview:       fields.Overview,
		TableSpecs:     fields.TableSpecs,
		Specifications: fields.Specifications,
		Library:        fields.Library,
	}
	// Mặc định cấu trúc rỗng cho các payload không gửi lên
	if record.TableSpecs == nil {
		record.TableSpecs = map[string]interface{}{}
	}
	if record.Specifications == nil {
		record.Specifications = map[string]interface{}{}
	}
	if record.Library == nil {
		record.Library = []map[string]interface{}{}
	}

	doc.Subcategories[subIdx].Products = append(doc.Subcategories[subIdx].Products, record)

	if _, err := s.store.Save(ctx, doc); err != nil {
		return empty, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"category":    categoryTitle,
		"subcategory": subcategoryName,
		"productId":   record.ID,
	}).Info("🛒 [CATALOG] Đã tạo sản phẩm mới")

	return record, nil
}

// UpdateProduct cập nhật một phần sản phẩm theo id.
//
// Danh mục chứa sản phẩm được tìm bằng scan toàn catalog theo id —
// O(tổng số sản phẩm) mỗi lần, chấp nhận được ở quy mô vài trăm sản phẩm.
// Không kiểm tra lại trùng tên (khác với CreateProduct, giữ nguyên theo thiết kế)
// và không hỗ trợ chuyển sản phẩm sang danh mục/subcategory khác.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, patch ProductPatch) (catalogmodels.ProductRecord, error) {
	var empty catalogmodels.ProductRecord

	if strings.TrimSpace(productID) == "" {
		return empty, common.NewError(common.ErrCodeValidationInput, "ID sản phẩm không được để trống", common.StatusBadRequest, nil)
	}

	doc, err := s.store.FindContainingProductID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return empty, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy sản phẩm: "+productID, common.StatusNotFound, err)
		}
		return empty, err
	}

	for si := range doc.Subcategories {
		for pi := range doc.Subcategories[si].Products {
			if doc.Subcategories[si].Products[pi].ID != productID {
				continue
			}

			p := &doc.Subcategories[si].Products[pi]
			if patch.Name != "" {
				p.Name = patch.Name
			}
			if patch.Image != "" {
				p.Image = patch.Image
			}
			if patch.Overview != "" {
				p.Overview = patch.Overview
			}
			if patch.TableSpecs != nil {
				p.TableSpecs = patch.TableSpecs
			}
			if patch.Specifications != nil {
				p.Specifications = patch.Specifications
			}
			if patch.Library != nil {
				p.Library = patch.Library
			}

			if _, err := s.store.Save(ctx, doc); err != nil {
				return empty, err
			}
			return *p, nil
		}
	}

	// Document được tìm thấy theo id nhưng không chứa sản phẩm: dữ liệu bất thường
	return empty, common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy sản phẩm: "+productID, common.StatusNotFound, nil)
}

// DeleteProduct xóa sản phẩm theo id khỏi subcategory chứa nó.
// Nếu document tìm được nhưng không có bản ghi nào khớp (dữ liệu bất thường,
// không thể xảy ra khi id duy nhất) thì bỏ qua lặng lẽ và vẫn ghi lại document.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	if strings.TrimSpace(productID) == "" {
		return common.NewError(common.ErrCodeValidationInput, "ID sản phẩm không được để trống", common.StatusBadRequest, nil)
	}

	doc, err := s.store.FindContainingProductID(ctx, productID)
	if err != nil {
		if isNotFound(err) {
			return common.NewError(common.ErrCodeDatabaseQuery, "Không tìm thấy sản phẩm: "+productID, common.StatusNotFound, err)
		}
		return err
	}

	for si := range doc.Subcategories {
		products := doc.Subcategories[si].Products
		for pi := range products {
			if products[pi].ID == productID {
				doc.Subcategories[si].Products = append(products[:pi], products[pi+1:]...)

				logger.GetAppLogger().WithFields(map[string]interface{}{
					"category":  doc.Title,
					"productId": productID,
				}).Info("🛒 [CATALOG] Đã xóa sản phẩm")

				_, err := s.store.Save(ctx, doc)
				return err
			}
		}
	}

	_, err = s.store.Save(ctx, doc)
	return err
}

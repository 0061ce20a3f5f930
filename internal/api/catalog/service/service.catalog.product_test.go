// Package catalogsvc - test mutation sản phẩm trên cấu trúc lồng category → subcategory → products.
package catalogsvc

import (
	"context"
	"testing"

	catalogmodels "rf_commerce/internal/api/catalog/models"
	"rf_commerce/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCategoryStore giữ CategoryDocument trong bộ nhớ và đếm số lần Save
type fakeCategoryStore struct {
	docs      map[string]catalogmodels.CategoryDocument // key theo title
	saveCalls int
}

func newFakeCategoryStore(docs ...catalogmodels.CategoryDocument) *fakeCategoryStore {
	s := &fakeCategoryStore{docs: make(map[string]catalogmodels.CategoryDocument)}
	for _, d := range docs {
		s.docs[d.Title] = d
	}
	return s
}

func (s *fakeCategoryStore) FindByTitle(ctx context.Context, title string) (catalogmodels.CategoryDocument, error) {
	doc, ok := s.docs[title]
	if !ok {
		return catalogmodels.CategoryDocument{}, common.ErrNotFound
	}
	return doc, nil
}

func (s *fakeCategoryStore) FindContainingProductID(ctx context.Context, productID string) (catalogmodels.CategoryDocument, error) {
	for _, doc := range s.docs {
		for _, sub := range doc.Subcategories {
			for _, p := range sub.Products {
				if p.ID == productID {
					return doc, nil
				}
			}
		}
	}
	return catalogmodels.CategoryDocument{}, common.ErrNotFound
}

func (s *fakeCategoryStore) Save(ctx context.Context, doc catalogmodels.CategoryDocument) (catalogmodels.CategoryDocument, error) {
	s.saveCalls++
	s.docs[doc.Title] = doc
	return doc, nil
}

func switchesCategory() catalogmodels.CategoryDocument {
	return catalogmodels.CategoryDocument{
		ID:    primitive.NewObjectID(),
		Title: "Switches",
		Subcategories: []catalogmodels.Subcategory{
			{Name: "RF Switches", Products: []catalogmodels.ProductRecord{}},
			{Name: "Coaxial Switches", Products: []catalogmodels.ProductRecord{}},
		},
	}
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*common.Error)
	require.True(t, ok, "lỗi phải là *common.Error, nhận được: %v", err)
	return customErr.StatusCode
}

func TestCreateProduct_Success(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	record, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{
		Name:  "SW-100",
		Image: "sw100.png",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, record.ID, "sản phẩm mới phải có id")
	assert.Equal(t, "SW-100", record.Name)
	assert.Equal(t, "sw100.png", record.Image)

	// Payload không gửi lên phải mặc định cấu trúc rỗng, không phải nil
	assert.NotNil(t, record.TableSpecs)
	assert.NotNil(t, record.Specifications)
	assert.NotNil(t, record.Library)
	assert.Empty(t, record.TableSpecs)

	// Ghi nguyên cả document, đúng một lần
	assert.Equal(t, 1, store.saveCalls)
	saved := store.docs["Switches"]
	require.Len(t, saved.Subcategories[0].Products, 1)
	assert.Equal(t, record.ID, saved.Subcategories[0].Products[0].ID)
	assert.Empty(t, saved.Subcategories[1].Products, "subcategory khác không được thay đổi")
}

func TestCreateProduct_FreshIDPerProduct(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	r1, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "SW-100"})
	require.NoError(t, err)
	r2, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "SW-200"})
	require.NoError(t, err)

	assert.NotEqual(t, r1.ID, r2.ID, "mỗi sản phẩm phải có id riêng")
}

func TestCreateProduct_DuplicateNameCaseInsensitive(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	_, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "SW-100"})
	require.NoError(t, err)
	savesBefore := store.saveCalls

	_, err = svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "sw-100"})
	assert.Equal(t, common.StatusConflict, statusCodeOf(t, err), "trùng tên không phân biệt hoa thường phải trả về Conflict")
	assert.Equal(t, savesBefore, store.saveCalls, "không được ghi khi tạo thất bại")

	// Cùng tên ở subcategory khác thì hợp lệ
	_, err = svc.CreateProduct(context.Background(), "Switches", "Coaxial Switches", ProductFields{Name: "sw-100"})
	assert.NoError(t, err, "tên chỉ cần duy nhất trong phạm vi subcategory")
}

func TestCreateProduct_NotFoundCategory(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	_, err := svc.CreateProduct(context.Background(), "Amplifiers", "RF Switches", ProductFields{Name: "SW-100"})
	assert.Equal(t, common.StatusNotFound, statusCodeOf(t, err))
	assert.Equal(t, 0, store.saveCalls, "không được gọi Save khi danh mục không tồn tại")
}

func TestCreateProduct_NotFoundSubcategory(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	_, err := svc.CreateProduct(context.Background(), "Switches", "Waveguide Switches", ProductFields{Name: "SW-100"})
	assert.Equal(t, common.StatusNotFound, statusCodeOf(t, err))
	assert.Equal(t, 0, store.saveCalls)
}

func TestCreateProduct_InvalidInput(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	cases := []struct {
		label       string
		category    string
		subcategory string
		name        string
	}{
		{"thiếu tên danh mục", "", "RF Switches", "SW-100"},
		{"thiếu tên subcategory", "Switches", "", "SW-100"},
		{"thiếu tên sản phẩm", "Switches", "RF Switches", ""},
		{"tên sản phẩm toàn khoảng trắng", "Switches", "RF Switches", "   "},
	}
	for _, tc := range cases {
		_, err := svc.CreateProduct(context.Background(), tc.category, tc.subcategory, ProductFields{Name: tc.name})
		assert.Equal(t, common.StatusBadRequest, statusCodeOf(t, err), "trường hợp: %s", tc.label)
	}
	assert.Equal(t, 0, store.saveCalls)
}

func TestUpdateProduct_PartialPatch(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	created, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{
		Name:     "SW-100",
		Image:    "sw100.png",
		Overview: "<p>High isolation switch</p>",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), created.ID, ProductPatch{Name: "SW-100B"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID, "id không bao giờ thay đổi")
	assert.Equal(t, "SW-100B", updated.Name)
	assert.Equal(t, "sw100.png", updated.Image, "field không có trong patch phải giữ nguyên")
	assert.Equal(t, "<p>High isolation switch</p>", updated.Overview)

	// Vẫn tìm được theo id cũ sau khi đổi tên
	_, err = store.FindContainingProductID(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestUpdateProduct_NoDuplicateNameCheck(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	_, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "SW-100"})
	require.NoError(t, err)
	second, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "SW-200"})
	require.NoError(t, err)

	// Update không kiểm tra lại trùng tên: đổi tên thành trùng vẫn thành công
	updated, err := svc.UpdateProduct(context.Background(), second.ID, ProductPatch{Name: "sw-100"})
	require.NoError(t, err, "đường update không kiểm tra trùng tên")
	assert.Equal(t, "sw-100", updated.Name)
}

func TestUpdateProduct_NotFound(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	_, err := svc.UpdateProduct(context.Background(), primitive.NewObjectID().Hex(), ProductPatch{Name: "X"})
	assert.Equal(t, common.StatusNotFound, statusCodeOf(t, err))
	assert.Equal(t, 0, store.saveCalls, "không được gọi Save khi sản phẩm không tồn tại")
}

func TestDeleteProduct_RemovesExactlyOne(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	first, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "SW-100"})
	require.NoError(t, err)
	second, err := svc.CreateProduct(context.Background(), "Switches", "RF Switches", ProductFields{Name: "SW-200"})
	require.NoError(t, err)

	err = svc.DeleteProduct(context.Background(), first.ID)
	require.NoError(t, err)

	// Sản phẩm đã xóa không còn tìm được theo id
	_, err = store.FindContainingProductID(context.Background(), first.ID)
	assert.Error(t, err)

	// Sản phẩm cùng subcategory giữ nguyên
	saved := store.docs["Switches"]
	require.Len(t, saved.Subcategories[0].Products, 1)
	assert.Equal(t, second.ID, saved.Subcategories[0].Products[0].ID)
	assert.Equal(t, "SW-200", saved.Subcategories[0].Products[0].Name)
}

func TestDeleteProduct_NotFound(t *testing.T) {
	store := newFakeCategoryStore(switchesCategory())
	svc := NewProductServiceWithStore(store)

	err := svc.DeleteProduct(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, common.StatusNotFound, statusCodeOf(t, err))
	assert.Equal(t, 0, store.saveCalls)
}

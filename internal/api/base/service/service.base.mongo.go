// Package basesvc cung cấp các service cơ bản cho việc tương tác với MongoDB.
// Mọi resource của hệ thống dùng chung một bộ thao tác CRUD generic tại đây:
// cấp phát seqId khi tạo mới, soft-delete qua cờ status, timestamps tự động.
package basesvc

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "food_market/internal/api/base/models"
	"food_market/internal/common"
	"food_market/internal/utility"
)

// UpdateData định nghĩa kiểu dữ liệu cho partial update
type UpdateData struct {
	Set         map[string]interface{} `bson:"$set,omitempty"`         // Các trường cần update
	SetOnInsert map[string]interface{} `bson:"$setOnInsert,omitempty"` // Các trường chỉ set khi insert (upsert tạo mới)
	Unset       map[string]interface{} `bson:"$unset,omitempty"`       // Các trường cần xóa
	Push        map[string]interface{} `bson:"$push,omitempty"`        // Các trường cần thêm vào array
	AddToSet    map[string]interface{} `bson:"$addToSet,omitempty"`    // Các trường cần thêm vào set
}

// Các trường hệ thống không bao giờ được sửa qua update thông thường.
// status chỉ đổi qua SoftDelete/Reactivate, seqId và createdAt/createdBy là bất biến.
var protectedUpdateFields = []string{"_id", "seqId", "status", "createdAt", "createdBy"}

// ToUpdateData chuyển đổi interface{} thành UpdateData
func ToUpdateData(data interface{}) (*UpdateData, error) {
	if update, ok := data.(*UpdateData); ok {
		return update, nil
	}
	if update, ok := data.(UpdateData); ok {
		return &update, nil
	}

	dataMap, err := utility.ToMap(data)
	if err != nil {
		return nil, err
	}

	// Nếu data có sẵn các operator MongoDB ($set, $unset, ...), dựng UpdateData trực tiếp
	if _, hasSet := dataMap["$set"]; hasSet {
		update := &UpdateData{}
		if setVal, ok := dataMap["$set"].(map[string]interface{}); ok {
			update.Set = setVal
		}
		if unsetVal, ok := dataMap["$unset"].(map[string]interface{}); ok {
			update.Unset = unsetVal
		}
		if pushVal, ok := dataMap["$push"].(map[string]interface{}); ok {
			update.Push = pushVal
		}
		if addToSetVal, ok := dataMap["$addToSet"].(map[string]interface{}); ok {
			update.AddToSet = addToSetVal
		}
		return update, nil
	}

	// Map thường thì wrap trong $set
	return &UpdateData{Set: dataMap}, nil
}

// stripProtectedFields loại các trường hệ thống khỏi $set/$unset của update
func stripProtectedFields(update *UpdateData) {
	for _, field := range protectedUpdateFields {
		delete(update.Set, field)
		delete(update.Unset, field)
	}
}

// ====================================
// INTERFACE VÀ STRUCT
// ====================================

// BaseServiceMongo định nghĩa interface chứa các phương thức cơ bản cho việc tương tác với MongoDB
// Type Parameters:
//   - Model: Kiểu dữ liệu của model
type BaseServiceMongo[Model any] interface {
	// 1. Thao tác Insert
	InsertOne(ctx context.Context, data Model) (Model, error)

	// 2. Thao tác Find
	FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (Model, error)
	Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]Model, error)
	FindOneByIdentifier(ctx context.Context, identifier string) (Model, error)
	FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[Model], error)

	// 3. Thao tác Update
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) (Model, error)
	UpdateByIdentifier(ctx context.Context, identifier string, update interface{}) (Model, error)

	// 4. Soft-delete và kích hoạt lại (không có thao tác xóa vật lý)
	SoftDeleteByIdentifier(ctx context.Context, identifier string, updatedBy *int64) (Model, error)
	ReactivateByIdentifier(ctx context.Context, identifier string, updatedBy *int64) (Model, error)

	// 5. Các thao tác khác
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
	Collection() *mongo.Collection
}

// BaseServiceMongoImpl định nghĩa struct triển khai các phương thức cơ bản cho service
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection // Collection MongoDB
	sequence   *SequenceService  // Cấp phát seqId khi tạo mới
}

// NewBaseServiceMongo tạo mới một BaseServiceMongoImpl trên collection,
// dùng sequence để cấp khóa số tuần tự cho bản ghi mới.
func NewBaseServiceMongo[T any](collection *mongo.Collection, sequence *SequenceService) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
		sequence:   sequence,
	}
}

// Collection trả về collection MongoDB (dùng khi domain service cần truy cập trực tiếp)
func (s *BaseServiceMongoImpl[T]) Collection() *mongo.Collection {
	return s.collection
}

// ====================================
// 1. THAO TÁC INSERT
// ====================================

// InsertOne tạo mới một bản ghi trong database.
// Bản ghi mới luôn được cấp seqId tuần tự, status mặc định true và timestamps hiện tại.
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	// Chuyển data thành map để thêm các trường hệ thống
	dataMap, err := utility.ToMap(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}

	// Loại bỏ các field empty string để sparse unique index hoạt động đúng
	for key, value := range dataMap {
		if strValue, ok := value.(string); ok && strValue == "" {
			delete(dataMap, key)
		}
	}

	// Cấp khóa số tuần tự
	seqId, err := s.sequence.Next(ctx, s.collection.Name())
	if err != nil {
		return zero, err
	}
	dataMap["seqId"] = seqId

	// Bản ghi mới luôn đang hoạt động
	dataMap["status"] = true

	// Loại _id zero từ model để driver tự sinh ObjectID mới
	delete(dataMap, "_id")

	now := time.Now().UnixMilli()
	dataMap["createdAt"] = now
	dataMap["updatedAt"] = now

	result, err := s.collection.InsertOne(ctx, dataMap)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	// Lấy lại document vừa tạo
	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}

	return created, nil
}

// ====================================
// 2. THAO TÁC FIND
// ====================================

// FindOne tìm một document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (T, error) {
	var zero T
	var result T

	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.FindOne()
	}

	findResult := s.collection.FindOne(ctx, filter, opts)
	if err := findResult.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	if err := findResult.Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		// Lỗi decode BSON là lỗi format, không phải lỗi MongoDB command
		return zero, common.NewError(
			common.ErrCodeValidationFormat,
			"Lỗi định dạng dữ liệu khi decode từ MongoDB",
			common.StatusBadRequest,
			err,
		)
	}

	return result, nil
}

// Find tìm tất cả bản ghi theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.D{}
	} else if filterMap, ok := filter.(map[string]interface{}); ok && len(filterMap) == 0 {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []T
	if err = cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}

	// Đảm bảo luôn trả về mảng, không phải nil
	if results == nil {
		results = []T{}
	}

	return results, nil
}

// FindOneByIdentifier tìm một document theo định danh linh hoạt:
// ObjectID 24 hex tra theo _id, khóa số tuần tự tra theo seqId.
func (s *BaseServiceMongoImpl[T]) FindOneByIdentifier(ctx context.Context, identifier string) (T, error) {
	var zero T

	filter, err := BuildIdentifierFilter(identifier)
	if err != nil {
		return zero, err
	}

	return s.FindOne(ctx, filter, nil)
}

// FindWithPagination tìm tất cả bản ghi với phân trang.
// Count và Find chạy song song trên hai goroutine để giảm độ trễ trang lớn.
func (s *BaseServiceMongoImpl[T]) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[T], error) {
	if filter == nil {
		filter = bson.D{}
	}
	if opts == nil {
		opts = options.Find()
	}

	// Đảm bảo page >= 1 và limit > 0 để tránh skip âm
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit
	opts.SetSkip(skip)
	opts.SetLimit(limit)

	var total int64
	var items []T

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.collection.CountDocuments(gctx, filter)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		total = count
		return nil
	})
	g.Go(func() error {
		cursor, err := s.collection.Find(gctx, filter, opts)
		if err != nil {
			return common.ConvertMongoError(err)
		}
		defer cursor.Close(gctx)
		if err := cursor.All(gctx, &items); err != nil {
			return common.ConvertMongoError(err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []T{}
	}

	var totalPage int64
	if total > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      page,
		Limit:     limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: totalPage,
	}, nil
}

// ====================================
// 3. THAO TÁC UPDATE
// ====================================

// UpdateOne cập nhật một document theo điều kiện lọc.
// Các trường hệ thống (seqId, status, createdAt...) bị loại khỏi update;
// updatedAt luôn được làm mới.
func (s *BaseServiceMongoImpl[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (T, error) {
	var zero T

	if filter == nil {
		filter = bson.D{}
	}

	updateData, err := ToUpdateData(update)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	stripProtectedFields(updateData)

	if updateData.Set == nil {
		updateData.Set = make(map[string]interface{})
	}
	updateData.Set["updatedAt"] = time.Now().UnixMilli()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated T
	if err := s.collection.FindOneAndUpdate(ctx, filter, updateData, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return updated, nil
}

// UpdateByIdentifier cập nhật một document theo định danh linh hoạt
func (s *BaseServiceMongoImpl[T]) UpdateByIdentifier(ctx context.Context, identifier string, update interface{}) (T, error) {
	var zero T

	filter, err := BuildIdentifierFilter(identifier)
	if err != nil {
		return zero, err
	}

	return s.UpdateOne(ctx, filter, update)
}

// ====================================
// 4. SOFT-DELETE VÀ KÍCH HOẠT LẠI
// ====================================

// setStatusByIdentifier đổi cờ status của một document, ghi lại người thao tác
func (s *BaseServiceMongoImpl[T]) setStatusByIdentifier(ctx context.Context, identifier string, status bool, updatedBy *int64) (T, error) {
	var zero T

	filter, err := BuildIdentifierFilter(identifier)
	if err != nil {
		return zero, err
	}

	set := bson.M{
		"status":    status,
		"updatedAt": time.Now().UnixMilli(),
	}
	if updatedBy != nil {
		set["updatedBy"] = *updatedBy
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated T
	if err := s.collection.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}

	return updated, nil
}

// SoftDeleteByIdentifier ngừng hoạt động một bản ghi (status=false).
// Bản ghi vẫn nằm trong database và vẫn truy cập được qua getById.
func (s *BaseServiceMongoImpl[T]) SoftDeleteByIdentifier(ctx context.Context, identifier string, updatedBy *int64) (T, error) {
	return s.setStatusByIdentifier(ctx, identifier, false, updatedBy)
}

// ReactivateByIdentifier kích hoạt lại một bản ghi đã ngừng hoạt động (status=true)
func (s *BaseServiceMongoImpl[T]) ReactivateByIdentifier(ctx context.Context, identifier string, updatedBy *int64) (T, error) {
	return s.setStatusByIdentifier(ctx, identifier, true, updatedBy)
}

// ====================================
// 5. CÁC THAO TÁC KHÁC
// ====================================

// CountDocuments đếm số document theo điều kiện lọc
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists kiểm tra document có tồn tại theo điều kiện lọc hay không
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	count, err := s.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

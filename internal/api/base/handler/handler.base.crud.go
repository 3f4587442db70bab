// Package basehdl cung cấp các handler CRUD cơ bản cho mọi resource.
// Mỗi resource chỉ cần khai báo model + DTO rồi compose BaseHandler,
// toàn bộ pipeline parse/validate/filter/populate/response dùng chung tại đây.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	basemodels "food_market/internal/api/base/models"
	basesvc "food_market/internal/api/base/service"
	"food_market/internal/common"
	"food_market/internal/global"
	"food_market/internal/logger"
	"food_market/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creator là DTO tạo mới: biết tự chuyển thành model T
type Creator[T any] interface {
	ToModel() T
}

// Updater là DTO cập nhật: chỉ xuất các field được phép sửa thành map $set.
// Field không có trong map sẽ giữ nguyên giá trị cũ (partial update).
type Updater interface {
	ToUpdate() map[string]interface{}
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: DTO khi tạo mới
// - UpdateInput: DTO khi cập nhật
type BaseHandler[T any, CreateInput Creator[T], UpdateInput Updater] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	Populator     *basesvc.Populator          // Populate các trường tham chiếu numeric (nil nếu resource không có tham chiếu)
	AuthField     string                      // Field dùng cho getByAuth (mặc định createdBy)
	filterOptions basesvc.FilterOptions       // Cấu hình validate filter từ query params
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp.
// populator có thể là nil nếu resource không có trường tham chiếu.
func NewBaseHandler[T any, CreateInput Creator[T], UpdateInput Updater](baseService basesvc.BaseServiceMongo[T], populator *basesvc.Populator) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService:   baseService,
		Populator:     populator,
		AuthField:     "createdBy",
		filterOptions: basesvc.DefaultFilterOptions(),
	}
}

// SetSearchFields khai báo các field văn bản mà param search của resource này quét qua
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetSearchFields(fields ...string) *BaseHandler[T, CreateInput, UpdateInput] {
	h.filterOptions.SearchFields = fields
	return h
}

// SetAuthField đổi field dùng cho getByAuth (ví dụ: userId cho notifications)
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetAuthField(field string) *BaseHandler[T, CreateInput, UpdateInput] {
	h.AuthField = field
	return h
}

// ====================================
// PARSE VÀ VALIDATE
// ====================================

// ParseRequestBody parse dữ liệu từ request body.
// Dùng json.Decoder với UseNumber() để giữ chính xác các số nguyên lớn (seqId).
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return common.ErrInvalidInput
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return err
	}
	return nil
}

// ValidateInput validate dữ liệu đầu vào với validator từ global
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}
	return nil
}

// ParsePagination parse thông tin phân trang từ query params (page mặc định 1, limit mặc định 10)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

// GetAuthSeq lấy seqId của người dùng đã xác thực từ context (do middleware auth set)
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetAuthSeq(c fiber.Ctx) (int64, error) {
	seq, ok := c.Locals("user_seq").(int64)
	if !ok {
		return 0, common.ErrMissingPrincipal
	}
	return seq, nil
}

// setAuditFields gán CreatedBy/UpdatedBy (*int64) vào model bằng reflection.
// Chỉ gán khi model có field tương ứng, resource không có audit field thì bỏ qua.
func setAuditFields[T any](model *T, userSeq int64, isCreate bool) {
	val := reflect.ValueOf(model).Elem()
	if val.Kind() != reflect.Struct {
		return
	}

	fields := []string{"UpdatedBy"}
	if isCreate {
		fields = append(fields, "CreatedBy")
	}

	for _, name := range fields {
		field := val.FieldByName(name)
		if !field.IsValid() || !field.CanSet() || field.Kind() != reflect.Ptr {
			continue
		}
		seq := userSeq
		field.Set(reflect.ValueOf(&seq))
	}
}

// PopulateItems chạy populate trên danh sách items đã decode.
// Trả về []map khi có populator để các trường tham chiếu được thay bằng document đích;
// resource không có populator thì trả items nguyên dạng.
func (h *BaseHandler[T, CreateInput, UpdateInput]) PopulateItems(c fiber.Ctx, items []T) interface{} {
	if h.Populator == nil {
		return items
	}

	docs, err := utility.ToMaps(items)
	if err != nil {
		logger.GetErrorLogger().WithError(err).Warn("Không chuyển được items sang map để populate")
		return items
	}

	h.Populator.Populate(c.Context(), docs)
	return docs
}

// PopulateItem chạy populate trên một item đơn lẻ
func (h *BaseHandler[T, CreateInput, UpdateInput]) PopulateItem(c fiber.Ctx, item T) interface{} {
	result := h.PopulateItems(c, []T{item})
	if docs, ok := result.([]map[string]interface{}); ok && len(docs) == 1 {
		return docs[0]
	}
	return item
}

// ====================================
// CÁC HANDLER CRUD
// ====================================

// InsertOne thêm mới một document vào database.
// Dữ liệu được parse từ request body (DTO CreateInput), validate rồi transform sang Model.
// CreatedBy/UpdatedBy được gán từ người dùng đã xác thực.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model := input.ToModel()
		if userSeq, err := h.GetAuthSeq(c); err == nil {
			setAuditFields(&model, userSeq, true)
		}

		data, err := h.BaseService.InsertOne(c.Context(), model)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleCreatedResponse(c, h.PopulateItem(c, data))
		return nil
	})
}

// Find trả về danh sách document có phân trang (getAll).
// Query params ngoài page/limit trở thành điều kiện lọc (ép kiểu khoan dung);
// search/sortBy/sortOrder được xử lý riêng, vắng status thì trả cả bản ghi ngừng hoạt động.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, limit := h.ParsePagination(c)
		filter := basesvc.BuildListFilter(c.Queries(), h.filterOptions)

		result, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit,
			options.Find().SetSort(basesvc.BuildListSort(c.Queries())))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		items := h.PopulateItems(c, result.Items)
		h.HandleListResponse(c, items, basemodels.NewPagination(result.Page, result.Limit, result.Total))
		return nil
	})
}

// FindOneById tìm một document theo định danh trong URI params.
// Định danh chấp nhận cả ObjectID 24 hex lẫn seqId; bản ghi ngừng hoạt động vẫn truy cập được.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := c.Params("id")
		data, err := h.BaseService.FindOneByIdentifier(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, h.PopulateItem(c, data), nil)
		return nil
	})
}

// UpdateById cập nhật một document theo định danh.
// Chỉ các field DTO UpdateInput xuất ra là được sửa; các trường hệ thống luôn giữ nguyên.
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		update := input.ToUpdate()
		if len(update) == 0 {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Không có trường nào để cập nhật",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		if userSeq, err := h.GetAuthSeq(c); err == nil {
			update["updatedBy"] = userSeq
		}

		data, err := h.BaseService.UpdateByIdentifier(c.Context(), c.Params("id"), update)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, h.PopulateItem(c, data), nil)
		return nil
	})
}

// SoftDeleteById ngừng hoạt động một document theo định danh.
// Bản ghi không bị xóa vật lý, chỉ chuyển status=false.
func (h *BaseHandler[T, CreateInput, UpdateInput]) SoftDeleteById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var updatedBy *int64
		if userSeq, err := h.GetAuthSeq(c); err == nil {
			updatedBy = &userSeq
		}

		data, err := h.BaseService.SoftDeleteByIdentifier(c.Context(), c.Params("id"), updatedBy)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// ReactivateById kích hoạt lại một document đã ngừng hoạt động
func (h *BaseHandler[T, CreateInput, UpdateInput]) ReactivateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var updatedBy *int64
		if userSeq, err := h.GetAuthSeq(c); err == nil {
			updatedBy = &userSeq
		}

		data, err := h.BaseService.ReactivateByIdentifier(c.Context(), c.Params("id"), updatedBy)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindByAuth trả về danh sách document của chính người dùng đã xác thực (getByAuth)
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindByAuth(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userSeq, err := h.GetAuthSeq(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		filter := basesvc.BuildListFilter(c.Queries(), h.filterOptions)
		filter[h.AuthField] = userSeq

		result, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit,
			options.Find().SetSort(basesvc.BuildListSort(c.Queries())))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		items := h.PopulateItems(c, result.Items)
		h.HandleListResponse(c, items, basemodels.NewPagination(result.Page, result.Limit, result.Total))
		return nil
	})
}

// FindByParentFactory tạo handler danh sách theo bản ghi cha (getBy<Parent>Id/:id).
// dbField là tên field tham chiếu trong collection con (ví dụ: businessTypeId).
// Định danh cha trong URL là seqId của bản ghi cha.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindByParentFactory(dbField string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return h.SafeHandler(c, func() error {
			parentSeq, err := strconv.ParseInt(c.Params("id"), 10, 64)
			if err != nil {
				h.HandleResponse(c, nil, common.ErrInvalidIdentifier)
				return nil
			}

			page, limit := h.ParsePagination(c)
			filter := basesvc.BuildListFilter(c.Queries(), h.filterOptions)
			filter[dbField] = parentSeq

			result, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit,
				options.Find().SetSort(basesvc.BuildListSort(c.Queries())))
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}

			items := h.PopulateItems(c, result.Items)
			h.HandleListResponse(c, items, basemodels.NewPagination(result.Page, result.Limit, result.Total))
			return nil
		})
	}
}

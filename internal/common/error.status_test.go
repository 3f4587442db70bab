package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// TestNewError kiểm tra NewError giữ nguyên đầy đủ thông tin lỗi
func TestNewError(t *testing.T) {
	err := NewError(ErrCodeValidationInput, "Dữ liệu không hợp lệ", StatusBadRequest, map[string]string{"field": "name"})

	var appErr *Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrCodeValidationInput.Code, appErr.Code.Code)
	assert.Equal(t, "Dữ liệu không hợp lệ", appErr.Message)
	assert.Equal(t, StatusBadRequest, appErr.StatusCode)
	assert.NotNil(t, appErr.Details)
	assert.Equal(t, "Dữ liệu không hợp lệ", appErr.Error())
}

// TestErrorIs kiểm tra errors.Is hoạt động với các sentinel error
func TestErrorIs(t *testing.T) {
	err := NewError(ErrCodeValidationIdentifier, "Định danh không hợp lệ: phải là ObjectID 24 ký tự hex hoặc khóa số tuần tự", StatusBadRequest, nil)
	assert.True(t, errors.Is(err, ErrInvalidIdentifier))

	other := NewError(ErrCodeValidationInput, "Dữ liệu đầu vào không hợp lệ", StatusBadRequest, nil)
	assert.False(t, errors.Is(other, ErrInvalidIdentifier))
	assert.False(t, errors.Is(err, nil))
}

// TestConvertMongoError kiểm tra chuyển đổi lỗi MongoDB sang lỗi hệ thống
func TestConvertMongoError(t *testing.T) {
	t.Run("nil giữ nguyên nil", func(t *testing.T) {
		assert.NoError(t, ConvertMongoError(nil))
	})

	t.Run("ErrNotFound được giữ nguyên", func(t *testing.T) {
		assert.True(t, errors.Is(ConvertMongoError(ErrNotFound), ErrNotFound))
	})

	t.Run("lỗi hệ thống đã convert thì trả về nguyên vẹn", func(t *testing.T) {
		err := NewError(ErrCodeBusinessOperation, "Chi nhánh không tồn tại", StatusBadRequest, nil)
		assert.Same(t, err, ConvertMongoError(err))
	})

	t.Run("lỗi trùng khóa thành ErrMongoDuplicate", func(t *testing.T) {
		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
		assert.True(t, errors.Is(ConvertMongoError(dup), ErrMongoDuplicate))
	})

	t.Run("lỗi command theo dải mã", func(t *testing.T) {
		assert.True(t, errors.Is(ConvertMongoError(mongo.CommandError{Code: 150}), ErrMongoConnection))
		assert.True(t, errors.Is(ConvertMongoError(mongo.CommandError{Code: 350}), ErrMongoQuery))
		assert.True(t, errors.Is(ConvertMongoError(mongo.CommandError{Code: 450}), ErrMongoWrite))
		assert.True(t, errors.Is(ConvertMongoError(mongo.CommandError{Code: 600}), ErrMongoSystem))
	})

	t.Run("lỗi không xác định được bọc thành lỗi database", func(t *testing.T) {
		converted := ConvertMongoError(errors.New("boom"))
		var appErr *Error
		require.True(t, errors.As(converted, &appErr))
		assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	})
}

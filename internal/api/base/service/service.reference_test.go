// Package basesvc - test ánh xạ trạng thái tham chiếu cha sang lỗi nghiệp vụ.
package basesvc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food_market/internal/common"
)

func TestReferenceStateError_OK(t *testing.T) {
	assert.NoError(t, ReferenceStateError("Loại hình kinh doanh", 1, RefOK))
}

// Không-tồn-tại và đã-ngừng-hoạt-động phải cho hai thông báo khác nhau,
// cùng nêu đích danh bản ghi cha và trả về 400
func TestReferenceStateError_DistinguishesMissingFromInactive(t *testing.T) {
	notFound := ReferenceStateError("Loại hình kinh doanh", 7, RefNotFound)
	inactive := ReferenceStateError("Loại hình kinh doanh", 7, RefInactive)

	var nfErr, inErr *common.Error
	require.True(t, errors.As(notFound, &nfErr))
	require.True(t, errors.As(inactive, &inErr))

	assert.Equal(t, common.StatusBadRequest, nfErr.StatusCode)
	assert.Equal(t, common.StatusBadRequest, inErr.StatusCode)
	assert.Equal(t, common.ErrCodeBusinessReference.Code, nfErr.Code.Code)
	assert.Equal(t, common.ErrCodeBusinessReference.Code, inErr.Code.Code)

	assert.Contains(t, nfErr.Message, "Loại hình kinh doanh")
	assert.Contains(t, nfErr.Message, "không tồn tại")
	assert.Contains(t, inErr.Message, "đã ngừng hoạt động")
	assert.NotEqual(t, nfErr.Message, inErr.Message)
}

// Package catalogdto - test DTO update chỉ xuất các field được cung cấp.
package catalogdto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionUpdateInput_ToUpdate_OnlyProvidedFields(t *testing.T) {
	endAt := int64(1735689600000)
	input := SubscriptionUpdateInput{EndAt: &endAt}

	update := input.ToUpdate()

	assert.Equal(t, map[string]interface{}{"endAt": endAt}, update)
}

func TestSubscriptionUpdateInput_ToUpdate_Empty(t *testing.T) {
	update := SubscriptionUpdateInput{}.ToUpdate()

	assert.Empty(t, update, "không field nào được cung cấp thì map rỗng")
}

// false/chuỗi rỗng vẫn là giá trị hợp lệ khi con trỏ khác nil
func TestSubscriptionUpdateInput_ToUpdate_ZeroValuesKept(t *testing.T) {
	autoRenew := false
	paymentRef := ""
	input := SubscriptionUpdateInput{AutoRenew: &autoRenew, PaymentRef: &paymentRef}

	update := input.ToUpdate()

	assert.Equal(t, false, update["autoRenew"])
	assert.Equal(t, "", update["paymentRef"])
	assert.NotContains(t, update, "endAt")
}

func TestGiftCardCreateInput_ToModel_BalanceEqualsAmount(t *testing.T) {
	input := GiftCardCreateInput{
		BusinessBranchID: 3,
		Code:             "GIFT2026",
		Amount:           500000,
	}

	card := input.ToModel()

	assert.Equal(t, input.Amount, card.Balance, "thẻ mới phát hành có số dư bằng mệnh giá")
	assert.Equal(t, "GIFT2026", card.Code)
}

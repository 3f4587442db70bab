// Package database - Index cho các collection nghiệp vụ.
package database

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	authmodels "food_market/internal/api/auth/models"
	catalogmodels "food_market/internal/api/catalog/models"
	cateringmodels "food_market/internal/api/catering/models"
	chatmodels "food_market/internal/api/chat/models"
	geomodels "food_market/internal/api/geo/models"
	"food_market/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionModels ánh xạ collection tới model của nó.
// Index đơn được khai báo bằng tag `index` ngay trên field của model
// (unique, single:<order>), builder đọc tag để sinh index — khai báo
// và schema không bao giờ lệch nhau.
func collectionModels() map[string]interface{} {
	names := global.MongoDB_ColNames
	return map[string]interface{}{
		names.Users:            authmodels.User{},
		names.BusinessTypes:    catalogmodels.BusinessType{},
		names.BusinessBranches: catalogmodels.BusinessBranch{},
		names.Plans:            catalogmodels.Plan{},
		names.Subscriptions:    catalogmodels.Subscription{},
		names.GiftCards:        catalogmodels.GiftCard{},
		names.CateringEvents:   cateringmodels.CateringEvent{},
		names.ScheduleMeetings: cateringmodels.ScheduleMeeting{},
		names.ReviewRequests:   cateringmodels.ReviewRequest{},
		names.Countries:        geomodels.Country{},
		names.States:           geomodels.State{},
		names.Cities:           geomodels.City{},
		names.UserAddresses:    geomodels.UserAddress{},
		names.ChatMessages:     chatmodels.ChatMessage{},
		names.Notifications:    chatmodels.Notification{},
	}
}

// compoundIndexes các index nhiều field không khai báo được bằng tag trên một field
func compoundIndexes() map[string][]mongo.IndexModel {
	names := global.MongoDB_ColNames
	return map[string][]mongo.IndexModel{
		// Tra cứu hội thoại giữa hai người dùng theo thời gian
		names.ChatMessages: {{
			Keys: bson.D{
				{Key: "senderId", Value: 1},
				{Key: "receiverId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("chat_conversation"),
		}},
		// Tra cứu thông báo của người nhận theo thời gian (getByAuth, markRead)
		names.Notifications: {{
			Keys: bson.D{
				{Key: "recipientId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
			Options: options.Index().SetName("notification_recipient"),
		}},
	}
}

// CreateIndexes tạo index cho toàn bộ collection nghiệp vụ:
// seqId là khóa số tuần tự duy nhất trong từng collection nên luôn có unique index,
// các index đơn đọc từ tag `index` trên model, cộng các compound index khai báo riêng.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	for colName, model := range collectionModels() {
		collection := db.Collection(colName)

		if err := ensureIndex(ctx, collection, mongo.IndexModel{
			Keys:    bson.D{{Key: "seqId", Value: 1}},
			Options: options.Index().SetName("seqId_unique").SetUnique(true),
		}); err != nil {
			return err
		}

		for _, indexModel := range IndexModelsFromTags(model) {
			if err := ensureIndex(ctx, collection, indexModel); err != nil {
				return err
			}
		}
	}

	for colName, indexes := range compoundIndexes() {
		collection := db.Collection(colName)
		for _, indexModel := range indexes {
			if err := ensureIndex(ctx, collection, indexModel); err != nil {
				return err
			}
		}
	}

	return nil
}

// IndexModelsFromTags sinh index từ tag `index` trên các field của model.
// Hỗ trợ unique và single:<order>; nhiều khai báo trên một field cách nhau bằng dấu chấm phẩy.
func IndexModelsFromTags(model interface{}) []mongo.IndexModel {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	var indexes []mongo.IndexModel
	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}

		bsonField := strings.Split(field.Tag.Get("bson"), ",")[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, config := range strings.Split(tag, ";") {
			parts := strings.Split(config, ":")
			switch parts[0] {
			case "unique":
				indexes = append(indexes, mongo.IndexModel{
					Keys:    bson.D{{Key: bsonField, Value: 1}},
					Options: options.Index().SetName(bsonField + "_unique").SetUnique(true),
				})
			case "single":
				order := 1
				if len(parts) > 1 {
					if n, err := strconv.Atoi(parts[1]); err == nil && n != 0 {
						order = n
					}
				}
				indexes = append(indexes, mongo.IndexModel{
					Keys:    bson.D{{Key: bsonField, Value: order}},
					Options: options.Index().SetName(bsonField + "_single"),
				})
			}
		}
	}
	return indexes
}

// ensureIndex tạo một index, bỏ qua lỗi index đã tồn tại với cùng cấu hình
func ensureIndex(ctx context.Context, collection *mongo.Collection, indexModel mongo.IndexModel) error {
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil && !isIndexExistsError(err) {
		return err
	}
	return nil
}

// isIndexExistsError kiểm tra lỗi index đã tồn tại (tạo lại index cùng cấu hình không phải lỗi)
func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "IndexOptionsConflict") ||
		strings.Contains(msg, "IndexKeySpecsConflict") ||
		strings.Contains(msg, "already exists")
}

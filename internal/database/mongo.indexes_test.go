package database

import (
	"testing"

	authmodels "food_market/internal/api/auth/models"
	chatmodels "food_market/internal/api/chat/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// indexKeys trích danh sách field name từ Keys của một IndexModel
func indexKeys(t *testing.T, indexModel mongo.IndexModel) []string {
	t.Helper()
	keys, ok := indexModel.Keys.(bson.D)
	require.True(t, ok)
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, key.Key)
	}
	return names
}

func TestIndexModelsFromTags_User(t *testing.T) {
	indexes := IndexModelsFromTags(authmodels.User{})

	var names [][]string
	for _, indexModel := range indexes {
		names = append(names, indexKeys(t, indexModel))
	}
	assert.Contains(t, names, []string{"email"})
	assert.Contains(t, names, []string{"role"})

	for _, indexModel := range indexes {
		if keys := indexKeys(t, indexModel); len(keys) == 1 && keys[0] == "email" {
			require.NotNil(t, indexModel.Options.Unique)
			assert.True(t, *indexModel.Options.Unique)
		}
	}
}

func TestIndexModelsFromTags_NotificationUsesRecipientField(t *testing.T) {
	indexes := IndexModelsFromTags(chatmodels.Notification{})
	require.Len(t, indexes, 1)

	keys := indexKeys(t, indexes[0])
	assert.Equal(t, []string{"recipientId"}, keys)
}

func TestIndexModelsFromTags_SingleOrder(t *testing.T) {
	type sample struct {
		Score int64 `bson:"score" index:"single:-1"`
	}
	indexes := IndexModelsFromTags(sample{})
	require.Len(t, indexes, 1)

	keys, ok := indexes[0].Keys.(bson.D)
	require.True(t, ok)
	require.Len(t, keys, 1)
	assert.Equal(t, "score", keys[0].Key)
	assert.Equal(t, -1, keys[0].Value)
}

func TestIndexModelsFromTags_IgnoresUntaggedAndUnnamed(t *testing.T) {
	type sample struct {
		Plain  string `bson:"plain"`
		Hidden string `bson:"-" index:"unique"`
	}
	assert.Empty(t, IndexModelsFromTags(sample{}))
}

func TestCompoundIndexes_NotificationRecipient(t *testing.T) {
	var notification *mongo.IndexModel
	for _, indexes := range compoundIndexes() {
		for i := range indexes {
			if indexes[i].Options != nil && indexes[i].Options.Name != nil &&
				*indexes[i].Options.Name == "notification_recipient" {
				notification = &indexes[i]
			}
		}
	}
	require.NotNil(t, notification)

	keys := indexKeys(t, *notification)
	assert.Equal(t, []string{"recipientId", "createdAt"}, keys)
	assert.NotContains(t, keys, "userId")
}

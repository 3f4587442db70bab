package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"food_market/config"
	"food_market/internal/global"
)

// InitRegistry khởi tạo registry và đăng ký các collection
func InitRegistry() {
	if err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections đăng ký các collection MongoDB vào registry toàn cục
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName, err)
		return err
	}

	names := global.MongoDB_ColNames
	colNames := []string{
		names.Users,
		names.BusinessTypes, names.BusinessBranches, names.Plans, names.Subscriptions, names.GiftCards,
		names.CateringEvents, names.ScheduleMeetings, names.ReviewRequests,
		names.Countries, names.States, names.Cities, names.UserAddresses,
		names.ChatMessages, names.Notifications,
		names.Counters,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Warnf("Collection %s already registered", name)
		}
	}

	return nil
}

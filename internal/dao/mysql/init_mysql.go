package mysql

import (
	"fmt"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/config"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql/repository"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init opens the MySQL connection, migrates the schema and returns the
// repository aggregate. It aborts the process on failure since nothing
// works without the database.
func Init() *repository.Repositories {
	conf := config.GetConfig()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("falha ao conectar ao mysql", zap.Error(err))
	}

	err = db.AutoMigrate(
		&model.Tenant{},
		&model.User{},
		&model.WhatsappConnection{},
		&model.Contact{},
		&model.Message{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	)
	if err != nil {
		zap.L().Fatal("falha ao migrar o schema", zap.Error(err))
	}

	zap.L().Info("mysql conectado",
		zap.String("host", conf.MysqlConfig.Host),
		zap.String("database", conf.MysqlConfig.DatabaseName))
	return repository.NewRepositories(db)
}

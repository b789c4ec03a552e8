// file: database/connect.go
package database

import (
	"hguoj/config"
	"hguoj/models"
	"hguoj/utils"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() error {
	var err error
	// TranslateError 让唯一键冲突统一表现为 gorm.ErrDuplicatedKey，
	// 队名的 check-and-insert 依赖它兜底并发竞争
	DB, err = gorm.Open(mysql.Open(config.C.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(config.C.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.C.Database.MaxOpenConns)
	// 连接定期重建，避免 MySQL wait_timeout 掐断空闲连接
	sqlDB.SetConnMaxLifetime(config.C.Database.ConnMaxLifetime)

	utils.Log.Info("database connection established")
	return nil
}

func MigrateTables() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Contest{},
		&models.Problem{},
		&models.ContestTeam{},
		&models.ContestTeamMember{},
		&models.ContestTeamSolve{},
	)
}

package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&StudentProfile{},
		&CenterProfile{},
		&AmbassadorProfile{},
		&Formation{},
		&Enrollment{},
		&MobileMoneyTransaction{},
		&Transaction{},
		&Donation{},
		&BlockchainRecord{},
		&Certificate{},
	)
}

func dropAllTables(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&Certificate{},
		&BlockchainRecord{},
		&Donation{},
		&Transaction{},
		&MobileMoneyTransaction{},
		&Enrollment{},
		&Formation{},
		&AmbassadorProfile{},
		&CenterProfile{},
		&StudentProfile{},
		&User{},
	)
}

// ResetTables drops and recreates every table.
func ResetTables(db *gorm.DB) error {
	if err := dropAllTables(db); err != nil {
		return err
	}

	return InitTables(db)
}

package model

// All returns every model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Schedule{},
		&Attendance{},
		&Score{},
		&Announcement{},
	}
}

package db

import "gorm.io/gorm"

// Database hides the concrete gorm handle from the rest of the app.
type Database interface {
	GetDB() *gorm.DB
}

type GormDatabase struct {
	DB *gorm.DB
}

func (g *GormDatabase) GetDB() *gorm.DB { return g.DB }

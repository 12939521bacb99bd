package models

import "time"

// EntrepotModel represents the database model for Entrepot
type EntrepotModel struct {
	ID           int64     `gorm:"column:id_entrepot;primaryKey;autoIncrement"`
	Adresse      string    `gorm:"type:varchar(255);not null"`
	Ville        string    `gorm:"type:varchar(100);not null;index"`
	Telephone    *string   `gorm:"type:varchar(20)"`
	IDUser       *int64    `gorm:"column:id_user;index"`
	DateCreation time.Time `gorm:"column:date_creation;not null;autoCreateTime"`
}

func (EntrepotModel) TableName() string {
	return "entrepots"
}

// ClientModel represents the database model for Client
type ClientModel struct {
	ID             int64     `gorm:"column:id_client;primaryKey;autoIncrement"`
	Prenom         string    `gorm:"type:varchar(100);not null"`
	Nom            string    `gorm:"type:varchar(100);not null"`
	CIN            *string   `gorm:"column:cin;type:varchar(20);uniqueIndex"`
	Telephone      *string   `gorm:"type:varchar(20)"`
	Email          *string   `gorm:"type:varchar(255)"`
	Adresse        *string   `gorm:"type:text"`
	IDGestionnaire int64     `gorm:"column:id_gestionnaire;not null;index"`
	DateCreation   time.Time `gorm:"column:date_creation;not null;autoCreateTime"`
}

func (ClientModel) TableName() string {
	return "clients"
}

package models

import "time"

// UserModel represents the database model for User
type UserModel struct {
	ID             int64     `gorm:"column:id_utilisateur;primaryKey;autoIncrement"`
	NomUtilisateur string    `gorm:"column:nom_utilisateur;type:varchar(100);not null;uniqueIndex"`
	MotDePasse     string    `gorm:"column:mot_de_passe;type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(20);not null;index"`
	CIN            *string   `gorm:"column:cin;type:varchar(20)"`
	Actif          bool      `gorm:"default:true;not null"`
	IDEntrepot     *int64    `gorm:"column:id_entrepot;index"`
	DateCreation   time.Time `gorm:"column:date_creation;not null;autoCreateTime"`

	Entrepot *EntrepotModel `gorm:"foreignKey:IDEntrepot"`
}

func (UserModel) TableName() string {
	return "utilisateurs"
}

// RefreshTokenModel represents the database model for RefreshToken
type RefreshTokenModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:id_utilisateur;not null;index"`
	Token     string    `gorm:"type:varchar(500);not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	Revoked   bool      `gorm:"default:false;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

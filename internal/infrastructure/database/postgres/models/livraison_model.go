package models

import "time"

// LivraisonModel represents the database model for Livraison
type LivraisonModel struct {
	ID                    int64      `gorm:"column:id_livraison;primaryKey;autoIncrement"`
	IDEntrepotSource      int64      `gorm:"column:id_entrepot_source;not null;index"`
	IDEntrepotDestination int64      `gorm:"column:id_entrepot_destination;not null;index"`
	IDLivreur             *int64     `gorm:"column:id_livreur;index"`
	IDVehicule            *int64     `gorm:"column:id_vehicule;index"`
	Statut                string     `gorm:"type:varchar(20);not null;default:'CREEE';index"`
	DateCreation          time.Time  `gorm:"column:date_creation;not null;autoCreateTime;index"`
	DateLivraison         *time.Time `gorm:"column:date_livraison"`

	Source      *EntrepotModel `gorm:"foreignKey:IDEntrepotSource"`
	Destination *EntrepotModel `gorm:"foreignKey:IDEntrepotDestination"`
	Livreur     *UserModel     `gorm:"foreignKey:IDLivreur"`
	Vehicule    *VehiculeModel `gorm:"foreignKey:IDVehicule"`
}

func (LivraisonModel) TableName() string {
	return "livraisons"
}

// VehiculeModel represents the database model for Vehicule
type VehiculeModel struct {
	ID              int64     `gorm:"column:id_vehicule;primaryKey;autoIncrement"`
	Immatriculation string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	TypeVehicule    string    `gorm:"column:type_vehicule;type:varchar(20);not null"`
	Statut          string    `gorm:"type:varchar(20);not null;default:'DISPONIBLE';index"`
	IDEntrepot      *int64    `gorm:"column:id_entrepot;index"`
	DateCreation    time.Time `gorm:"column:date_creation;not null;autoCreateTime"`

	Entrepot *EntrepotModel `gorm:"foreignKey:IDEntrepot"`
}

func (VehiculeModel) TableName() string {
	return "vehicules"
}

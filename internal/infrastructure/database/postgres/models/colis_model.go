package models

import "time"

// ColisModel represents the database model for Colis
type ColisModel struct {
	ID                     int64     `gorm:"column:id_colis;primaryKey;autoIncrement"`
	IDClient               *int64    `gorm:"column:id_client;index"`
	Poids                  float64   `gorm:"type:decimal(8,2);not null"`
	TypeColis              string    `gorm:"column:type_colis;type:varchar(20);not null;default:'STANDARD'"`
	ReceiverCIN            string    `gorm:"column:receiver_cin;type:varchar(20);not null;index"`
	Statut                 string    `gorm:"type:varchar(20);not null;default:'ENREGISTRE';index"`
	VilleDestination       string    `gorm:"column:ville_destination;type:varchar(100);not null"`
	Prix                   float64   `gorm:"type:decimal(10,2);not null"`
	IDEntrepotLocalisation *int64    `gorm:"column:id_entrepot_localisation;index"`
	IDLivraison            *int64    `gorm:"column:id_livraison;index"`
	IDUser                 int64     `gorm:"column:id_user;not null"`
	DateCreation           time.Time `gorm:"column:date_creation;not null;autoCreateTime;index"`

	Client    *ClientModel    `gorm:"foreignKey:IDClient"`
	Entrepot  *EntrepotModel  `gorm:"foreignKey:IDEntrepotLocalisation"`
	Livraison *LivraisonModel `gorm:"foreignKey:IDLivraison"`
}

func (ColisModel) TableName() string {
	return "colis"
}

// HistoriqueStatutModel is the append-only status change log. Rows are
// only ever inserted.
type HistoriqueStatutModel struct {
	ID             int64     `gorm:"column:id_historique;primaryKey;autoIncrement"`
	IDColis        int64     `gorm:"column:id_colis;not null;index"`
	AncienStatut   *string   `gorm:"column:ancien_statut;type:varchar(20)"`
	NouveauStatut  string    `gorm:"column:nouveau_statut;type:varchar(20);not null"`
	IDUtilisateur  int64     `gorm:"column:id_utilisateur;not null"`
	DateChangement time.Time `gorm:"column:date_changement;not null;autoCreateTime"`
}

func (HistoriqueStatutModel) TableName() string {
	return "historique_statut_colis"
}

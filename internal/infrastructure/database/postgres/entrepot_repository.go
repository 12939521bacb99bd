package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"logitrack/internal/domain/entrepot"
	"logitrack/internal/infrastructure/database/postgres/models"
)

type EntrepotRepository struct {
	db *DB
}

func NewEntrepotRepository(db *DB) *EntrepotRepository {
	return &EntrepotRepository{db: db}
}

func toEntrepotEntity(m *models.EntrepotModel) entrepot.Entrepot {
	return entrepot.Entrepot{
		ID:           m.ID,
		Adresse:      m.Adresse,
		Ville:        m.Ville,
		Telephone:    m.Telephone,
		IDUser:       m.IDUser,
		DateCreation: m.DateCreation,
	}
}

func (r *EntrepotRepository) Create(ctx context.Context, e *entrepot.Entrepot) error {
	dbModel := &models.EntrepotModel{
		Adresse:   e.Adresse,
		Ville:     e.Ville,
		Telephone: e.Telephone,
		IDUser:    e.IDUser,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create entrepot: %w", err)
	}

	e.ID = dbModel.ID
	e.DateCreation = dbModel.DateCreation

	return nil
}

func (r *EntrepotRepository) GetByID(ctx context.Context, id int64) (*entrepot.Entrepot, error) {
	var dbModel models.EntrepotModel
	err := r.db.DB.WithContext(ctx).
		Where("id_entrepot = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entrepot.ErrEntrepotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get entrepot: %w", err)
	}

	e := toEntrepotEntity(&dbModel)
	return &e, nil
}

func (r *EntrepotRepository) List(ctx context.Context) ([]*entrepot.Detail, error) {
	type row struct {
		models.EntrepotModel
		GestionnaireNom *string
	}

	var rows []row
	if err := r.db.DB.WithContext(ctx).
		Model(&models.EntrepotModel{}).
		Select("entrepots.*, utilisateurs.nom_utilisateur AS gestionnaire_nom").
		Joins("LEFT JOIN utilisateurs ON entrepots.id_user = utilisateurs.id_utilisateur").
		Order("entrepots.id_entrepot").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list entrepots: %w", err)
	}

	details := make([]*entrepot.Detail, 0, len(rows))
	for i := range rows {
		details = append(details, &entrepot.Detail{
			Entrepot:        toEntrepotEntity(&rows[i].EntrepotModel),
			GestionnaireNom: rows[i].GestionnaireNom,
		})
	}
	return details, nil
}

// AssignGestionnaire backfills the responsible gestionnaire without
// ever displacing one: the WHERE clause only matches a vacant slot.
func (r *EntrepotRepository) AssignGestionnaire(ctx context.Context, entrepotID, userID int64) (bool, error) {
	result := r.db.DB.WithContext(ctx).
		Model(&models.EntrepotModel{}).
		Where("id_entrepot = ? AND id_user IS NULL", entrepotID).
		Update("id_user", userID)

	if result.Error != nil {
		return false, fmt.Errorf("failed to assign gestionnaire: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *EntrepotRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&models.EntrepotModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count entrepots: %w", err)
	}
	return count, nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"logitrack/internal/domain/vehicule"
	"logitrack/internal/infrastructure/database/postgres/models"
)

type VehiculeRepository struct {
	db *DB
}

func NewVehiculeRepository(db *DB) *VehiculeRepository {
	return &VehiculeRepository{db: db}
}

func toVehiculeEntity(m *models.VehiculeModel) vehicule.Vehicule {
	return vehicule.Vehicule{
		ID:              m.ID,
		Immatriculation: m.Immatriculation,
		TypeVehicule:    vehicule.TypeVehicule(m.TypeVehicule),
		Statut:          vehicule.Statut(m.Statut),
		IDEntrepot:      m.IDEntrepot,
		DateCreation:    m.DateCreation,
	}
}

func (r *VehiculeRepository) Create(ctx context.Context, v *vehicule.Vehicule) error {
	dbModel := &models.VehiculeModel{
		Immatriculation: v.Immatriculation,
		TypeVehicule:    string(v.TypeVehicule),
		Statut:          string(v.Statut),
		IDEntrepot:      v.IDEntrepot,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return vehicule.ErrDuplicatePlate
		}
		return fmt.Errorf("failed to create vehicule: %w", err)
	}

	v.ID = dbModel.ID
	v.DateCreation = dbModel.DateCreation

	return nil
}

func (r *VehiculeRepository) GetByID(ctx context.Context, id int64) (*vehicule.Vehicule, error) {
	var dbModel models.VehiculeModel
	err := r.db.DB.WithContext(ctx).
		Where("id_vehicule = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicule.ErrVehiculeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicule: %w", err)
	}

	v := toVehiculeEntity(&dbModel)
	return &v, nil
}

func (r *VehiculeRepository) scanDetails(ctx context.Context, conds func(*gorm.DB) *gorm.DB) ([]*vehicule.Detail, error) {
	type row struct {
		models.VehiculeModel
		EntrepotVille *string
	}

	query := r.db.DB.WithContext(ctx).
		Model(&models.VehiculeModel{}).
		Select("vehicules.*, entrepots.ville AS entrepot_ville").
		Joins("LEFT JOIN entrepots ON vehicules.id_entrepot = entrepots.id_entrepot").
		Order("vehicules.immatriculation")

	var rows []row
	if err := conds(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicules: %w", err)
	}

	details := make([]*vehicule.Detail, 0, len(rows))
	for i := range rows {
		details = append(details, &vehicule.Detail{
			Vehicule:      toVehiculeEntity(&rows[i].VehiculeModel),
			EntrepotVille: rows[i].EntrepotVille,
		})
	}
	return details, nil
}

func (r *VehiculeRepository) List(ctx context.Context, entrepotID *int64) ([]*vehicule.Detail, error) {
	return r.scanDetails(ctx, func(q *gorm.DB) *gorm.DB {
		if entrepotID != nil {
			return q.Where("vehicules.id_entrepot = ?", *entrepotID)
		}
		return q
	})
}

func (r *VehiculeRepository) ListDisponibles(ctx context.Context, entrepotID int64) ([]*vehicule.Detail, error) {
	return r.scanDetails(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("vehicules.id_entrepot = ? AND vehicules.statut = ?",
			entrepotID, string(vehicule.StatutDisponible))
	})
}

func (r *VehiculeRepository) UpdateStatut(ctx context.Context, id int64, statut vehicule.Statut) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.VehiculeModel{}).
		Where("id_vehicule = ?", id).
		Update("statut", string(statut))

	if result.Error != nil {
		return fmt.Errorf("failed to update vehicule status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicule.ErrVehiculeNotFound
	}

	return nil
}

func (r *VehiculeRepository) Reassign(ctx context.Context, id int64, entrepotID *int64) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.VehiculeModel{}).
		Where("id_vehicule = ?", id).
		Update("id_entrepot", entrepotID)

	if result.Error != nil {
		return fmt.Errorf("failed to reassign vehicule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return vehicule.ErrVehiculeNotFound
	}

	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"logitrack/internal/domain/client"
	"logitrack/internal/infrastructure/database/postgres/models"
)

type ClientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func toClientEntity(m *models.ClientModel) *client.Client {
	return &client.Client{
		ID:             m.ID,
		Prenom:         m.Prenom,
		Nom:            m.Nom,
		CIN:            m.CIN,
		Telephone:      m.Telephone,
		Email:          m.Email,
		Adresse:        m.Adresse,
		IDGestionnaire: m.IDGestionnaire,
		DateCreation:   m.DateCreation,
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	dbModel := &models.ClientModel{
		Prenom:         c.Prenom,
		Nom:            c.Nom,
		CIN:            c.CIN,
		Telephone:      c.Telephone,
		Email:          c.Email,
		Adresse:        c.Adresse,
		IDGestionnaire: c.IDGestionnaire,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return client.ErrDuplicateCIN
		}
		return fmt.Errorf("failed to create client: %w", err)
	}

	c.ID = dbModel.ID
	c.DateCreation = dbModel.DateCreation

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	var dbModel models.ClientModel
	err := r.db.DB.WithContext(ctx).
		Where("id_client = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, client.ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return toClientEntity(&dbModel), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	var dbModels []models.ClientModel
	if err := r.db.DB.WithContext(ctx).
		Order("id_client").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, 0, len(dbModels))
	for i := range dbModels {
		clients = append(clients, toClientEntity(&dbModels[i]))
	}
	return clients, nil
}

func (r *ClientRepository) ListByGestionnaire(ctx context.Context, gestionnaireID int64) ([]*client.Client, error) {
	var dbModels []models.ClientModel
	if err := r.db.DB.WithContext(ctx).
		Where("id_gestionnaire = ?", gestionnaireID).
		Order("id_client").
		Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*client.Client, 0, len(dbModels))
	for i := range dbModels {
		clients = append(clients, toClientEntity(&dbModels[i]))
	}
	return clients, nil
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&models.ClientModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count clients: %w", err)
	}
	return count, nil
}

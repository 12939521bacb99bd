package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"logitrack/internal/domain/colis"
	"logitrack/internal/domain/livraison"
	"logitrack/internal/domain/vehicule"
	"logitrack/internal/infrastructure/database/postgres/models"
)

type LivraisonRepository struct {
	db *DB
}

func NewLivraisonRepository(db *DB) *LivraisonRepository {
	return &LivraisonRepository{db: db}
}

func toLivraisonEntity(m *models.LivraisonModel) livraison.Livraison {
	return livraison.Livraison{
		ID:                    m.ID,
		IDEntrepotSource:      m.IDEntrepotSource,
		IDEntrepotDestination: m.IDEntrepotDestination,
		IDLivreur:             m.IDLivreur,
		IDVehicule:            m.IDVehicule,
		Statut:                livraison.Statut(m.Statut),
		DateCreation:          m.DateCreation,
		DateLivraison:         m.DateLivraison,
	}
}

func (r *LivraisonRepository) GetByID(ctx context.Context, id int64) (*livraison.Livraison, error) {
	var dbModel models.LivraisonModel
	err := r.db.DB.WithContext(ctx).
		Where("id_livraison = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, livraison.ErrLivraisonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get livraison: %w", err)
	}

	l := toLivraisonEntity(&dbModel)
	return &l, nil
}

func (r *LivraisonRepository) FindOrCreateOpen(ctx context.Context, sourceID, destinationID int64) (*livraison.Livraison, error) {
	var dbModel models.LivraisonModel

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("id_entrepot_source = ? AND id_entrepot_destination = ? AND statut = ?",
				sourceID, destinationID, string(livraison.StatutCreee)).
			Order("id_livraison").
			First(&dbModel).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		dbModel = models.LivraisonModel{
			IDEntrepotSource:      sourceID,
			IDEntrepotDestination: destinationID,
			Statut:                string(livraison.StatutCreee),
		}
		return tx.Create(&dbModel).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find or create livraison: %w", err)
	}

	l := toLivraisonEntity(&dbModel)
	return &l, nil
}

type livraisonDetailRow struct {
	ID            int64
	Source        string
	Destination   string
	Livreur       *string
	Vehicule      *string
	Statut        string
	DateCreation  time.Time
	DateLivraison *time.Time
	NbColis       int64
}

func (r *LivraisonRepository) detailQuery(ctx context.Context) *gorm.DB {
	return r.db.DB.WithContext(ctx).
		Model(&models.LivraisonModel{}).
		Select("livraisons.id_livraison AS id, " +
			"src.ville AS source, " +
			"dst.ville AS destination, " +
			"utilisateurs.nom_utilisateur AS livreur, " +
			"vehicules.immatriculation AS vehicule, " +
			"livraisons.statut, " +
			"livraisons.date_creation, " +
			"livraisons.date_livraison, " +
			"COUNT(colis.id_colis) AS nb_colis").
		Joins("JOIN entrepots src ON livraisons.id_entrepot_source = src.id_entrepot").
		Joins("JOIN entrepots dst ON livraisons.id_entrepot_destination = dst.id_entrepot").
		Joins("LEFT JOIN utilisateurs ON livraisons.id_livreur = utilisateurs.id_utilisateur").
		Joins("LEFT JOIN vehicules ON livraisons.id_vehicule = vehicules.id_vehicule").
		Joins("LEFT JOIN colis ON colis.id_livraison = livraisons.id_livraison").
		Group("livraisons.id_livraison, src.ville, dst.ville, utilisateurs.nom_utilisateur, vehicules.immatriculation").
		Order("livraisons.id_livraison DESC")
}

func livraisonRowsToDetails(rows []livraisonDetailRow) []*livraison.Detail {
	details := make([]*livraison.Detail, 0, len(rows))
	for i := range rows {
		details = append(details, &livraison.Detail{
			ID:            rows[i].ID,
			Source:        rows[i].Source,
			Destination:   rows[i].Destination,
			Livreur:       rows[i].Livreur,
			Vehicule:      rows[i].Vehicule,
			Statut:        livraison.Statut(rows[i].Statut),
			DateCreation:  rows[i].DateCreation,
			DateLivraison: rows[i].DateLivraison,
			NbColis:       rows[i].NbColis,
		})
	}
	return details
}

func (r *LivraisonRepository) ListDisponibles(ctx context.Context, sourceEntrepotID int64) ([]*livraison.Detail, error) {
	var rows []livraisonDetailRow
	err := r.detailQuery(ctx).
		Where("livraisons.statut = ? AND livraisons.id_entrepot_source = ?",
			string(livraison.StatutCreee), sourceEntrepotID).
		Having("COUNT(colis.id_colis) >= 1").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list livraisons disponibles: %w", err)
	}

	return livraisonRowsToDetails(rows), nil
}

func (r *LivraisonRepository) ListByLivreur(ctx context.Context, livreurID int64) ([]*livraison.Detail, error) {
	var rows []livraisonDetailRow
	statuts := make([]string, 0, 2)
	for _, s := range livraison.StatutsLivreur() {
		statuts = append(statuts, string(s))
	}

	err := r.detailQuery(ctx).
		Where("livraisons.id_livreur = ? AND livraisons.statut IN ?", livreurID, statuts).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list livraisons by livreur: %w", err)
	}

	return livraisonRowsToDetails(rows), nil
}

func (r *LivraisonRepository) Prendre(ctx context.Context, livraisonID, livreurID, vehiculeID int64) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var run models.LivraisonModel
		err := tx.
			Where("id_livraison = ?", livraisonID).
			First(&run).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return livraison.ErrLivraisonNotFound
		}
		if err != nil {
			return err
		}
		var veh models.VehiculeModel
		err = tx.
			Where("id_vehicule = ?", vehiculeID).
			First(&veh).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return vehicule.ErrVehiculeNotFound
		}
		if err != nil {
			return err
		}

		runEntity := toLivraisonEntity(&run)
		vehEntity := toVehiculeEntity(&veh)
		if err := runEntity.CheckPrendre(&vehEntity); err != nil {
			return err
		}

		if err := tx.Model(&models.LivraisonModel{}).
			Where("id_livraison = ?", livraisonID).
			Updates(map[string]interface{}{
				"id_livreur":  livreurID,
				"id_vehicule": vehiculeID,
				"statut":      string(livraison.StatutEnCours),
			}).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.VehiculeModel{}).
			Where("id_vehicule = ?", vehiculeID).
			Update("statut", string(vehicule.StatutEnUtilisation)).Error; err != nil {
			return err
		}

		return r.transitionAttachedColis(tx, livraisonID, colis.StatutEnCours, nil, livreurID)
	})
}

func (r *LivraisonRepository) Livrer(ctx context.Context, livraisonID, actingUserID int64) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var run models.LivraisonModel
		err := tx.
			Where("id_livraison = ?", livraisonID).
			First(&run).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return livraison.ErrLivraisonNotFound
		}
		if err != nil {
			return err
		}
		runEntity := toLivraisonEntity(&run)
		if err := runEntity.CheckLivrer(actingUserID); err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&models.LivraisonModel{}).
			Where("id_livraison = ?", livraisonID).
			Updates(map[string]interface{}{
				"statut":         string(livraison.StatutLivree),
				"date_livraison": now,
			}).Error; err != nil {
			return err
		}

		if run.IDVehicule != nil {
			if err := tx.Model(&models.VehiculeModel{}).
				Where("id_vehicule = ?", *run.IDVehicule).
				Updates(map[string]interface{}{
					"statut":      string(vehicule.StatutDisponible),
					"id_entrepot": run.IDEntrepotDestination,
				}).Error; err != nil {
				return err
			}
		}

		dest := run.IDEntrepotDestination
		return r.transitionAttachedColis(tx, livraisonID, colis.StatutLivre, &dest, actingUserID)
	})
}

// transitionAttachedColis moves every colis on the run to the target
// status, relocating them when a destination entrepot is given, and
// records one history row per parcel.
func (r *LivraisonRepository) transitionAttachedColis(tx *gorm.DB, livraisonID int64, target colis.Statut, destEntrepotID *int64, actingUserID int64) error {
	var attached []models.ColisModel
	if err := tx.
		Where("id_livraison = ?", livraisonID).
		Find(&attached).Error; err != nil {
		return err
	}
	if len(attached) == 0 {
		return nil
	}

	updates := map[string]interface{}{"statut": string(target)}
	if destEntrepotID != nil {
		updates["id_entrepot_localisation"] = *destEntrepotID
	}

	ids := make([]int64, 0, len(attached))
	for i := range attached {
		ids = append(ids, attached[i].ID)
	}

	if err := tx.Model(&models.ColisModel{}).
		Where("id_colis IN ?", ids).
		Updates(updates).Error; err != nil {
		return err
	}

	history := make([]models.HistoriqueStatutModel, 0, len(attached))
	for i := range attached {
		ancien := attached[i].Statut
		history = append(history, models.HistoriqueStatutModel{
			IDColis:       attached[i].ID,
			AncienStatut:  &ancien,
			NouveauStatut: string(target),
			IDUtilisateur: actingUserID,
		})
	}
	return tx.Create(&history).Error
}

func (r *LivraisonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&models.LivraisonModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count livraisons: %w", err)
	}
	return count, nil
}

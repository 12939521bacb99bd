package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"logitrack/internal/domain/colis"
	"logitrack/internal/infrastructure/database/postgres/models"
)

type ColisRepository struct {
	db *DB
}

func NewColisRepository(db *DB) *ColisRepository {
	return &ColisRepository{db: db}
}

func toColisEntity(m *models.ColisModel) colis.Colis {
	return colis.Colis{
		ID:                     m.ID,
		IDClient:               m.IDClient,
		Poids:                  m.Poids,
		TypeColis:              colis.TypeColis(m.TypeColis),
		ReceiverCIN:            m.ReceiverCIN,
		Statut:                 colis.Statut(m.Statut),
		VilleDestination:       m.VilleDestination,
		Prix:                   m.Prix,
		IDEntrepotLocalisation: m.IDEntrepotLocalisation,
		IDLivraison:            m.IDLivraison,
		IDUser:                 m.IDUser,
		DateCreation:           m.DateCreation,
	}
}

func (r *ColisRepository) Create(ctx context.Context, c *colis.Colis) error {
	dbModel := &models.ColisModel{
		IDClient:               c.IDClient,
		Poids:                  c.Poids,
		TypeColis:              string(c.TypeColis),
		ReceiverCIN:            c.ReceiverCIN,
		Statut:                 string(c.Statut),
		VilleDestination:       c.VilleDestination,
		Prix:                   c.Prix,
		IDEntrepotLocalisation: c.IDEntrepotLocalisation,
		IDLivraison:            c.IDLivraison,
		IDUser:                 c.IDUser,
	}

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dbModel).Error; err != nil {
			return err
		}
		return tx.Create(&models.HistoriqueStatutModel{
			IDColis:       dbModel.ID,
			NouveauStatut: string(c.Statut),
			IDUtilisateur: c.IDUser,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create colis: %w", err)
	}

	c.ID = dbModel.ID
	c.DateCreation = dbModel.DateCreation

	return nil
}

func (r *ColisRepository) GetByID(ctx context.Context, id int64) (*colis.Colis, error) {
	var dbModel models.ColisModel
	err := r.db.DB.WithContext(ctx).
		Where("id_colis = ?", id).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, colis.ErrColisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get colis: %w", err)
	}

	c := toColisEntity(&dbModel)
	return &c, nil
}

func (r *ColisRepository) UpdateStatut(ctx context.Context, id int64, statut colis.Statut) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ColisModel{}).
		Where("id_colis = ?", id).
		Update("statut", string(statut))

	if result.Error != nil {
		return fmt.Errorf("failed to update colis status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return colis.ErrColisNotFound
	}

	return nil
}

type colisDetailRow struct {
	models.ColisModel
	ClientNom         *string
	LocalisationVille *string
}

func (r *ColisRepository) baseDetailQuery(ctx context.Context) *gorm.DB {
	return r.db.DB.WithContext(ctx).
		Model(&models.ColisModel{}).
		Select("colis.*, " +
			"clients.prenom || ' ' || clients.nom AS client_nom, " +
			"entrepots.ville AS localisation_ville").
		Joins("LEFT JOIN clients ON colis.id_client = clients.id_client").
		Joins("LEFT JOIN entrepots ON colis.id_entrepot_localisation = entrepots.id_entrepot").
		Order("colis.id_colis DESC")
}

func rowsToDetails(rows []colisDetailRow) []*colis.Detail {
	details := make([]*colis.Detail, 0, len(rows))
	for i := range rows {
		details = append(details, &colis.Detail{
			Colis:             toColisEntity(&rows[i].ColisModel),
			ClientNom:         rows[i].ClientNom,
			LocalisationVille: rows[i].LocalisationVille,
		})
	}
	return details
}

// ListEnvoyes implements the outbound visibility rule: parcels not yet
// attached to a livraison and located at the entrepot, or parcels whose
// livraison sources at the entrepot.
func (r *ColisRepository) ListEnvoyes(ctx context.Context, entrepotID int64) ([]*colis.Detail, error) {
	var rows []colisDetailRow
	err := r.baseDetailQuery(ctx).
		Joins("LEFT JOIN livraisons ON colis.id_livraison = livraisons.id_livraison").
		Where("(colis.id_livraison IS NULL AND colis.id_entrepot_localisation = ?) OR livraisons.id_entrepot_source = ?",
			entrepotID, entrepotID).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list colis envoyes: %w", err)
	}

	return rowsToDetails(rows), nil
}

// ListRecus implements the inbound visibility rule: parcels whose
// livraison destination is the entrepot, currently located there,
// arrived or already picked up.
func (r *ColisRepository) ListRecus(ctx context.Context, entrepotID int64) ([]*colis.Detail, error) {
	var rows []colisDetailRow
	err := r.baseDetailQuery(ctx).
		Joins("JOIN livraisons ON colis.id_livraison = livraisons.id_livraison").
		Where("livraisons.id_entrepot_destination = ? AND colis.id_entrepot_localisation = ? AND colis.statut IN ?",
			entrepotID, entrepotID,
			[]string{string(colis.StatutLivre), string(colis.StatutRecuperee)}).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list colis recus: %w", err)
	}

	return rowsToDetails(rows), nil
}

// MarkRecuperees runs the batch pickup in one transaction: every LIVRE
// colis with the receiver's CIN at the entrepot flips to RECUPEREE and
// gets its history row. Parcels in any other status are untouched.
func (r *ColisRepository) MarkRecuperees(ctx context.Context, receiverCIN string, entrepotID, actingUserID int64) (int64, error) {
	var updated int64

	err := r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var candidates []models.ColisModel
		if err := tx.
			Where("receiver_cin = ? AND id_entrepot_localisation = ?",
				receiverCIN, entrepotID).
			Find(&candidates).Error; err != nil {
			return err
		}

		ids := make([]int64, 0, len(candidates))
		for i := range candidates {
			if colis.Recuperable(colis.Statut(candidates[i].Statut)) {
				ids = append(ids, candidates[i].ID)
			}
		}
		if len(ids) == 0 {
			return nil
		}

		result := tx.Model(&models.ColisModel{}).
			Where("id_colis IN ?", ids).
			Update("statut", string(colis.StatutRecuperee))
		if result.Error != nil {
			return result.Error
		}
		updated = result.RowsAffected

		ancien := string(colis.StatutLivre)
		history := make([]models.HistoriqueStatutModel, 0, len(ids))
		for _, id := range ids {
			history = append(history, models.HistoriqueStatutModel{
				IDColis:       id,
				AncienStatut:  &ancien,
				NouveauStatut: string(colis.StatutRecuperee),
				IDUtilisateur: actingUserID,
			})
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to mark colis recuperees: %w", err)
	}

	return updated, nil
}

func (r *ColisRepository) AppendHistory(ctx context.Context, h *colis.HistoriqueStatut) error {
	var ancien *string
	if h.AncienStatut != nil {
		s := string(*h.AncienStatut)
		ancien = &s
	}

	dbModel := &models.HistoriqueStatutModel{
		IDColis:       h.IDColis,
		AncienStatut:  ancien,
		NouveauStatut: string(h.NouveauStatut),
		IDUtilisateur: h.IDUtilisateur,
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to append colis history: %w", err)
	}

	h.ID = dbModel.ID
	h.DateChangement = dbModel.DateChangement

	return nil
}

func (r *ColisRepository) History(ctx context.Context, colisID int64) ([]*colis.HistoriqueDetail, error) {
	type row struct {
		models.HistoriqueStatutModel
		NomUtilisateur *string
	}

	var rows []row
	err := r.db.DB.WithContext(ctx).
		Model(&models.HistoriqueStatutModel{}).
		Select("historique_statut_colis.*, utilisateurs.nom_utilisateur").
		Joins("LEFT JOIN utilisateurs ON historique_statut_colis.id_utilisateur = utilisateurs.id_utilisateur").
		Where("historique_statut_colis.id_colis = ?", colisID).
		Order("historique_statut_colis.date_changement DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get colis history: %w", err)
	}

	details := make([]*colis.HistoriqueDetail, 0, len(rows))
	for i := range rows {
		var ancien *colis.Statut
		if rows[i].AncienStatut != nil {
			s := colis.Statut(*rows[i].AncienStatut)
			ancien = &s
		}
		details = append(details, &colis.HistoriqueDetail{
			HistoriqueStatut: colis.HistoriqueStatut{
				ID:             rows[i].ID,
				IDColis:        rows[i].IDColis,
				AncienStatut:   ancien,
				NouveauStatut:  colis.Statut(rows[i].NouveauStatut),
				IDUtilisateur:  rows[i].IDUtilisateur,
				DateChangement: rows[i].DateChangement,
			},
			NomUtilisateur: rows[i].NomUtilisateur,
		})
	}
	return details, nil
}

func (r *ColisRepository) Stats(ctx context.Context, entrepotID int64) (*colis.Stats, error) {
	type statusCount struct {
		Statut string
		Count  int64
	}

	var counts []statusCount
	err := r.db.DB.WithContext(ctx).
		Model(&models.ColisModel{}).
		Select("statut, COUNT(*) AS count").
		Joins("LEFT JOIN livraisons ON colis.id_livraison = livraisons.id_livraison").
		Where("colis.id_entrepot_localisation = ? OR livraisons.id_entrepot_source = ? OR livraisons.id_entrepot_destination = ?",
			entrepotID, entrepotID, entrepotID).
		Group("statut").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute colis stats: %w", err)
	}

	stats := &colis.Stats{}
	for _, sc := range counts {
		stats.TotalColis += sc.Count
		switch colis.Statut(sc.Statut) {
		case colis.StatutEnregistre:
			stats.Enregistre = sc.Count
		case colis.StatutEnCours:
			stats.EnCours = sc.Count
		case colis.StatutLivre:
			stats.Livre = sc.Count
		case colis.StatutRecuperee:
			stats.Recuperee = sc.Count
		}
	}
	return stats, nil
}

func (r *ColisRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).
		Model(&models.ColisModel{}).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count colis: %w", err)
	}
	return count, nil
}

// SumPrixDelivered totals the revenue over delivered and picked-up
// parcels.
func (r *ColisRepository) SumPrixDelivered(ctx context.Context) (float64, error) {
	type sumResult struct {
		Total float64
	}

	var result sumResult
	err := r.db.DB.WithContext(ctx).
		Model(&models.ColisModel{}).
		Select("COALESCE(SUM(prix), 0) AS total").
		Where("statut IN ?", []string{string(colis.StatutLivre), string(colis.StatutRecuperee)}).
		Scan(&result).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum colis prix: %w", err)
	}
	return result.Total, nil
}

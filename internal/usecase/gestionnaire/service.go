package gestionnaire

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	domainClient "logitrack/internal/domain/client"
	domainColis "logitrack/internal/domain/colis"
	domainEntrepot "logitrack/internal/domain/entrepot"
	domainLivraison "logitrack/internal/domain/livraison"
	domainUser "logitrack/internal/domain/user"
	domainVehicule "logitrack/internal/domain/vehicule"
	"logitrack/internal/logger"
	appErrors "logitrack/pkg/errors"
	"logitrack/pkg/utils"
)

// Service implements the warehouse manager use cases. Every colis and
// vehicule operation is scoped to the caller's assigned entrepot, read
// fresh from the database on each call.
type Service struct {
	userRepo      domainUser.Repository
	entrepotRepo  domainEntrepot.Repository
	clientRepo    domainClient.Repository
	colisRepo     domainColis.Repository
	livraisonRepo domainLivraison.Repository
	vehiculeRepo  domainVehicule.Repository
}

func NewService(
	userRepo domainUser.Repository,
	entrepotRepo domainEntrepot.Repository,
	clientRepo domainClient.Repository,
	colisRepo domainColis.Repository,
	livraisonRepo domainLivraison.Repository,
	vehiculeRepo domainVehicule.Repository,
) *Service {
	return &Service{
		userRepo:      userRepo,
		entrepotRepo:  entrepotRepo,
		clientRepo:    clientRepo,
		colisRepo:     colisRepo,
		livraisonRepo: livraisonRepo,
		vehiculeRepo:  vehiculeRepo,
	}
}

// entrepotOf resolves the caller's assigned entrepot. Operations on
// colis and vehicules are meaningless without one.
func (s *Service) entrepotOf(ctx context.Context, userID int64) (int64, error) {
	entrepotID, err := s.userRepo.GetEntrepotID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if entrepotID == nil {
		return 0, appErrors.ErrNoEntrepotAssigned
	}
	return *entrepotID, nil
}

func (s *Service) ListColisEnvoyes(ctx context.Context, userID int64) ([]*ColisResponse, error) {
	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.colisRepo.ListEnvoyes(ctx, entrepotID)
	if err != nil {
		return nil, err
	}
	return toColisResponses(details), nil
}

func (s *Service) ListColisRecus(ctx context.Context, userID int64) ([]*ColisResponse, error) {
	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.colisRepo.ListRecus(ctx, entrepotID)
	if err != nil {
		return nil, err
	}
	return toColisResponses(details), nil
}

func toColisResponses(details []*domainColis.Detail) []*ColisResponse {
	responses := make([]*ColisResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, ToColisResponse(d))
	}
	return responses
}

// CreateColis registers a parcel at the caller's entrepot and attaches
// it to the open livraison towards the reception entrepot, creating
// that livraison when none exists.
func (s *Service) CreateColis(ctx context.Context, userID int64, req *CreateColisRequest) (*ColisResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	sourceID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.IDEntrepotReception == sourceID {
		return nil, appErrors.NewAppError(appErrors.CodeValidation,
			"Reception entrepot must differ from the expedition entrepot", nil)
	}

	reception, err := s.entrepotRepo.GetByID(ctx, req.IDEntrepotReception)
	if err != nil {
		if errors.Is(err, domainEntrepot.ErrEntrepotNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Reception entrepot not found", err)
		}
		return nil, err
	}

	if req.IDClient != nil {
		if _, err := s.clientRepo.GetByID(ctx, *req.IDClient); err != nil {
			if errors.Is(err, domainClient.ErrClientNotFound) {
				return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Client not found", err)
			}
			return nil, err
		}
	}

	typeColis := domainColis.TypeStandard
	if req.TypeColis != nil {
		typeColis = domainColis.TypeColis(*req.TypeColis)
	}

	run, err := s.livraisonRepo.FindOrCreateOpen(ctx, sourceID, reception.ID)
	if err != nil {
		return nil, err
	}

	c := &domainColis.Colis{
		IDClient:               req.IDClient,
		Poids:                  req.Poids,
		TypeColis:              typeColis,
		ReceiverCIN:            utils.SanitizeCIN(req.ReceiverCIN),
		Statut:                 domainColis.StatutEnregistre,
		VilleDestination:       reception.Ville,
		Prix:                   domainColis.ComputePrix(req.Poids, typeColis),
		IDEntrepotLocalisation: &sourceID,
		IDLivraison:            &run.ID,
		IDUser:                 userID,
	}
	if err := s.colisRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Colis registered",
		zap.Int64("colis_id", c.ID),
		zap.Int64("livraison_id", run.ID),
		zap.Int64("entrepot_source", sourceID),
		zap.Int64("entrepot_destination", reception.ID),
		zap.Float64("prix", c.Prix),
		zap.String("event", "colis_created"),
	)

	return ToColisResponse(&domainColis.Detail{
		Colis:             *c,
		LocalisationVille: nil,
	}), nil
}

// UpdateColisStatut applies a manual transition checked against the
// parcel lifecycle, recording the change in the history.
func (s *Service) UpdateColisStatut(ctx context.Context, userID, colisID int64, req *UpdateColisStatutRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	if _, err := s.entrepotOf(ctx, userID); err != nil {
		return err
	}

	target, ok := domainColis.ParseStatut(req.Statut)
	if !ok {
		return appErrors.NewAppError(appErrors.CodeValidation, "Unknown statut", domainColis.ErrInvalidStatut)
	}

	c, err := s.colisRepo.GetByID(ctx, colisID)
	if err != nil {
		if errors.Is(err, domainColis.ErrColisNotFound) {
			return appErrors.NewAppError(appErrors.CodeNotFound, "Colis not found", err)
		}
		return err
	}

	if domainColis.IsTerminal(c.Statut) {
		return appErrors.NewAppError(appErrors.CodeInvalidTransition,
			fmt.Sprintf("Colis is already %s", c.Statut),
			domainColis.ErrColisAlreadyTerminal)
	}
	if !domainColis.CanTransition(c.Statut, target) {
		return appErrors.NewAppError(appErrors.CodeInvalidTransition,
			fmt.Sprintf("Transition %s -> %s is not allowed", c.Statut, target),
			domainColis.ErrInvalidTransition)
	}

	if err := s.colisRepo.UpdateStatut(ctx, colisID, target); err != nil {
		return err
	}

	ancien := c.Statut
	if err := s.colisRepo.AppendHistory(ctx, &domainColis.HistoriqueStatut{
		IDColis:       colisID,
		AncienStatut:  &ancien,
		NouveauStatut: target,
		IDUtilisateur: userID,
	}); err != nil {
		logger.Error("Failed to append colis history",
			zap.Int64("colis_id", colisID),
			zap.Error(err),
		)
	}

	logger.Info("Colis statut updated",
		zap.Int64("colis_id", colisID),
		zap.String("ancien", string(ancien)),
		zap.String("nouveau", string(target)),
		zap.String("event", "colis_statut_updated"),
	)

	return nil
}

// Recuperer hands over every delivered parcel of a receiver at the
// caller's entrepot.
func (s *Service) Recuperer(ctx context.Context, userID int64, req *RecupererRequest) (*RecupererResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, err := s.colisRepo.MarkRecuperees(ctx, utils.SanitizeCIN(req.ReceiverCIN), entrepotID, userID)
	if err != nil {
		return nil, err
	}

	logger.Info("Colis recuperes",
		zap.String("receiver_cin", utils.SanitizeCIN(req.ReceiverCIN)),
		zap.Int64("entrepot_id", entrepotID),
		zap.Int64("updated", updated),
		zap.String("event", "colis_recuperes"),
	)

	return &RecupererResponse{Updated: updated}, nil
}

func (s *Service) ColisHistory(ctx context.Context, colisID int64) ([]*HistoryEntry, error) {
	if _, err := s.colisRepo.GetByID(ctx, colisID); err != nil {
		if errors.Is(err, domainColis.ErrColisNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Colis not found", err)
		}
		return nil, err
	}

	details, err := s.colisRepo.History(ctx, colisID)
	if err != nil {
		return nil, err
	}

	entries := make([]*HistoryEntry, 0, len(details))
	for _, d := range details {
		entries = append(entries, ToHistoryEntry(d))
	}
	return entries, nil
}

// ListClients is creator-scoped for gestionnaires and global for
// admins.
func (s *Service) ListClients(ctx context.Context, userID int64, role domainUser.Role) ([]*ClientResponse, error) {
	var (
		clients []*domainClient.Client
		err     error
	)
	if role == domainUser.RoleAdmin {
		clients, err = s.clientRepo.List(ctx)
	} else {
		clients, err = s.clientRepo.ListByGestionnaire(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(c))
	}
	return responses, nil
}

func (s *Service) CreateClient(ctx context.Context, userID int64, req *CreateClientRequest) (*ClientResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	c := &domainClient.Client{
		Prenom:         utils.SanitizeString(req.Prenom),
		Nom:            utils.SanitizeString(req.Nom),
		Email:          req.Email,
		IDGestionnaire: userID,
	}
	if req.CIN != nil {
		cin := utils.SanitizeCIN(*req.CIN)
		c.CIN = &cin
	}
	if req.Telephone != nil {
		t := utils.SanitizePhone(*req.Telephone)
		c.Telephone = &t
	}
	if req.Adresse != nil {
		a := utils.SanitizeString(*req.Adresse)
		c.Adresse = &a
	}

	if err := s.clientRepo.Create(ctx, c); err != nil {
		if errors.Is(err, domainClient.ErrDuplicateCIN) {
			return nil, appErrors.NewAppError(appErrors.CodeDuplicate, "A client with this CIN already exists", err)
		}
		return nil, err
	}

	logger.Info("Client created",
		zap.Int64("client_id", c.ID),
		zap.Int64("gestionnaire_id", userID),
		zap.String("event", "client_created"),
	)

	return ToClientResponse(c), nil
}

// ListEntrepots feeds the reception entrepot dropdown.
func (s *Service) ListEntrepots(ctx context.Context) ([]*EntrepotOption, error) {
	details, err := s.entrepotRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]*EntrepotOption, 0, len(details))
	for _, d := range details {
		options = append(options, ToEntrepotOption(d))
	}
	return options, nil
}

func (s *Service) Stats(ctx context.Context, userID int64) (*StatsResponse, error) {
	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.colisRepo.Stats(ctx, entrepotID)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalColis: stats.TotalColis,
		Enregistre: stats.Enregistre,
		EnCours:    stats.EnCours,
		Livre:      stats.Livre,
		Recuperee:  stats.Recuperee,
	}, nil
}

func (s *Service) ListVehicules(ctx context.Context, userID int64) ([]*VehiculeResponse, error) {
	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.vehiculeRepo.List(ctx, &entrepotID)
	if err != nil {
		return nil, err
	}

	responses := make([]*VehiculeResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, ToVehiculeResponse(d))
	}
	return responses, nil
}

// UpdateVehiculeStatut lets a gestionnaire toggle a vehicle of their
// own entrepot between DISPONIBLE and MAINTENANCE. Vehicles held by an
// active livraison are frozen either way.
func (s *Service) UpdateVehiculeStatut(ctx context.Context, userID, vehiculeID int64, req *UpdateVehiculeStatutRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return err
	}

	v, err := s.vehiculeRepo.GetByID(ctx, vehiculeID)
	if err != nil {
		if errors.Is(err, domainVehicule.ErrVehiculeNotFound) {
			return appErrors.NewAppError(appErrors.CodeNotFound, "Vehicule not found", err)
		}
		return err
	}

	if v.IDEntrepot == nil || *v.IDEntrepot != entrepotID {
		return appErrors.NewAppError(appErrors.CodeForbidden,
			"Vehicule belongs to another entrepot", domainVehicule.ErrVehiculeWrongEntrepot)
	}

	target := domainVehicule.Statut(req.Statut)
	if !v.CanGestionnaireSet(target) {
		return appErrors.NewAppError(appErrors.CodeInvalidTransition,
			"Only DISPONIBLE and MAINTENANCE can be set, and not while the vehicule is in use",
			domainVehicule.ErrInvalidTransition)
	}

	if err := s.vehiculeRepo.UpdateStatut(ctx, vehiculeID, target); err != nil {
		return err
	}

	logger.Info("Vehicule statut updated",
		zap.Int64("vehicule_id", vehiculeID),
		zap.String("statut", string(target)),
		zap.String("event", "vehicule_statut_updated"),
	)

	return nil
}

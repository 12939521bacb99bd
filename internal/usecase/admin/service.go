package admin

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

// Service implements the admin use cases: accounts, entrepots, the
// global client and vehicule registries, and the dashboard KPIs.
type Service struct {
	userRepo      domainUser.Repository
	entrepotRepo  domainEntrepot.Repository
	clientRepo    domainClient.Repository
	vehiculeRepo  domainVehicule.Repository
	colisRepo     domainColis.Repository
	livraisonRepo domainLivraison.Repository
}

func NewService(
	userRepo domainUser.Repository,
	entrepotRepo domainEntrepot.Repository,
	clientRepo domainClient.Repository,
	vehiculeRepo domainVehicule.Repository,
	colisRepo domainColis.Repository,
	livraisonRepo domainLivraison.Repository,
) *Service {
	return &Service{
		userRepo:      userRepo,
		entrepotRepo:  entrepotRepo,
		clientRepo:    clientRepo,
		vehiculeRepo:  vehiculeRepo,
		colisRepo:     colisRepo,
		livraisonRepo: livraisonRepo,
	}
}

func (s *Service) KPIs(ctx context.Context) (*KPIResponse, error) {
	kpis := &KPIResponse{}

	var err error
	if kpis.TotalColis, err = s.colisRepo.Count(ctx); err != nil {
		return nil, err
	}
	if kpis.TotalLivraisons, err = s.livraisonRepo.Count(ctx); err != nil {
		return nil, err
	}
	if kpis.ChiffreAffaires, err = s.colisRepo.SumPrixDelivered(ctx); err != nil {
		return nil, err
	}
	if kpis.Livreurs, err = s.userRepo.CountActiveByRole(ctx, domainUser.RoleLivreur); err != nil {
		return nil, err
	}
	if kpis.Admins, err = s.userRepo.CountActiveByRole(ctx, domainUser.RoleAdmin); err != nil {
		return nil, err
	}
	if kpis.Gestionnaires, err = s.userRepo.CountActiveByRole(ctx, domainUser.RoleGestionnaire); err != nil {
		return nil, err
	}
	if kpis.Entrepots, err = s.entrepotRepo.Count(ctx); err != nil {
		return nil, err
	}
	if kpis.Clients, err = s.clientRepo.Count(ctx); err != nil {
		return nil, err
	}

	return kpis, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses, nil
}

func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	if err := utils.ValidatePassword(req.MotDePasse); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, err.Error(), nil)
	}

	role, ok := domainUser.NormalizeRole(req.Role)
	if !ok {
		return nil, appErrors.ErrInvalidUserRole
	}

	nom := utils.SanitizeString(req.NomUtilisateur)
	existing, err := s.userRepo.GetByNomUtilisateur(ctx, nom)
	if err != nil && !errors.Is(err, domainUser.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, appErrors.ErrUserAlreadyExists
	}

	hashed, err := utils.HashPassword(req.MotDePasse)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var cin *string
	if req.CIN != nil {
		c := utils.SanitizeCIN(*req.CIN)
		cin = &c
	}

	u := &domainUser.User{
		NomUtilisateur: nom,
		MotDePasseHash: hashed,
		Role:           role,
		CIN:            cin,
		Actif:          true,
		IDEntrepot:     req.IDEntrepot,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	if err := s.backfillEntrepotManager(ctx, u.ID, role, req.IDEntrepot); err != nil {
		return nil, err
	}

	logger.Info("User created",
		zap.Int64("user_id", u.ID),
		zap.String("nom_utilisateur", u.NomUtilisateur),
		zap.String("role", string(role)),
		zap.String("event", "user_created"),
	)

	return ToUserResponse(u), nil
}

func (s *Service) UpdateUser(ctx context.Context, userID int64, req *UpdateUserRequest) (*UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	fields := &domainUser.UpdateFields{
		Actif:      req.Actif,
		IDEntrepot: req.IDEntrepot,
	}

	if req.Role != nil {
		role, ok := domainUser.NormalizeRole(*req.Role)
		if !ok {
			return nil, appErrors.ErrInvalidUserRole
		}
		fields.Role = &role
	}
	if req.CIN != nil {
		c := utils.SanitizeCIN(*req.CIN)
		fields.CIN = &c
	}

	if err := s.userRepo.Update(ctx, userID, fields); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.backfillEntrepotManager(ctx, u.ID, u.Role, u.IDEntrepot); err != nil {
		return nil, err
	}

	logger.Info("User updated",
		zap.Int64("user_id", userID),
		zap.String("event", "user_updated"),
	)

	return ToUserResponse(u), nil
}

// backfillEntrepotManager keeps the entrepot side of a gestionnaire
// assignment consistent: when a gestionnaire is attached to an
// entrepot that has no manager yet, the entrepot adopts them. An
// entrepot that already has a manager is never overwritten.
func (s *Service) backfillEntrepotManager(ctx context.Context, userID int64, role domainUser.Role, entrepotID *int64) error {
	if role != domainUser.RoleGestionnaire || entrepotID == nil {
		return nil
	}

	assigned, err := s.entrepotRepo.AssignGestionnaire(ctx, *entrepotID, userID)
	if err != nil {
		return fmt.Errorf("failed to backfill entrepot manager: %w", err)
	}
	if assigned {
		logger.Info("Entrepot manager backfilled",
			zap.Int64("entrepot_id", *entrepotID),
			zap.Int64("user_id", userID),
			zap.String("event", "entrepot_manager_backfilled"),
		)
	}
	return nil
}

func (s *Service) ListEntrepots(ctx context.Context) ([]*EntrepotResponse, error) {
	details, err := s.entrepotRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*EntrepotResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, ToEntrepotResponse(d))
	}
	return responses, nil
}

func (s *Service) CreateEntrepot(ctx context.Context, req *CreateEntrepotRequest) (*EntrepotResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	e := &domainEntrepot.Entrepot{
		Adresse:   utils.SanitizeString(req.Adresse),
		Ville:     utils.SanitizeString(req.Ville),
		Telephone: req.Telephone,
		IDUser:    req.IDUser,
	}
	if e.Telephone != nil {
		t := utils.SanitizePhone(*e.Telephone)
		e.Telephone = &t
	}

	if err := s.entrepotRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	logger.Info("Entrepot created",
		zap.Int64("entrepot_id", e.ID),
		zap.String("ville", e.Ville),
		zap.String("event", "entrepot_created"),
	)

	return ToEntrepotResponse(&domainEntrepot.Detail{Entrepot: *e}), nil
}

// ListGestionnaires feeds the assignment dropdown: active accounts
// able to manage an entrepot.
func (s *Service) ListGestionnaires(ctx context.Context) ([]*UserResponse, error) {
	users, err := s.userRepo.ListActiveByRoles(ctx, domainUser.RoleAdmin, domainUser.RoleGestionnaire)
	if err != nil {
		return nil, err
	}

	responses := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, ToUserResponse(u))
	}
	return responses, nil
}

func (s *Service) ListClients(ctx context.Context) ([]*ClientResponse, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		responses = append(responses, ToClientResponse(c))
	}
	return responses, nil
}

func (s *Service) CreateClient(ctx context.Context, creatorID int64, req *CreateClientRequest) (*ClientResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	c := newClientFromRequest(creatorID, req)
	if err := s.clientRepo.Create(ctx, c); err != nil {
		if errors.Is(err, domainClient.ErrDuplicateCIN) {
			return nil, appErrors.NewAppError(appErrors.CodeDuplicate, "A client with this CIN already exists", err)
		}
		return nil, err
	}

	logger.Info("Client created",
		zap.Int64("client_id", c.ID),
		zap.Int64("creator_id", creatorID),
		zap.String("event", "client_created"),
	)

	return ToClientResponse(c), nil
}

func newClientFromRequest(creatorID int64, req *CreateClientRequest) *domainClient.Client {
	c := &domainClient.Client{
		Prenom:         utils.SanitizeString(req.Prenom),
		Nom:            utils.SanitizeString(req.Nom),
		Email:          req.Email,
		Adresse:        req.Adresse,
		IDGestionnaire: creatorID,
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
	return c
}

func (s *Service) ListVehicules(ctx context.Context, entrepotID *int64) ([]*VehiculeResponse, error) {
	details, err := s.vehiculeRepo.List(ctx, entrepotID)
	if err != nil {
		return nil, err
	}

	responses := make([]*VehiculeResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, ToVehiculeResponse(d))
	}
	return responses, nil
}

func (s *Service) CreateVehicule(ctx context.Context, req *CreateVehiculeRequest) (*VehiculeResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	v := &domainVehicule.Vehicule{
		Immatriculation: utils.SanitizeString(req.Immatriculation),
		TypeVehicule:    domainVehicule.TypeVehicule(req.TypeVehicule),
		Statut:          domainVehicule.StatutDisponible,
		IDEntrepot:      req.IDEntrepot,
	}
	if err := s.vehiculeRepo.Create(ctx, v); err != nil {
		if errors.Is(err, domainVehicule.ErrDuplicatePlate) {
			return nil, appErrors.NewAppError(appErrors.CodeDuplicate, "A vehicule with this immatriculation already exists", err)
		}
		return nil, err
	}

	logger.Info("Vehicule created",
		zap.Int64("vehicule_id", v.ID),
		zap.String("immatriculation", v.Immatriculation),
		zap.String("event", "vehicule_created"),
	)

	return ToVehiculeResponse(&domainVehicule.Detail{Vehicule: *v}), nil
}

// UpdateVehicule reassigns a vehicule and/or changes its status. A
// vehicule reserved by an active livraison cannot be touched.
func (s *Service) UpdateVehicule(ctx context.Context, vehiculeID int64, req *UpdateVehiculeRequest) (*VehiculeResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	v, err := s.vehiculeRepo.GetByID(ctx, vehiculeID)
	if err != nil {
		if errors.Is(err, domainVehicule.ErrVehiculeNotFound) {
			return nil, appErrors.NewAppError(appErrors.CodeNotFound, "Vehicule not found", err)
		}
		return nil, err
	}

	if v.Statut == domainVehicule.StatutEnUtilisation {
		return nil, appErrors.NewAppError(appErrors.CodePreconditionFailed,
			"Vehicule is reserved by an active livraison", domainVehicule.ErrVehiculeInUse)
	}

	if req.Statut != nil {
		statut := domainVehicule.Statut(*req.Statut)
		switch statut {
		case domainVehicule.StatutDisponible, domainVehicule.StatutMaintenance:
		default:
			return nil, appErrors.NewAppError(appErrors.CodeInvalidTransition,
				"Statut must be DISPONIBLE or MAINTENANCE", domainVehicule.ErrInvalidTransition)
		}
		if err := s.vehiculeRepo.UpdateStatut(ctx, vehiculeID, statut); err != nil {
			return nil, err
		}
		v.Statut = statut
	}

	if req.IDEntrepot != nil {
		if err := s.vehiculeRepo.Reassign(ctx, vehiculeID, req.IDEntrepot); err != nil {
			return nil, err
		}
		v.IDEntrepot = req.IDEntrepot
	}

	logger.Info("Vehicule updated",
		zap.Int64("vehicule_id", vehiculeID),
		zap.String("event", "vehicule_updated"),
	)

	return ToVehiculeResponse(&domainVehicule.Detail{Vehicule: *v}), nil
}

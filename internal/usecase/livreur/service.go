package livreur

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainLivraison "logitrack/internal/domain/livraison"
	domainUser "logitrack/internal/domain/user"
	domainVehicule "logitrack/internal/domain/vehicule"
	"logitrack/internal/logger"
	appErrors "logitrack/pkg/errors"
	"logitrack/pkg/utils"
)

// Service implements the driver use cases: browsing the available runs
// sourced at the driver's entrepot, taking one with a vehicle, and
// completing it.
type Service struct {
	userRepo      domainUser.Repository
	livraisonRepo domainLivraison.Repository
	vehiculeRepo  domainVehicule.Repository
}

func NewService(
	userRepo domainUser.Repository,
	livraisonRepo domainLivraison.Repository,
	vehiculeRepo domainVehicule.Repository,
) *Service {
	return &Service{
		userRepo:      userRepo,
		livraisonRepo: livraisonRepo,
		vehiculeRepo:  vehiculeRepo,
	}
}

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

func (s *Service) ListDisponibles(ctx context.Context, userID int64) ([]*LivraisonResponse, error) {
	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.livraisonRepo.ListDisponibles(ctx, entrepotID)
	if err != nil {
		return nil, err
	}
	return toLivraisonResponses(details), nil
}

func (s *Service) MesLivraisons(ctx context.Context, userID int64) ([]*LivraisonResponse, error) {
	details, err := s.livraisonRepo.ListByLivreur(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toLivraisonResponses(details), nil
}

func toLivraisonResponses(details []*domainLivraison.Detail) []*LivraisonResponse {
	responses := make([]*LivraisonResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, ToLivraisonResponse(d))
	}
	return responses
}

// Prendre assigns the run and the chosen vehicle to the driver. The
// repository performs the whole assignment in one transaction; nothing
// is mutated when any check fails.
func (s *Service) Prendre(ctx context.Context, userID, livraisonID int64, req *PrendreRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	err := s.livraisonRepo.Prendre(ctx, livraisonID, userID, req.IDVehicule)
	if err != nil {
		return classifyLivraisonErr(err)
	}

	logger.Info("Livraison prise",
		zap.Int64("livraison_id", livraisonID),
		zap.Int64("livreur_id", userID),
		zap.Int64("vehicule_id", req.IDVehicule),
		zap.String("event", "livraison_prise"),
	)

	return nil
}

// Livrer completes the driver's run: the vehicle is released at the
// destination and every parcel arrives there.
func (s *Service) Livrer(ctx context.Context, userID, livraisonID int64) error {
	if err := s.livraisonRepo.Livrer(ctx, livraisonID, userID); err != nil {
		return classifyLivraisonErr(err)
	}

	logger.Info("Livraison livree",
		zap.Int64("livraison_id", livraisonID),
		zap.Int64("livreur_id", userID),
		zap.String("event", "livraison_livree"),
	)

	return nil
}

func classifyLivraisonErr(err error) error {
	switch {
	case errors.Is(err, domainLivraison.ErrLivraisonNotFound):
		return appErrors.NewAppError(appErrors.CodeNotFound, "Livraison not found", err)
	case errors.Is(err, domainLivraison.ErrNotAvailable):
		return appErrors.NewAppError(appErrors.CodePreconditionFailed, "Livraison is not available to take", err)
	case errors.Is(err, domainLivraison.ErrNotInProgress):
		return appErrors.NewAppError(appErrors.CodePreconditionFailed, "Livraison is not in progress", err)
	case errors.Is(err, domainLivraison.ErrNotAssignedLivreur):
		return appErrors.NewAppError(appErrors.CodeForbidden, "Livraison is assigned to another livreur", err)
	case errors.Is(err, domainVehicule.ErrVehiculeNotFound):
		return appErrors.NewAppError(appErrors.CodeNotFound, "Vehicule not found", err)
	case errors.Is(err, domainVehicule.ErrVehiculeInUse):
		return appErrors.NewAppError(appErrors.CodePreconditionFailed, "Vehicule is not available", err)
	case errors.Is(err, domainVehicule.ErrVehiculeWrongEntrepot):
		return appErrors.NewAppError(appErrors.CodePreconditionFailed, "Vehicule is stationed at another entrepot", err)
	}
	return err
}

// ListVehicules returns the vehicles the driver can take: DISPONIBLE
// and stationed at the driver's entrepot.
func (s *Service) ListVehicules(ctx context.Context, userID int64) ([]*VehiculeResponse, error) {
	entrepotID, err := s.entrepotOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	details, err := s.vehiculeRepo.ListDisponibles(ctx, entrepotID)
	if err != nil {
		return nil, err
	}

	responses := make([]*VehiculeResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, ToVehiculeResponse(d))
	}
	return responses, nil
}

package gestionnaire

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainClient "logitrack/internal/domain/client"
	domainColis "logitrack/internal/domain/colis"
	domainEntrepot "logitrack/internal/domain/entrepot"
	domainLivraison "logitrack/internal/domain/livraison"
	domainUser "logitrack/internal/domain/user"
	domainVehicule "logitrack/internal/domain/vehicule"
	"logitrack/internal/logger"
	appErrors "logitrack/pkg/errors"
)

func init() {
	_ = logger.Init("development")
}

type stubUserRepo struct {
	domainUser.Repository
	entrepots map[int64]*int64
}

func (s *stubUserRepo) GetEntrepotID(_ context.Context, id int64) (*int64, error) {
	return s.entrepots[id], nil
}

type stubEntrepotRepo struct {
	domainEntrepot.Repository
	byID map[int64]*domainEntrepot.Entrepot
}

func (s *stubEntrepotRepo) GetByID(_ context.Context, id int64) (*domainEntrepot.Entrepot, error) {
	if e, ok := s.byID[id]; ok {
		return e, nil
	}
	return nil, domainEntrepot.ErrEntrepotNotFound
}

type stubClientRepo struct {
	domainClient.Repository
	byID    map[int64]*domainClient.Client
	created []*domainClient.Client
}

func (s *stubClientRepo) GetByID(_ context.Context, id int64) (*domainClient.Client, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, domainClient.ErrClientNotFound
}

func (s *stubClientRepo) Create(_ context.Context, c *domainClient.Client) error {
	c.ID = int64(len(s.created) + 1)
	s.created = append(s.created, c)
	return nil
}

type stubColisRepo struct {
	domainColis.Repository
	byID       map[int64]*domainColis.Colis
	created    []*domainColis.Colis
	statuts    map[int64]domainColis.Statut
	history    []*domainColis.HistoriqueStatut
	recuperees int64
	lastCIN    string
}

func (s *stubColisRepo) Create(_ context.Context, c *domainColis.Colis) error {
	c.ID = int64(len(s.created) + 1)
	s.created = append(s.created, c)
	return nil
}

func (s *stubColisRepo) GetByID(_ context.Context, id int64) (*domainColis.Colis, error) {
	if c, ok := s.byID[id]; ok {
		return c, nil
	}
	return nil, domainColis.ErrColisNotFound
}

func (s *stubColisRepo) UpdateStatut(_ context.Context, id int64, statut domainColis.Statut) error {
	if s.statuts == nil {
		s.statuts = make(map[int64]domainColis.Statut)
	}
	s.statuts[id] = statut
	return nil
}

func (s *stubColisRepo) AppendHistory(_ context.Context, h *domainColis.HistoriqueStatut) error {
	s.history = append(s.history, h)
	return nil
}

func (s *stubColisRepo) MarkRecuperees(_ context.Context, cin string, _, _ int64) (int64, error) {
	s.lastCIN = cin
	return s.recuperees, nil
}

type stubLivraisonRepo struct {
	domainLivraison.Repository
	open map[[2]int64]*domainLivraison.Livraison
}

func (s *stubLivraisonRepo) FindOrCreateOpen(_ context.Context, sourceID, destID int64) (*domainLivraison.Livraison, error) {
	key := [2]int64{sourceID, destID}
	if s.open == nil {
		s.open = make(map[[2]int64]*domainLivraison.Livraison)
	}
	if l, ok := s.open[key]; ok {
		return l, nil
	}
	l := &domainLivraison.Livraison{
		ID:                    int64(len(s.open) + 1),
		IDEntrepotSource:      sourceID,
		IDEntrepotDestination: destID,
		Statut:                domainLivraison.StatutCreee,
	}
	s.open[key] = l
	return l, nil
}

type stubVehiculeRepo struct {
	domainVehicule.Repository
	byID    map[int64]*domainVehicule.Vehicule
	statuts map[int64]domainVehicule.Statut
}

func (s *stubVehiculeRepo) GetByID(_ context.Context, id int64) (*domainVehicule.Vehicule, error) {
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, domainVehicule.ErrVehiculeNotFound
}

func (s *stubVehiculeRepo) UpdateStatut(_ context.Context, id int64, statut domainVehicule.Statut) error {
	if s.statuts == nil {
		s.statuts = make(map[int64]domainVehicule.Statut)
	}
	s.statuts[id] = statut
	return nil
}

func ptr[T any](v T) *T { return &v }

func newTestService(userRepo *stubUserRepo, entrepotRepo *stubEntrepotRepo, clientRepo *stubClientRepo,
	colisRepo *stubColisRepo, livraisonRepo *stubLivraisonRepo, vehiculeRepo *stubVehiculeRepo) *Service {
	if userRepo == nil {
		userRepo = &stubUserRepo{entrepots: map[int64]*int64{1: ptr(int64(10))}}
	}
	if entrepotRepo == nil {
		entrepotRepo = &stubEntrepotRepo{byID: map[int64]*domainEntrepot.Entrepot{}}
	}
	if clientRepo == nil {
		clientRepo = &stubClientRepo{byID: map[int64]*domainClient.Client{}}
	}
	if colisRepo == nil {
		colisRepo = &stubColisRepo{byID: map[int64]*domainColis.Colis{}}
	}
	if livraisonRepo == nil {
		livraisonRepo = &stubLivraisonRepo{}
	}
	if vehiculeRepo == nil {
		vehiculeRepo = &stubVehiculeRepo{byID: map[int64]*domainVehicule.Vehicule{}}
	}
	return NewService(userRepo, entrepotRepo, clientRepo, colisRepo, livraisonRepo, vehiculeRepo)
}

func TestOperationsRequireEntrepot(t *testing.T) {
	userRepo := &stubUserRepo{entrepots: map[int64]*int64{}}
	svc := newTestService(userRepo, nil, nil, nil, nil, nil)

	_, err := svc.Stats(context.Background(), 1)
	assert.ErrorIs(t, err, appErrors.ErrNoEntrepotAssigned)

	_, err = svc.ListColisEnvoyes(context.Background(), 1)
	assert.ErrorIs(t, err, appErrors.ErrNoEntrepotAssigned)

	_, err = svc.CreateColis(context.Background(), 1, &CreateColisRequest{
		Poids:               2,
		ReceiverCIN:         "AB1234",
		IDEntrepotReception: 20,
	})
	assert.ErrorIs(t, err, appErrors.ErrNoEntrepotAssigned)
}

func TestCreateColis(t *testing.T) {
	entrepotRepo := &stubEntrepotRepo{byID: map[int64]*domainEntrepot.Entrepot{
		20: {ID: 20, Ville: "Casablanca"},
	}}
	colisRepo := &stubColisRepo{}
	livraisonRepo := &stubLivraisonRepo{}
	svc := newTestService(nil, entrepotRepo, nil, colisRepo, livraisonRepo, nil)

	resp, err := svc.CreateColis(context.Background(), 1, &CreateColisRequest{
		Poids:               4,
		TypeColis:           ptr("FRAGILE"),
		ReceiverCIN:         "ab-1234",
		IDEntrepotReception: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "ENREGISTRE", resp.Statut)
	assert.Equal(t, "Casablanca", resp.VilleDestination)
	assert.Equal(t, "AB1234", resp.ReceiverCIN)
	assert.Equal(t, domainColis.ComputePrix(4, domainColis.TypeFragile), resp.Prix)

	require.Len(t, colisRepo.created, 1)
	created := colisRepo.created[0]
	require.NotNil(t, created.IDLivraison)
	run := livraisonRepo.open[[2]int64{10, 20}]
	require.NotNil(t, run)
	assert.Equal(t, run.ID, *created.IDLivraison)
	assert.Equal(t, int64(10), *created.IDEntrepotLocalisation)
}

func TestCreateColisSameEntrepotRejected(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil, nil)

	_, err := svc.CreateColis(context.Background(), 1, &CreateColisRequest{
		Poids:               2,
		ReceiverCIN:         "AB1234",
		IDEntrepotReception: 10,
	})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeValidation, appErr.Code)
}

func TestCreateColisUnknownClient(t *testing.T) {
	entrepotRepo := &stubEntrepotRepo{byID: map[int64]*domainEntrepot.Entrepot{
		20: {ID: 20, Ville: "Casablanca"},
	}}
	svc := newTestService(nil, entrepotRepo, nil, nil, nil, nil)

	_, err := svc.CreateColis(context.Background(), 1, &CreateColisRequest{
		IDClient:            ptr(int64(99)),
		Poids:               2,
		ReceiverCIN:         "AB1234",
		IDEntrepotReception: 20,
	})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeNotFound, appErr.Code)
}

func TestUpdateColisStatutRejectsIllegalTransition(t *testing.T) {
	colisRepo := &stubColisRepo{byID: map[int64]*domainColis.Colis{
		5: {ID: 5, Statut: domainColis.StatutEnregistre},
	}}
	svc := newTestService(nil, nil, nil, colisRepo, nil, nil)

	err := svc.UpdateColisStatut(context.Background(), 1, 5, &UpdateColisStatutRequest{Statut: "LIVRE"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeInvalidTransition, appErr.Code)
	assert.True(t, errors.Is(err, domainColis.ErrInvalidTransition))
	assert.Empty(t, colisRepo.statuts)
}

func TestUpdateColisStatutRejectsTerminalColis(t *testing.T) {
	colisRepo := &stubColisRepo{byID: map[int64]*domainColis.Colis{
		5: {ID: 5, Statut: domainColis.StatutRecuperee},
		6: {ID: 6, Statut: domainColis.StatutAnnule},
	}}
	svc := newTestService(nil, nil, nil, colisRepo, nil, nil)

	for _, id := range []int64{5, 6} {
		err := svc.UpdateColisStatut(context.Background(), 1, id, &UpdateColisStatutRequest{Statut: "EN_COURS"})
		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, appErrors.CodeInvalidTransition, appErr.Code)
		assert.True(t, errors.Is(err, domainColis.ErrColisAlreadyTerminal))
	}
	assert.Empty(t, colisRepo.statuts)
}

func TestUpdateColisStatutAppendsHistory(t *testing.T) {
	colisRepo := &stubColisRepo{byID: map[int64]*domainColis.Colis{
		5: {ID: 5, Statut: domainColis.StatutEnregistre},
	}}
	svc := newTestService(nil, nil, nil, colisRepo, nil, nil)

	err := svc.UpdateColisStatut(context.Background(), 1, 5, &UpdateColisStatutRequest{Statut: "ANNULE"})
	require.NoError(t, err)
	assert.Equal(t, domainColis.StatutAnnule, colisRepo.statuts[5])
	require.Len(t, colisRepo.history, 1)
	assert.Equal(t, domainColis.StatutEnregistre, *colisRepo.history[0].AncienStatut)
	assert.Equal(t, domainColis.StatutAnnule, colisRepo.history[0].NouveauStatut)
	assert.Equal(t, int64(1), colisRepo.history[0].IDUtilisateur)
}

func TestRecupererSanitizesCIN(t *testing.T) {
	colisRepo := &stubColisRepo{recuperees: 3}
	svc := newTestService(nil, nil, nil, colisRepo, nil, nil)

	resp, err := svc.Recuperer(context.Background(), 1, &RecupererRequest{ReceiverCIN: " ab-1234 "})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Updated)
	assert.Equal(t, "AB1234", colisRepo.lastCIN)
}

func TestUpdateVehiculeStatutGuards(t *testing.T) {
	vehiculeRepo := &stubVehiculeRepo{byID: map[int64]*domainVehicule.Vehicule{
		1: {ID: 1, Statut: domainVehicule.StatutDisponible, IDEntrepot: ptr(int64(10))},
		2: {ID: 2, Statut: domainVehicule.StatutEnUtilisation, IDEntrepot: ptr(int64(10))},
		3: {ID: 3, Statut: domainVehicule.StatutDisponible, IDEntrepot: ptr(int64(99))},
	}}
	svc := newTestService(nil, nil, nil, nil, nil, vehiculeRepo)

	// vehicle of another entrepot
	err := svc.UpdateVehiculeStatut(context.Background(), 1, 3, &UpdateVehiculeStatutRequest{Statut: "MAINTENANCE"})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeForbidden, appErr.Code)

	// frozen while in use
	err = svc.UpdateVehiculeStatut(context.Background(), 1, 2, &UpdateVehiculeStatutRequest{Statut: "DISPONIBLE"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeInvalidTransition, appErr.Code)

	// cannot hand a vehicle to a livraison manually
	err = svc.UpdateVehiculeStatut(context.Background(), 1, 1, &UpdateVehiculeStatutRequest{Statut: "EN_UTILISATION"})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeInvalidTransition, appErr.Code)

	// the legal toggle
	err = svc.UpdateVehiculeStatut(context.Background(), 1, 1, &UpdateVehiculeStatutRequest{Statut: "MAINTENANCE"})
	require.NoError(t, err)
	assert.Equal(t, domainVehicule.StatutMaintenance, vehiculeRepo.statuts[1])
}

func TestCreateClientScopesCreator(t *testing.T) {
	clientRepo := &stubClientRepo{}
	svc := newTestService(nil, nil, clientRepo, nil, nil, nil)

	resp, err := svc.CreateClient(context.Background(), 42, &CreateClientRequest{
		Prenom: "Sara",
		Nom:    "Alami",
		CIN:    ptr("cd 5678"),
	})
	require.NoError(t, err)
	assert.Equal(t, "CD5678", *resp.CIN)
	require.Len(t, clientRepo.created, 1)
	assert.Equal(t, int64(42), clientRepo.created[0].IDGestionnaire)
}

package admin

import (
	"context"
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
	byNom        map[string]*domainUser.User
	byID         map[int64]*domainUser.User
	created      []*domainUser.User
	counts       map[domainUser.Role]int64
	lastUpdate   *domainUser.UpdateFields
	lastUpdateID int64
}

func (s *stubUserRepo) GetByNomUtilisateur(_ context.Context, nom string) (*domainUser.User, error) {
	if u, ok := s.byNom[nom]; ok {
		return u, nil
	}
	return nil, domainUser.ErrUserNotFound
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domainUser.User, error) {
	if u, ok := s.byID[id]; ok {
		return u, nil
	}
	return nil, domainUser.ErrUserNotFound
}

func (s *stubUserRepo) Create(_ context.Context, u *domainUser.User) error {
	u.ID = int64(len(s.created) + 1)
	s.created = append(s.created, u)
	return nil
}

func (s *stubUserRepo) Update(_ context.Context, id int64, fields *domainUser.UpdateFields) error {
	s.lastUpdateID = id
	s.lastUpdate = fields
	return nil
}

func (s *stubUserRepo) CountActiveByRole(_ context.Context, role domainUser.Role) (int64, error) {
	return s.counts[role], nil
}

type stubEntrepotRepo struct {
	domainEntrepot.Repository
	managers map[int64]int64
	assigns  []int64
	count    int64
}

func (s *stubEntrepotRepo) AssignGestionnaire(_ context.Context, entrepotID, userID int64) (bool, error) {
	s.assigns = append(s.assigns, entrepotID)
	if s.managers == nil {
		s.managers = make(map[int64]int64)
	}
	if _, taken := s.managers[entrepotID]; taken {
		return false, nil
	}
	s.managers[entrepotID] = userID
	return true, nil
}

func (s *stubEntrepotRepo) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

type stubClientRepo struct {
	domainClient.Repository
	count int64
}

func (s *stubClientRepo) Count(_ context.Context) (int64, error) {
	return s.count, nil
}

type stubVehiculeRepo struct {
	domainVehicule.Repository
	byID       map[int64]*domainVehicule.Vehicule
	reassigned map[int64]*int64
	statuts    map[int64]domainVehicule.Statut
}

func (s *stubVehiculeRepo) GetByID(_ context.Context, id int64) (*domainVehicule.Vehicule, error) {
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, domainVehicule.ErrVehiculeNotFound
}

func (s *stubVehiculeRepo) Reassign(_ context.Context, id int64, entrepotID *int64) error {
	if s.reassigned == nil {
		s.reassigned = make(map[int64]*int64)
	}
	s.reassigned[id] = entrepotID
	return nil
}

func (s *stubVehiculeRepo) UpdateStatut(_ context.Context, id int64, statut domainVehicule.Statut) error {
	if s.statuts == nil {
		s.statuts = make(map[int64]domainVehicule.Statut)
	}
	s.statuts[id] = statut
	return nil
}

type stubColisRepo struct {
	domainColis.Repository
	count int64
	somme float64
}

func (s *stubColisRepo) Count(_ context.Context) (int64, error) { return s.count, nil }
func (s *stubColisRepo) SumPrixDelivered(_ context.Context) (float64, error) { return s.somme, nil }

type stubLivraisonRepo struct {
	domainLivraison.Repository
	count int64
}

func (s *stubLivraisonRepo) Count(_ context.Context) (int64, error) { return s.count, nil }

func ptr[T any](v T) *T { return &v }

func newTestService(userRepo *stubUserRepo, entrepotRepo *stubEntrepotRepo, vehiculeRepo *stubVehiculeRepo) *Service {
	if userRepo == nil {
		userRepo = &stubUserRepo{byNom: map[string]*domainUser.User{}, byID: map[int64]*domainUser.User{}}
	}
	if entrepotRepo == nil {
		entrepotRepo = &stubEntrepotRepo{}
	}
	if vehiculeRepo == nil {
		vehiculeRepo = &stubVehiculeRepo{byID: map[int64]*domainVehicule.Vehicule{}}
	}
	return NewService(userRepo, entrepotRepo, &stubClientRepo{}, vehiculeRepo, &stubColisRepo{}, &stubLivraisonRepo{})
}

func TestKPIs(t *testing.T) {
	userRepo := &stubUserRepo{counts: map[domainUser.Role]int64{
		domainUser.RoleAdmin:        1,
		domainUser.RoleGestionnaire: 3,
		domainUser.RoleLivreur:      5,
	}}
	svc := NewService(
		userRepo,
		&stubEntrepotRepo{count: 4},
		&stubClientRepo{count: 12},
		&stubVehiculeRepo{},
		&stubColisRepo{count: 40, somme: 1234.5},
		&stubLivraisonRepo{count: 9},
	)

	kpis, err := svc.KPIs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(40), kpis.TotalColis)
	assert.Equal(t, int64(9), kpis.TotalLivraisons)
	assert.Equal(t, 1234.5, kpis.ChiffreAffaires)
	assert.Equal(t, int64(5), kpis.Livreurs)
	assert.Equal(t, int64(3), kpis.Gestionnaires)
	assert.Equal(t, int64(1), kpis.Admins)
	assert.Equal(t, int64(4), kpis.Entrepots)
	assert.Equal(t, int64(12), kpis.Clients)
}

func TestCreateUserBackfillsEntrepotManager(t *testing.T) {
	entrepotRepo := &stubEntrepotRepo{}
	svc := newTestService(nil, entrepotRepo, nil)

	resp, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		NomUtilisateur: "manager1",
		MotDePasse:     "Secret123",
		Role:           "gestionnaire",
		IDEntrepot:     ptr(int64(10)),
	})
	require.NoError(t, err)
	assert.Equal(t, "GESTIONNAIRE", resp.Role)
	assert.Equal(t, resp.ID, entrepotRepo.managers[10])
}

func TestBackfillNeverOverwrites(t *testing.T) {
	entrepotRepo := &stubEntrepotRepo{managers: map[int64]int64{10: 99}}
	svc := newTestService(nil, entrepotRepo, nil)

	_, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		NomUtilisateur: "manager2",
		MotDePasse:     "Secret123",
		Role:           "GESTIONNAIRE",
		IDEntrepot:     ptr(int64(10)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(99), entrepotRepo.managers[10])
}

func TestCreateUserSkipsBackfillForOtherRoles(t *testing.T) {
	entrepotRepo := &stubEntrepotRepo{}
	svc := newTestService(nil, entrepotRepo, nil)

	_, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		NomUtilisateur: "driver1",
		MotDePasse:     "Secret123",
		Role:           "LIVREUR",
		IDEntrepot:     ptr(int64(10)),
	})
	require.NoError(t, err)
	assert.Empty(t, entrepotRepo.assigns)
}

func TestCreateUserWeakPassword(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		NomUtilisateur: "weakling",
		MotDePasse:     "password",
		Role:           "ADMIN",
	})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodeValidation, appErr.Code)
}

func TestCreateUserDuplicate(t *testing.T) {
	userRepo := &stubUserRepo{byNom: map[string]*domainUser.User{
		"taken": {ID: 1, NomUtilisateur: "taken"},
	}}
	svc := newTestService(userRepo, nil, nil)

	_, err := svc.CreateUser(context.Background(), &CreateUserRequest{
		NomUtilisateur: "taken",
		MotDePasse:     "Secret123",
		Role:           "ADMIN",
	})
	assert.ErrorIs(t, err, appErrors.ErrUserAlreadyExists)
}

func TestUpdateUserBackfills(t *testing.T) {
	entrepotID := int64(10)
	userRepo := &stubUserRepo{byID: map[int64]*domainUser.User{
		7: {ID: 7, NomUtilisateur: "m", Role: domainUser.RoleGestionnaire, IDEntrepot: &entrepotID},
	}}
	entrepotRepo := &stubEntrepotRepo{}
	svc := newTestService(userRepo, entrepotRepo, nil)

	_, err := svc.UpdateUser(context.Background(), 7, &UpdateUserRequest{IDEntrepot: &entrepotID})
	require.NoError(t, err)
	assert.Equal(t, int64(7), entrepotRepo.managers[10])
	assert.Equal(t, int64(7), userRepo.lastUpdateID)
}

func TestUpdateVehiculeRejectsWhileInUse(t *testing.T) {
	vehiculeRepo := &stubVehiculeRepo{byID: map[int64]*domainVehicule.Vehicule{
		1: {ID: 1, Statut: domainVehicule.StatutEnUtilisation},
	}}
	svc := newTestService(nil, nil, vehiculeRepo)

	_, err := svc.UpdateVehicule(context.Background(), 1, &UpdateVehiculeRequest{IDEntrepot: ptr(int64(20))})
	var appErr *appErrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.CodePreconditionFailed, appErr.Code)
	assert.Empty(t, vehiculeRepo.reassigned)
}

func TestUpdateVehiculeReassigns(t *testing.T) {
	vehiculeRepo := &stubVehiculeRepo{byID: map[int64]*domainVehicule.Vehicule{
		1: {ID: 1, Statut: domainVehicule.StatutDisponible, IDEntrepot: ptr(int64(10))},
	}}
	svc := newTestService(nil, nil, vehiculeRepo)

	resp, err := svc.UpdateVehicule(context.Background(), 1, &UpdateVehiculeRequest{IDEntrepot: ptr(int64(20))})
	require.NoError(t, err)
	assert.Equal(t, int64(20), *resp.IDEntrepot)
	require.Contains(t, vehiculeRepo.reassigned, int64(1))
	assert.Equal(t, int64(20), *vehiculeRepo.reassigned[1])
}

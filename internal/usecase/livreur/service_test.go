package livreur

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type stubLivraisonRepo struct {
	domainLivraison.Repository
	prendreErr   error
	livrerErr    error
	disponibles  []*domainLivraison.Detail
	prendreCalls int
}

func (s *stubLivraisonRepo) Prendre(_ context.Context, _, _, _ int64) error {
	s.prendreCalls++
	return s.prendreErr
}

func (s *stubLivraisonRepo) Livrer(_ context.Context, _, _ int64) error {
	return s.livrerErr
}

func (s *stubLivraisonRepo) ListDisponibles(_ context.Context, _ int64) ([]*domainLivraison.Detail, error) {
	return s.disponibles, nil
}

type stubVehiculeRepo struct {
	domainVehicule.Repository
	disponibles []*domainVehicule.Detail
}

func (s *stubVehiculeRepo) ListDisponibles(_ context.Context, _ int64) ([]*domainVehicule.Detail, error) {
	return s.disponibles, nil
}

func ptr[T any](v T) *T { return &v }

func TestListDisponiblesRequiresEntrepot(t *testing.T) {
	svc := NewService(&stubUserRepo{entrepots: map[int64]*int64{}}, &stubLivraisonRepo{}, &stubVehiculeRepo{})

	_, err := svc.ListDisponibles(context.Background(), 1)
	assert.ErrorIs(t, err, appErrors.ErrNoEntrepotAssigned)
}

func TestListDisponibles(t *testing.T) {
	livRepo := &stubLivraisonRepo{disponibles: []*domainLivraison.Detail{
		{ID: 3, Source: "Rabat", Destination: "Fes", Statut: domainLivraison.StatutCreee, NbColis: 2},
	}}
	svc := NewService(&stubUserRepo{entrepots: map[int64]*int64{1: ptr(int64(10))}}, livRepo, &stubVehiculeRepo{})

	resp, err := svc.ListDisponibles(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Rabat", resp[0].Source)
	assert.Equal(t, int64(2), resp[0].NbColis)
}

func TestPrendreClassifiesErrors(t *testing.T) {
	cases := []struct {
		repoErr  error
		wantCode string
	}{
		{domainLivraison.ErrLivraisonNotFound, appErrors.CodeNotFound},
		{domainLivraison.ErrNotAvailable, appErrors.CodePreconditionFailed},
		{domainVehicule.ErrVehiculeNotFound, appErrors.CodeNotFound},
		{domainVehicule.ErrVehiculeInUse, appErrors.CodePreconditionFailed},
		{domainVehicule.ErrVehiculeWrongEntrepot, appErrors.CodePreconditionFailed},
	}

	for _, tc := range cases {
		livRepo := &stubLivraisonRepo{prendreErr: tc.repoErr}
		svc := NewService(&stubUserRepo{}, livRepo, &stubVehiculeRepo{})

		err := svc.Prendre(context.Background(), 1, 3, &PrendreRequest{IDVehicule: 5})
		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr, "repo error %v", tc.repoErr)
		assert.Equal(t, tc.wantCode, appErr.Code)
	}
}

func TestPrendreSuccess(t *testing.T) {
	livRepo := &stubLivraisonRepo{}
	svc := NewService(&stubUserRepo{}, livRepo, &stubVehiculeRepo{})

	require.NoError(t, svc.Prendre(context.Background(), 1, 3, &PrendreRequest{IDVehicule: 5}))
	assert.Equal(t, 1, livRepo.prendreCalls)
}

func TestLivrerClassifiesErrors(t *testing.T) {
	cases := []struct {
		repoErr  error
		wantCode string
	}{
		{domainLivraison.ErrNotInProgress, appErrors.CodePreconditionFailed},
		{domainLivraison.ErrNotAssignedLivreur, appErrors.CodeForbidden},
	}

	for _, tc := range cases {
		livRepo := &stubLivraisonRepo{livrerErr: tc.repoErr}
		svc := NewService(&stubUserRepo{}, livRepo, &stubVehiculeRepo{})

		err := svc.Livrer(context.Background(), 1, 3)
		var appErr *appErrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, tc.wantCode, appErr.Code)
	}
}

func TestListVehicules(t *testing.T) {
	vehRepo := &stubVehiculeRepo{disponibles: []*domainVehicule.Detail{
		{Vehicule: domainVehicule.Vehicule{ID: 5, Immatriculation: "A-123", Statut: domainVehicule.StatutDisponible}},
	}}
	svc := NewService(&stubUserRepo{entrepots: map[int64]*int64{1: ptr(int64(10))}}, &stubLivraisonRepo{}, vehRepo)

	resp, err := svc.ListVehicules(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "A-123", resp[0].Immatriculation)
}

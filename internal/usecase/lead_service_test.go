package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rafaelmtz/leadtracker/internal/entity"
)

func strPtr(s string) *string { return &s }

func existingLead() *entity.Lead {
	return &entity.Lead{
		ID:     "lead-1",
		Name:   "Ana",
		Email:  "ana@example.com",
		Phone:  "555-0001",
		Status: entity.LeadStatusLead,
	}
}

func TestCreateLeadDefaultsToLeadStatus(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewLeadService(repo)

	lead, err := service.Create(context.Background(), CreateLeadInput{
		Name:  "Ana",
		Email: "ana@example.com",
		Phone: "555-0001",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.LeadStatusLead, lead.Status)
	assert.Equal(t, "Ana", lead.Name)
	repo.AssertCalled(t, "Create", mock.Anything, lead)
}

func TestCreateLeadRequiresNameAndEmail(t *testing.T) {
	service := NewLeadService(new(MockLeadRepository))

	_, err := service.Create(context.Background(), CreateLeadInput{Email: "a@x.com"})
	assert.True(t, IsValidationError(err))

	_, err = service.Create(context.Background(), CreateLeadInput{Name: "A"})
	assert.True(t, IsValidationError(err))
}

func TestUpdateLeadAppliesOnlyPresentFields(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(existingLead(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewLeadService(repo)

	lead, err := service.Update(context.Background(), "lead-1", UpdateLeadInput{
		Name: strPtr("Ana Maria"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ana Maria", lead.Name)
	// Fields absent from the payload stay untouched.
	assert.Equal(t, "ana@example.com", lead.Email)
	assert.Equal(t, "555-0001", lead.Phone)
}

func TestUpdateLeadRejectsEmptyNameOrEmail(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(existingLead(), nil)

	service := NewLeadService(repo)

	_, err := service.Update(context.Background(), "lead-1", UpdateLeadInput{Name: strPtr("")})
	assert.True(t, IsValidationError(err))

	_, err = service.Update(context.Background(), "lead-1", UpdateLeadInput{Email: strPtr("")})
	assert.True(t, IsValidationError(err))

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateLeadRejectsStatusChange(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(existingLead(), nil)

	service := NewLeadService(repo)

	_, err := service.Update(context.Background(), "lead-1", UpdateLeadInput{
		Status: strPtr(entity.LeadStatusConverted),
	})

	assert.True(t, IsValidationError(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateLeadAcceptsSameStatus(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "lead-1").Return(existingLead(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	service := NewLeadService(repo)

	_, err := service.Update(context.Background(), "lead-1", UpdateLeadInput{
		Status: strPtr(entity.LeadStatusLead),
		Phone:  strPtr("555-0002"),
	})

	assert.NoError(t, err)
}

func TestUpdateLeadNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrLeadNotFound)

	service := NewLeadService(repo)

	_, err := service.Update(context.Background(), "missing", UpdateLeadInput{Name: strPtr("x")})
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestDeleteLeadNotFound(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Delete", mock.Anything, "missing").Return(entity.ErrLeadNotFound)

	service := NewLeadService(repo)

	err := service.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

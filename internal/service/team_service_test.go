package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FanSt3/naturale-api/internal/utils"
)

func TestTeamListSearch(t *testing.T) {
	t.Parallel()

	store := newFakeTeamMemberStore()
	svc := NewTeamService(store)
	for _, m := range []*CreateTeamMemberRequest{
		{Name: "Petar Petrović", Position: "Direktor projekta", Description: "Profesor fizike"},
		{Name: "Marija Marković", Position: "Edukator", Description: "Vodi radionice"},
		{Name: "Jovan Jovanović", Position: "Edukator", Description: "Demonstracije eksperimenata"},
	} {
		_, err := svc.Create(m)
		require.NoError(t, err)
	}

	// Search spans name, position, and description.
	members, pagination, err := svc.List(ListFilter{Search: "edukator", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, members, 2)
	assert.Equal(t, 2, pagination.Total)

	members, _, err = svc.List(ListFilter{Search: "radionice", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Marija Marković", members[0].Name)
}

func TestTeamCRUD(t *testing.T) {
	t.Parallel()

	svc := NewTeamService(newFakeTeamMemberStore())
	image := "/team/profile.jpg"
	created, err := svc.Create(&CreateTeamMemberRequest{
		Name:        "Petar Petrović",
		Position:    "Direktor projekta",
		Description: "Profesor fizike",
		Image:       &image,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	updated, err := svc.Update(created.ID, &UpdateTeamMemberRequest{
		Name:        "Petar Petrović",
		Position:    "Rukovodilac",
		Description: "Profesor fizike",
	})
	require.NoError(t, err)
	assert.Equal(t, "Rukovodilac", updated.Position)

	require.NoError(t, svc.Delete(created.ID))
	_, err = svc.Get(created.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

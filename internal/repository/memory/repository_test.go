package memory_test

import (
	"context"
	"testing"

	"go-profile-builder/internal/domain"
	"go-profile-builder/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestEducationIDsAreMonotonic(t *testing.T) {
	repo := memory.NewEducationRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.InsertEducation{ProfileID: 1, Institution: "MIT", Degree: "BSc"})
	assert.NoError(t, err)
	second, err := repo.Create(ctx, domain.InsertEducation{ProfileID: 1, Institution: "CMU", Degree: "MSc"})
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	// Deleted ids are never reused
	deleted, err := repo.Delete(ctx, second.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	third, err := repo.Create(ctx, domain.InsertEducation{ProfileID: 1, Institution: "ETH", Degree: "PhD"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), third.ID)
}

func TestEducationListFiltersByProfile(t *testing.T) {
	repo := memory.NewEducationRepository()
	ctx := context.Background()

	_, _ = repo.Create(ctx, domain.InsertEducation{ProfileID: 1, Institution: "MIT", Degree: "BSc"})
	_, _ = repo.Create(ctx, domain.InsertEducation{ProfileID: 2, Institution: "CMU", Degree: "MSc"})
	_, _ = repo.Create(ctx, domain.InsertEducation{ProfileID: 1, Institution: "ETH", Degree: "PhD"})

	out, err := repo.ListByProfileID(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	// Insertion order via ascending ids
	assert.Equal(t, "MIT", out[0].Institution)
	assert.Equal(t, "ETH", out[1].Institution)

	empty, err := repo.ListByProfileID(ctx, 99)
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEducationPartialUpdate(t *testing.T) {
	repo := memory.NewEducationRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, domain.InsertEducation{
		ProfileID:   1,
		Institution: "MIT",
		Degree:      "BSc",
		Description: "thesis on compilers",
	})

	newDegree := "MEng"
	updated, err := repo.Update(ctx, created.ID, domain.UpdateEducation{Degree: &newDegree})
	assert.NoError(t, err)
	assert.NotNil(t, updated)
	assert.Equal(t, "MEng", updated.Degree)
	// Untouched fields survive the merge
	assert.Equal(t, "MIT", updated.Institution)
	assert.Equal(t, "thesis on compilers", updated.Description)
}

func TestEducationUpdateMissingLeavesStoreUnchanged(t *testing.T) {
	repo := memory.NewEducationRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, domain.InsertEducation{ProfileID: 1, Institution: "MIT", Degree: "BSc"})

	degree := "MSc"
	updated, err := repo.Update(ctx, 999, domain.UpdateEducation{Degree: &degree})
	assert.NoError(t, err)
	assert.Nil(t, updated)

	out, _ := repo.ListByProfileID(ctx, 1)
	assert.Len(t, out, 1)
	assert.Equal(t, created.Degree, out[0].Degree)
}

func TestEducationDeleteIsIdempotentlyReported(t *testing.T) {
	repo := memory.NewEducationRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, domain.InsertEducation{ProfileID: 1, Institution: "MIT", Degree: "BSc"})

	deleted, err := repo.Delete(ctx, created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestProjectTechnologiesReplacedWholesale(t *testing.T) {
	repo := memory.NewProjectRepository()
	ctx := context.Background()

	created, _ := repo.Create(ctx, domain.InsertProject{
		ProfileID:    1,
		Title:        "Resume builder",
		Technologies: []string{"Go", "Postgres"},
	})

	updated, err := repo.Update(ctx, created.ID, domain.UpdateProject{
		Technologies: []string{"Rust"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Rust"}, updated.Technologies)
}

func TestProfileTimestamps(t *testing.T) {
	repo := memory.NewProfileRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.InsertProfile{FullName: "Ada", Email: "ada@example.com"})
	assert.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	name := "Ada Lovelace"
	updated, err := repo.Update(ctx, created.ID, domain.UpdateProfile{FullName: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.FullName)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

package domain_test

import (
	"testing"

	"go-profile-builder/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCalculateCompletion(t *testing.T) {
	t.Run("Should report zero for a nil aggregate", func(t *testing.T) {
		got := domain.CalculateCompletion(nil)
		assert.Equal(t, 0, got.CompletedSections)
		assert.Equal(t, 8, got.TotalSections)
		assert.Equal(t, 0, got.CompletionPercentage)
	})

	t.Run("Should report zero for a blank profile", func(t *testing.T) {
		got := domain.CalculateCompletion(&domain.CompleteProfile{})
		assert.Equal(t, 0, got.CompletedSections)
		assert.Equal(t, 0, got.CompletionPercentage)
		assert.Len(t, got.Sections, 8)
	})

	t.Run("Should round one of eight up to 13", func(t *testing.T) {
		cp := &domain.CompleteProfile{
			Profile: domain.Profile{FullName: "Ada Lovelace", Email: "ada@example.com"},
		}
		got := domain.CalculateCompletion(cp)
		assert.Equal(t, 1, got.CompletedSections)
		assert.Equal(t, 13, got.CompletionPercentage)
	})

	t.Run("Should not count personal info without an email", func(t *testing.T) {
		cp := &domain.CompleteProfile{
			Profile: domain.Profile{FullName: "Ada Lovelace"},
		}
		got := domain.CalculateCompletion(cp)
		assert.Equal(t, 0, got.CompletedSections)
	})

	t.Run("Should reach 100 when every section has content", func(t *testing.T) {
		cp := &domain.CompleteProfile{
			Profile:        domain.Profile{FullName: "Ada Lovelace", Email: "ada@example.com"},
			Education:      []domain.Education{{ID: 1}},
			Skills:         []domain.Skill{{ID: 1}},
			Experience:     []domain.Experience{{ID: 1}},
			Projects:       []domain.Project{{ID: 1}},
			Certifications: []domain.Certification{{ID: 1}},
			ExternalLinks:  []domain.ExternalLink{{ID: 1}},
			ResumeFiles:    []domain.ResumeFile{{ID: 1}},
		}
		got := domain.CalculateCompletion(cp)
		assert.Equal(t, 8, got.CompletedSections)
		assert.Equal(t, 100, got.CompletionPercentage)
	})

	t.Run("Should never decrease as sections fill in", func(t *testing.T) {
		cp := &domain.CompleteProfile{}
		prev := domain.CalculateCompletion(cp).CompletionPercentage

		fill := []func(){
			func() { cp.Profile = domain.Profile{FullName: "Ada", Email: "ada@example.com"} },
			func() { cp.Education = []domain.Education{{ID: 1}} },
			func() { cp.Skills = []domain.Skill{{ID: 1}} },
			func() { cp.Experience = []domain.Experience{{ID: 1}} },
			func() { cp.Projects = []domain.Project{{ID: 1}} },
			func() { cp.Certifications = []domain.Certification{{ID: 1}} },
			func() { cp.ExternalLinks = []domain.ExternalLink{{ID: 1}} },
			func() { cp.ResumeFiles = []domain.ResumeFile{{ID: 1}} },
		}
		for _, step := range fill {
			step()
			cur := domain.CalculateCompletion(cp).CompletionPercentage
			assert.GreaterOrEqual(t, cur, prev)
			prev = cur
		}
		assert.Equal(t, 100, prev)
	})
}

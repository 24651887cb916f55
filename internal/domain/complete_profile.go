package domain

import "math"

// CompleteProfile is the on-demand composite of a profile and all of its
// child collections. It is assembled from seven independent reads, so a
// concurrent write between two of the fetches can produce a combination
// that never existed at a single instant. Acceptable for a read-mostly
// preview; callers must not treat it as a snapshot.
type CompleteProfile struct {
	Profile        Profile         `json:"profile"`
	Education      []Education     `json:"education"`
	Skills         []Skill         `json:"skills"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`
	ExternalLinks  []ExternalLink  `json:"externalLinks"`
	ResumeFiles    []ResumeFile    `json:"resumeFiles"`
}

const totalSections = 8

type SectionStatus struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type ProfileCompletion struct {
	CompletedSections    int             `json:"completedSections"`
	TotalSections        int             `json:"totalSections"`
	CompletionPercentage int             `json:"completionPercentage"`
	Sections             []SectionStatus `json:"sections"`
}

// CalculateCompletion scores a profile across 8 fixed sections: personal
// info counts when both full name and email are non-empty, every other
// section counts when its collection has at least one record. The
// percentage rounds half away from zero, so 1/8 reports 13%.
//
// Safe to call with a nil aggregate; it degrades to 0 of 8.
func CalculateCompletion(cp *CompleteProfile) ProfileCompletion {
	if cp == nil {
		return ProfileCompletion{TotalSections: totalSections}
	}

	sections := []SectionStatus{
		{Name: "Personal Information", Completed: cp.Profile.FullName != "" && cp.Profile.Email != ""},
		{Name: "Education", Completed: len(cp.Education) > 0},
		{Name: "Skills", Completed: len(cp.Skills) > 0},
		{Name: "Experience", Completed: len(cp.Experience) > 0},
		{Name: "Projects", Completed: len(cp.Projects) > 0},
		{Name: "Certifications", Completed: len(cp.Certifications) > 0},
		{Name: "External Links", Completed: len(cp.ExternalLinks) > 0},
		{Name: "Resume", Completed: len(cp.ResumeFiles) > 0},
	}

	completed := 0
	for _, s := range sections {
		if s.Completed {
			completed++
		}
	}

	return ProfileCompletion{
		CompletedSections:    completed,
		TotalSections:        totalSections,
		CompletionPercentage: int(math.Round(float64(completed) / totalSections * 100)),
		Sections:             sections,
	}
}

package repository

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/okian/internmatch/internal/domain/model"
)

// Dataset is the YAML corpus layout consumed at startup.
type Dataset struct {
	Profiles    []model.CandidateProfile  `yaml:"profiles"`
	Internships []model.InternshipListing `yaml:"internships"`
}

// LoadDataset reads and parses a YAML corpus file.
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return &ds, nil
}

// Seed loads a dataset into the store.
func (m *MemStore) Seed(ds *Dataset) {
	for _, p := range ds.Profiles {
		m.PutProfile(p)
	}
	for _, l := range ds.Internships {
		m.PutListing(l)
	}
}

// SampleDataset returns the built-in fallback corpus used when no dataset
// file is configured.
func SampleDataset() *Dataset {
	return &Dataset{
		Internships: []model.InternshipListing{
			{
				ID:             "intern-001",
				Name:           "Software Developer Intern",
				Company:        "Tech Corp",
				Location:       "mumbai",
				Department:     "Computer Science",
				Qualification:  "BTech",
				RequiredSkills: []string{"Python", "SQL", "React"},
				Active:         true,
			},
			{
				ID:             "intern-002",
				Name:           "Data Science Intern",
				Company:        "Data Inc",
				Location:       "delhi",
				Department:     "Data Science",
				Qualification:  "MTech",
				RequiredSkills: []string{"Python", "Machine Learning", "Statistics"},
				Active:         true,
			},
			{
				ID:             "intern-003",
				Name:           "Web Developer Intern",
				Company:        "Web Solutions",
				Location:       "bangalore",
				Department:     "Computer Science",
				Qualification:  "BTech",
				RequiredSkills: []string{"HTML", "CSS", "JavaScript"},
				Active:         true,
			},
			{
				ID:             "intern-004",
				Name:           "AI/ML Intern",
				Company:        "AI Labs",
				Location:       "hyderabad",
				Department:     "AI/ML",
				Qualification:  "MTech",
				RequiredSkills: []string{"Python", "TensorFlow", "Deep Learning"},
				Active:         true,
			},
			{
				ID:             "intern-005",
				Name:           "DevOps Intern",
				Company:        "Cloud Systems",
				Location:       "pune",
				Department:     "Computer Science",
				Qualification:  "BTech",
				RequiredSkills: []string{"Docker", "Kubernetes", "AWS"},
				Active:         true,
			},
		},
	}
}

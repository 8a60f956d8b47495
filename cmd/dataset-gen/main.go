// Command dataset-gen writes a sample YAML corpus for local runs:
// internship listings plus a few candidate profiles with uuid identifiers.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/okian/internmatch/internal/adapters/repository"
	"github.com/okian/internmatch/internal/domain/model"
)

var (
	departments = []string{"Computer Science", "Data Science", "AI/ML", "IT", "Electronics"}
	locations   = []string{"mumbai", "delhi", "bangalore", "hyderabad", "pune", "chennai"}
	titles      = []string{"Software Developer Intern", "Data Science Intern", "Web Developer Intern", "AI/ML Intern", "DevOps Intern", "QA Intern"}
	skillPool   = []string{"Python", "SQL", "React", "Machine Learning", "Statistics", "HTML", "CSS", "JavaScript", "TensorFlow", "Deep Learning", "Docker", "Kubernetes", "AWS", "Java", "Excel"}
	interests   = []string{"web development", "data analysis", "artificial intelligence", "cloud computing", "mobile apps"}
	companies   = []string{"Tech Corp", "Data Inc", "Web Solutions", "AI Labs", "Cloud Systems"}
)

func main() {
	out := flag.String("out", "dataset.yaml", "output file path")
	profileCount := flag.Int("profiles", 3, "number of candidate profiles")
	internshipCount := flag.Int("internships", 25, "number of internship listings")
	seed := flag.Int64("seed", 42, "random seed for attribute selection")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // reproducible sample data, not crypto

	ds := &repository.Dataset{}
	for i := 0; i < *profileCount; i++ {
		ds.Profiles = append(ds.Profiles, randomProfile(rng))
	}
	for i := 0; i < *internshipCount; i++ {
		ds.Internships = append(ds.Internships, randomListing(rng))
	}

	raw, err := yaml.Marshal(ds)
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal dataset:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write dataset:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d profiles and %d internships to %s\n", *profileCount, *internshipCount, *out)
}

func randomProfile(rng *rand.Rand) model.CandidateProfile {
	skills := pick(rng, skillPool, 2+rng.Intn(4))
	rated := make([]model.SkillRating, len(skills))
	for i, s := range skills {
		rated[i] = model.SkillRating{Name: s, Level: 1 + rng.Intn(5)}
	}
	return model.CandidateProfile{
		ID:              uuid.New().String(),
		Skills:          rated,
		Interests:       pick(rng, interests, 1+rng.Intn(2)),
		Location:        locations[rng.Intn(len(locations))],
		University:      "State University",
		Major:           departments[rng.Intn(len(departments))],
		Qualification:   "BTech",
		Department:      departments[rng.Intn(len(departments))],
		ProfileComplete: rng.Intn(2) == 0,
	}
}

func randomListing(rng *rand.Rand) model.InternshipListing {
	return model.InternshipListing{
		ID:             uuid.New().String(),
		Name:           titles[rng.Intn(len(titles))],
		Company:        companies[rng.Intn(len(companies))],
		RequiredSkills: pick(rng, skillPool, 2+rng.Intn(3)),
		Interests:      pick(rng, interests, rng.Intn(3)),
		Location:       locations[rng.Intn(len(locations))],
		Department:     departments[rng.Intn(len(departments))],
		Qualification:  "BTech",
		Remote:         rng.Intn(4) == 0,
		ApplicantCount: rng.Intn(200),
		Active:         true,
	}
}

// pick returns n distinct random elements of pool, in pool order.
func pick(rng *rand.Rand, pool []string, n int) []string {
	if n >= len(pool) {
		n = len(pool)
	}
	chosen := make(map[int]bool, n)
	for len(chosen) < n {
		chosen[rng.Intn(len(pool))] = true
	}
	out := make([]string, 0, n)
	for i, s := range pool {
		if chosen[i] {
			out = append(out, s)
		}
	}
	return out
}

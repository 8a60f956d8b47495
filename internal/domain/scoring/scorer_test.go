package scoring_test

import (
	"testing"

	"github.com/okian/internmatch/internal/domain/model"
	"github.com/okian/internmatch/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScore(t *testing.T) {
	Convey("Given the rule-based scorer", t, func() {
		scorer := scoring.New()

		Convey("When a strong candidate meets a matching listing", func() {
			candidate := model.CandidateProfile{
				ID: "cand-1",
				Skills: []model.SkillRating{
					{Name: "Python", Level: 4},
					{Name: "SQL", Level: 3},
				},
				Location:        "Mumbai",
				University:      "IIT Bombay",
				Major:           "Computer Science",
				ProfileComplete: true,
			}
			listing := model.InternshipListing{
				ID:             "intern-1",
				RequiredSkills: []string{"Python", "SQL", "React"},
				Location:       "Mumbai",
			}

			result := scorer.Score(candidate, listing)

			Convey("Then the components add up before rounding", func() {
				// 2/3 of 40 for skills, 12.5 for no interest requirements,
				// 15 location, 10 education, 10 completeness, 4 bonus.
				So(result.Score, ShouldEqual, 78)
				So(result.InternshipID, ShouldEqual, "intern-1")
			})

			Convey("Then every contributing factor is explained", func() {
				So(result.Reasons, ShouldContain, "You have 2 out of 3 required skills")
				So(result.Reasons, ShouldContain, "No specific interest requirements")
				So(result.Reasons, ShouldContain, "Location matches your preference")
				So(result.Reasons, ShouldContain, "Educational background is suitable")
				So(result.Reasons, ShouldContain, "Complete profile gives you an advantage")
				So(result.Reasons, ShouldContain, "You have 2 high-demand skills")
			})

			Convey("Then the verdict reflects the score band", func() {
				So(result.Reasons[len(result.Reasons)-1], ShouldEqual, "Good match with room for improvement")
			})

			Convey("Then scoring the same inputs again yields the same result", func() {
				So(scorer.Score(candidate, listing), ShouldResemble, result)
			})
		})

		Convey("When the listing requires no skills and no interests", func() {
			result := scorer.Score(model.CandidateProfile{}, model.InternshipListing{ID: "open"})

			Convey("Then the flat credits apply", func() {
				// 20 skills credit + 12.5 interests credit, rounded up.
				So(result.Score, ShouldEqual, 33)
				So(result.Reasons, ShouldContain, "No specific skills required")
				So(result.Reasons, ShouldContain, "No specific interest requirements")
				So(result.Reasons, ShouldContain, "Location preference not specified")
				So(result.Reasons, ShouldContain, "Complete your profile for better matches")
			})
		})

		Convey("When the candidate shares no skills with the listing", func() {
			candidate := model.CandidateProfile{
				Skills: []model.SkillRating{{Name: "Cooking"}},
			}
			listing := model.InternshipListing{
				RequiredSkills: []string{"Go", "Rust"},
				Interests:      []string{"Systems"},
			}
			result := scorer.Score(candidate, listing)

			Convey("Then the gap is called out and no interest reason appears", func() {
				So(result.Reasons, ShouldContain, "Skills gap: Consider developing required skills")
				for _, r := range result.Reasons {
					So(r, ShouldNotContainSubstring, "interests align")
				}
			})
		})

		Convey("When the listing is remote and locations differ", func() {
			candidate := model.CandidateProfile{Location: "Pune"}
			listing := model.InternshipListing{Location: "Delhi", Remote: true}
			result := scorer.Score(candidate, listing)

			Convey("Then the remote credit applies instead of the location weight", func() {
				So(result.Reasons, ShouldContain, "Remote opportunity available")
			})
		})

		Convey("When locations overlap as substrings", func() {
			candidate := model.CandidateProfile{Location: "Navi Mumbai"}
			listing := model.InternshipListing{Location: "mumbai"}
			result := scorer.Score(candidate, listing)

			Convey("Then the substring match earns the full location weight", func() {
				So(result.Reasons, ShouldContain, "Location matches your preference")
			})
		})

		Convey("When a candidate maxes out every component", func() {
			candidate := model.CandidateProfile{
				Skills: []model.SkillRating{
					{Name: "Python"}, {Name: "JavaScript"}, {Name: "React"},
					{Name: "SQL"}, {Name: "Java"}, {Name: "Machine Learning"},
				},
				Interests:       []string{"AI", "Web"},
				Location:        "Bangalore",
				University:      "NIT",
				Major:           "CS",
				ProfileComplete: true,
			}
			listing := model.InternshipListing{
				RequiredSkills: []string{"Python", "JavaScript", "React", "SQL", "Java", "Machine Learning"},
				Interests:      []string{"AI", "Web"},
				Location:       "Bangalore",
			}
			result := scorer.Score(candidate, listing)

			Convey("Then the score clamps at one hundred", func() {
				So(result.Score, ShouldEqual, 100)
				So(result.Reasons, ShouldContain, "Excellent match!")
			})
		})

		Convey("When only a university is set", func() {
			candidate := model.CandidateProfile{University: "DU"}
			result := scorer.Score(candidate, model.InternshipListing{})

			Convey("Then the reduced education credit applies", func() {
				So(result.Reasons, ShouldContain, "University background noted")
			})
		})
	})
}

func TestScoreOptions(t *testing.T) {
	Convey("Given scorer configuration options", t, func() {
		Convey("When the high-demand list is overridden", func() {
			scorer := scoring.New(scoring.WithHighDemandSkills([]string{"Go"}))
			candidate := model.CandidateProfile{
				Skills: []model.SkillRating{{Name: "Go"}, {Name: "Python"}},
			}
			result := scorer.Score(candidate, model.InternshipListing{})

			Convey("Then only the configured skills earn the bonus", func() {
				So(result.Reasons, ShouldContain, "You have 1 high-demand skills")
			})
		})

		Convey("When the weights are overridden", func() {
			scorer := scoring.New(scoring.WithWeights(scoring.Weights{Completeness: 50}))
			result := scorer.Score(model.CandidateProfile{ProfileComplete: true}, model.InternshipListing{
				RequiredSkills: []string{"Go"},
				Interests:      []string{"Systems"},
			})

			Convey("Then the custom weight drives the score", func() {
				So(result.Score, ShouldEqual, 50)
			})
		})
	})
}

func TestUnscorable(t *testing.T) {
	Convey("Given an unresolvable scoring subject", t, func() {
		result := scoring.Unscorable("intern-9")

		Convey("Then the result degrades to zero with a single reason", func() {
			So(result.InternshipID, ShouldEqual, "intern-9")
			So(result.Score, ShouldEqual, 0)
			So(result.Reasons, ShouldResemble, []string{"Unable to calculate match score"})
		})
	})
}

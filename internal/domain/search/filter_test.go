package search_test

import (
	"fmt"
	"testing"

	"github.com/okian/internmatch/internal/domain/model"
	"github.com/okian/internmatch/internal/domain/search"
	. "github.com/smartystreets/goconvey/convey"
)

func searchCorpus() []model.InternshipListing {
	return []model.InternshipListing{
		{ID: "intern-1", Location: "Mumbai", Department: "Computer Science", RequiredSkills: []string{"Python", "SQL"}},
		{ID: "intern-2", Location: "Delhi", Department: "Computer Science", RequiredSkills: []string{"React", "JavaScript"}},
		{ID: "intern-3", Location: "Navi Mumbai", Department: "Business", RequiredSkills: []string{"Marketing"}},
		{ID: "intern-4", Location: "Pune", Department: "Design", RequiredSkills: []string{"Figma", "UI/UX"}},
	}
}

func TestFilter(t *testing.T) {
	Convey("Given the filter search over a corpus", t, func() {
		corpus := searchCorpus()

		Convey("When no filters are provided", func() {
			got := search.Filter(model.SearchQuery{}, corpus)

			Convey("Then everything comes back in corpus order", func() {
				So(got, ShouldHaveLength, len(corpus))
				So(got[0].ID, ShouldEqual, "intern-1")
				So(got[3].ID, ShouldEqual, "intern-4")
			})
		})

		Convey("When filtering by location substring", func() {
			got := search.Filter(model.SearchQuery{Location: "mumbai"}, corpus)

			Convey("Then both Mumbai listings match, case-insensitively", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].ID, ShouldEqual, "intern-1")
				So(got[1].ID, ShouldEqual, "intern-3")
			})
		})

		Convey("When combining location and department filters", func() {
			got := search.Filter(model.SearchQuery{Location: "Mumbai", Department: "business"}, corpus)

			Convey("Then all predicates must hold", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, "intern-3")
			})
		})

		Convey("When filtering by skills", func() {
			got := search.Filter(model.SearchQuery{Skills: []string{"python", "react"}}, corpus)

			Convey("Then any one requested skill is enough", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].ID, ShouldEqual, "intern-1")
				So(got[1].ID, ShouldEqual, "intern-2")
			})
		})

		Convey("When a skill filter holds only blank entries", func() {
			got := search.Filter(model.SearchQuery{Skills: []string{" ", ""}}, corpus)

			Convey("Then the skill predicate is ignored", func() {
				So(got, ShouldHaveLength, len(corpus))
			})
		})

		Convey("When no listing satisfies the filters", func() {
			got := search.Filter(model.SearchQuery{Location: "Kolkata"}, corpus)

			Convey("Then the result is empty, not nil-panicking", func() {
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When the corpus is larger than the result cap", func() {
			big := make([]model.InternshipListing, 0, 30)
			for i := 0; i < 30; i++ {
				big = append(big, model.InternshipListing{ID: fmt.Sprintf("intern-%02d", i), Location: "Mumbai"})
			}
			got := search.Filter(model.SearchQuery{Location: "Mumbai"}, big)

			Convey("Then at most twenty listings come back, earliest first", func() {
				So(got, ShouldHaveLength, 20)
				So(got[0].ID, ShouldEqual, "intern-00")
				So(got[19].ID, ShouldEqual, "intern-19")
			})
		})
	})
}

package dataset

import (
	"math/rand"
	"time"

	"datatable/internal/domain/models"
	"datatable/internal/utils"
)

// Vocabularies for mock records. Values are fixed so that filter dropdowns,
// tests and generated data always agree.
var (
	companies = []string{
		"TechCorp", "InnovateLab", "DataSystems", "CloudFirst", "AI Solutions",
		"DevOps Inc", "ScaleUp", "StartupHub", "Enterprise Co", "Digital Works",
		"CodeFactory", "ByteStream", "NetFlow", "AppCraft", "WebMaster",
	}

	departments = []string{
		"Engineering", "Product", "Design", "Marketing", "Sales",
		"Operations", "HR", "Finance", "Customer Success", "Data Science",
	}

	positions = []string{
		"Software Engineer", "Senior Developer", "Product Manager", "Designer",
		"Data Analyst", "DevOps Engineer", "QA Engineer", "Marketing Manager",
		"Sales Representative", "Project Manager", "Technical Lead", "Architect",
	}

	locations = []string{
		"San Francisco, CA", "New York, NY", "Seattle, WA", "Austin, TX",
		"Boston, MA", "Chicago, IL", "Los Angeles, CA", "Denver, CO",
		"Portland, OR", "Atlanta, GA", "Remote", "Miami, FL",
	}

	firstNames = []string{
		"Alex", "Sam", "Jordan", "Taylor", "Morgan", "Casey", "Riley", "Avery",
		"Jamie", "Blake", "Cameron", "Drew", "Emery", "Finley", "Gray", "Hayden",
		"Indigo", "Kai", "Lane", "Max", "Nova", "Oakley", "Parker", "Quinn",
		"Reese", "Sage", "Tatum", "Uma", "Val", "Winter",
	}

	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
		"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
)

// Generate builds n mock employees with dense ids 1..n. seed fixes the random
// stream; now anchors the start-date window. Generation cannot fail.
//
// Derivation rules:
//   - experience: 1..15 years
//   - salary: 60000 + experience*5000 + [0,30000)
//   - start date: now minus 0-4 years, random month, day 1-28
//   - email: first.last@company.com, lowercased, spaces stripped from company
func Generate(n int, seed int64, now time.Time) []models.Employee {
	rng := rand.New(rand.NewSource(seed))

	out := make([]models.Employee, 0, n)
	for i := 1; i <= n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		company := companies[rng.Intn(len(companies))]

		experience := rng.Intn(15) + 1
		salary := 60000 + experience*5000 + rng.Intn(30000)

		start := time.Date(
			now.Year()-rng.Intn(5),
			time.Month(rng.Intn(12)+1),
			rng.Intn(28)+1,
			0, 0, 0, 0, time.UTC,
		)

		out = append(out, models.Employee{
			ID:         i,
			Name:       first + " " + last,
			Email:      utils.MockEmail(first, last, company),
			Company:    company,
			Department: departments[rng.Intn(len(departments))],
			Position:   positions[rng.Intn(len(positions))],
			Salary:     salary,
			Location:   locations[rng.Intn(len(locations))],
			StartDate:  utils.FormatDate(start),
			Status:     models.Statuses[rng.Intn(len(models.Statuses))],
			Experience: experience,
		})
	}
	return out
}

// Package mock supplies sample job listings.
package mock

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	nt "furrow/entity"
)

// Sample returns the four listings shown on the work list page.
func Sample() []nt.Job {

	return []nt.Job{
		{
			ID:          "1",
			Title:       "Rice Harvesting (Combine Operator)",
			Description: "Urgent need for an experienced combine operator for a 3-hectare rice field.",
			Category:    "Paddy Field",
			Price:       "180,000",
			PriceType:   "per day",
			Location:    "Wanju-gun, Jeonbuk",
			Distance:    2,
			Date:        "Tomorrow",
			Time:        "6 AM",
			Tags:        []string{"Combine", "Experience"},
			Urgent:      true,
			Applicants:  3,
			Status:      "open",
		},
		{
			ID:          "2",
			Title:       "Strawberry Farm Maintenance",
			Description: "General maintenance and planting of new strawberry seedlings.",
			Category:    "Field",
			Price:       "15,000",
			PriceType:   "per hour",
			Location:    "Deokjin-gu, Jeonju",
			Distance:    5,
			Date:        "In 3 days",
			Time:        "1 PM",
			Tags:        []string{"Manual Labor", "Beginner"},
			Applicants:  1,
			Status:      "open",
		},
		{
			ID:          "3",
			Title:       "Barn Cleaning & Feeding",
			Description: "Daily management of a 60-head cattle barn. Includes cleaning and feeding.",
			Category:    "Livestock",
			Price:       "120,000",
			PriceType:   "per day",
			Location:    "Jinan-gun, Jeonbuk",
			Distance:    12,
			Date:        "In 1 week",
			Time:        "7 AM",
			Tags:        []string{"Livestock", "Physical"},
			Status:      "open",
		},
		{
			ID:          "4",
			Title:       "Apple Picking Assistant",
			Description: "Seasonal apple picking in a large orchard. Lunch provided.",
			Category:    "Orchard",
			Price:       "13,000",
			PriceType:   "per hour",
			Location:    "Imsil-gun, Jeonbuk",
			Distance:    8,
			Date:        "This weekend",
			Time:        "8 AM",
			Tags:        []string{"Meal Included", "Weekend"},
			Applicants:  5,
			Status:      "open",
		},
	}
}

var (
	titles = []string{
		"Fruit Picking", "Vineyard Pruning", "General Farm Hand", "Tractor Operator", "Irrigation Technician",
		"Livestock Handling", "Crop Seeding", "Harvesting Crew", "Packing Shed Sorter", "Fence Repair",
	}
	kinds      = []string{"(Citrus)", "(Apples)", "(Grapes)", "(Seasonal)", "(Vegetables)"}
	categories = []string{"Paddy Field", "Field", "Orchard", "Livestock", "Facility"}
	locations  = []string{
		"Riverina, NSW", "Barossa Valley, SA", "Atherton Tableland, QLD", "Margaret River, WA",
		"Yarra Valley, VIC", "Huon Valley, TAS", "Sunraysia, VIC", "Goulburn Valley, VIC",
	}
	prices   = []string{"$25/hour", "$28/hour", "$300/day", "$24/hour", "$320/day", "$22/hour"}
	starts   = []string{"Starts tomorrow", "In 3 days", "Next Week", "Starts Monday", "ASAP", "In 2 weeks"}
	tags     = []string{"Experience", "Beginner", "Physical", "Meal Included", "Weekend", "Transport", "Machinery"}
	statuses = []string{"open", "pending", "accepted", "rejected"}
)

// Generate returns count random jobs; the same seed gives the same jobs.
func Generate(count int, seed int64) (jobs []nt.Job, err error) {

	if count < 0 {
		err = errors.Errorf("cannot generate %d jobs", count)
		return
	}
	rnd := rand.New(rand.NewSource(seed))

	jobs = make([]nt.Job, 0, count)
	for i := 1; i <= count; i++ {

		var id uuid.UUID
		id, err = uuid.NewRandomFromReader(rnd)
		if err != nil {
			err = errors.Wrapf(err, "failed to generate id for job %d", i)
			return
		}

		price := pick(rnd, prices)
		priceType := "per hour"
		if price[len(price)-3:] == "day" {
			priceType = "per day"
		}

		jobs = append(jobs, nt.Job{
			ID:          id.String(),
			Title:       fmt.Sprintf("%s %s", pick(rnd, titles), pick(rnd, kinds)),
			Description: "Job number " + strconv.Itoa(i) + ", see farm for details.",
			Category:    pick(rnd, categories),
			Price:       price,
			PriceType:   priceType,
			Location:    pick(rnd, locations),
			Distance:    float64(rnd.Intn(300)) / 10,
			Date:        pick(rnd, starts),
			Time:        fmt.Sprintf("%d AM", 5+rnd.Intn(5)),
			Tags:        pickTags(rnd),
			Urgent:      rnd.Intn(5) == 0,
			Applicants:  rnd.Intn(10),
			Status:      pick(rnd, statuses),
		})
	}
	return
}

// unexported

func pick(rnd *rand.Rand, from []string) string {
	return from[rnd.Intn(len(from))]
}

func pickTags(rnd *rand.Rand) []string {

	picked := []string{}
	for _, idx := range rnd.Perm(len(tags))[:rnd.Intn(3)] {
		picked = append(picked, tags[idx])
	}
	return picked
}

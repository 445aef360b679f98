package itinerary

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

type RenderOptions struct {
	Now time.Time
	// Catalog resolves the region and city names of the request.
	Catalog []domain.Region
}

func renderView(draft domain.Draft, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render(draftTitle(draft, opts.Catalog)),
		s.header.Render(tripSummary(draft)),
	}
	if age := formatAge(draft.CreatedAt, opts.Now); age != "" {
		lines = append(lines, s.header.Render(age))
	}

	if len(draft.Plan.Days) == 0 {
		lines = append(lines, s.empty.Render("The planner returned no days."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, day := range draft.Plan.Days {
		lines = append(lines, s.section.Render(renderDay(day, s)))
	}

	if accommodation := accommodationLine(draft.Plan.RecommendedAccommodation); accommodation != "" {
		lines = append(lines, s.section.Render(s.detail.Render(accommodation)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func draftTitle(draft domain.Draft, catalog []domain.Region) string {
	region := domain.ResolveRegionName(draft.Request.RegionID, catalog)
	for _, candidate := range catalog {
		if candidate.ID != draft.Request.RegionID {
			continue
		}
		if city, ok := candidate.City(draft.Request.CityID); ok {
			return fmt.Sprintf("Itinerary: %s, %s", region, city.Name)
		}
	}

	return fmt.Sprintf("Itinerary: %s", region)
}

func tripSummary(draft domain.Draft) string {
	parts := []string{fmt.Sprintf("%s to %s", draft.Request.StartDate, draft.Request.EndDate)}
	if draft.Request.NumPeople > 0 {
		parts = append(parts, pluralize(draft.Request.NumPeople, "person", "people"))
	}
	if draft.Plan.TravelTimeToDest > 0 {
		parts = append(parts, fmt.Sprintf("%d min to destination", draft.Plan.TravelTimeToDest))
	}
	parts = append(parts, pluralize(len(domain.FlattenPlan(draft.Plan)), "saved stop", "saved stops"))

	return strings.Join(parts, " | ")
}

func renderDay(day domain.DayPlan, s styles) string {
	parts := []string{s.day.Render(fmt.Sprintf("Day %d  %s", day.Day, day.Date))}
	if len(day.Schedule) == 0 {
		parts = append(parts, s.empty.Render("  nothing scheduled"))
	}

	for _, item := range day.Schedule {
		parts = append(parts, itemLine(item, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func itemLine(item domain.ScheduleItem, s styles) string {
	segments := []string{
		"  ",
		s.time.Render(fmt.Sprintf("%-5s", item.Time)),
		"  ",
		s.kind.Render(kindLabel(item.Type)),
	}

	place, ok := item.Place()
	switch {
	case ok && place.Title != "":
		segments = append(segments, s.place.Render(place.Title))
		if location := placeLocation(place); location != "" {
			segments = append(segments, " ", s.detail.Render(location))
		}
		if place.RecommendationScore > 0 {
			segments = append(segments, " ", renderScoreBar(float64(place.RecommendationScore), 10, s))
		}
	default:
		segments = append(segments, s.empty.Render("no place attached"))
	}

	if item.Status != "" {
		segments = append(segments, " ", s.warning.Render("["+item.Status+"]"))
	}
	if item.TripID == nil {
		segments = append(segments, " ", s.empty.Render("(not saved)"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, segments...)
}

func kindLabel(kind domain.ScheduleItemType) string {
	switch kind {
	case domain.ItemSpot:
		return "spot"
	case domain.ItemMeal:
		return "meal"
	case domain.ItemAccommodation:
		return "accommodation"
	case "":
		return "item"
	default:
		return string(kind)
	}
}

func placeLocation(place domain.Place) string {
	names := make([]string, 0, 2)
	for _, name := range []string{place.CityName, place.CategoryName} {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	if len(names) == 0 {
		return ""
	}

	return "(" + strings.Join(names, ", ") + ")"
}

func accommodationLine(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var place domain.Place
	if err := json.Unmarshal(raw, &place); err != nil || place.Title == "" {
		return ""
	}

	return "Recommended stay: " + place.Title
}

func renderScoreBar(score float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(score) / 100))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatAge(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return ""
	}
	if now.IsZero() {
		return "generated " + createdAt.Format("15:04 on 02 Jan")
	}

	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < time.Minute:
		return "generated just now"
	case elapsed < time.Hour:
		return "generated " + pluralize(int(elapsed.Minutes()), "minute", "minutes") + " ago"
	case elapsed < 24*time.Hour:
		return "generated " + pluralize(int(elapsed.Hours()), "hour", "hours") + " ago"
	default:
		return "generated " + createdAt.Format("15:04 on 02 Jan")
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}

	return fmt.Sprintf("%d %s", n, plural)
}

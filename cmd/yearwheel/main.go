// yearwheel renders a YAML activity plan as a radial calendar SVG.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tidewave-io/yearwheel/lib/log"
	"github.com/tidewave-io/yearwheel/wheel"
	"github.com/tidewave-io/yearwheel/wheelsvg"
)

type fileActivity struct {
	ID            string  `yaml:"id"`
	Title         string  `yaml:"title"`
	Category      string  `yaml:"category"`
	Status        string  `yaml:"status"`
	Weight        int     `yaml:"weight"`
	Budget        float64 `yaml:"budget"`
	ExpectedLeads int     `yaml:"expected_leads"`
	Start         string  `yaml:"start"`
	End           string  `yaml:"end"`
	Owner         string  `yaml:"owner"`
	Notes         string  `yaml:"notes"`
	Color         string  `yaml:"color"`
}

type fileCategory struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type planFile struct {
	Year       int            `yaml:"year"`
	Categories []fileCategory `yaml:"categories"`
	Activities []fileActivity `yaml:"activities"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date %q (want 2006-01-02 or RFC 3339)", s)
}

func loadPlan(path string) (*planFile, []*wheel.Activity, []wheel.Category, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading plan: %w", err)
	}
	var plan planFile
	if err := yaml.Unmarshal(raw, &plan); err != nil {
		return nil, nil, nil, fmt.Errorf("decoding plan: %w", err)
	}

	activities := make([]*wheel.Activity, 0, len(plan.Activities))
	for i, fa := range plan.Activities {
		start, err := parseDate(fa.Start)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("activity %d (%s): %w", i, fa.Title, err)
		}
		end, err := parseDate(fa.End)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("activity %d (%s): %w", i, fa.Title, err)
		}
		id := fa.ID
		if id == "" {
			id = fmt.Sprintf("activity-%d", i)
		}
		activities = append(activities, &wheel.Activity{
			ID:            id,
			Title:         fa.Title,
			Category:      fa.Category,
			Status:        wheel.Status(fa.Status),
			Weight:        fa.Weight,
			Budget:        fa.Budget,
			ExpectedLeads: fa.ExpectedLeads,
			Start:         start,
			End:           end,
			Owner:         fa.Owner,
			Notes:         fa.Notes,
			Color:         fa.Color,
		})
	}

	categories := make([]wheel.Category, 0, len(plan.Categories))
	for _, fc := range plan.Categories {
		categories = append(categories, wheel.Category{Name: fc.Name, Color: fc.Color})
	}
	return &plan, activities, categories, nil
}

func run(ctx context.Context) error {
	input := pflag.StringP("input", "i", "", "path to the activity plan YAML")
	output := pflag.StringP("output", "o", "wheel.svg", "path to write the SVG")
	year := pflag.Int("year", 0, "calendar year (default: plan file year, then current year)")
	month := pflag.Int("month", 0, "focus a single month (1-12, 0 renders the full year)")
	size := pflag.Float64("size", 1000, "render size in pixels")
	labels := pflag.String("labels", "auto", "label mode: auto|all|smart|hover|none")
	connections := pflag.String("connections", "labeled", "leader lines: all|labeled|none")
	selected := pflag.String("selected", "", "activity id to highlight")
	pflag.Parse()

	if *input == "" {
		return fmt.Errorf("--input is required")
	}
	if *month < 0 || *month > 12 {
		return fmt.Errorf("--month must be between 1 and 12")
	}
	mode, err := wheel.LabelModeFromString(*labels)
	if err != nil {
		return err
	}
	connMode, err := wheel.ConnectionModeFromString(*connections)
	if err != nil {
		return err
	}

	plan, activities, categories, err := loadPlan(*input)
	if err != nil {
		return err
	}

	view := wheel.ViewState{Year: *year}
	if view.Year == 0 {
		view.Year = plan.Year
	}
	if *month != 0 {
		m := time.Month(*month)
		view.FocusedMonth = &m
	}

	scene := wheel.Build(activities, wheel.Options{
		Size:        *size,
		View:        view,
		Categories:  categories,
		LabelMode:   mode,
		Connections: connMode,
		SelectedID:  *selected,
	})

	out, err := wheelsvg.Render(scene, nil)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*output, out, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}

	log.Info(ctx, "rendered",
		slog.F("activities", len(activities)),
		slog.F("rings", scene.Rings.Len()),
		slog.F("labels", len(scene.Labels)),
		slog.F("output", *output),
	)
	return nil
}

func main() {
	ctx := log.Stderr(context.Background())
	if err := run(ctx); err != nil {
		log.Error(ctx, "failed", slog.Error(err))
		os.Exit(1)
	}
}

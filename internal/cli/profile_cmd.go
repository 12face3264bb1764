package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/fitbuddy/internal/app"
	"github.com/alexanderramin/fitbuddy/internal/cli/formatter"
	"github.com/alexanderramin/fitbuddy/internal/domain"
	"github.com/alexanderramin/fitbuddy/internal/onboarding"
	"github.com/alexanderramin/fitbuddy/internal/repository"
)

func newProfileCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the stored profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := a.Profiles.Get(context.Background())
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "No profile yet. Run 'fitbuddy chat' to set one up.")
					return nil
				}
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(profile))
			return nil
		},
	}

	cmd.AddCommand(newProfileEditCmd(a))
	return cmd
}

func newProfileEditCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Edit the profile in a form",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			profile, err := a.Profiles.Get(ctx)
			if err != nil {
				if !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				profile = domain.NewDefaultProfile()
			}

			form, apply := profileForm(profile)
			if err := form.Run(); err != nil {
				return err
			}
			apply(profile)

			if err := a.Profiles.Upsert(ctx, profile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved.")
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(profile))
			return nil
		},
	}
}

// profileForm builds the edit form over string-typed fields and returns
// it together with a closure that writes the parsed values back.
func profileForm(p *domain.Profile) (*huh.Form, func(*domain.Profile)) {
	name := p.Name
	age := strconv.Itoa(p.Age)
	weight := strconv.FormatFloat(p.WeightKg, 'f', -1, 64)
	height := strconv.Itoa(p.HeightCm)
	goals := strings.Join(p.Goals, ", ")
	equipment := strings.Join(p.Equipment, ", ")
	level := string(p.FitnessLevel)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name).Validate(validateNonEmpty),
			huh.NewInput().Title("Age").Value(&age).
				Validate(validateIntRange(onboarding.MinAge, onboarding.MaxAge)),
			huh.NewInput().Title("Weight (kg)").Value(&weight).
				Validate(validateFloatRange(onboarding.MinWeightKg, onboarding.MaxWeightKg)),
			huh.NewInput().Title("Height (cm)").Value(&height).
				Validate(validateIntRange(onboarding.MinHeightCm, onboarding.MaxHeightCm)),
			huh.NewSelect[string]().Title("Fitness level").
				Options(
					huh.NewOption("Beginner", string(domain.LevelBeginner)),
					huh.NewOption("Intermediate", string(domain.LevelIntermediate)),
					huh.NewOption("Advanced", string(domain.LevelAdvanced)),
				).
				Value(&level),
			huh.NewInput().Title("Goals (comma separated)").Value(&goals),
			huh.NewInput().Title("Equipment (comma separated)").Value(&equipment),
		),
	).WithTheme(fitbuddyHuhTheme()).WithShowHelp(false)

	apply := func(out *domain.Profile) {
		out.Name = strings.TrimSpace(name)
		out.Age, _ = strconv.Atoi(strings.TrimSpace(age))
		out.WeightKg, _ = strconv.ParseFloat(strings.TrimSpace(weight), 64)
		out.HeightCm, _ = strconv.Atoi(strings.TrimSpace(height))
		out.FitnessLevel = domain.FitnessLevel(level)
		out.Goals = splitList(goals)
		out.Equipment = splitList(equipment)
	}
	return form, apply
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateIntRange(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validateFloatRange(min, max float64) func(string) error {
	return func(s string) error {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return errors.New("enter a number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %.0f and %.0f", min, max)
		}
		return nil
	}
}

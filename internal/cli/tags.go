package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/remote"
	"github.com/rolandbouwer/appdash/internal/ui"
)

// findTagByName locates a tag by case-insensitive name.
func findTagByName(tags []remote.Tag, name string) (remote.Tag, error) {
	for _, tag := range tags {
		if strings.EqualFold(tag.Name, name) {
			return tag, nil
		}
	}
	return remote.Tag{}, errors.New(errors.ErrValidation,
		fmt.Sprintf("No tag named '%s'", name),
		"Run 'appdash tags list' to see what exists")
}

// tagsListCommand prints all tags with how many applications carry each.
func tagsListCommand() error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	s, err := loadState(ctx)
	if err != nil {
		return err
	}

	usage := make(map[int64]int, len(s.tags))
	for _, app := range s.apps {
		for _, tag := range app.Tags {
			usage[tag.ID]++
		}
	}

	rows := make([]ui.TagTableRow, 0, len(s.tags))
	for _, tag := range s.tags {
		rows = append(rows, ui.TagTableRow{
			ID:   strconv.FormatInt(tag.ID, 10),
			Name: tag.Name,
			Apps: strconv.Itoa(usage[tag.ID]),
		})
	}

	fmt.Println(ui.RenderTagTable(rows))
	return nil
}

// tagsAddCommand creates a tag. An empty name prompts interactively.
func tagsAddCommand(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	s, err := loadState(ctx)
	if err != nil {
		return err
	}

	if name == "" {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("New tag").
					Placeholder("web").
					Value(&name).
					Validate(func(v string) error {
						if strings.TrimSpace(v) == "" {
							return fmt.Errorf("name is required")
						}
						return nil
					}),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrValidation,
				"Failed to get user input", "")
		}
	}

	if _, err := findTagByName(s.tags, name); err == nil {
		return errors.New(errors.ErrValidation,
			fmt.Sprintf("Tag '%s' already exists", name), "")
	}

	tag, err := s.reconciler.CreateTag(ctx, remote.TagInput{Name: name})
	if err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle().Render("✓ Added tag " + tag.Name))
	return nil
}

// tagsDeleteCommand removes a tag after confirmation. Applications that
// carried the tag keep showing it until the next refresh reconciles them.
func tagsDeleteCommand(name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	s, err := loadState(ctx)
	if err != nil {
		return err
	}

	tag, err := findTagByName(s.tags, name)
	if err != nil {
		return err
	}

	inUse := 0
	for _, app := range s.apps {
		for _, t := range app.Tags {
			if t.ID == tag.ID {
				inUse++
				break
			}
		}
	}

	var confirmed bool
	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("Delete tag '%s'?", tag.Name)).
		Value(&confirmed)
	if inUse > 0 {
		confirm = confirm.Description(
			fmt.Sprintf("Used by %d application(s); they keep showing it until the next refresh", inUse))
	}

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrValidation,
			"Failed to get confirmation", "")
	}
	if !confirmed {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := s.reconciler.DeleteTag(ctx, tag.ID); err != nil {
		return err
	}

	fmt.Println(ui.SuccessStyle().Render("✓ Deleted tag " + tag.Name))
	return nil
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bft-labs/recipebox/pkg/log"
	"github.com/bft-labs/recipebox/pkg/recipebox"
)

// errInvalidRecipe is returned after field messages have been printed.
var errInvalidRecipe = errors.New("recipe not saved: fix the fields above")

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context())
		},
	}
}

func (c *cli) runList(ctx context.Context) error {
	cat, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer cat.Close()

	renderList(c.out, cat.List(ctx))
	return nil
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer cat.Close()

			r, err := cat.Get(ctx, args[0])
			if errors.Is(err, recipebox.ErrNotFound) {
				fmt.Fprintln(c.out, "Recipe not found. Redirecting to home...")
				c.logger.Debug("redirecting", log.String("id", args[0]), log.Duration("delay", c.cfg.RedirectDelay))
				if !sleepCtx(ctx, c.cfg.RedirectDelay) {
					return ctx.Err()
				}
				renderList(c.out, cat.List(ctx))
				return nil
			}
			if err != nil {
				return err
			}
			renderDetail(c.out, r)
			return nil
		},
	}
}

// formFlags binds the recipe input flags shared by add and edit.
type formFlags struct {
	title       string
	description string
	ingredients []string
	steps       []string
	image       string
}

func (f *formFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "recipe title")
	cmd.Flags().StringVar(&f.description, "description", "", "short description")
	cmd.Flags().StringArrayVar(&f.ingredients, "ingredient", nil, "ingredient, repeat for each one (multi-line values are split)")
	cmd.Flags().StringArrayVar(&f.steps, "step", nil, "cooking step, repeat for each one (multi-line values are split)")
	cmd.Flags().StringVar(&f.image, "image", "", "image URL (optional)")
}

// apply overwrites the fields of form whose flag was given.
func (f *formFlags) apply(cmd *cobra.Command, form *recipebox.Form) {
	if cmd.Flags().Changed("title") {
		form.Title = f.title
	}
	if cmd.Flags().Changed("description") {
		form.Description = f.description
	}
	if cmd.Flags().Changed("ingredient") {
		form.Ingredients = strings.Join(f.ingredients, "\n")
	}
	if cmd.Flags().Changed("step") {
		form.Steps = strings.Join(f.steps, "\n")
	}
	if cmd.Flags().Changed("image") {
		form.Image = f.image
	}
}

func (c *cli) addCmd() *cobra.Command {
	var flags formFlags
	cmd := &cobra.Command{
		Use:     "add",
		Aliases: []string{"create"},
		Short:   "Add a new recipe",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var form recipebox.Form
			flags.apply(cmd, &form)
			if !c.checkForm(form) {
				return errInvalidRecipe
			}

			ctx := cmd.Context()
			cat, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer cat.Close()

			r := cat.Create(ctx, form.Fields())
			renderDetail(c.out, r)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func (c *cli) editCmd() *cobra.Command {
	var flags formFlags
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a recipe; fields without a flag keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer cat.Close()

			current, err := cat.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("edit %s: %w", args[0], err)
			}
			form := recipebox.FormFromRecipe(current)
			flags.apply(cmd, &form)
			if !c.checkForm(form) {
				return errInvalidRecipe
			}

			r, err := cat.Update(ctx, current.ID, form.Fields())
			if err != nil {
				return fmt.Errorf("edit %s: %w", args[0], err)
			}
			renderDetail(c.out, r)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

// checkForm prints one line per invalid field and reports whether the form
// may be submitted.
func (c *cli) checkForm(form recipebox.Form) bool {
	errs := form.Validate()
	if errs.OK() {
		return true
	}
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(c.errOut, "%s: %s\n", field, errs[field])
	}
	return false
}

func (c *cli) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a recipe after confirmation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer cat.Close()

			id := args[0]
			if r, err := cat.Get(ctx, id); err == nil && !yes {
				ok, err := confirm(cmd.InOrStdin(), c.out, fmt.Sprintf("Are you sure you want to delete %q?", r.Title))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(c.out, "Cancelled")
					return nil
				}
			}

			if cat.Delete(ctx, id) {
				fmt.Fprintf(c.out, "Deleted recipe %s\n", id)
			} else {
				fmt.Fprintf(c.out, "No recipe %s\n", id)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking")
	return cmd
}

// confirm asks a yes/no question and reads one line of answer. Anything but
// y or yes, including end of input, means no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	fmt.Fprintln(out)
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the sample recipes if the catalog is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := recipebox.New(c.cfg.Library(), c.loggerOption())
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer cat.Close()

			if cat.SeedIfEmpty(ctx) {
				fmt.Fprintf(c.out, "Seeded %d sample recipes\n", recipebox.SampleRecipes().Len())
			} else {
				fmt.Fprintln(c.out, "Catalog not empty, nothing seeded")
			}
			return nil
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Show the list and redraw it whenever the catalog changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := c.open(ctx)
			if err != nil {
				return err
			}
			defer cat.Close()

			renderList(c.out, cat.List(ctx))
			err = cat.Watch(ctx, debounce, func() {
				fmt.Fprintln(c.out)
				renderList(c.out, cat.List(ctx))
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 100*time.Millisecond, "wait this long after a change before redrawing")
	return cmd
}

// sleepCtx waits for d and returns false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	urls, err := a.linkService.List(ctx)
	if err != nil {
		a.report(ctx, "loading links", err)
		return err
	}
	if !a.isLoggedIn() {
		return nil
	}

	if len(urls) == 0 {
		fmt.Fprintln(a.out, "You have no short links yet")
		return nil
	}
	for _, u := range urls {
		fmt.Fprintln(a.out, u.String())
	}
	return nil
}

// Add creates a link. Usage: add [url] [alias]; missing values are prompted
// for and an empty alias lets the server pick one.
func (a *App) Add(ctx context.Context, args []string) error {
	destination, err := a.argOrPrompt(args, 0, "Enter URL")
	if err != nil {
		return err
	}

	var alias string
	switch {
	case len(args) > 1:
		alias = args[1]
	case len(args) == 0:
		if alias, err = getSimpleText(a.reader, "Enter alias (empty for a generated one)", a.out); err != nil {
			return err
		}
	}

	created, err := a.linkService.Create(ctx, destination, alias)
	if err != nil {
		a.report(ctx, "creating link", err)
		return err
	}
	if !a.isLoggedIn() {
		return nil
	}

	fmt.Fprintln(a.out, "Created", created.String())
	return nil
}

// Edit points an existing link at a new URL. Usage: edit [id].
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.idArg(args)
	if err != nil {
		a.report(ctx, "updating link", err)
		return err
	}

	destination, err := getSimpleText(a.reader, "Enter new URL", a.out)
	if err != nil {
		return err
	}
	if destination == "" {
		return nil
	}

	if err := a.linkService.Update(ctx, id, destination); err != nil {
		a.report(ctx, "updating link", err)
		return err
	}
	if !a.isLoggedIn() {
		return nil
	}

	fmt.Fprintln(a.out, "Link updated")
	return nil
}

// Delete removes a link after confirmation. Usage: delete [id].
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.idArg(args)
	if err != nil {
		a.report(ctx, "deleting link", err)
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete link %d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if !confirmed(answer) {
		return nil
	}

	if err := a.linkService.Delete(ctx, id); err != nil {
		a.report(ctx, "deleting link", err)
		return err
	}
	if !a.isLoggedIn() {
		return nil
	}

	fmt.Fprintln(a.out, "Link deleted")
	return nil
}

// Open prints where an alias leads. Usage: open [alias].
func (a *App) Open(ctx context.Context, args []string) error {
	alias, err := a.argOrPrompt(args, 0, "Enter alias")
	if err != nil {
		return err
	}

	destination, err := a.linkService.Resolve(ctx, alias)
	if err != nil {
		a.report(ctx, "opening link", err)
		return err
	}
	if !a.isLoggedIn() {
		return nil
	}

	fmt.Fprintf(a.out, "%s -> %s\n", alias, destination)
	return nil
}

// argOrPrompt returns args[i] or, when absent, a line read after prompt.
func (a *App) argOrPrompt(args []string, i int, prompt string) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) idArg(args []string) (int64, error) {
	raw, err := a.argOrPrompt(args, 0, "Enter link id")
	if err != nil {
		return 0, err
	}
	return parseID(raw)
}

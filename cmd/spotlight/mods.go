package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/spotlight"
)

// Run executes the mods import command.
func (c *ModsImportCmd) Run(deps *Dependencies) error {
	f, err := os.Open(c.Path)
	if err != nil {
		return printError(deps, err)
	}
	defer f.Close()

	n, err := deps.ModImport.ImportCSV(deps.Ctx, f)
	if err != nil {
		return printError(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Imported %d mod records\n", n)
	return nil
}

// Run executes the mods lookup command.
func (c *ModsLookupCmd) Run(deps *Dependencies) error {
	source, err := spotlight.ParseSource(c.Source)
	if err != nil {
		return printError(deps, err)
	}

	record, err := deps.Mods.FindModRecordBySlug(deps.Ctx, c.Slug, source)
	if err != nil {
		if spotlight.ErrorCode(err) == spotlight.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no translation for %s slug %q\n", source, c.Slug)
			return err
		}
		return printError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, record.DisplayName())
	return nil
}

// Run executes the mods translate command.
func (c *ModsTranslateCmd) Run(deps *Dependencies) error {
	translated, err := deps.Translator.TranslateQuery(deps.Ctx, c.Query)
	if err != nil {
		return printError(deps, err)
	}

	fmt.Fprintln(deps.Stdout, translated)
	return nil
}

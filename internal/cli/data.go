package cli

import (
	"fmt"
	"time"

	apperrors "github.com/learntrack/learntrack/internal/errors"
	"github.com/learntrack/learntrack/internal/storage"
)

type ExportCmd struct {
	Dir string `help:"Directory to write the backup into." default:"." type:"existingdir"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	path, err := storage.ExportSnapshot(ctx.Store.Snapshot(), c.Dir, time.Now())
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d challenge(s) to %s\n", len(ctx.Store.Challenges()), path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Backup file to import." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *Context) error {
	snap, err := storage.ImportSnapshot(c.File, ctx.Gateway)
	if err != nil {
		if apperrors.IsImportFormat(err) {
			return fmt.Errorf("%s does not look like a learntrack backup: %w", c.File, err)
		}
		return err
	}

	ctx.Store.ReplaceAll(snap.Challenges)
	fmt.Printf("Imported %d challenge(s), replacing all existing data.\n", len(snap.Challenges))
	if active, ok := ctx.Store.Active(); ok {
		fmt.Printf("Now tracking: %s\n", active.Title)
	}
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Confirm deleting all data."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Yes {
		return apperrors.Validationf("this permanently deletes ALL challenges; re-run with --yes to confirm")
	}
	if err := ctx.Store.Clear(); err != nil {
		return err
	}
	fmt.Println("All data cleared.")
	return nil
}

package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/imgbuild/internal/core/domain"
	"go.trai.ch/imgbuild/internal/ui/output"
	"go.trai.ch/imgbuild/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status NAME VERSION",
		Short: "Show the last build of an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := c.app.Status(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return printRecord(cmd.OutOrStdout(), rec)
		},
	}
}

func printRecord(w io.Writer, rec *domain.BuildRecord) error {
	out := output.New(w)
	ref := rec.Name + "@" + rec.Version

	var header string
	if rec.Status == domain.BuildSucceeded {
		header = style.Succeeded.Mark(out, ref+" built")
	} else {
		header = style.Failed.Mark(out, ref+" failed at "+rec.FailedStage)
	}

	lines := []string{header}
	field := func(key, value string) {
		if value == "" {
			return
		}
		label := style.Detail.Paint(out, fmt.Sprintf("  %-9s", key+":"))
		lines = append(lines, label+" "+value)
	}

	field("build", rec.BuildID)
	field("base", rec.BaseImageID)
	field("finished", fmt.Sprintf("%s (took %s)", rec.FinishedAt.Format(time.RFC3339), rec.Duration().Round(time.Second)))
	if rec.Artifact != nil {
		field("image", rec.Artifact.FilePath)
		field("manifest", rec.Artifact.ManifestPath)
		field("digest", rec.Artifact.Digest)
	}
	if len(rec.Installed) > 0 {
		field("packages", fmt.Sprintf("%d installed", len(rec.Installed)))
	}
	field("error", rec.Error)

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

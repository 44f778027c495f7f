package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	urfave "github.com/urfave/cli/v3"

	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/presentation/render"
	"loan-approval-simulator/internal/services/validator"
)

const scoreFlag = "score"

func (a *app) guideCmd() *urfave.Command {
	return &urfave.Command{
		Name:  "guide",
		Usage: "Prints the credit score guide",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:  scoreFlag,
				Usage: "Shows only the band containing this score",
			},
		},
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			s := cmd.String(scoreFlag)
			if s == "" {
				if a.format == formatText {
					_, err := io.WriteString(a.out, render.CreditGuide())
					return err
				}
				return a.encode(models.CreditBands())
			}

			score, ok := validator.ParseNumber(s)
			if !ok {
				return fmt.Errorf("score %q: %w", s, models.ErrNotANumber)
			}
			band, ok := models.BandFor(score)
			if !ok {
				return fmt.Errorf("score %q must be between 300 and 850: %w", s, models.ErrOutOfRange)
			}

			if a.format == formatText {
				_, err := fmt.Fprintf(a.out, "%d-%d  %s  %s - %s\n",
					band.Min, band.Max, strings.Repeat("*", band.Stars), band.Rating, band.Description)
				return err
			}
			return a.encode(band)
		},
	}
}

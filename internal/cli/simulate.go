package cli

import (
	"context"

	urfave "github.com/urfave/cli/v3"

	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/presentation/render"
	"loan-approval-simulator/internal/utils"
)

func (a *app) simulateCmd() *urfave.Command {
	flags := make([]urfave.Flag, 0, len(models.Fields()))
	for _, field := range models.Fields() {
		flags = append(flags, &urfave.StringFlag{
			Name:  string(field),
			Usage: field.Label(),
		})
	}

	return &urfave.Command{
		Name:      "simulate",
		Aliases:   []string{"calc"},
		Usage:     "Calculates the approval probability for one application",
		UsageText: "loan-sim simulate --income 60000 --credit 720 --debt 1000 --loan 200000",
		Flags:     flags,
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			raw := models.RawInput{
				Income: cmd.String(string(models.FieldIncome)),
				Credit: cmd.String(string(models.FieldCredit)),
				Debt:   cmd.String(string(models.FieldDebt)),
				Loan:   cmd.String(string(models.FieldLoan)),
			}

			sub := a.svc.Submit(ctx, raw)
			utils.GetLogger().Debug("Simulated application",
				utils.String("id", sub.ID),
				utils.Bool("scored", sub.Scored()),
				utils.Strings("invalid_fields", sub.Errors.FieldNames()),
			)

			var err error
			if a.format == formatText {
				err = render.Submission(a.out, sub, a.textOptions(cmd))
			} else {
				err = a.encode(sub)
			}
			if err != nil {
				return err
			}

			if len(sub.Errors) > 0 {
				return ErrInvalidInput
			}
			return nil
		},
	}
}

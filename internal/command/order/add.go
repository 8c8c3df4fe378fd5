package order

import (
	"fmt"
	"strings"

	"github.com/bornholm/orders/internal/command/common"
	"github.com/bornholm/orders/internal/orderform"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func AddCommand() *cli.Command {
	flags := make([]cli.Flag, 0, len(orderform.Fields))
	for _, f := range orderform.Fields {
		flags = append(flags, &cli.StringFlag{
			Name:  string(f),
			Usage: addFlagUsages[f],
		})
	}

	return &cli.Command{
		Name:  "add",
		Usage: "Save a new order, validated like the web form",
		Flags: common.WithCommonFlags(flags...),
		Action: func(ctx *cli.Context) error {
			orderManager, err := common.GetOrderManager(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create order manager")
			}

			form := orderform.New()

			for _, f := range orderform.Fields {
				if ctx.IsSet(string(f)) {
					form.Set(f, ctx.String(string(f)))
				}
			}

			orderID, err := form.Submit(ctx.Context, orderManager)
			if errors.Is(err, orderform.ErrInvalid) {
				messages := make([]string, 0)
				for _, f := range orderform.Fields {
					if message := form.Error(f); message != "" {
						messages = append(messages, fmt.Sprintf("--%s: %s", f, message))
					}
				}

				return errors.Errorf("invalid order:\n%s", strings.Join(messages, "\n"))
			}
			if err != nil {
				return errors.Wrap(err, "could not save order")
			}

			fmt.Fprintln(ctx.App.Writer, orderID)

			return nil
		},
	}
}

var addFlagUsages = map[orderform.Field]string{
	orderform.FieldFirstName:           "First name",
	orderform.FieldLastName:            "Last name",
	orderform.FieldBirthDate:           "Birth date (YYYY-MM-DD)",
	orderform.FieldAppointmentDateTime: "Appointment (YYYY-MM-DDTHH:MM), defaults to the next quarter hour",
	orderform.FieldAlternateTime:       "Optional alternate time (HH:MM)",
}

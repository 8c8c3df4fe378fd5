package order

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bornholm/orders/internal/command/common"
	"github.com/bornholm/orders/internal/core/model"
	"github.com/bornholm/orders/internal/core/port"
	"github.com/bornholm/orders/internal/locale"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagPage  = "page"
	flagLimit = "limit"
)

func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Print stored orders",
		Flags: common.WithCommonFlags(
			&cli.IntFlag{
				Name:  flagPage,
				Value: -1,
				Usage: "Page to print, all orders are printed when negative",
			},
			&cli.IntFlag{
				Name:  flagLimit,
				Value: 10,
				Usage: "Orders per page",
			},
		),
		Action: func(ctx *cli.Context) error {
			orderManager, err := common.GetOrderManager(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create order manager")
			}

			formatter, err := common.GetFormatter(ctx)
			if err != nil {
				return errors.Wrap(err, "could not create formatter")
			}

			var orders []*model.Order

			if page := ctx.Int(flagPage); page >= 0 {
				limit := ctx.Int(flagLimit)
				orders, err = orderManager.Query(ctx.Context, port.QueryOrdersOptions{
					Page:  &page,
					Limit: &limit,
				})
			} else {
				orders, err = orderManager.ListAll(ctx.Context)
			}
			if err != nil {
				return errors.Wrap(err, "could not list orders")
			}

			if err := printOrders(ctx.App.Writer, formatter, orders); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}

func printOrders(w io.Writer, formatter locale.Formatter, orders []*model.Order) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tJMÉNO\tDATUM NAROZENÍ\tDATUM OBJEDNÁNÍ\tNÁHRADNÍ ČAS\tVYTVOŘENO")

	for _, o := range orders {
		alternateTime := "nezvolen"
		if o.AlternateTime != nil {
			alternateTime = formatter.ShortTime(*o.AlternateTime)
		}

		fmt.Fprintf(
			tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID, o.FullName(),
			formatter.LongDate(o.BirthDate),
			formatter.WeekdayDateTime(o.AppointmentDateTime),
			alternateTime,
			formatter.DateTime(o.CreatedAt),
		)
	}

	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

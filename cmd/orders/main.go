package main

import (
	"github.com/bornholm/orders/internal/command"
	"github.com/bornholm/orders/internal/command/order"
)

func main() {
	command.Main(
		"orders", "manage the orders stored by the order entry application",
		order.Command(),
	)
}

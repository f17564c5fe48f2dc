package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"order-service/internal/app"

	"github.com/google/uuid"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	if len(args) == 0 {
		log.Fatal("Usage: cli <orders|order|status|profit|create> [args]")
	}

	switch args[0] {
	case "orders", "ls":
		result, err := svc.ListOrders(ctx)
		if err != nil {
			log.Fatalf("Failed to list orders: %v", err)
		}
		printOrderList(result)

	case "order", "get":
		if len(args) < 2 {
			log.Fatal("Usage: cli order <order-id>")
		}
		orderID, err := uuid.Parse(args[1])
		if err != nil {
			log.Fatalf("Invalid order id: %v", err)
		}
		result, err := svc.GetOrder(ctx, orderID)
		if err != nil {
			log.Fatalf("Failed to get order: %v", err)
		}
		printJSON(result.Order)

	case "status":
		if len(args) < 2 {
			log.Fatal("Usage: cli status <status-name>")
		}
		result, err := svc.ListOrdersByStatus(ctx, args[1])
		if err != nil {
			log.Fatalf("Failed to list orders by status: %v", err)
		}
		printJSON(result.Orders)

	case "profit":
		if len(args) < 2 {
			log.Fatal("Usage: cli profit <month> [year]")
		}
		month, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalf("Invalid month: %v", err)
		}
		var result *app.ProfitResult
		if len(args) >= 3 {
			year, yerr := strconv.Atoi(args[2])
			if yerr != nil {
				log.Fatalf("Invalid year: %v", yerr)
			}
			result, err = svc.ProfitByMonthAndYear(ctx, month, year)
		} else {
			result, err = svc.ProfitByMonth(ctx, month)
		}
		if err != nil {
			log.Fatalf("Profit calculation failed: %v", err)
		}
		fmt.Println(result.Message)

	case "create":
		var req app.CreateOrderRequest
		if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		result, err := svc.CreateOrder(ctx, req)
		if err != nil {
			log.Fatalf("Create failed: %v", err)
		}
		printJSON(result.Order)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: orders, order, status, profit, create", args[0])
	}
}

func printOrderList(result *app.OrderListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 88))
	fmt.Printf("  %-36s %-12s %6s %12s %12s\n", "ORDER", "STATUS", "ITEMS", "COST", "PRICE")
	fmt.Println(strings.Repeat("-", 88))
	for _, o := range result.Orders {
		fmt.Printf("  %-36s %-12s %6d %12s %12s\n",
			o.ID, o.StatusName, o.ItemCount, o.TotalCost.StringFixed(2), o.TotalPrice.StringFixed(2))
	}
	fmt.Println(strings.Repeat("=", 88))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

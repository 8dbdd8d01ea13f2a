package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deskline/internal/domain/catalog"
	"deskline/internal/domain/ticket"
	vo "deskline/internal/domain/ticket/valueobjects"
	"deskline/internal/infrastructure/config"
	"deskline/internal/infrastructure/database"
	"deskline/internal/infrastructure/migration"
	"deskline/internal/infrastructure/repository"
	"deskline/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture data into the database",
		Long:  `Create the schema and load a realistic fixture set of agents, tickets, and catalog items.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.AutoMigrate(database.Get()); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	ctx := context.Background()

	if err := seedAgents(ctx); err != nil {
		return err
	}
	if err := seedTickets(ctx); err != nil {
		return err
	}
	if err := seedItems(ctx); err != nil {
		return err
	}

	logger.Info("fixtures loaded")
	return nil
}

func seedAgents(ctx context.Context) error {
	repo := repository.NewAgentRepository(database.Get())

	agents := []struct {
		id, name, email string
	}{
		{"agent-1", "Ada Park", "ada.park@deskline.test"},
		{"agent-2", "Ben Ochoa", "ben.ochoa@deskline.test"},
		{"agent-3", "Carla Mendes", "carla.mendes@deskline.test"},
		{"agent-4", "Dmitri Volkov", "dmitri.volkov@deskline.test"},
	}

	for _, a := range agents {
		agent, err := ticket.NewAgent(a.id, a.name, a.email)
		if err != nil {
			return fmt.Errorf("failed to build agent fixture %s: %w", a.id, err)
		}
		if err := repo.Save(ctx, agent); err != nil {
			return fmt.Errorf("failed to save agent fixture %s: %w", a.id, err)
		}
	}

	logger.Info("agents seeded", "count", len(agents))
	return nil
}

func seedTickets(ctx context.Context) error {
	repo := repository.NewTicketRepository(database.Get())

	tickets := []struct {
		id, title, description string
		status                 vo.TicketStatus
		priority               vo.Priority
		agentID                string
		tags                   []string
	}{
		{"t-1001", "Printer smoking in copy room", "The big laser printer started smoking around noon and now smells of burnt plastic.", vo.StatusOpen, vo.PriorityCritical, "agent-1", []string{"hardware", "urgent"}},
		{"t-1002", "VPN disconnects every hour", "Remote workers report the VPN tunnel resets roughly on the hour.", vo.StatusInProgress, vo.PriorityHigh, "agent-2", []string{"network"}},
		{"t-1003", "Cannot reset password", "Password reset email never arrives for users on the old mail domain.", vo.StatusOpen, vo.PriorityMedium, "agent-3", []string{"accounts"}},
		{"t-1004", "Monitor flickers at 144Hz", "Left monitor flickers when set above 120Hz refresh rate.", vo.StatusResolved, vo.PriorityLow, "agent-1", []string{"hardware"}},
		{"t-1005", "Shared drive permissions", "Marketing cannot write to the shared campaigns folder since Monday.", vo.StatusOpen, vo.PriorityMedium, "agent-2", []string{"access"}},
		{"t-1006", "Laptop battery swollen", "Battery case visibly bulging, keyboard deck lifting.", vo.StatusClosed, vo.PriorityCritical, "agent-4", []string{"hardware", "safety"}},
		{"t-1007", "Email signature broken", "Company signature renders with missing logo in external replies.", vo.StatusInProgress, vo.PriorityLow, "agent-3", nil},
		{"t-1008", "New starter laptop request", "Provisioning for new hire starting next Monday.", vo.StatusOpen, vo.PriorityHigh, "agent-4", []string{"provisioning"}},
	}

	for _, tdef := range tickets {
		tk, err := ticket.NewTicket(tdef.id, tdef.title, tdef.description, tdef.status, tdef.priority, tdef.agentID, tdef.tags)
		if err != nil {
			return fmt.Errorf("failed to build ticket fixture %s: %w", tdef.id, err)
		}
		if err := repo.Save(ctx, tk); err != nil {
			return fmt.Errorf("failed to save ticket fixture %s: %w", tdef.id, err)
		}
	}

	logger.Info("tickets seeded", "count", len(tickets))
	return nil
}

func seedItems(ctx context.Context) error {
	repo := repository.NewItemRepository(database.Get())

	items := []struct {
		id, title, description, category, brand string
		price                                   float64
		rate                                    float64
		count                                   int
	}{
		{"i-1", "Wireless Mechanical Keyboard", "Hot-swappable switches, tri-mode connectivity.", "electronics", "Keychron", 109.99, 4.6, 812},
		{"i-2", "Ergonomic Vertical Mouse", "Reduces wrist pronation during long sessions.", "electronics", "Logi", 49.99, 4.3, 421},
		{"i-3", "Merino Wool Hoodie", "Temperature-regulating midweight layer.", "clothing", "Aldermere", 138.00, 4.8, 96},
		{"i-4", "Trail Running Shoes", "Aggressive lugs with a rock plate.", "footwear", "Cascadia", 129.95, 4.4, 1287},
		{"i-5", "Cold Brew Maker", "Slow-drip tower, 600ml carafe.", "kitchen", "Osaka", 74.50, 4.1, 233},
		{"i-6", "Noise Cancelling Headphones", "40h battery, multipoint pairing.", "electronics", "Soniq", 249.00, 4.7, 3054},
		{"i-7", "Canvas Weekender Bag", "Waxed canvas with leather trim.", "accessories", "Aldermere", 89.00, 4.2, 187},
		{"i-8", "Smart Desk Lamp", "Auto-dimming with circadian presets.", "electronics", "Lumio", 59.99, 3.9, 342},
	}

	for _, idef := range items {
		item, err := catalog.NewItem(idef.id, idef.title, idef.description, idef.category, idef.brand, idef.price, "", catalog.Rating{Rate: idef.rate, Count: idef.count})
		if err != nil {
			return fmt.Errorf("failed to build item fixture %s: %w", idef.id, err)
		}
		if err := repo.Save(ctx, item); err != nil {
			return fmt.Errorf("failed to save item fixture %s: %w", idef.id, err)
		}
	}

	logger.Info("items seeded", "count", len(items))
	return nil
}

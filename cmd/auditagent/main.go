// Command auditagent runs the AER compliance audit agent: a planner-driven
// loop over a fixed tool catalog acting on mock facility data.
//
// Usage:
//
//	auditagent                          interactive mode
//	auditagent Audit facility FAC-AB-001   one-shot instruction
//	auditagent -scenario 1|2|3|4|all    canned demo scenarios
//	auditagent -catalog                 print the tool catalog and exit
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/SuedePritch/auditagents/internal/agent"
	"github.com/SuedePritch/auditagents/internal/config"
	"github.com/SuedePritch/auditagents/internal/knowledge"
	"github.com/SuedePritch/auditagents/internal/mockops"
	"github.com/SuedePritch/auditagents/internal/planner"
	"github.com/SuedePritch/auditagents/internal/planner/gemini"
	"github.com/SuedePritch/auditagents/internal/planner/vertex"
	"github.com/SuedePritch/auditagents/internal/tools"
)

func main() {
	scenario := flag.String("scenario", "", "run a canned demo scenario (1-4 or all)")
	catalog := flag.Bool("catalog", false, "print the tool catalog and exit")
	flag.Parse()

	// A local .env is a convenience for the demo; absence is fine.
	_ = godotenv.Load()

	store := mockops.New()

	if *catalog {
		registry := mustRegistry(store, nil, 0)
		printCatalog(os.Stdout, registry)
		return
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "auditagent: %v\n", err)
		os.Exit(1)
	}
	config.SetupLogger(cfg)

	ctx := context.Background()
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "auditagent: %v\n", err)
		os.Exit(1)
	}
	defer closeProvider(provider)

	registry := mustRegistry(store, knowledge.NewDirectiveCorpus(), cfg.SearchTimeout)
	a := agent.New(provider, registry, cfg.MaxRounds)
	slog.Info("agent ready", "provider", provider.Name(), "tools", len(registry.Declarations()))

	switch {
	case *scenario != "":
		runScenarios(ctx, a, store, *scenario)
	case flag.NArg() > 0:
		runOne(ctx, a, strings.Join(flag.Args(), " "))
	default:
		runInteractive(ctx, a, store)
	}
}

func newProvider(ctx context.Context, cfg *config.Config) (planner.Provider, error) {
	switch cfg.Provider {
	case config.ProviderVertex:
		return vertex.New(ctx, cfg.VertexProject, cfg.VertexLocation, cfg.Model)
	default:
		return gemini.New(ctx, cfg.GeminiAPIKey, cfg.Model)
	}
}

func closeProvider(p planner.Provider) {
	if c, ok := p.(io.Closer); ok {
		_ = c.Close()
	}
}

func mustRegistry(store *mockops.Store, searcher knowledge.Searcher, searchTimeout time.Duration) *tools.Registry {
	registry, err := tools.NewAuditRegistry(tools.Deps{
		Store:         store,
		Searcher:      searcher,
		SearchTimeout: searchTimeout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "auditagent: %v\n", err)
		os.Exit(1)
	}
	return registry
}

func runOne(ctx context.Context, a *agent.Agent, instruction string) {
	answer, err := a.Run(ctx, instruction)
	if err != nil {
		fmt.Fprintf(os.Stderr, "auditagent: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(answer)
}

func runInteractive(ctx context.Context, a *agent.Agent, store *mockops.Store) {
	fmt.Println("AER Compliance Agent - interactive mode")
	fmt.Println("Type 'help' for example commands, 'quit' to stop.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return
		case "help":
			printHelp()
			continue
		case "status":
			printStatus(store)
			continue
		case "reset":
			store.Reset()
			fmt.Println("Operational records cleared.")
			continue
		}

		answer, err := a.Run(ctx, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Printf("\nAgent: %s\n\n", answer)
	}
}

func printHelp() {
	fmt.Println(`Example commands:
  - List all facilities
  - Audit facility FAC-AB-001 for Directive 017 compliance
  - Check calibration compliance at FAC-AB-001 and email results to safety@petrolab.example
  - What are the calibration requirements in Directive 017?
  - Perform a full audit of FAC-AB-002 and schedule maintenance if needed
Meta commands: status, reset, quit`)
}

func printStatus(store *mockops.Store) {
	facilities := store.ListFacilities()
	fmt.Printf("System status as of %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Printf("  Facilities:       %d\n", len(facilities))
	for _, f := range facilities {
		if info := store.FacilityInfo(f.FacilityID); info != nil {
			fmt.Printf("    %s: %s (%d equipment items)\n", info.FacilityID, info.Name, info.EquipmentCount)
		}
	}
	fmt.Printf("  Scheduled tasks:  %d\n", len(store.Tasks()))
	fmt.Printf("  Emails sent:      %d\n", len(store.Emails()))
	fmt.Printf("  Maintenance logs: %d\n", len(store.Logs()))
}

func printCatalog(w io.Writer, registry *tools.Registry) {
	for _, decl := range registry.Declarations() {
		fmt.Fprintf(w, "%s\n  %s\n", decl.Name, decl.Description)
		if decl.Params != nil && len(decl.Params.Properties) > 0 {
			required := make(map[string]bool, len(decl.Params.Required))
			for _, name := range decl.Params.Required {
				required[name] = true
			}
			for _, name := range decl.Params.Required {
				fmt.Fprintf(w, "    %s (%s, required)\n", name, decl.Params.Properties[name].Type)
			}
			optional := make([]string, 0, len(decl.Params.Properties))
			for name := range decl.Params.Properties {
				if !required[name] {
					optional = append(optional, name)
				}
			}
			sort.Strings(optional)
			for _, name := range optional {
				fmt.Fprintf(w, "    %s (%s, optional)\n", name, decl.Params.Properties[name].Type)
			}
		}
		fmt.Fprintln(w)
	}
}

var scenarios = map[string]string{
	"1": `Audit facility FAC-AB-001 for Directive 017 calibration compliance.
Steps:
1. Check the calibration requirements from Directive 017
2. Check all equipment at the facility
3. If there are violations, email a detailed report to safety@petrolab.example
4. Schedule a maintenance follow-up for two weeks from today`,
	"2": `I need a compliance status report for all our facilities.
Please:
1. List all available facilities
2. Check calibration compliance for each facility
3. Send a summary report to operations@petrolab.example with the overall compliance status`,
	"3": `I need to understand the requirements for gas measurement equipment.
Please:
1. Search Directive 017 for calibration and temperature compensation requirements
2. Provide a summary of the key requirements
3. Check if our facility FAC-AB-001 meets these requirements`,
	"4": `Perform a comprehensive audit of facility FAC-AB-001.
For each non-compliant equipment item:
1. Log a maintenance action noting the violation
2. Schedule calibration for one week from today
3. Send a notification to the maintenance team at maintenance@petrolab.example
Prioritize by equipment criticality.`,
}

func runScenarios(ctx context.Context, a *agent.Agent, store *mockops.Store, which string) {
	var keys []string
	if which == "all" {
		keys = []string{"1", "2", "3", "4"}
	} else if _, ok := scenarios[which]; ok {
		keys = []string{which}
	} else {
		fmt.Fprintf(os.Stderr, "auditagent: unknown scenario %q (want 1-4 or all)\n", which)
		os.Exit(1)
	}

	for i, key := range keys {
		if i > 0 {
			store.Reset()
		}
		fmt.Printf("=== Scenario %s ===\n", key)
		runOne(ctx, a, scenarios[key])
		printStatus(store)
		fmt.Println()
	}
}

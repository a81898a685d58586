package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/platypor/internal/balance"
	"github.com/vovakirdan/platypor/internal/catalog"
	"github.com/vovakirdan/platypor/internal/dialogue"
	"github.com/vovakirdan/platypor/internal/pet"
	"github.com/vovakirdan/platypor/internal/platform/tui"
	"github.com/vovakirdan/platypor/internal/storage"
)

// Exit code reported when the pet dies during a session.
const deathExitCode = 66

var (
	flagBalance   string
	flagCatalog   string
	flagDialogues string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Raise the pet",
	Long: `Start an interactive pet session in the terminal.

Controls:
  Left/Right  - Move the cursor within a row
  Tab         - Switch between the actions row and the shop row
  Enter/Space - Trigger the selected action or purchase
  1 / 2       - Equip or unequip the sword / shield
  Q/Ctrl+C    - Quit

The session ends when you quit or when the pet dies. A dead pet exits
with a non-zero status.

Examples:
  platypor play
  platypor play --seed 42
  platypor play --balance ./my-balance.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBalance, "balance", "", "Path to custom balance config YAML")
	playCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Path to custom catalog YAML")
	playCmd.Flags().StringVar(&flagDialogues, "dialogues", "", "Path to custom dialogue lines YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	bal, cat, lines := loadGameData()

	// Reject terminals too small to fit the stat panel
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < 40 || h < 20 {
			fmt.Fprintf(os.Stderr, "Error: terminal too small (%dx%d), need at least 40x20\n", w, h)
			os.Exit(1)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := pet.NewRand(seed)
	engine := pet.New(bal, cat, rng)

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the pet still works
		store = nil
	}

	if store != nil {
		engine.MarkLiteracy = func() {
			if markErr := store.MarkLiteracy(); markErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not persist literacy: %v\n", markErr)
			}
		}
	}

	final, runErr := tui.Run(engine, cat, lines, store, rng, tui.Options{
		TickRate: flagFPS,
		Seed:     seed,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}

	if final.Dead() {
		os.Exit(deathExitCode)
	}
}

// loadGameData loads the balance, catalog and dialogue configs, applying
// the custom-path flags, and exits on any validation failure.
func loadGameData() (balance.Config, catalog.Catalog, dialogue.Lines) {
	bal, err := balance.Load(flagBalance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading balance config: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.Load(flagCatalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}
	if err := validateCatalogIDs(cat); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lines, err := dialogue.Load(flagDialogues)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dialogues: %v\n", err)
		os.Exit(1)
	}

	return bal, cat, lines
}

// validateCatalogIDs checks that every catalog entry maps to a known
// action or product kind so the engine can resolve it.
func validateCatalogIDs(cat catalog.Catalog) error {
	for _, a := range cat.Actions {
		if _, ok := pet.ParseActionID(a.ID); !ok {
			return fmt.Errorf("catalog: unknown action id %q", a.ID)
		}
	}
	for _, p := range cat.Products {
		if _, ok := pet.ParseProductID(p.ID); !ok {
			return fmt.Errorf("catalog: unknown product id %q", p.ID)
		}
	}
	return nil
}

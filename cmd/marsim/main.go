// Command marsim runs simulated Terraforming Mars sessions from the command
// line: it builds a game from a scenario (file or flags), drives a random
// legal-move playout, and optionally archives per-generation snapshots.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ruinedsnowyday/reinforcing-mars/engine"
	"github.com/ruinedsnowyday/reinforcing-mars/internal/config"
	"github.com/ruinedsnowyday/reinforcing-mars/internal/historian"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "marsim",
		Short:         "Deterministic Terraforming Mars session simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.AddCommand(newRunCmd())

	cobra.OnInitialize(func() {
		if v, _ := root.PersistentFlags().GetBool("verbose"); v {
			log.SetLevel(logrus.DebugLevel)
		}
	})

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		scenarioPath string
		players      int
		seed         uint64
		maxGen       uint32
		venus        bool
		dbPath       string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Play one session to completion with a random policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario := config.Default()
			if scenarioPath != "" {
				var err error
				scenario, err = config.Load(scenarioPath)
				if err != nil {
					return err
				}
			} else {
				scenario.Players = defaultNames(players)
				scenario.Seed = seed
				scenario.Rules.VenusNext = venus
				scenario.MaxGenerations = maxGen
			}
			if scenario.MaxGenerations == 0 {
				scenario.MaxGenerations = 100
			}

			g, err := scenario.NewGame()
			if err != nil {
				return err
			}
			g.SetLogger(log)

			var store *historian.Store
			if dbPath != "" {
				store, err = historian.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()
			}

			if err := playout(g, scenario, store); err != nil {
				return err
			}
			printSummary(cmd, g)
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "f", "", "scenario YAML file")
	cmd.Flags().IntVarP(&players, "players", "p", 2, "player count (ignored with --scenario)")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 1, "session seed")
	cmd.Flags().Uint32VarP(&maxGen, "generations", "g", 0, "generation cap, 0 for default")
	cmd.Flags().BoolVar(&venus, "venus", false, "enable the Venus track")
	cmd.Flags().StringVar(&dbPath, "db", "", "record snapshots to this SQLite file")
	return cmd
}

func defaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Bot %d", i+1)
	}
	return names
}

// playout drives the session with a simple deterministic-random policy until
// it ends or hits the generation cap.
func playout(g *engine.Game, scenario config.Scenario, store *historian.Store) error {
	policy := rand.New(rand.NewSource(int64(scenario.Seed)))
	if err := g.Start(); err != nil {
		return err
	}

	lastRecorded := uint32(0)
	for !g.IsTerminal() && g.Generation <= scenario.MaxGenerations {
		if store != nil && g.Generation != lastRecorded && !g.Stalled() {
			if err := store.Record(g); err != nil {
				return err
			}
			lastRecorded = g.Generation
		}

		var err error
		switch g.Phase {
		case engine.PhaseInitialDrafting, engine.PhaseDrafting:
			err = stepDraft(g)
		case engine.PhaseResearch:
			err = stepResearch(g)
		case engine.PhasePreludes:
			err = stepPreludes(g)
		case engine.PhaseAction:
			err = stepAction(g, policy)
		case engine.PhaseProduction:
			err = g.ProcessProduction()
		case engine.PhaseSolar:
			err = stepSolar(g)
		case engine.PhaseIntergeneration:
			err = g.ProcessIntergeneration()
		}
		if err != nil {
			return fmt.Errorf("playout in %s: %w", g.Phase, err)
		}
	}
	return nil
}

func stepDraft(g *engine.Game) error {
	for _, p := range g.Players {
		if p.NeedsToDraft && len(p.DraftHand) > 0 {
			if err := g.SelectDraftCard(p.ID, p.DraftHand[0]); err != nil {
				return err
			}
		}
	}
	return nil
}

func stepResearch(g *engine.Game) error {
	for _, p := range g.Players {
		if g.Generation == 1 && p.Corporation == "" && len(p.DealtCorporations) > 0 {
			if err := g.SelectCorporation(p.ID, p.DealtCorporations[0]); err != nil {
				return err
			}
		}
		if g.Phase != engine.PhaseResearch {
			return nil
		}
		if g.Generation == 1 && len(p.SelectedPreludes) == 0 && len(p.DealtPreludes) >= engine.PreludesPerPlayer {
			if err := g.SelectPreludes(p.ID, p.DealtPreludes[:engine.PreludesPerPlayer]); err != nil {
				return err
			}
		}
		if g.Phase != engine.PhaseResearch {
			return nil
		}
		if !p.ResearchDone {
			offer := p.Drafted
			if g.Generation == 1 {
				offer = p.Hand
			}
			affordable := int(p.Resources.Megacredits / engine.CardBuyCost)
			if affordable > len(offer) {
				affordable = len(offer)
			}
			if affordable > 4 {
				affordable = 4
			}
			keep := append([]engine.CardID(nil), offer[:affordable]...)
			if err := g.BuyProjectCards(p.ID, keep); err != nil {
				return err
			}
		}
		if g.Phase != engine.PhaseResearch {
			return nil
		}
	}
	return nil
}

func stepPreludes(g *engine.Game) error {
	active := g.ActivePlayer()
	if active == nil || len(active.SelectedPreludes) == 0 {
		return fmt.Errorf("preludes phase with no playable prelude")
	}
	return g.PlayPrelude(active.ID, active.SelectedPreludes[0])
}

func stepAction(g *engine.Game, policy *rand.Rand) error {
	active := g.ActivePlayer()
	if active == nil {
		return fmt.Errorf("action phase with no active player")
	}
	actions := g.LegalActions(active.ID)
	if len(actions) == 0 {
		return g.ExecuteAction(active.ID, engine.PassAction())
	}
	return g.ExecuteAction(active.ID, actions[policy.Intn(len(actions))])
}

func stepSolar(g *engine.Game) error {
	if !g.Params.AtMax(engine.ParamVenus) {
		if err := g.WorldGovernmentTerraform(engine.ParamVenus); err != nil {
			return err
		}
	}
	return g.CompleteSolarPhase()
}

func printSummary(cmd *cobra.Command, g *engine.Game) {
	cmd.Printf("game %s finished: phase=%s generation=%d\n", g.ID, g.Phase, g.Generation)
	cmd.Printf("  %s\n", g.Params.String())
	for _, p := range g.Players {
		cmd.Printf("  %-10s rating=%-3d M€=%-4d cards=%d played=%d\n",
			p.Name, p.TerraformRating, p.Resources.Megacredits, len(p.Hand), len(p.Played))
	}
}

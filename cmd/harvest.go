package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/nerdwave-nick/pokemoves/internal/harvest"
	"github.com/nerdwave-nick/pokemoves/internal/moves"
	"github.com/nerdwave-nick/pokemoves/internal/pokeapi"
	"github.com/spf13/cobra"
)

type RangeOptions struct {
	From   int
	To     int
	OutDir string
}

func (o *RangeOptions) Validate() error {
	var err error
	if o.From <= 0 {
		err = concatErr(fmt.Errorf("from must be greater than 0"), err)
	}
	if o.To < o.From {
		err = concatErr(fmt.Errorf("to must not be smaller than from"), err)
	}
	if o.OutDir == "" {
		err = concatErr(fmt.Errorf("out can't be empty"), err)
	}
	return err
}

type MovesOptions struct {
	RangeOptions
	VersionGroup string
	Method       string
}

var (
	movesOpts = &MovesOptions{}
	statsOpts = &RangeOptions{}
	moveOut   string
)

func addRangeFlags(cmd *cobra.Command, o *RangeOptions, defaultOut string) {
	cmd.Flags().IntVar(&o.From, "from", 1, "The first pokemon id to harvest.")
	cmd.Flags().IntVar(&o.To, "to", 151, "The last pokemon id to harvest, inclusive.")
	cmd.Flags().StringVarP(&o.OutDir, "out", "o", defaultOut, "The directory the json documents are written to. Will be created when it doesn't exist.")
}

func init() {
	addRangeFlags(movesCmd, &movesOpts.RangeOptions, "Moves")
	movesCmd.Flags().StringVar(&movesOpts.VersionGroup, "version-group", moves.DefaultVersionGroupURL, "The version group to keep moves for, as id, name or url.")
	movesCmd.Flags().StringVar(&movesOpts.Method, "method", moves.LevelUp, "The move learn method to keep, matched exactly.")

	addRangeFlags(statsCmd, statsOpts, "Pokemon2")

	moveCmd.Flags().StringVarP(&moveOut, "out", "o", ".", "The directory the json documents are written to. Will be created when it doesn't exist.")
}

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Write the moves each pokemon learns by one method in one version group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := movesOpts.Validate(); err != nil {
			return fmt.Errorf("incorrect command usage:\n%w\n", err)
		}
		return withHarvester(cmd.Context(), movesOpts.OutDir, func(client *pokeapi.Client, h *harvest.Harvester) error {
			url, vg, err := client.ResolveVersionGroup(cmd.Context(), movesOpts.VersionGroup)
			if err != nil {
				return err
			}
			if vg != nil && !vg.HasLearnMethod(movesOpts.Method) {
				slog.Warn("version group does not know the learn method, no moves will match",
					slog.String("version_group", vg.Name), slog.String("method", movesOpts.Method))
			}
			slog.Info("harvesting moves",
				slog.String("version_group", url),
				slog.String("method", movesOpts.Method),
				slog.Int("from", movesOpts.From),
				slog.Int("to", movesOpts.To),
			)
			started := time.Now()
			report, err := h.Moves(cmd.Context(), movesOpts.From, movesOpts.To, moves.Target{VersionGroupURL: url, LearnMethod: movesOpts.Method})
			logReport("moves", report, started)
			return err
		})
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Write name, id, types and base stats of each pokemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := statsOpts.Validate(); err != nil {
			return fmt.Errorf("incorrect command usage:\n%w\n", err)
		}
		return withHarvester(cmd.Context(), statsOpts.OutDir, func(_ *pokeapi.Client, h *harvest.Harvester) error {
			started := time.Now()
			report, err := h.Stats(cmd.Context(), statsOpts.From, statsOpts.To)
			logReport("stats", report, started)
			return err
		})
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <name>...",
	Short: "Write the battle relevant details of the named moves",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if moveOut == "" {
			return fmt.Errorf("incorrect command usage:\nout can't be empty\n")
		}
		return withHarvester(cmd.Context(), moveOut, func(_ *pokeapi.Client, h *harvest.Harvester) error {
			started := time.Now()
			report, err := h.MoveDetails(cmd.Context(), args)
			logReport("move", report, started)
			return err
		})
	},
}

package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"campaign-sim/internal/adapter/memory"
	"campaign-sim/internal/adapter/oracle"
	"campaign-sim/internal/adapter/usecase"
	"campaign-sim/internal/config/configs"
	"campaign-sim/internal/core/channel"
	"campaign-sim/internal/core/domain"
	"campaign-sim/internal/core/port"
	"campaign-sim/internal/core/significance"
)

type rootOptions struct {
	seed    uint64
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "simctl",
		Short:        "Campaign simulation toolkit",
		SilenceUsage: true,
	}
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random oracle seed (0 picks one from the clock)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	root.AddCommand(
		newSizeCmd(opts),
		newReachCmd(opts),
		newCompareCmd(opts),
		newSimulateCmd(opts),
	)
	return root
}

// newLogger writes to errOut at warn, or debug with --verbose.
func newLogger(opts *rootOptions, errOut io.Writer) *slog.Logger {
	logCfg := configs.Logger{Level: "warn"}
	if opts.verbose {
		logCfg.Level = "debug"
	}
	return logCfg.New(errOut)
}

// newService wires the campaign use case with the random oracle and an
// in-memory repository.
func newService(opts *rootOptions, logger *slog.Logger, dispatch usecase.DispatchOptions) *usecase.CampaignUseCase {
	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	sim := usecase.NewSimulationUseCase(oracle.NewRandom(seed, oracle.DefaultWeights), logger, dispatch)
	return usecase.NewCampaignUseCase(sim, memory.NewRunRepository(), channel.Default(), logger, usecase.TrialLimits{})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "encode output")
}

// demographicFlags binds the flags describing a single demographic.
type demographicFlags struct {
	id        string
	age       string
	gender    string
	interests []string
	category  string
}

func (f *demographicFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "segment", "demographic id")
	cmd.Flags().StringVar(&f.age, "age", domain.AgeBand25to34, "age band (18-24, 25-34, 35-44, 45-54, 55-64, 65+)")
	cmd.Flags().StringVar(&f.gender, "gender", "all", "gender (male, female, all)")
	cmd.Flags().StringSliceVar(&f.interests, "interests", nil, "comma separated interests")
	cmd.Flags().StringVar(&f.category, "category", "", "socioeconomic category")
}

func (f *demographicFlags) demographic() domain.Demographic {
	return domain.Demographic{
		ID:        f.id,
		AgeBand:   f.age,
		Gender:    f.gender,
		Interests: f.interests,
		Category:  f.category,
	}
}

func newSizeCmd(opts *rootOptions) *cobra.Command {
	var df demographicFlags
	cmd := &cobra.Command{
		Use:   "size",
		Short: "Estimate the market size of a demographic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := newService(opts, newLogger(opts, cmd.ErrOrStderr()), usecase.DispatchOptions{})
			d := df.demographic()
			return printJSON(cmd.OutOrStdout(), map[string]any{
				"demographic_id": d.ID,
				"estimated_size": svc.EstimateSize(d),
			})
		},
	}
	df.bind(cmd)
	return cmd
}

// parseSpend parses "channel=amount" pairs into allocations targeting id.
func parseSpend(pairs []string, id string) ([]domain.Allocation, error) {
	allocs := make([]domain.Allocation, 0, len(pairs))
	for _, p := range pairs {
		name, amount, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, eris.Errorf("invalid spend %q, want channel=amount", p)
		}
		spend, err := strconv.ParseFloat(amount, 64)
		if err != nil || spend < 0 {
			return nil, eris.Errorf("invalid spend amount in %q", p)
		}
		allocs = append(allocs, domain.Allocation{ChannelID: name, Spend: spend, DemographicIDs: []string{id}})
	}
	return allocs, nil
}

func newReachCmd(opts *rootOptions) *cobra.Command {
	var (
		df    demographicFlags
		spend []string
	)
	cmd := &cobra.Command{
		Use:   "reach",
		Short: "Preview reach, penetration and cost of a strategy for one demographic",
		Example: "  simctl reach --age 18-24 --spend social_media=8000 --spend search_ads=2000\n" +
			"  simctl reach --list",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := newService(opts, newLogger(opts, cmd.ErrOrStderr()), usecase.DispatchOptions{})
			if list, _ := cmd.Flags().GetBool("list"); list {
				return printJSON(cmd.OutOrStdout(), svc.Channels())
			}
			d := df.demographic()
			allocs, err := parseSpend(spend, d.ID)
			if err != nil {
				return err
			}
			s := domain.Strategy{Allocations: allocs}
			s.TotalBudget = s.TotalSpend()
			return printJSON(cmd.OutOrStdout(), svc.Plan(s, d))
		},
	}
	df.bind(cmd)
	cmd.Flags().StringArrayVar(&spend, "spend", nil, "channel=amount, repeatable")
	cmd.Flags().Bool("list", false, "print the channel catalog instead")
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var a, b significance.Sample
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Two-proportion z-test on conversion counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range []significance.Sample{a, b} {
				if s.Trials < 0 || s.Conversions < 0 || s.Conversions > s.Trials {
					return eris.New("conversions must be between 0 and trials")
				}
			}
			svc := newService(opts, newLogger(opts, cmd.ErrOrStderr()), usecase.DispatchOptions{})
			return printJSON(cmd.OutOrStdout(), svc.Compare(a, b))
		},
	}
	cmd.Flags().IntVar(&a.Conversions, "a-conversions", 0, "conversions of variant A")
	cmd.Flags().IntVar(&a.Trials, "a-trials", 0, "trials of variant A")
	cmd.Flags().IntVar(&b.Conversions, "b-conversions", 0, "conversions of variant B")
	cmd.Flags().IntVar(&b.Trials, "b-trials", 0, "trials of variant B")
	return cmd
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		file        string
		trials      int
		chunkSize   int
		concurrency int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulation request file through the random oracle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return eris.Wrapf(err, "open %s", file)
				}
				defer f.Close()
				in = f
			}
			var req port.SimulationReq
			if err := json.NewDecoder(in).Decode(&req); err != nil {
				return eris.Wrap(err, "decode simulation request")
			}
			if trials > 0 {
				req.TrialsPerSegment = trials
			}

			logger := newLogger(opts, cmd.ErrOrStderr())
			svc := newService(opts, logger, usecase.DispatchOptions{
				ChunkSize:   chunkSize,
				Concurrency: concurrency,
			})
			progress := func(p port.Progress) {
				logger.Debug("simulation progress",
					slog.String("demographic", p.DemographicID),
					slog.Int("completed", p.Completed),
					slog.Int("total", p.Total),
					slog.Int("degraded", p.Degraded))
			}
			run, err := svc.Simulate(cmd.Context(), req, progress)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), run)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "simulation request JSON file, - for stdin")
	cmd.Flags().IntVar(&trials, "trials", 0, "override trials per demographic")
	cmd.Flags().IntVar(&chunkSize, "chunk-size", 10, "trials per oracle call")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "concurrent oracle calls")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	govkeeper "github.com/stellar-lend/slend/x/governance/keeper"
	govtypes "github.com/stellar-lend/slend/x/governance/types"
	oraclekeeper "github.com/stellar-lend/slend/x/oracle/keeper"
	oracletypes "github.com/stellar-lend/slend/x/oracle/types"
)

// simAuthority is the admin identity used for gated operations in
// scenarios.
const simAuthority = "slendsim-admin"

// newSimContext mounts the given store key over an in-memory DB and
// returns a context at the current wall-clock time.
func newSimContext(storeKey storetypes.StoreKey, logger log.Logger) (sdk.Context, error) {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	if err := stateStore.LoadLatestVersion(); err != nil {
		return sdk.Context{}, fmt.Errorf("load store: %w", err)
	}
	return sdk.NewContext(stateStore, cmtproto.Header{Time: time.Now().UTC()}, false, logger), nil
}

func newGovernanceCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "governance",
		Short: "Run a full propose/vote/queue/execute lifecycle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.NewLogger(os.Stdout)

			storeKey := storetypes.NewKVStoreKey(govtypes.StoreKey)
			ctx, err := newSimContext(storeKey, logger)
			if err != nil {
				return err
			}

			k := govkeeper.NewKeeper(storeKey, simAuthority).WithMetrics(govkeeper.NewMetrics())
			k.InitGenesis(ctx, *govtypes.DefaultGenesis())

			params := govtypes.Params{
				QuorumBps:       math.NewInt(cast.ToInt64(v.Get("quorum-bps"))),
				TimelockSeconds: cast.ToUint64(v.Get("timelock")),
			}
			if err := k.UpdateParams(ctx, simAuthority, params); err != nil {
				return err
			}

			votingPeriod := cast.ToUint64(v.Get("voting-period"))
			p, err := k.Propose(ctx, "slendsim-proposer", v.GetString("title"), votingPeriod)
			if err != nil {
				return err
			}
			logger.Info("proposed", "id", p.Id, "voting_ends", p.VotingEnds)

			if p, err = k.Vote(ctx, p.Id, "slendsim-for", true, math.NewInt(cast.ToInt64(v.Get("for-votes")))); err != nil {
				return err
			}
			if p, err = k.Vote(ctx, p.Id, "slendsim-against", false, math.NewInt(cast.ToInt64(v.Get("against-votes")))); err != nil {
				return err
			}
			logger.Info("voted", "for", p.ForVotes.String(), "against", p.AgainstVotes.String())

			// Jump past the voting window, queue, then past the timelock,
			// execute.
			afterVoting := ctx.WithBlockTime(ctx.BlockTime().Add(time.Duration(votingPeriod+1) * time.Second))
			if p, err = k.Queue(afterVoting, p.Id); err != nil {
				return err
			}
			logger.Info("queue attempted",
				"status", string(p.Status(afterVoting.BlockTime().Unix())),
				"queued_until", p.QueuedUntil,
			)
			if p.QueuedUntil == 0 {
				logger.Info("proposal failed quorum; it stays at voting-closed forever")
				return nil
			}

			afterTimelock := ctx.WithBlockTime(time.Unix(p.QueuedUntil, 0))
			if p, err = k.Execute(afterTimelock, p.Id); err != nil {
				return err
			}
			logger.Info("executed", "id", p.Id, "executed", p.Executed)
			return nil
		},
	}

	cmd.Flags().Int64("quorum-bps", govtypes.DefaultQuorumBps, "quorum threshold in basis points")
	cmd.Flags().Uint64("timelock", govtypes.DefaultTimelockSeconds, "timelock in seconds")
	cmd.Flags().Uint64("voting-period", 60, "voting period in seconds")
	cmd.Flags().String("title", "simulated proposal", "proposal title")
	cmd.Flags().Int64("for-votes", 700, "weight voted in favor")
	cmd.Flags().Int64("against-votes", 300, "weight voted against")
	return cmd
}

// simPriceClient quotes a fixed price for every asset.
type simPriceClient struct {
	price math.Int
}

func (c simPriceClient) GetPrice(_ context.Context, _ string) (math.Int, error) {
	return c.price, nil
}

// simResolver maps synthetic source addresses to fixed-price clients.
type simResolver struct {
	clients map[string]oracletypes.PriceClient
}

func (r *simResolver) Resolve(addr string) (oracletypes.PriceClient, error) {
	client, ok := r.clients[addr]
	if !ok {
		return nil, fmt.Errorf("no client for %s", addr)
	}
	return client, nil
}

func newOracleCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "oracle",
		Short: "Register synthetic sources and run one aggregation round",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.NewLogger(os.Stdout)

			storeKey := storetypes.NewKVStoreKey(oracletypes.StoreKey)
			ctx, err := newSimContext(storeKey, logger)
			if err != nil {
				return err
			}

			resolver := &simResolver{clients: make(map[string]oracletypes.PriceClient)}
			k := oraclekeeper.NewKeeper(storeKey, resolver, simAuthority).WithMetrics(oraclekeeper.NewMetrics())
			k.InitGenesis(ctx, *oracletypes.DefaultGenesis())

			params := oracletypes.Params{
				HeartbeatTtlSeconds: cast.ToUint64(v.Get("ttl")),
				Mode:                cast.ToInt64(v.Get("mode")),
			}
			if err := k.UpdateParams(ctx, simAuthority, params); err != nil {
				return err
			}

			asset := v.GetString("asset")
			now := ctx.BlockTime().Unix()
			for i, raw := range v.GetStringSlice("prices") {
				price, err := cast.ToInt64E(raw)
				if err != nil {
					return fmt.Errorf("invalid price %q: %w", raw, err)
				}
				addr := fmt.Sprintf("slendsim-feed-%d", i)
				if err := k.SetSource(ctx, simAuthority, asset, oracletypes.NewSource(addr, math.OneInt(), now)); err != nil {
					return err
				}
				resolver.clients[addr] = simPriceClient{price: math.NewInt(price)}
			}
			logger.Info("sources registered", "asset", asset, "count", len(k.GetSources(ctx, asset)))

			aggregated, err := k.AggregatePrice(ctx, asset)
			if err != nil {
				return err
			}
			logger.Info("aggregated",
				"asset", asset,
				"price", aggregated.String(),
				"mode", params.Mode,
				"perf_count", k.PerfCount(ctx).String(),
			)
			return nil
		},
	}

	cmd.Flags().String("asset", "XLM/USD", "asset to aggregate")
	cmd.Flags().Uint64("ttl", oracletypes.DefaultHeartbeatTtlSeconds, "heartbeat TTL in seconds")
	cmd.Flags().Int64("mode", oracletypes.ModeMedianTrim, "aggregation mode: 0 median-with-trim, 1 mean")
	cmd.Flags().StringSlice("prices", []string{"100", "102", "98", "1000"}, "synthetic source prices")
	return cmd
}

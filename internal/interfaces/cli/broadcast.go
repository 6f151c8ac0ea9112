package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mingzhangyang/bond-lab/internal/application/simulation"
	"github.com/mingzhangyang/bond-lab/internal/config"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/messaging/redis"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

func newBroadcastClient(cfg config.BroadcastConfig, logger logging.Logger) (*redis.Client, error) {
	return redis.NewClient(&redis.RedisConfig{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	}, logger)
}

// frameSnapshot exposes the session's frames to the broadcaster, keyed by
// tick count.
func frameSnapshot(s *simulation.Session) redis.SnapshotFunc {
	return func() (uint64, interface{}) {
		f := s.Frame()
		return f.Tick, f
	}
}

// NewWatchCmd creates the watch command, which follows the frames a
// running server broadcasts.
func NewWatchCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the frames broadcast by a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return RunWatch(ctx, cliCtx.Config.Broadcast, cliCtx.Logger, cmd.OutOrStdout(), cliCtx.OutputFormat, count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "stop after this many frames (0 = until interrupted)")
	return cmd
}

// RunWatch subscribes to the frame channel and writes one line per frame:
// the raw JSON in json format, a summary otherwise.
func RunWatch(ctx context.Context, cfg config.BroadcastConfig, logger logging.Logger, out io.Writer, format string, count int) error {
	if count < 0 {
		return errors.Newf(errors.CodeInvalidParam, "count must be ≥ 0, got %d", count)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	client, err := newBroadcastClient(cfg, logger)
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	seen := 0
	return redis.Listen(ctx, client, cfg.Channel, func(payload []byte) error {
		if format == "json" {
			fmt.Fprintln(out, string(payload))
		} else {
			var f simulation.Frame
			if err := json.Unmarshal(payload, &f); err != nil {
				logger.Warn("skipping undecodable frame", logging.Err(err))
				return nil
			}
			fmt.Fprintf(out, "tick %d: %d atoms, %d bonds, kinetic energy %.3g%s\n",
				f.Tick, len(f.Atoms), len(f.Bonds), f.Last.KineticEnergy, suspendedMark(f))
		}
		seen++
		if count > 0 && seen >= count {
			cancel()
		}
		return nil
	})
}

func suspendedMark(f simulation.Frame) string {
	if f.Last.Suspended {
		return " (suspended)"
	}
	return ""
}

//Personal.AI order the ending

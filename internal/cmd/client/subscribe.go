package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	logpkg "github.com/gonzalojpv/pubsub-api-client/pkg/log"
	"github.com/gonzalojpv/pubsub-api-client/pkg/pubsub"
)

// newSubscribeCommand constructs the `subscribe` command.
func newSubscribeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to a topic and print decoded events as JSON lines",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			num, _ := cmd.Flags().GetInt("num")
			replayFrom, _ := cmd.Flags().GetString("replay")
			replayID, _ := cmd.Flags().GetUint64("replay-id")
			filter, _ := cmd.Flags().GetString("filter")
			buffer, _ := cmd.Flags().GetInt("buffer")

			preset, err := parseReplayPreset(replayFrom, cmd.Flags().Changed("replay-id"))
			if err != nil {
				return err
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			sub, err := s.client.Subscribe(cmd.Context(), pubsub.SubscribeOptions{
				Topic:        topic,
				NumRequested: num,
				Replay:       preset,
				ReplayID:     replayID,
				Filter:       filter,
				Buffer:       buffer,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			return consumeMessages(cmd.Context(), sub.C(), enc, s.logger)
		},
	}
	cmd.Flags().StringP("topic", "t", "", "Topic name")
	cmd.Flags().Int("num", 0, "Stop after N events (0 = stream indefinitely)")
	cmd.Flags().String("replay", "latest", "Start position: latest|earliest|custom")
	cmd.Flags().Uint64("replay-id", 0, "Replay position for --replay=custom")
	cmd.Flags().String("filter", "", "CEL filter over decoded events (client-side)")
	cmd.Flags().Int("buffer", 0, "Delivery channel capacity override")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

// consumeMessages drains one subscription, printing decoded events as JSON
// lines. It returns nil on a clean end (or lastevent / context cancel) and
// the stream error when the stream fails, so the command exits non-zero.
// Per-event decode failures are logged and do not become the exit status
// unless the stream then dies without a clean end.
func consumeMessages(ctx context.Context, ch <-chan pubsub.Message, enc *json.Encoder, logger logpkg.Logger) error {
	var lastErr error
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return lastErr
			}
			switch msg.Kind {
			case pubsub.KindData:
				_ = enc.Encode(map[string]any{
					"replay_id": msg.Event.ReplayID,
					"event_id":  msg.Event.EventID,
					"schema_id": msg.Event.SchemaID,
					"payload":   msg.Event.Payload,
				})
			case pubsub.KindError:
				logger.Error("event error", logpkg.Err(msg.Err))
				lastErr = msg.Err
			case pubsub.KindKeepalive:
				logger.Debug("keepalive",
					logpkg.Uint64("latest_replay_id", msg.Keepalive.LatestReplayID),
					logpkg.Int("pending", int(msg.Keepalive.PendingNumRequested)))
			case pubsub.KindStatus:
				logger.Warn("stream status",
					logpkg.Str("code", msg.Status.Code),
					logpkg.Str("message", msg.Status.Message))
			case pubsub.KindLastEvent:
				// bounded subscription delivered in full
				return nil
			case pubsub.KindEnd:
				return nil
			}
		}
	}
}

func parseReplayPreset(from string, haveID bool) (pubsub.ReplayPreset, error) {
	switch from {
	case "", "latest":
		if haveID {
			return pubsub.ReplayCustom, nil
		}
		return pubsub.ReplayLatest, nil
	case "earliest":
		return pubsub.ReplayEarliest, nil
	case "custom":
		return pubsub.ReplayCustom, nil
	default:
		return 0, fmt.Errorf("invalid --replay; use latest|earliest|custom")
	}
}

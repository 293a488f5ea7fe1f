package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// newPublishCommand constructs the `publish` command.
func newPublishCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish events to a topic",
		Long:  "Publish encodes each payload against the topic's current schema and prints one result per event.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")
			raw, _ := cmd.Flags().GetStringArray("payload")
			file, _ := cmd.Flags().GetString("file")

			payloads, err := collectPayloads(raw, file)
			if err != nil {
				return err
			}
			if len(payloads) == 0 {
				return fmt.Errorf("no payloads; use --payload or --file")
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			results, err := s.client.Publish(cmd.Context(), topic, payloads)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for i, r := range results {
				out := map[string]any{"index": i, "replay_id": r.ReplayID}
				if r.CorrelationKey != "" {
					out["correlation_key"] = r.CorrelationKey
				}
				if r.Err != nil {
					out["error"] = r.Err.Error()
				}
				_ = enc.Encode(out)
			}
			return nil
		},
	}
	cmd.Flags().StringP("topic", "t", "", "Topic name")
	cmd.Flags().StringArray("payload", nil, "Event payload as a JSON object (repeatable)")
	cmd.Flags().String("file", "", "File with a JSON array of payload objects")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func collectPayloads(raw []string, file string) ([]map[string]interface{}, error) {
	var payloads []map[string]interface{}
	for i, r := range raw {
		var p map[string]interface{}
		if err := json.Unmarshal([]byte(r), &p); err != nil {
			return nil, fmt.Errorf("invalid --payload %d: %w", i, err)
		}
		payloads = append(payloads, p)
	}
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		var fromFile []map[string]interface{}
		if err := json.Unmarshal(b, &fromFile); err != nil {
			return nil, fmt.Errorf("invalid payload file %s: %w", file, err)
		}
		payloads = append(payloads, fromFile...)
	}
	return payloads, nil
}

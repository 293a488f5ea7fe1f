package client

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// newTopicCommand constructs the `topic` command group.
func newTopicCommand() *cobra.Command {
	topicCmd := &cobra.Command{Use: "topic", Short: "Topic operations"}
	topicCmd.AddCommand(newTopicInfoCommand())
	return topicCmd
}

func newTopicInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show topic metadata",
		RunE: func(cmd *cobra.Command, _ []string) error {
			topic, _ := cmd.Flags().GetString("topic")

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			info, err := s.client.GetTopic(cmd.Context(), topic)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(map[string]any{
				"topic_name":    info.GetTopicName(),
				"tenant_guid":   info.GetTenantGuid(),
				"schema_id":     info.GetSchemaId(),
				"can_publish":   info.GetCanPublish(),
				"can_subscribe": info.GetCanSubscribe(),
			})
		},
	}
	cmd.Flags().StringP("topic", "t", "", "Topic name")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

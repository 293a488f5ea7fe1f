package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// newSchemaCommand constructs the `schema` command group.
func newSchemaCommand() *cobra.Command {
	schemaCmd := &cobra.Command{Use: "schema", Short: "Schema operations"}
	schemaCmd.AddCommand(newSchemaGetCommand())
	return schemaCmd
}

func newSchemaGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch a schema definition by id or topic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, _ := cmd.Flags().GetString("id")
			topic, _ := cmd.Flags().GetString("topic")
			if id == "" && topic == "" {
				return fmt.Errorf("one of --id or --topic is required")
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			if id == "" {
				info, err := s.client.GetTopic(cmd.Context(), topic)
				if err != nil {
					return err
				}
				id = info.GetSchemaId()
			}
			def, err := s.client.GetSchemaJSON(cmd.Context(), id)
			if err != nil {
				return err
			}

			// reindent when the definition is valid JSON
			var v any
			if json.Unmarshal([]byte(def), &v) == nil {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), def)
			return err
		},
	}
	cmd.Flags().String("id", "", "Schema id")
	cmd.Flags().StringP("topic", "t", "", "Topic name (fetches the topic's current schema)")
	return cmd
}

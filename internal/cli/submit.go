package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/client"
	"github.com/ppiankov/occkernel/internal/model"
)

var (
	submitTier     int
	submitDecision string
	submitActor    string
	submitValue    int64
	submitPayload  string
	submitTTL      string
)

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().IntVar(&submitTier, "tier", 1, "Minimum operator tier required to decide")
	submitCmd.Flags().StringVar(&submitDecision, "decision-id", "", "Originating decision id (required)")
	submitCmd.Flags().StringVar(&submitActor, "actor", "", "Originating actor id (required)")
	submitCmd.Flags().Int64Var(&submitValue, "value", 0, "Value at risk in minor currency units")
	submitCmd.Flags().StringVar(&submitPayload, "payload", "", "Opaque JSON payload shown to the reviewer")
	submitCmd.Flags().StringVar(&submitTTL, "ttl", "", "Review deadline (e.g. 2h), empty for kernel default")
	submitCmd.MarkFlagRequired("decision-id")
	submitCmd.MarkFlagRequired("actor")
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a decision for human review",
	RunE:  runSubmit,
}

func runSubmit(cmd *cobra.Command, args []string) error {
	var ttl time.Duration
	if submitTTL != "" {
		var err error
		ttl, err = time.ParseDuration(submitTTL)
		if err != nil {
			return fmt.Errorf("invalid --ttl %q: %w", submitTTL, err)
		}
	}

	c, err := client.New(kernelAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	p, err := c.CreatePdo(model.Spec{
		TierRequired:          submitTier,
		OriginatingDecisionID: submitDecision,
		OriginatingActorID:    submitActor,
		ValueAtRisk:           submitValue,
		Payload:               json.RawMessage(submitPayload),
		TTL:                   ttl,
	})
	if err != nil {
		return err
	}

	out, _ := json.MarshalIndent(p, "", "  ")
	fmt.Println(string(out))
	return nil
}
